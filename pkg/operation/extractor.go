package operation

import (
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/yosida95/uritemplate/v3"
)

// Extractor derives the deduplicated set of parameter names actually present
// in a captured interaction. Order is irrelevant; duplicates collapse.
type Extractor interface {
	Extract(op Operation) (map[string]struct{}, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(op Operation) (map[string]struct{}, error)

// Extract calls fn.
func (fn ExtractorFunc) Extract(op Operation) (map[string]struct{}, error) {
	return fn(op)
}

// requestParameters extracts the names of request parameters: query-string
// keys plus, for url-encoded payloads, form body keys.
type requestParameters struct{}

// RequestParameters returns the extractor used to document request
// parameters. A parameter appearing in both the query string and the form
// body counts once.
func RequestParameters() Extractor {
	return requestParameters{}
}

func (requestParameters) Extract(op Operation) (map[string]struct{}, error) {
	names := make(map[string]struct{})

	if op.Request.URL == nil {
		return nil, errors.New("operation: request url is required")
	}
	query, err := url.ParseQuery(op.Request.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("operation: parse query string: %w", err)
	}
	for name := range query {
		names[name] = struct{}{}
	}

	if isFormEncoded(op) && len(op.Request.Body) > 0 {
		form, err := url.ParseQuery(string(op.Request.Body))
		if err != nil {
			return nil, fmt.Errorf("operation: parse form body: %w", err)
		}
		for name := range form {
			names[name] = struct{}{}
		}
	}

	return names, nil
}

func isFormEncoded(op Operation) bool {
	contentType := op.Request.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded"
}

// pathParameters extracts the variable names declared by a RFC 6570 URI
// template, e.g. /users/{id}/orders/{orderId} yields {id, orderId}.
type pathParameters struct {
	template *uritemplate.Template
}

// PathParameters returns an extractor for the given URI template. The
// template is parsed eagerly so malformed templates fail at wiring time.
func PathParameters(template string) (Extractor, error) {
	if strings.TrimSpace(template) == "" {
		return nil, errors.New("operation: uri template is required")
	}
	parsed, err := uritemplate.New(template)
	if err != nil {
		return nil, fmt.Errorf("operation: parse uri template %q: %w", template, err)
	}
	return pathParameters{template: parsed}, nil
}

// MustPathParameters panics on a malformed template. Useful for fixtures.
func MustPathParameters(template string) Extractor {
	extractor, err := PathParameters(template)
	if err != nil {
		panic(err)
	}
	return extractor
}

func (p pathParameters) Extract(Operation) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for _, name := range p.template.Varnames() {
		names[name] = struct{}{}
	}
	return names, nil
}
