package operation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Request is the captured request half of an interaction. URL carries the
// request target including its raw query; Body holds the payload bytes as
// observed on the wire.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Operation is a captured interaction being documented. Name identifies the
// documentation target (typically the snippet output directory).
type Operation struct {
	Name    string
	Request Request
}

// New validates the core fields and returns an Operation.
func New(name string, req Request) (Operation, error) {
	if name == "" {
		return Operation{}, errors.New("operation: name is required")
	}
	if req.Method == "" {
		return Operation{}, errors.New("operation: request method is required")
	}
	if req.URL == nil {
		return Operation{}, errors.New("operation: request url is required")
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	return Operation{Name: name, Request: req}, nil
}

// MustNew panics when construction fails, assisting fixtures/tests.
func MustNew(name string, req Request) Operation {
	op, err := New(name, req)
	if err != nil {
		panic(err)
	}
	return op
}

// FromHTTPRequest captures an *http.Request into an Operation, draining the
// body. The original request body is replaced so callers can keep using it.
func FromHTTPRequest(name string, r *http.Request) (Operation, error) {
	if r == nil {
		return Operation{}, errors.New("operation: http request is nil")
	}

	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return Operation{}, fmt.Errorf("operation: read request body: %w", err)
		}
		body = data
		r.Body = io.NopCloser(bytes.NewReader(data))
	}

	captured := Request{
		Method: r.Method,
		URL:    cloneURL(r.URL),
		Header: r.Header.Clone(),
		Body:   body,
	}
	return New(name, captured)
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	clone := *u
	if u.User != nil {
		user := *u.User
		clone.User = &user
	}
	return &clone
}
