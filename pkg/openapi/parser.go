package openapi

import (
	"context"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
)

// Location names where a declared parameter lives in the request.
type Location string

const (
	LocationQuery  Location = "query"
	LocationPath   Location = "path"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"
)

// Parser extracts the parameters an OpenAPI document declares, keyed by
// operationId, as descriptors ready for registry construction.
type Parser interface {
	Parameters(ctx context.Context, doc Document) (map[string][]descriptor.Descriptor, error)
}

// ParserOptions exposes extraction toggles.
type ParserOptions struct {
	// Locations restricts extraction to the given parameter locations. An
	// empty slice matches every location; NewParserOptions defaults to query
	// and path, the locations snippet verification covers.
	Locations []Location

	// AllowPartialDocuments gates documents without paths or operations.
	// Defaults to false.
	AllowPartialDocuments bool

	// ResolveReferences controls whether $ref pointers are eagerly resolved.
	// Defaults to true for full documents.
	ResolveReferences bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithLocations restricts extraction to the given parameter locations.
func WithLocations(locations ...Location) ParserOption {
	return func(opts *ParserOptions) {
		opts.Locations = locations
	}
}

// WithPartialDocuments toggles support for documents without operations.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/openapi call this helper to
// stay consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Locations:         []Location{LocationQuery, LocationPath},
		ResolveReferences: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
