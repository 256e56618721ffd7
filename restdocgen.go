package restdocgen

import (
	"context"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
	"github.com/restdocgen/restdocgen/pkg/generator"
	"github.com/restdocgen/restdocgen/pkg/operation"
	"github.com/restdocgen/restdocgen/pkg/render"
	"github.com/restdocgen/restdocgen/pkg/snippet"
)

// Descriptor documents a single named request parameter; alias exported via
// the root package for convenience.
type Descriptor = descriptor.Descriptor

// Operation is a captured interaction being documented.
type Operation = operation.Operation

// Model is the renderable representation of a verified snippet.
type Model = snippet.Model

// RenderOptions carries per-call template attributes.
type RenderOptions = render.RenderOptions

// Request describes the inputs required to document a captured interaction.
type Request = generator.Request

// Parameter returns a Descriptor with the given name and description.
func Parameter(name, description string, options ...descriptor.Option) Descriptor {
	return descriptor.New(name, description, options...)
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// DocumentParameters verifies the given descriptors against the captured
// interaction and renders the parameters snippet in the named format. It is
// the simplest entry point for callers that just want snippet output.
func DocumentParameters(ctx context.Context, descriptors []Descriptor, op Operation, format string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Descriptors: descriptors,
		Operation:   op,
		Format:      format,
	})
}
