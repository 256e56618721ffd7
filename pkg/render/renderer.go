package render

import (
	"context"

	"github.com/restdocgen/restdocgen/pkg/snippet"
)

// RenderOptions carries per-call template context. Attributes merge into the
// snippet model before execution and cannot shadow the "parameters" key.
type RenderOptions struct {
	Attributes map[string]any
}

// Renderer converts a snippet model into a byte representation (AsciiDoc,
// Markdown, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model snippet.Model, options RenderOptions) ([]byte, error)
}
