package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/restdocgen/restdocgen/pkg/snippet"
)

const (
	// FormatAsciidoctor names the built-in AsciiDoc renderer.
	FormatAsciidoctor = "asciidoctor"
	// FormatMarkdown names the built-in Markdown renderer.
	FormatMarkdown = "markdown"

	asciidocTemplate = "parameters.adoc"
	markdownTemplate = "parameters.md"
)

// templateRenderer renders snippet models through a named engine template.
type templateRenderer struct {
	name        string
	contentType string
	template    string
	engine      *Engine
}

// Ensure the implementation satisfies the public interface.
var _ Renderer = (*templateRenderer)(nil)

// NewAsciidoctor returns the built-in AsciiDoc table renderer using the
// embedded default template.
func NewAsciidoctor(options ...EngineOption) (Renderer, error) {
	return newTemplateRenderer(FormatAsciidoctor, "text/asciidoc", asciidocTemplate, options...)
}

// NewMarkdown returns the built-in Markdown table renderer using the embedded
// default template.
func NewMarkdown(options ...EngineOption) (Renderer, error) {
	return newTemplateRenderer(FormatMarkdown, "text/markdown", markdownTemplate, options...)
}

// NewTemplateRenderer wires a custom format onto a named template, letting
// callers supply their own bundle through engine options.
func NewTemplateRenderer(name, contentType, template string, options ...EngineOption) (Renderer, error) {
	if name == "" {
		return nil, errors.New("render: renderer name is required")
	}
	if template == "" {
		return nil, errors.New("render: template name is required")
	}
	return newTemplateRenderer(name, contentType, template, options...)
}

func newTemplateRenderer(name, contentType, template string, options ...EngineOption) (Renderer, error) {
	engine, err := NewEngine(options...)
	if err != nil {
		return nil, err
	}
	return &templateRenderer{
		name:        name,
		contentType: contentType,
		template:    template,
		engine:      engine,
	}, nil
}

func (r *templateRenderer) Name() string {
	return r.name
}

func (r *templateRenderer) ContentType() string {
	return r.contentType
}

// Render merges option attributes under the model and executes the template.
// Attributes never shadow model keys, so "parameters" always wins.
func (r *templateRenderer) Render(ctx context.Context, model snippet.Model, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.New("render: model is required")
	}

	data := make(map[string]any, len(model)+len(options.Attributes))
	for key, value := range options.Attributes {
		data[key] = value
	}
	for key, value := range model {
		data[key] = value
	}

	output, err := r.engine.Render(r.template, data)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", r.name, err)
	}
	return []byte(output), nil
}
