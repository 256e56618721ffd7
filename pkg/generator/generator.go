package generator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/restdocgen/restdocgen/internal/openapi/loader"
	internalParser "github.com/restdocgen/restdocgen/internal/openapi/parser"
	"github.com/restdocgen/restdocgen/pkg/descriptor"
	"github.com/restdocgen/restdocgen/pkg/operation"
	pkgopenapi "github.com/restdocgen/restdocgen/pkg/openapi"
	"github.com/restdocgen/restdocgen/pkg/render"
	"github.com/restdocgen/restdocgen/pkg/snippet"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithLoaderOptions rebuilds the default loader with the given options.
func WithLoaderOptions(options ...pkgopenapi.LoaderOption) Option {
	return func(g *Generator) {
		g.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
	}
}

// WithParser injects a custom declared-parameter parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithParserOptions rebuilds the default parser with the given options.
func WithParserOptions(options ...pkgopenapi.ParserOption) Option {
	return func(g *Generator) {
		g.parser = internalParser.New(pkgopenapi.NewParserOptions(options...))
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultFormat overrides the renderer used when a request omits an
// explicit Format field.
func WithDefaultFormat(name string) Option {
	return func(g *Generator) {
		g.defaultFormat = name
	}
}

// WithExtractor overrides the default request-parameter extraction strategy.
func WithExtractor(extractor operation.Extractor) Option {
	return func(g *Generator) {
		g.extractor = extractor
	}
}

// WithFailureHandler overrides the fail-fast verification policy for every
// generated snippet.
func WithFailureHandler(handler snippet.FailureHandler) Option {
	return func(g *Generator) {
		g.handler = handler
	}
}

// Generator coordinates descriptor resolution, snippet verification, and
// rendering. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Generator struct {
	loader        pkgopenapi.Loader
	parser        pkgopenapi.Parser
	registry      *render.Registry
	extractor     operation.Extractor
	handler       snippet.FailureHandler
	defaultFormat string
	initialiseErr error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultFormat: render.FormatAsciidoctor,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if g.extractor == nil {
		g.extractor = operation.RequestParameters()
	}
	if g.handler == nil {
		g.handler = snippet.FailFast()
	}
	if g.registry == nil {
		registry, err := render.DefaultRegistry()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: initialise renderers: %w", err)
			return
		}
		g.registry = registry
	}
}

// Request describes the inputs required to document the parameters of a
// captured interaction.
type Request struct {
	// Descriptors declares the documented parameters directly. When empty,
	// the generator derives them from the OpenAPI document instead.
	Descriptors []descriptor.Descriptor

	// Source identifies where the OpenAPI document lives. Optional when
	// Descriptors or Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have a
	// payload.
	Document *pkgopenapi.Document

	// OperationID selects which operation's declared parameters to document
	// when descriptors come from an OpenAPI document.
	OperationID string

	// Operation is the captured interaction to verify against.
	Operation operation.Operation

	// Extractor overrides the generator-level extraction strategy for this
	// request (e.g. path parameters for one snippet).
	Extractor operation.Extractor

	// Format names the renderer to use. If empty, the generator falls back to
	// the configured default format.
	Format string

	// RenderOptions carries extra template attributes.
	RenderOptions render.RenderOptions
}

// Generate resolves descriptors, verifies them against the captured
// interaction, and returns the rendered snippet bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	model, err := g.CreateModel(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := g.rendererFor(req.Format)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, model, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("generator: render snippet: %w", err)
	}
	return output, nil
}

// CreateModel runs descriptor resolution and verification without rendering,
// for callers that feed the model into their own templates.
func (g *Generator) CreateModel(ctx context.Context, req Request) (snippet.Model, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}

	descriptors, err := g.resolveDescriptors(ctx, req)
	if err != nil {
		return nil, err
	}

	extractor := req.Extractor
	if extractor == nil {
		extractor = g.extractor
	}

	snip, err := snippet.New(descriptors, extractor, snippet.WithFailureHandler(g.handler))
	if err != nil {
		return nil, fmt.Errorf("generator: build snippet: %w", err)
	}

	return snip.CreateModel(req.Operation)
}

func (g *Generator) resolveDescriptors(ctx context.Context, req Request) ([]descriptor.Descriptor, error) {
	if len(req.Descriptors) > 0 {
		return req.Descriptors, nil
	}
	if req.OperationID == "" {
		return nil, errors.New("generator: descriptors or operation id is required")
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	declared, err := g.parser.Parameters(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generator: parse declared parameters: %w", err)
	}

	descriptors, ok := declared[req.OperationID]
	if !ok {
		return nil, fmt.Errorf("generator: operation %q not found", req.OperationID)
	}
	return descriptors, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("generator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("generator: load document: %w", err)
	}
	return doc, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	format := name
	if format == "" {
		format = g.defaultFormat
	}
	renderer, err := g.registry.Get(format)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return renderer, nil
}
