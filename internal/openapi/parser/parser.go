package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
	pkgopenapi "github.com/restdocgen/restdocgen/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi. It collects the
// parameters each operation declares (path-level parameters included) and
// converts them into descriptors.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Parameters converts a Document into per-operation descriptor slices keyed
// by operationId.
func (p *Parser) Parameters(ctx context.Context, doc pkgopenapi.Document) (map[string][]descriptor.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if err := p.resolveReferences(ctx, loader, spec); err != nil {
		return nil, err
	}

	descriptors := make(map[string][]descriptor.Descriptor)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if err := p.collectOperation(ctx, descriptors, method, path, item.Parameters, op); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(descriptors) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no documented operations extracted")
	}

	return descriptors, nil
}

func (p *Parser) resolveReferences(ctx context.Context, loader *openapi3.Loader, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string][]descriptor.Descriptor, method, path string, shared openapi3.Parameters, operation *openapi3.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if operation == nil {
		return nil
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	// Path-level parameters apply to every operation; operation-level
	// declarations of the same name+location win.
	merged := mergeParameters(shared, operation.Parameters)

	var out []descriptor.Descriptor
	for _, ref := range merged {
		if ref == nil || ref.Value == nil {
			continue
		}
		param := ref.Value
		if !p.wantsLocation(param.In) {
			continue
		}
		d, err := p.toDescriptor(param)
		if err != nil {
			return fmt.Errorf("openapi parser: operation %q: %w", opID, err)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	target[opID] = out
	return nil
}

func (p *Parser) wantsLocation(in string) bool {
	if len(p.options.Locations) == 0 {
		return true
	}
	for _, location := range p.options.Locations {
		if string(location) == in {
			return true
		}
	}
	return false
}

// toDescriptor converts a declared parameter, rejecting ones without a
// description here so callers see the operation and parameter name instead
// of a registry index.
func (p *Parser) toDescriptor(param *openapi3.Parameter) (descriptor.Descriptor, error) {
	if strings.TrimSpace(param.Description) == "" {
		return descriptor.Descriptor{}, fmt.Errorf("parameter %q has no description", param.Name)
	}

	d := descriptor.Descriptor{
		Name:        param.Name,
		Description: param.Description,
		Optional:    !param.Required,
	}
	if param.Schema != nil && param.Schema.Value != nil {
		if types := param.Schema.Value.Type; types != nil && len(types.Slice()) > 0 {
			d.Type = types.Slice()[0]
		}
	}
	if param.In != "" {
		d.Attributes = map[string]any{"in": param.In}
	}
	return d, nil
}

func mergeParameters(shared, own openapi3.Parameters) openapi3.Parameters {
	if len(shared) == 0 {
		return own
	}

	merged := make(openapi3.Parameters, 0, len(shared)+len(own))
	overridden := func(ref *openapi3.ParameterRef) bool {
		if ref == nil || ref.Value == nil {
			return false
		}
		for _, candidate := range own {
			if candidate == nil || candidate.Value == nil {
				continue
			}
			if candidate.Value.Name == ref.Value.Name && candidate.Value.In == ref.Value.In {
				return true
			}
		}
		return false
	}

	for _, ref := range shared {
		if overridden(ref) {
			continue
		}
		merged = append(merged, ref)
	}
	merged = append(merged, own...)
	return merged
}
