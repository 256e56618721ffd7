package snippet

import (
	"errors"
	"fmt"
	"sort"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
	"github.com/restdocgen/restdocgen/pkg/operation"
)

// Model is the renderable representation of a verified snippet. The single
// recognised key is "parameters", an ordered sequence of per-descriptor
// models in registry insertion order.
type Model map[string]any

// Parameters returns the ordered per-descriptor models, or nil if the model
// was not produced by CreateModel.
func (m Model) Parameters() []map[string]any {
	params, _ := m["parameters"].([]map[string]any)
	return params
}

// Option customises a ParametersSnippet.
type Option func(*ParametersSnippet)

// WithFailureHandler replaces the default fail-fast discrepancy policy.
func WithFailureHandler(handler FailureHandler) Option {
	return func(s *ParametersSnippet) {
		s.handler = handler
	}
}

// ParametersSnippet verifies declared parameter descriptors against a
// captured interaction and builds the template model. Construction validates
// the descriptors; the resulting snippet is immutable.
type ParametersSnippet struct {
	registry  *descriptor.Registry
	extractor operation.Extractor
	handler   FailureHandler
}

// New builds a ParametersSnippet over the given descriptors. The extractor
// supplies the actual parameter names for each interaction. Descriptors with
// a blank name or description fail construction with an
// *descriptor.InvalidDescriptorError.
func New(descriptors []descriptor.Descriptor, extractor operation.Extractor, options ...Option) (*ParametersSnippet, error) {
	if extractor == nil {
		return nil, errors.New("snippet: extractor is required")
	}
	registry, err := descriptor.NewRegistry(descriptors)
	if err != nil {
		return nil, err
	}

	s := &ParametersSnippet{
		registry:  registry,
		extractor: extractor,
		handler:   FailFast(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.handler == nil {
		s.handler = FailFast()
	}
	return s, nil
}

// Registry exposes the descriptor registry for collaborators that need the
// expected-name set or drive their own model building.
func (s *ParametersSnippet) Registry() *descriptor.Registry {
	return s.registry
}

// CreateModel verifies the interaction's parameters against the registry and,
// if the failure handler does not abort, returns the ordered snippet model.
func (s *ParametersSnippet) CreateModel(op operation.Operation) (Model, error) {
	if err := s.verify(op); err != nil {
		return nil, err
	}

	parameters := make([]map[string]any, 0, s.registry.Len())
	for _, d := range s.registry.Descriptors() {
		parameters = append(parameters, d.ToModel())
	}
	return Model{"parameters": parameters}, nil
}

// verify computes both set differences fresh and dispatches any discrepancy
// to the failure handler. A handler returning nil lets the caller continue.
func (s *ParametersSnippet) verify(op operation.Operation) error {
	actual, err := s.extractor.Extract(op)
	if err != nil {
		return fmt.Errorf("snippet: extract actual parameters: %w", err)
	}
	expected := s.registry.NameSet()

	undocumented := difference(actual, expected)
	missing := difference(expected, actual)

	if len(undocumented) > 0 || len(missing) > 0 {
		return s.handler.VerificationFailed(undocumented, missing)
	}

	// Both differences are empty, so the sets must be equal. A violation
	// indicates a defect in the difference logic, not bad input.
	if !setsEqual(actual, expected) {
		return &InternalConsistencyError{
			Actual:   sortedNames(actual),
			Expected: sortedNames(expected),
		}
	}
	return nil
}

// difference returns a−b, sorted for deterministic reporting.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

func sortedNames(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
