package descriptor

import "fmt"

// Registry is an insertion-ordered mapping from parameter name to Descriptor.
// A duplicate name overwrites the stored value but keeps the position of the
// name's first occurrence, matching insertion-ordered-map replace semantics.
// Registries are immutable after construction.
type Registry struct {
	names  []string
	byName map[string]Descriptor
}

// NewRegistry validates each descriptor in order and builds the registry.
// The first invalid descriptor aborts construction with an
// *InvalidDescriptorError carrying its position.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Descriptor, len(descriptors)),
	}
	for i, d := range descriptors {
		if err := d.Validate(); err != nil {
			if invalid, ok := err.(*InvalidDescriptorError); ok {
				invalid.Index = i
				return nil, invalid
			}
			return nil, fmt.Errorf("descriptor: descriptor %d: %w", i, err)
		}
		if _, exists := r.byName[d.Name]; !exists {
			r.names = append(r.names, d.Name)
		}
		r.byName[d.Name] = d
	}
	return r, nil
}

// MustNewRegistry panics when construction fails. Useful for fixtures/tests.
func MustNewRegistry(descriptors []Descriptor) *Registry {
	r, err := NewRegistry(descriptors)
	if err != nil {
		panic(err)
	}
	return r
}

// Len reports the number of uniquely named descriptors.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the parameter names in insertion order. The slice is a copy.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Descriptors returns the descriptors in insertion order. The slice is a copy.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

// NameSet returns the expected-name set used by verification. The map is a
// fresh copy on every call.
func (r *Registry) NameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.names))
	for _, name := range r.names {
		set[name] = struct{}{}
	}
	return set
}
