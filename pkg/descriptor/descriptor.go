package descriptor

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor documents a single named request parameter. Name and Description
// are mandatory; everything else is optional metadata carried through to the
// rendered model untouched.
type Descriptor struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Optional    bool           `yaml:"optional,omitempty" json:"optional,omitempty"`
	Type        string         `yaml:"type,omitempty" json:"type,omitempty"`
	Attributes  map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// New returns a Descriptor with the given name and description. Additional
// metadata is applied through options.
func New(name, description string, options ...Option) Descriptor {
	d := Descriptor{Name: name, Description: description}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&d)
	}
	return d
}

// Option mutates a Descriptor during construction.
type Option func(*Descriptor)

// WithOptional marks the parameter as optional in the rendered model.
func WithOptional() Option {
	return func(d *Descriptor) {
		d.Optional = true
	}
}

// WithType records a type hint (e.g. "integer") for template use.
func WithType(t string) Option {
	return func(d *Descriptor) {
		d.Type = t
	}
}

// WithAttribute attaches a custom attribute that templates can reference.
// Attribute keys never shadow the built-in model keys.
func WithAttribute(key string, value any) Option {
	return func(d *Descriptor) {
		if strings.TrimSpace(key) == "" {
			return
		}
		if d.Attributes == nil {
			d.Attributes = make(map[string]any)
		}
		d.Attributes[key] = value
	}
}

// InvalidDescriptorError reports a descriptor that failed construction-time
// validation. Index is the descriptor's position in the input sequence.
type InvalidDescriptorError struct {
	Index int
	Field string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("descriptor: descriptor %d has a blank %s", e.Index, e.Field)
}

// Validate checks the mandatory fields. Blank means empty or whitespace-only.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &InvalidDescriptorError{Field: "name"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &InvalidDescriptorError{Field: "description"}
	}
	return nil
}

// ToModel returns the serializable representation consumed by snippet
// templates. Custom attributes are merged in deterministic key order and
// cannot shadow the built-in keys.
func (d Descriptor) ToModel() map[string]any {
	model := map[string]any{
		"name":        d.Name,
		"description": d.Description,
		"optional":    d.Optional,
	}
	if d.Type != "" {
		model["type"] = d.Type
	}
	if len(d.Attributes) > 0 {
		keys := make([]string, 0, len(d.Attributes))
		for key := range d.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if _, exists := model[key]; exists {
				continue
			}
			model[key] = d.Attributes[key]
		}
	}
	return model
}
