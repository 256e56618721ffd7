package descriptor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
)

func TestDescriptor_Validate_BlankFields(t *testing.T) {
	cases := []struct {
		name       string
		descriptor descriptor.Descriptor
		wantField  string
	}{
		{"blank name", descriptor.New("", "Page number"), "name"},
		{"whitespace name", descriptor.New("   ", "Page number"), "name"},
		{"blank description", descriptor.New("page", ""), "description"},
		{"whitespace description", descriptor.New("page", "\t\n"), "description"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.descriptor.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invalid *descriptor.InvalidDescriptorError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidDescriptorError, got %T", err)
			}
			if invalid.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", invalid.Field, tc.wantField)
			}
		})
	}
}

func TestDescriptor_Validate_OK(t *testing.T) {
	if err := descriptor.New("page", "Page number").Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestDescriptor_ToModel(t *testing.T) {
	d := descriptor.New("size", "Page size",
		descriptor.WithOptional(),
		descriptor.WithType("integer"),
		descriptor.WithAttribute("constraints", "must be positive"),
	)

	want := map[string]any{
		"name":        "size",
		"description": "Page size",
		"optional":    true,
		"type":        "integer",
		"constraints": "must be positive",
	}
	if diff := cmp.Diff(want, d.ToModel()); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptor_ToModel_AttributesNeverShadowBuiltins(t *testing.T) {
	d := descriptor.New("page", "Page number",
		descriptor.WithAttribute("name", "shadowed"),
		descriptor.WithAttribute("description", "shadowed"),
	)

	model := d.ToModel()
	if model["name"] != "page" {
		t.Fatalf("name = %v, want page", model["name"])
	}
	if model["description"] != "Page number" {
		t.Fatalf("description = %v, want Page number", model["description"])
	}
}

func TestDescriptor_WithAttribute_IgnoresBlankKey(t *testing.T) {
	d := descriptor.New("page", "Page number", descriptor.WithAttribute("  ", "value"))
	if len(d.Attributes) != 0 {
		t.Fatalf("attributes = %v, want empty", d.Attributes)
	}
}
