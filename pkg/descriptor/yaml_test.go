package descriptor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
)

func TestParseYAML(t *testing.T) {
	payload := []byte(`
parameters:
  - name: page
    description: Page number
  - name: size
    description: Page size
    optional: true
    type: integer
`)

	descriptors, err := descriptor.ParseYAML(payload)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}

	want := []descriptor.Descriptor{
		{Name: "page", Description: "Page number"},
		{Name: "size", Description: "Page size", Optional: true, Type: "integer"},
	}
	if diff := cmp.Diff(want, descriptors); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_EmptyPayload(t *testing.T) {
	if _, err := descriptor.ParseYAML(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestParseYAML_NoParameters(t *testing.T) {
	if _, err := descriptor.ParseYAML([]byte("parameters: []")); err == nil {
		t.Fatal("expected error for declaration without parameters")
	}
}

func TestParseYAML_ValidationDeferredToRegistry(t *testing.T) {
	payload := []byte(`
parameters:
  - name: page
    description: ""
`)
	descriptors, err := descriptor.ParseYAML(payload)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if _, err := descriptor.NewRegistry(descriptors); err == nil {
		t.Fatal("expected registry construction to reject blank description")
	}
}
