package descriptor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
)

func TestNewRegistry_PreservesInsertionOrder(t *testing.T) {
	registry, err := descriptor.NewRegistry([]descriptor.Descriptor{
		descriptor.New("page", "Page number"),
		descriptor.New("size", "Page size"),
		descriptor.New("sort", "Sort expression"),
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	want := []string{"page", "size", "sort"}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if registry.Len() != 3 {
		t.Fatalf("len = %d, want 3", registry.Len())
	}
}

func TestNewRegistry_DuplicateNameKeepsFirstPosition(t *testing.T) {
	registry, err := descriptor.NewRegistry([]descriptor.Descriptor{
		descriptor.New("a", "x"),
		descriptor.New("b", "between"),
		descriptor.New("a", "y"),
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	got, ok := registry.Get("a")
	if !ok {
		t.Fatal("descriptor a not found")
	}
	if got.Description != "y" {
		t.Fatalf("description = %q, want %q (last write wins)", got.Description, "y")
	}
}

func TestNewRegistry_InvalidDescriptorCarriesIndex(t *testing.T) {
	_, err := descriptor.NewRegistry([]descriptor.Descriptor{
		descriptor.New("page", "Page number"),
		descriptor.New("size", "  "),
	})
	if err == nil {
		t.Fatal("expected construction error")
	}

	var invalid *descriptor.InvalidDescriptorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDescriptorError, got %T", err)
	}
	if invalid.Index != 1 {
		t.Fatalf("index = %d, want 1", invalid.Index)
	}
	if invalid.Field != "description" {
		t.Fatalf("field = %q, want description", invalid.Field)
	}
}

func TestRegistry_NameSetIsFreshCopy(t *testing.T) {
	registry := descriptor.MustNewRegistry([]descriptor.Descriptor{
		descriptor.New("page", "Page number"),
	})

	set := registry.NameSet()
	delete(set, "page")

	if _, ok := registry.NameSet()["page"]; !ok {
		t.Fatal("mutating a returned name set must not affect the registry")
	}
}

func TestRegistry_DescriptorsInOrder(t *testing.T) {
	registry := descriptor.MustNewRegistry([]descriptor.Descriptor{
		descriptor.New("size", "Page size"),
		descriptor.New("page", "Page number"),
	})

	descriptors := registry.Descriptors()
	if len(descriptors) != 2 {
		t.Fatalf("len = %d, want 2", len(descriptors))
	}
	if descriptors[0].Name != "size" || descriptors[1].Name != "page" {
		t.Fatalf("order = [%s, %s], want [size, page]", descriptors[0].Name, descriptors[1].Name)
	}
}
