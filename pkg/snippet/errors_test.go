package snippet_test

import (
	"strings"
	"testing"

	"github.com/restdocgen/restdocgen/pkg/snippet"
)

func TestVerificationError_NamesBothSets(t *testing.T) {
	err := &snippet.VerificationError{
		Undocumented: []string{"filter", "sort"},
		Missing:      []string{"size"},
	}

	message := err.Error()
	for _, want := range []string{"undocumented parameters [filter, sort]", "missing parameters [size]"} {
		if !strings.Contains(message, want) {
			t.Fatalf("message %q missing %q", message, want)
		}
	}
}

func TestVerificationError_SingleSet(t *testing.T) {
	err := &snippet.VerificationError{Missing: []string{"size"}}
	message := err.Error()
	if strings.Contains(message, "undocumented") {
		t.Fatalf("message %q should not mention undocumented parameters", message)
	}
	if !strings.Contains(message, "missing parameters [size]") {
		t.Fatalf("message %q missing the missing set", message)
	}
}

func TestInternalConsistencyError_NamesBothSets(t *testing.T) {
	err := &snippet.InternalConsistencyError{
		Actual:   []string{"a"},
		Expected: []string{"b"},
	}
	message := err.Error()
	if !strings.Contains(message, "[a]") || !strings.Contains(message, "[b]") {
		t.Fatalf("message %q should name both sets", message)
	}
}
