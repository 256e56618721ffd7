package testsupport

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/restdocgen/restdocgen/pkg/operation"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CapturedOperation builds an Operation fixture from a raw request target
// such as "/users?page=2&size=10". Testing helpers panic on failure to keep
// contract tests concise.
func CapturedOperation(t *testing.T, name, method, target string) operation.Operation {
	t.Helper()

	parsed, err := url.Parse(target)
	if err != nil {
		t.Fatalf("parse request target: %v", err)
	}
	return operation.MustNew(name, operation.Request{
		Method: method,
		URL:    parsed,
		Header: make(http.Header),
	})
}

// CapturedFormOperation builds an Operation fixture carrying a url-encoded
// form body.
func CapturedFormOperation(t *testing.T, name, target, body string) operation.Operation {
	t.Helper()

	op := CapturedOperation(t, name, http.MethodPost, target)
	op.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	op.Request.Body = []byte(body)
	return op
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
