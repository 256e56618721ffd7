package loader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/restdocgen/restdocgen/internal/openapi/loader"
	pkgopenapi "github.com/restdocgen/restdocgen/pkg/openapi"
	"github.com/restdocgen/restdocgen/pkg/testsupport"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(path, []byte(`{"openapi":"3.0.3"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(pkgopenapi.NewLoaderOptions())
	doc, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatal("expected document payload")
	}
}

func TestLoad_FromFS(t *testing.T) {
	filesystem := fstest.MapFS{
		"specs/users.json": &fstest.MapFile{Data: []byte(`{"openapi":"3.0.3"}`)},
	}

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(filesystem)))
	doc, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromFS("specs/users.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "specs/users.json" {
		t.Fatalf("location = %q", doc.Location())
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromURL("http://localhost/spec.json")); err == nil {
		t.Fatal("expected http sources to be disabled by default")
	}
}

func TestLoad_HTTPFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"openapi":"3.0.3"}`))
	}))
	defer server.Close()

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(true)))
	doc, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatal("expected document payload")
	}
}

func TestLoad_RejectsNonOpenAPIPayload(t *testing.T) {
	filesystem := fstest.MapFS{
		"notes.txt": &fstest.MapFile{Data: []byte("not a spec at all")},
	}

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(filesystem)))
	_, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromFS("notes.txt"))
	if err == nil || !strings.Contains(err.Error(), "openapi or swagger version") {
		t.Fatalf("err = %v, want version marker rejection", err)
	}
}

func TestLoad_RejectsFormatMismatch(t *testing.T) {
	filesystem := fstest.MapFS{
		"spec.json": &fstest.MapFile{Data: []byte("openapi: 3.0.3\n")},
	}

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(filesystem)))
	_, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromFS("spec.json"))
	if err == nil || !strings.Contains(err.Error(), "extension says JSON") {
		t.Fatalf("err = %v, want format mismatch rejection", err)
	}
}

func TestLoad_RejectsUnsupportedContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte(`{"openapi":"3.0.3"}`))
	}))
	defer server.Close()

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(true)))
	_, err := l.Load(testsupport.Context(), pkgopenapi.SourceFromURL(server.URL))
	if err == nil || !strings.Contains(err.Error(), "unsupported content type") {
		t.Fatalf("err = %v, want content type rejection", err)
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(testsupport.Context(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
