package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/restdocgen/restdocgen/pkg/render"
)

func TestEngine_CustomTemplateDirectory(t *testing.T) {
	dir := t.TempDir()
	template := "Parameters: {% for parameter in parameters %}{{ parameter.name }} {% endfor %}({{ title }})"
	if err := os.WriteFile(filepath.Join(dir, "inline.tmpl"), []byte(template), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := render.NewEngine(
		render.WithBaseDir(dir),
		render.WithExtension("tmpl"),
		render.WithGlobalData(map[string]any{"title": "users"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	output, err := engine.Render("inline", map[string]any{
		"parameters": []map[string]any{{"name": "page"}, {"name": "size"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Parameters: page size (users)"
	if output != want {
		t.Fatalf("output = %q, want %q", output, want)
	}
}

func TestEngine_UnknownTemplate(t *testing.T) {
	engine, err := render.NewEngine()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.Render("nope", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
