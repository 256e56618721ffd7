package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplates exposes the embedded template bundle so callers can extend
// or inspect the built-in parameter snippet templates.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to raw FS so templates stay usable.
		return embeddedTemplates
	}
	return sub
}
