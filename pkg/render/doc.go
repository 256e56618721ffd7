// Package render turns verified snippet models into documentation output.
// Renderers are registered by format name in a concurrency-safe Registry; the
// built-in asciidoctor and markdown renderers execute embedded pongo2
// templates, and callers can override templates or register additional
// formats without touching the verification core.
package render
