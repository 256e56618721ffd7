package openapi

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// DocumentFormat is the serialization a source's location hints at. The
// loader uses it to reject payloads whose shape contradicts the extension.
type DocumentFormat string

const (
	DocumentFormatJSON    DocumentFormat = "json"
	DocumentFormatYAML    DocumentFormat = "yaml"
	DocumentFormatUnknown DocumentFormat = ""
)

// Source identifies where an OpenAPI document lives so loaders can operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
	Format() DocumentFormat
}

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

func (s source) Format() DocumentFormat {
	location := s.location
	if s.kind == SourceKindURL {
		if i := strings.IndexAny(location, "?#"); i >= 0 {
			location = location[:i]
		}
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".json":
		return DocumentFormatJSON
	case ".yaml", ".yml":
		return DocumentFormatYAML
	default:
		return DocumentFormatUnknown
	}
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(p string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(p)}
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
