package descriptor

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// declarationFile mirrors the on-disk layout of a descriptor declaration:
//
//	parameters:
//	  - name: page
//	    description: Page number
//	  - name: size
//	    description: Page size
//	    optional: true
type declarationFile struct {
	Parameters []Descriptor `yaml:"parameters"`
}

// ParseYAML decodes a descriptor declaration payload. Descriptor validation
// is left to NewRegistry so callers see the same errors regardless of how
// descriptors were produced.
func ParseYAML(data []byte) ([]Descriptor, error) {
	if len(data) == 0 {
		return nil, errors.New("descriptor: declaration payload is empty")
	}
	var decl declarationFile
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("descriptor: parse declaration: %w", err)
	}
	if len(decl.Parameters) == 0 {
		return nil, errors.New("descriptor: declaration does not define any parameters")
	}
	return decl.Parameters, nil
}

// LoadYAML reads a declaration file from disk and parses it.
func LoadYAML(path string) ([]Descriptor, error) {
	if path == "" {
		return nil, errors.New("descriptor: declaration path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("descriptor: read declaration: %w", err)
	}
	return ParseYAML(data)
}
