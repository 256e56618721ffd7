package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry resolves output format names to renderers. A renderer registers
// under its canonical Name() plus optional aliases, so CLI users can ask for
// "adoc" or "md" instead of the full format name.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Renderer
	aliases map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Renderer),
		aliases: make(map[string]string),
	}
}

// Register adds a renderer under its Name() and any aliases. Names and
// aliases share one namespace; reusing either returns an error.
func (r *Registry) Register(renderer Renderer, aliases ...string) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	for _, alias := range aliases {
		if alias == "" || r.taken(alias) {
			return fmt.Errorf("render: alias %q for renderer %q is unusable", alias, name)
		}
	}

	r.formats[name] = renderer
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
	return nil
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.formats[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer, aliases ...string) {
	if err := r.Register(renderer, aliases...); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by canonical name or alias.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.formats[r.resolve(name)]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found, known formats: %s",
			name, strings.Join(r.names(), ", "))
	}
	return renderer, nil
}

// Has reports whether a name or alias resolves to a renderer.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.formats[r.resolve(name)]
	return ok
}

// List returns the sorted canonical format names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.names()
}

func (r *Registry) resolve(name string) string {
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}
	return name
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with the built-in asciidoctor and
// markdown renderers under their usual short aliases.
func DefaultRegistry() (*Registry, error) {
	registry := NewRegistry()
	builtins := []struct {
		build   func(options ...EngineOption) (Renderer, error)
		aliases []string
	}{
		{NewAsciidoctor, []string{"adoc", "asciidoc"}},
		{NewMarkdown, []string{"md"}},
	}
	for _, builtin := range builtins {
		renderer, err := builtin.build()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(renderer, builtin.aliases...); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
