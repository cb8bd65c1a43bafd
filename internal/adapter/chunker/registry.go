package chunker

import (
	"fmt"
	"sort"

	"nlpwalk/internal/port"
)

// Registry holds compiled grammars by name.
type Registry struct {
	grammars map[string]*Grammar
	def      string
}

// NewRegistry compiles each grammar text. The first name in order becomes
// the default.
func NewRegistry(order []string, texts map[string]string) (*Registry, error) {
	r := &Registry{grammars: make(map[string]*Grammar, len(texts))}
	for _, name := range order {
		text, ok := texts[name]
		if !ok {
			return nil, fmt.Errorf("grammar %q has no rules", name)
		}
		if err := r.Register(name, text); err != nil {
			return nil, err
		}
	}
	if len(r.grammars) == 0 {
		if err := r.Register("default", DefaultGrammar); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(name, text string) error {
	g, err := ParseGrammar(name, text)
	if err != nil {
		return fmt.Errorf("grammar %q: %w", name, err)
	}
	if r.def == "" {
		r.def = name
	}
	r.grammars[name] = g
	return nil
}

// Get returns the named grammar; an empty name selects the default.
func (r *Registry) Get(name string) (*Grammar, error) {
	if name == "" {
		name = r.def
	}
	g, ok := r.grammars[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar: %s", name)
	}
	return g, nil
}

func (r *Registry) Default() string {
	return r.def
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.grammars))
	for n := range r.grammars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Chunker returns the named grammar as a port.Chunker.
func (r *Registry) Chunker(name string) (port.Chunker, error) {
	return r.Get(name)
}
