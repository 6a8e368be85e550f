package goshape

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named schemas. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]Schema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{schemas: map[string]Schema{}} }

// Register adds s under name. Registering the same name twice is an error.
func (r *Registry) Register(name string, s Schema) error {
	if name == "" {
		return fmt.Errorf("goshape: register: empty schema name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[name]; ok {
		return fmt.Errorf("goshape: register: schema %q already registered", name)
	}
	r.schemas[name] = s
	return nil
}

// MustRegister is Register that panics on error, for package-level setup.
func (r *Registry) MustRegister(name string, s Schema) {
	if err := r.Register(name, s); err != nil {
		panic(err)
	}
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
