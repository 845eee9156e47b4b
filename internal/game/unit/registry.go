package unit

import (
	"fmt"
	"sort"
)

// Registry holds unit types indexed by ID.
type Registry struct {
	types map[string]*Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// NewRegistryFromTypes registers every type in types.
//
// Postcondition: Returns a populated Registry or an error on the first duplicate ID.
func NewRegistryFromTypes(types []*Type) (*Registry, error) {
	r := NewRegistry()
	for _, t := range types {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds t to the registry.
//
// Precondition: t must not be nil.
// Postcondition: Lookup(t.ID) returns t; returns error if t.ID already registered.
func (r *Registry) Register(t *Type) error {
	if _, exists := r.types[t.ID]; exists {
		return fmt.Errorf("unit: Registry.Register: type ID %q already registered", t.ID)
	}
	r.types[t.ID] = t
	return nil
}

// Lookup returns the type registered under id and whether it was found.
func (r *Registry) Lookup(id string) (*Type, bool) {
	t, ok := r.types[id]
	return t, ok
}

// MustLookup returns the type registered under id and panics when absent.
// Useful for fixtures whose IDs are known to exist.
func (r *Registry) MustLookup(id string) *Type {
	t, ok := r.types[id]
	if !ok {
		panic("unit: MustLookup: unknown type " + id)
	}
	return t
}

// All returns every registered type sorted by ID.
func (r *Registry) All() []*Type {
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.types) }
