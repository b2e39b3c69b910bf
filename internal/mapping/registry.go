package mapping

import (
	"errors"
	"fmt"
)

// Registry maps ids to units built earlier in the same run.
// It is not safe for concurrent use.
type Registry struct {
	units map[string]*Unit
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]*Unit)}
}

// Get returns the unit registered under id.
func (r *Registry) Get(id string) (*Unit, bool) {
	u, ok := r.units[id]
	return u, ok
}

// Require returns the unit registered under id, or a *MissingMappingError.
func (r *Registry) Require(id string) (*Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, &MissingMappingError{ID: id}
	}

	return u, nil
}

// Put registers u under id. Ids are unique within a registry.
func (r *Registry) Put(id string, u *Unit) error {
	if id == "" {
		return errors.New("mapping id must not be empty")
	}

	if u == nil {
		return fmt.Errorf("nil mapping for id %q", id)
	}

	if _, ok := r.units[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMapping, id)
	}

	r.units[id] = u
	r.order = append(r.order, id)

	return nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}
