package domain

import (
	"fmt"
	"pressure-lab/errors"

	"github.com/samber/lo"
)

type IRegistry interface {
	Units() []Unit
	Lookup(id string) (Unit, bool)
	Has(id string) bool
}

// Registry is an immutable, ordered table of units keyed by id.
type Registry struct {
	ordered []Unit
	byID    map[string]Unit
}

// NewRegistry checks the table once: ids must be unique and every factor positive and finite.
func NewRegistry(units ...Unit) (*Registry, error) {
	if duplicates := lo.FindDuplicatesBy(units, func(u Unit) string { return u.ID }); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrDuplicateUnit, duplicates[0].ID)
	}
	for _, u := range units {
		if !u.validFactor() {
			return nil, fmt.Errorf("%w: %s=%v", errors.ErrInvalidFactor, u.ID, u.FactorToBase)
		}
	}
	ordered := make([]Unit, len(units))
	copy(ordered, units)
	return &Registry{
		ordered: ordered,
		byID:    lo.KeyBy(ordered, func(u Unit) string { return u.ID }),
	}, nil
}

// MustRegistry is NewRegistry for tables known at compile time.
func MustRegistry(units ...Unit) *Registry {
	r, err := NewRegistry(units...)
	if err != nil {
		panic(err)
	}
	return r
}

// Units returns a copy so callers cannot reorder the registry.
func (r *Registry) Units() []Unit {
	units := make([]Unit, len(r.ordered))
	copy(units, r.ordered)
	return units
}

func (r *Registry) IDs() []string {
	return lo.Map(r.ordered, func(u Unit, _ int) string { return u.ID })
}

func (r *Registry) Lookup(id string) (Unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}
