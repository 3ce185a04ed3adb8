package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/vi-pong/core"
)

var (
	ErrNoEntity         = errors.New("no entity matches query")
	ErrMultipleEntities = errors.New("more than one entity matches query")
)

// QueryBuilder finds entities present in every given store
// The query starts from the smallest store and filters through larger ones
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	colliders := world.Query().
//	    With(world.Components.Transform).
//	    With(world.Components.Collider).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities in all specified stores, ordered as in the smallest store
// Calling Execute() again returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// All() returns a copy, safe to filter in place
	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// Single executes the query and requires exactly one match
func (qb *QueryBuilder) Single() (core.Entity, error) {
	results := qb.Execute()
	switch len(results) {
	case 0:
		return core.NoEntity, ErrNoEntity
	case 1:
		return results[0], nil
	default:
		return core.NoEntity, fmt.Errorf("%w: %d matches", ErrMultipleEntities, len(results))
	}
}

// Single resolves the one entity present in every store
func Single(w *World, stores ...QueryableStore) (core.Entity, error) {
	qb := w.Query()
	for _, s := range stores {
		qb.With(s)
	}
	return qb.Single()
}
