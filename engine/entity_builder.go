package engine

import "github.com/lixenwraith/vi-pong/core"

// EntityBuilder reserves an entity ID upfront and collects components
// Components are written to their stores on Build()
//
// Example usage:
//
//	paddle := world.NewEntity()
//	With(paddle, world.Components.Transform, tr)
//	With(paddle, world.Components.Collider, component.ColliderComponent{})
//	e := paddle.Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func()
	built   bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T for the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.pending = append(eb.pending, func() { store.Set(e, component) })
	return eb
}

// Build commits all staged components and returns the entity
// Calling Build() again returns the same entity without re-adding components
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.pending {
		apply()
	}
	eb.pending = nil
	return eb.entity
}
