package engine

import "github.com/lixenwraith/vi-pong/component"

// ComponentStore holds the typed store of every component kind
// Systems copy it once at construction; the pointers stay valid for the world's lifetime
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Ball      *Store[component.BallComponent]
	Player    *Store[component.PlayerComponent]
	Opponent  *Store[component.OpponentComponent]
	Wall      *Store[component.WallComponent]
	Collider  *Store[component.ColliderComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Ball:      NewStore[component.BallComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Opponent:  NewStore[component.OpponentComponent](),
		Wall:      NewStore[component.WallComponent](),
		Collider:  NewStore[component.ColliderComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Transform, c.Ball, c.Player, c.Opponent, c.Wall, c.Collider}
}
