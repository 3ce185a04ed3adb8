package component

import "github.com/lixenwraith/vi-pong/vmath"

// TransformComponent places an entity in world space
// Scale is the full box size used for collision and drawing
type TransformComponent struct {
	Translation vmath.Vec2
	Scale       vmath.Vec2
}
