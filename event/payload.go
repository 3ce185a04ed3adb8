package event

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallCollisionPayload describes one ball-vs-collider overlap
// Consumers that only need the signal may ignore it
type BallCollisionPayload struct {
	Collider core.Entity
	Side     vmath.Side
}
