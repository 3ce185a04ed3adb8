package component

import "github.com/lixenwraith/vi-pong/vmath"

// BallComponent tracks the ball's sampled positions and direction signs
// Position mirrors the transform after each kinematics step, PreviousPosition lags it by one frame
type BallComponent struct {
	Position         vmath.Vec2
	PreviousPosition vmath.Vec2

	// XChange and YChange are direction multipliers, each -1 or +1
	XChange float64
	YChange float64
}

// NewBall returns a ball at the origin heading toward +X, +Y
func NewBall() BallComponent {
	return BallComponent{XChange: 1, YChange: 1}
}
