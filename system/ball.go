package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BallSystem advances the ball by its constant speed once per tick
type BallSystem struct {
	engine.SystemBase
	guard invariantGuard

	speed vmath.Vec2
}

func NewBallSystem(world *engine.World) engine.System {
	s := &BallSystem{
		SystemBase: engine.NewSystemBase(world),
		guard:      newInvariantGuard("ball", world),
	}
	s.speed = s.Resource.Config.BallSpeed()
	return s
}

func (s *BallSystem) Name() string { return "ball" }

func (s *BallSystem) Priority() int { return parameter.PriorityBall }

func (s *BallSystem) Update() {
	e, err := engine.Single(s.World, s.Component.Ball, s.Component.Transform)
	if err != nil {
		s.guard.report("ball", err)
		return
	}

	tr, _ := s.Component.Transform.Get(e)
	s.Component.Ball.Update(e, func(ball *component.BallComponent) {
		Advance(ball, &tr, s.speed)
	})
	s.Component.Transform.Set(e, tr)
}

// Advance records the previous sample, moves the transform by speed scaled by the
// direction multipliers and samples the new position
func Advance(ball *component.BallComponent, tr *component.TransformComponent, speed vmath.Vec2) {
	ball.PreviousPosition = ball.Position
	tr.Translation.X += speed.X * ball.XChange
	tr.Translation.Y += speed.Y * ball.YChange
	ball.Position = tr.Translation
}
