package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// CollisionSystem bounces the ball off every collider it overlaps
// Each overlap flips a direction multiplier and, with notify on, emits EventBallCollision
// Overlaps are processed independently and the ball is never pushed out
type CollisionSystem struct {
	engine.SystemBase
	guard invariantGuard

	notify bool
	inside config.InsidePolicy
	debug  bool

	statCollisions *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
		guard:      newInvariantGuard("collision", world),
	}
	cfg := s.Resource.Config
	s.notify = cfg.Collision.Notify
	s.inside = cfg.Collision.Inside
	s.debug = cfg.Log.Debug
	s.statCollisions = s.Resource.Status.Ints.Get(status.KeyBallCollisions)
	return s
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update() {
	e, err := engine.Single(s.World, s.Component.Ball, s.Component.Transform)
	if err != nil {
		s.guard.report("ball", err)
		return
	}
	ballTr, _ := s.Component.Transform.Get(e)

	colliders := s.World.Query().
		With(s.Component.Collider).
		With(s.Component.Transform).
		Execute()

	for _, c := range colliders {
		ct, ok := s.Component.Transform.Get(c)
		if !ok {
			continue
		}
		side, hit := vmath.Overlap(ballTr.Translation, ballTr.Scale, ct.Translation, ct.Scale)
		if !hit {
			continue
		}

		s.Component.Ball.Update(e, func(ball *component.BallComponent) {
			Resolve(ball, side, s.inside)
		})
		s.statCollisions.Add(1)

		if s.debug {
			log.Printf("[collision] frame=%d collider=%d side=%s", s.World.FrameNumber(), c, side)
		}
		if s.notify {
			s.World.PushEvent(event.EventBallCollision, &event.BallCollisionPayload{
				Collider: c,
				Side:     side,
			})
		}
	}
}

// Resolve flips the ball's direction for a struck side
// Inside follows policy; SideNone leaves the ball unchanged
func Resolve(ball *component.BallComponent, side vmath.Side, policy config.InsidePolicy) {
	switch {
	case side.Horizontal():
		ball.XChange = -ball.XChange
	case side.Vertical():
		ball.YChange = -ball.YChange
	case side == vmath.SideInside:
		switch policy {
		case config.InsideFlipY:
			ball.YChange = -ball.YChange
		case config.InsideFlipBoth:
			ball.XChange = -ball.XChange
			ball.YChange = -ball.YChange
		default:
			ball.XChange = -ball.XChange
		}
	}
}
