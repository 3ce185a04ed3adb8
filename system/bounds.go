package system

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// BoundsSystem serves the ball again from the origin once it leaves the board horizontally
// The serve reverses the ball's horizontal direction
type BoundsSystem struct {
	engine.SystemBase
	guard invariantGuard

	halfWidth float64

	statRespawns *atomic.Int64
}

func NewBoundsSystem(world *engine.World) engine.System {
	s := &BoundsSystem{
		SystemBase: engine.NewSystemBase(world),
		guard:      newInvariantGuard("bounds", world),
	}
	s.halfWidth = s.Resource.Config.Board.HalfWidth
	s.statRespawns = s.Resource.Status.Ints.Get(status.KeyBallRespawns)
	return s
}

func (s *BoundsSystem) Name() string { return "bounds" }

func (s *BoundsSystem) Priority() int { return parameter.PriorityBounds }

func (s *BoundsSystem) Update() {
	e, err := engine.Single(s.World, s.Component.Ball, s.Component.Transform)
	if err != nil {
		s.guard.report("ball", err)
		return
	}

	tr, _ := s.Component.Transform.Get(e)
	if math.Abs(tr.Translation.X) <= s.halfWidth {
		return
	}

	log.Printf("[bounds] ball out at x=%.1f, respawning", tr.Translation.X)

	tr.Translation = vmath.Vec2{}
	s.Component.Transform.Set(e, tr)
	s.Component.Ball.Update(e, func(ball *component.BallComponent) {
		ball.Position = vmath.Vec2{}
		ball.PreviousPosition = vmath.Vec2{}
		ball.XChange = -ball.XChange
	})

	s.statRespawns.Add(1)
	s.World.PushEvent(event.EventBallRespawn, nil)
}
