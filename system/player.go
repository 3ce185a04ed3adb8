package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// PlayerSystem moves the keyboard paddle vertically
// Walls touching the paddle's top or bottom edge suppress movement in that direction
type PlayerSystem struct {
	engine.SystemBase
	guard invariantGuard

	statBlocked *atomic.Int64
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		SystemBase: engine.NewSystemBase(world),
		guard:      newInvariantGuard("player", world),
	}
	s.statBlocked = s.Resource.Status.Ints.Get(status.KeyPlayerBlocked)
	return s
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update() {
	input := s.Resource.Input
	if !input.Up && !input.Down {
		return
	}

	e, err := engine.Single(s.World, s.Component.Player, s.Component.Transform)
	if err != nil {
		s.guard.report("player", err)
		return
	}

	cfg := s.Resource.Config.Paddle
	up, down := cfg.Step, cfg.Step

	tr, _ := s.Component.Transform.Get(e)
	if cfg.WallClamp {
		blockedUp, blockedDown := s.wallContact(&tr)
		if blockedUp && input.Up {
			up = 0
			s.statBlocked.Add(1)
		}
		if blockedDown && input.Down {
			down = 0
			s.statBlocked.Add(1)
		}
	}

	if input.Up {
		tr.Translation.Y += up
	}
	if input.Down {
		tr.Translation.Y -= down
	}
	s.Component.Transform.Set(e, tr)
}

// wallContact reports walls straddling the paddle's top and bottom edges
func (s *PlayerSystem) wallContact(paddle *component.TransformComponent) (top, bottom bool) {
	walls := s.World.Query().
		With(s.Component.Wall).
		With(s.Component.Transform).
		Execute()

	for _, w := range walls {
		wt, ok := s.Component.Transform.Get(w)
		if !ok {
			continue
		}
		side, hit := vmath.Overlap(wt.Translation, wt.Scale, paddle.Translation, paddle.Scale)
		if !hit {
			continue
		}
		switch side {
		case vmath.SideTop:
			top = true
		case vmath.SideBottom:
			bottom = true
		}
	}
	return top, bottom
}
