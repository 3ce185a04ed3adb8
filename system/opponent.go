package system

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

// OpponentSystem drives the computer paddle
// Idle until a ball collision is dispatched, then steps toward the predicted
// ball height every tick until within the dead zone
type OpponentSystem struct {
	engine.SystemBase
	guard invariantGuard

	deadZone float64
	step     float64
	bound    float64

	statChasing *atomic.Bool
	statChases  *atomic.Int64
	statSkips   *atomic.Int64
	statPredict *status.AtomicFloat
}

// NewOpponentSystem returns the concrete type, the scheduler also registers it as an event handler
func NewOpponentSystem(world *engine.World) *OpponentSystem {
	s := &OpponentSystem{
		SystemBase: engine.NewSystemBase(world),
		guard:      newInvariantGuard("opponent", world),
	}
	cfg := s.Resource.Config.Opponent
	s.deadZone = cfg.DeadZone
	s.step = cfg.Step
	s.bound = cfg.Bound

	reg := s.Resource.Status
	s.statChasing = reg.Bools.Get(status.KeyOpponentChasing)
	s.statChases = reg.Ints.Get(status.KeyOpponentChases)
	s.statSkips = reg.Ints.Get(status.KeyOpponentSkips)
	s.statPredict = reg.Floats.Get(status.KeyOpponentPredict)
	return s
}

func (s *OpponentSystem) Name() string { return "opponent" }

func (s *OpponentSystem) Priority() int { return parameter.PriorityOpponent }

func (s *OpponentSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventBallCollision}
}

// HandleEvent starts a chase on every ball collision
func (s *OpponentSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	if ev.Type != event.EventBallCollision {
		return
	}

	e, err := engine.Single(world, s.Component.Opponent, s.Component.Transform)
	if err != nil {
		s.guard.report("opponent", err)
		return
	}

	s.Component.Opponent.Update(e, func(opp *component.OpponentComponent) {
		if opp.State == component.OpponentIdle {
			s.statChases.Add(1)
		}
		opp.State = component.OpponentChasing
	})
	s.statChasing.Store(true)
}

func (s *OpponentSystem) Update() {
	e, err := engine.Single(s.World, s.Component.Opponent, s.Component.Transform)
	if err != nil {
		s.guard.report("opponent", err)
		return
	}

	opp, _ := s.Component.Opponent.Get(e)
	if opp.GoalReached() {
		s.statChasing.Store(false)
		return
	}

	be, err := engine.Single(s.World, s.Component.Ball)
	if err != nil {
		s.guard.report("ball", err)
		return
	}
	ball, _ := s.Component.Ball.Get(be)

	tr, _ := s.Component.Transform.Get(e)
	prediction, err := Predict(ball, tr.Translation.X)
	if err != nil {
		// Hold position until the ball has two distinct samples
		s.statSkips.Add(1)
		return
	}
	s.statPredict.Set(prediction)

	y, reached := Chase(tr.Translation.Y, prediction, s.deadZone, s.step, s.bound)
	if reached {
		s.Component.Opponent.Update(e, func(opp *component.OpponentComponent) {
			opp.State = component.OpponentIdle
		})
		s.statChasing.Store(false)
		return
	}

	tr.Translation.Y = y
	s.Component.Transform.Set(e, tr)
}

// Predict extrapolates the ball's last displacement to the vertical line at x
func Predict(ball component.BallComponent, x float64) (float64, error) {
	line, err := vmath.FitLine(ball.PreviousPosition, ball.Position)
	if err != nil {
		return 0, fmt.Errorf("predict at x=%g: %w", x, err)
	}
	return line.At(x), nil
}

// Chase performs one opponent step from y toward target
// reached is true when y is within deadZone of target, y is then returned unchanged
// Otherwise y moves by step toward target and is clamped to [-bound, bound]
func Chase(y, target, deadZone, step, bound float64) (next float64, reached bool) {
	diff := y - target
	if math.Abs(diff) <= deadZone {
		return y, true
	}
	if diff > 0 {
		y -= step
	} else {
		y += step
	}
	return vmath.Clamp(y, -bound, bound), false
}
