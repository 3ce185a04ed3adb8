package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

type fixture struct {
	world    *engine.World
	player   core.Entity
	opponent core.Entity
	ball     core.Entity
	walls    []core.Entity
}

// newFixture lays out the board of the variant's defaults, systems are added by each test
func newFixture(t *testing.T, variant config.Variant) *fixture {
	t.Helper()
	w := engine.NewTestWorld(variant)
	cfg := engine.MustGetResource[*engine.ConfigResource](w.Resources).Config
	paddle := vmath.V2(cfg.Paddle.Width, cfg.Paddle.Height)

	f := &fixture{world: w}

	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Translation: vmath.V2(cfg.Paddle.PlayerX, 0), Scale: paddle})
	engine.With(eb, w.Components.Player, component.PlayerComponent{})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{})
	f.player = eb.Build()

	eb = w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Translation: vmath.V2(cfg.Paddle.OpponentX, 0), Scale: paddle})
	engine.With(eb, w.Components.Opponent, component.OpponentComponent{State: component.OpponentIdle})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{})
	f.opponent = eb.Build()

	eb = w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{Scale: vmath.V2(cfg.Ball.Size, cfg.Ball.Size)})
	engine.With(eb, w.Components.Ball, component.NewBall())
	f.ball = eb.Build()

	if cfg.Board.Walls {
		for _, y := range []float64{-cfg.Board.WallOffsetY, cfg.Board.WallOffsetY} {
			eb = w.NewEntity()
			engine.With(eb, w.Components.Transform, component.TransformComponent{
				Translation: vmath.V2(0, y),
				Scale:       vmath.V2(cfg.Board.WallWidth, cfg.Board.WallThickness),
			})
			engine.With(eb, w.Components.Wall, component.WallComponent{})
			engine.With(eb, w.Components.Collider, component.ColliderComponent{})
			f.walls = append(f.walls, eb.Build())
		}
	}
	return f
}

func (f *fixture) transform(e core.Entity) component.TransformComponent {
	tr, _ := f.world.Components.Transform.Get(e)
	return tr
}

func (f *fixture) place(e core.Entity, x, y float64) {
	f.world.Components.Transform.Update(e, func(tr *component.TransformComponent) {
		tr.Translation = vmath.V2(x, y)
	})
}

func (f *fixture) ballState() component.BallComponent {
	b, _ := f.world.Components.Ball.Get(f.ball)
	return b
}

func (f *fixture) opponentState() component.OpponentState {
	o, _ := f.world.Components.Opponent.Get(f.opponent)
	return o.State
}

func (f *fixture) input() *engine.InputResource {
	return engine.MustGetResource[*engine.InputResource](f.world.Resources)
}

func (f *fixture) stat(key string) int64 {
	return engine.MustGetResource[*status.Registry](f.world.Resources).Int(key)
}

// returnsWithin fails the test when fn blocks past d
func returnsWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("call did not return within %s", d)
	}
}
