package manifest

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Entities lists the spawned board
type Entities struct {
	Player   core.Entity
	Opponent core.Entity
	Ball     core.Entity
	Walls    []core.Entity
}

// Spawn creates the paddles, the ball and, when enabled, the two walls
func Spawn(w *engine.World, cfg config.Config) Entities {
	var ents Entities
	paddle := vmath.V2(cfg.Paddle.Width, cfg.Paddle.Height)

	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Translation: vmath.V2(cfg.Paddle.PlayerX, 0),
		Scale:       paddle,
	})
	engine.With(eb, w.Components.Player, component.PlayerComponent{})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{})
	ents.Player = eb.Build()

	eb = w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Translation: vmath.V2(cfg.Paddle.OpponentX, 0),
		Scale:       paddle,
	})
	engine.With(eb, w.Components.Opponent, component.OpponentComponent{State: component.OpponentIdle})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{})
	ents.Opponent = eb.Build()

	eb = w.NewEntity()
	engine.With(eb, w.Components.Transform, component.TransformComponent{
		Scale: vmath.V2(cfg.Ball.Size, cfg.Ball.Size),
	})
	engine.With(eb, w.Components.Ball, component.NewBall())
	ents.Ball = eb.Build()

	if !cfg.Board.Walls {
		return ents
	}

	wall := vmath.V2(cfg.Board.WallWidth, cfg.Board.WallThickness)
	for _, y := range []float64{-cfg.Board.WallOffsetY, cfg.Board.WallOffsetY} {
		eb = w.NewEntity()
		engine.With(eb, w.Components.Transform, component.TransformComponent{
			Translation: vmath.V2(0, y),
			Scale:       wall,
		})
		engine.With(eb, w.Components.Wall, component.WallComponent{})
		engine.With(eb, w.Components.Collider, component.ColliderComponent{})
		ents.Walls = append(ents.Walls, eb.Build())
	}
	return ents
}
