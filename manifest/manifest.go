package manifest

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/registry"
	"github.com/lixenwraith/vi-pong/system"
)

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	registry.RegisterSystem("player", func(w *engine.World) engine.System {
		return system.NewPlayerSystem(w)
	})
	registry.RegisterSystem("ball", func(w *engine.World) engine.System {
		return system.NewBallSystem(w)
	})
	registry.RegisterSystem("collision", func(w *engine.World) engine.System {
		return system.NewCollisionSystem(w)
	})
	registry.RegisterSystem("bounds", func(w *engine.World) engine.System {
		return system.NewBoundsSystem(w)
	})
	registry.RegisterSystem("opponent", func(w *engine.World) engine.System {
		return system.NewOpponentSystem(w)
	})
}

// ActiveSystems returns the systems to instantiate for cfg
// Run order comes from system priorities, this order only fixes handler registration
func ActiveSystems(cfg config.Config) []string {
	names := []string{"player", "ball", "collision"}
	if cfg.Ball.Respawn {
		names = append(names, "bounds")
	}
	if cfg.Opponent.Enabled {
		names = append(names, "opponent")
	}
	return names
}

// Game is a fully wired world ready to tick
type Game struct {
	World     *engine.World
	Scheduler *engine.ClockScheduler
	Entities  Entities

	cfg config.Config
}

// Build creates the world for cfg, spawns the board and wires active systems
func Build(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	RegisterSystems()

	world := engine.NewWorld(cfg)
	scheduler := engine.NewClockScheduler(world, cfg.Game.Tick.Duration)
	entities := Spawn(world, cfg)

	for _, name := range ActiveSystems(cfg) {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return nil, fmt.Errorf("system %q not registered", name)
		}
		sys := factory(world)
		world.AddSystem(sys)

		if handler, ok := sys.(event.Handler[*engine.World]); ok {
			scheduler.RegisterEventHandler(handler)
		}
	}

	if cfg.Collision.Notify && !scheduler.Router().HasHandlers(event.EventBallCollision) {
		log.Printf("[manifest] collision notifications enabled with no handler")
	}

	return &Game{
		World:     world,
		Scheduler: scheduler,
		Entities:  entities,
		cfg:       cfg,
	}, nil
}

// Restart respawns the board in place; systems, handlers and metrics are kept
// Must not run concurrently with Tick
func (g *Game) Restart() {
	dropped := g.World.EventQueue().Discard()
	g.World.Clear()
	g.Entities = Spawn(g.World, g.cfg)
	log.Printf("[manifest] restart at frame %d, %d pending events discarded", g.World.FrameNumber(), dropped)
}
