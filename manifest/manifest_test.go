package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

func TestActiveSystems(t *testing.T) {
	assert.Equal(t, []string{"player", "ball", "collision", "bounds", "opponent"},
		ActiveSystems(config.Default(config.VariantClassic)))
	assert.Equal(t, []string{"player", "ball", "collision", "bounds"},
		ActiveSystems(config.Default(config.VariantSimple)))

	cfg := config.Default(config.VariantClassic)
	cfg.Ball.Respawn = false
	assert.NotContains(t, ActiveSystems(cfg), "bounds")
}

func TestBuildClassic(t *testing.T) {
	g, err := Build(config.Default(config.VariantClassic))
	require.NoError(t, err)

	w := g.World
	assert.Equal(t, 5, w.Components.Transform.Count())
	assert.Len(t, g.Entities.Walls, 2)
	assert.Equal(t, 4, w.Components.Collider.Count(), "paddles and walls collide, the ball does not")

	priorities := make([]int, 0, 5)
	for _, s := range w.Systems() {
		priorities = append(priorities, s.Priority())
	}
	assert.Equal(t, []int{10, 20, 30, 35, 40}, priorities)
	assert.True(t, g.Scheduler.Router().HasHandlers(event.EventBallCollision), "opponent handles ball collisions")
}

func TestBuildSimple(t *testing.T) {
	g, err := Build(config.Default(config.VariantSimple))
	require.NoError(t, err)

	assert.Empty(t, g.Entities.Walls)
	assert.Zero(t, g.World.Components.Wall.Count())
	assert.Len(t, g.World.Systems(), 4)
	assert.False(t, g.Scheduler.Router().HasHandlers(event.EventBallCollision))
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default(config.VariantClassic)
	cfg.Paddle.Height = 0
	_, err := Build(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestClassicRally runs the full pipeline with the player parked in the ball's path
func TestClassicRally(t *testing.T) {
	g, err := Build(config.Default(config.VariantClassic))
	require.NoError(t, err)
	w := g.World

	// First pass reaches the player's x at y=94
	w.Components.Transform.Update(g.Entities.Player, func(tr *component.TransformComponent) {
		tr.Translation.Y = 94
	})

	for i := 0; i < 2000; i++ {
		g.Scheduler.Tick()

		ball, _ := w.Components.Ball.Get(g.Entities.Ball)
		ballTr, _ := w.Components.Transform.Get(g.Entities.Ball)
		require.Equal(t, ballTr.Translation, ball.Position, "frame %d", w.FrameNumber())

		oppTr, _ := w.Components.Transform.Get(g.Entities.Opponent)
		require.LessOrEqual(t, oppTr.Translation.Y, 250.0, "frame %d", w.FrameNumber())
		require.GreaterOrEqual(t, oppTr.Translation.Y, -250.0, "frame %d", w.FrameNumber())
		playerTr, _ := w.Components.Transform.Get(g.Entities.Player)
		require.Equal(t, 400.0, playerTr.Translation.X)
	}

	reg := engine.MustGetResource[*status.Registry](w.Resources)
	assert.Equal(t, int64(2000), reg.Int(status.KeyTicks))
	assert.GreaterOrEqual(t, reg.Int(status.KeyBallCollisions), int64(2))
	assert.GreaterOrEqual(t, reg.Int(status.KeyOpponentChases), int64(1))
	assert.Zero(t, reg.Int(status.KeyInvariantErrors))

	oppTr, _ := w.Components.Transform.Get(g.Entities.Opponent)
	assert.NotEqual(t, 0.0, oppTr.Translation.Y, "opponent moved after the first return")
}

// TestClassicHeldUp holds Up through the wired pipeline until the paddle rests against the top wall
func TestClassicHeldUp(t *testing.T) {
	g, err := Build(config.Default(config.VariantClassic))
	require.NoError(t, err)
	w := g.World
	engine.MustGetResource[*engine.InputResource](w.Resources).Up = true

	done := make(chan struct{})
	go func() {
		defer close(done)
		g.Scheduler.RunFrames(100)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticks with Up held did not complete")
	}

	playerTr, _ := w.Components.Transform.Get(g.Entities.Player)
	assert.Equal(t, 230.0, playerTr.Translation.Y, "first position overlapping the top wall")

	reg := engine.MustGetResource[*status.Registry](w.Resources)
	assert.Equal(t, int64(100), reg.Int(status.KeyTicks))
	assert.Equal(t, int64(100-23), reg.Int(status.KeyPlayerBlocked))
}

// TestRestart respawns the board mid-rally and keeps the pipeline running
func TestRestart(t *testing.T) {
	g, err := Build(config.Default(config.VariantClassic))
	require.NoError(t, err)
	w := g.World

	// Frame 94 is the first player hit in the parked rally
	w.Components.Transform.Update(g.Entities.Player, func(tr *component.TransformComponent) {
		tr.Translation.Y = 94
	})
	g.Scheduler.RunFrames(94)
	require.Positive(t, w.EventQueue().Len(), "collision pending for the next tick")

	g.Restart()

	assert.Zero(t, w.EventQueue().Len())
	assert.Equal(t, 5, w.Components.Transform.Count())
	assert.Equal(t, 4, w.Components.Collider.Count())
	assert.Equal(t, int64(94), w.FrameNumber(), "frame counter survives a restart")

	ball, _ := w.Components.Ball.Get(g.Entities.Ball)
	assert.Equal(t, component.NewBall(), ball)
	playerTr, _ := w.Components.Transform.Get(g.Entities.Player)
	assert.Equal(t, 0.0, playerTr.Translation.Y)
	opp, _ := w.Components.Opponent.Get(g.Entities.Opponent)
	assert.Equal(t, component.OpponentIdle, opp.State)

	g.Scheduler.RunFrames(10)
	ballTr, _ := w.Components.Transform.Get(g.Entities.Ball)
	assert.Equal(t, 40.0, ballTr.Translation.X)
	reg := engine.MustGetResource[*status.Registry](w.Resources)
	assert.Zero(t, reg.Int(status.KeyInvariantErrors))
	assert.False(t, reg.Bools.Get(status.KeyOpponentChasing).Load())
}

// TestSimpleRally verifies the static opponent and the horizontal ball
func TestSimpleRally(t *testing.T) {
	g, err := Build(config.Default(config.VariantSimple))
	require.NoError(t, err)
	w := g.World

	// Hits at frames 375 (player), 1125 (opponent) and 1875 (player)
	g.Scheduler.RunFrames(2000)

	reg := engine.MustGetResource[*status.Registry](w.Resources)
	assert.Equal(t, int64(3), reg.Int(status.KeyBallCollisions))
	assert.Zero(t, reg.Int(status.KeyBallRespawns))
	assert.Zero(t, w.EventQueue().Len(), "simple emits no notifications")

	ball, _ := w.Components.Ball.Get(g.Entities.Ball)
	assert.Equal(t, 0.0, ball.Position.Y)
	assert.Equal(t, 250.0, ball.Position.X)
	assert.Equal(t, -1.0, ball.XChange)

	oppTr, _ := w.Components.Transform.Get(g.Entities.Opponent)
	assert.Equal(t, 0.0, oppTr.Translation.Y)
}

// TestClassicRespawn verifies an unreturned ball is served again
func TestClassicRespawn(t *testing.T) {
	g, err := Build(config.Default(config.VariantClassic))
	require.NoError(t, err)

	// Ball passes the player above its paddle and leaves at x=504, frame 126
	g.Scheduler.RunFrames(126)

	reg := engine.MustGetResource[*status.Registry](g.World.Resources)
	assert.Equal(t, int64(1), reg.Int(status.KeyBallRespawns))
	assert.Zero(t, reg.Int(status.KeyBallCollisions))

	ball, _ := g.World.Components.Ball.Get(g.Entities.Ball)
	assert.Equal(t, -1.0, ball.XChange)
}
