package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/status"
)

func TestPlayerSystemMovement(t *testing.T) {
	tests := []struct {
		name     string
		up, down bool
		want     float64
	}{
		{"idle", false, false, 0},
		{"up", true, false, 10},
		{"down", false, true, -10},
		{"both", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.VariantClassic)
			in := f.input()
			in.Up, in.Down = tt.up, tt.down

			NewPlayerSystem(f.world).Update()

			tr := f.transform(f.player)
			assert.Equal(t, tt.want, tr.Translation.Y)
			assert.Equal(t, 400.0, tr.Translation.X, "paddle never moves horizontally")
		})
	}
}

// TestPlayerSystemWallClamp verifies the top wall straddling the paddle's top edge blocks only upward movement
func TestPlayerSystemWallClamp(t *testing.T) {
	f := newFixture(t, config.VariantClassic)
	// Paddle spans y 180..280, top wall 275..325
	f.place(f.player, 400, 230)
	s := NewPlayerSystem(f.world)

	f.input().Up = true
	s.Update()
	assert.Equal(t, 230.0, f.transform(f.player).Translation.Y)
	assert.Equal(t, int64(1), f.stat(status.KeyPlayerBlocked))

	in := f.input()
	in.Up, in.Down = false, true
	s.Update()
	assert.Equal(t, 220.0, f.transform(f.player).Translation.Y)
}

func TestPlayerSystemBottomWallClamp(t *testing.T) {
	f := newFixture(t, config.VariantClassic)
	f.place(f.player, 400, -230)

	f.input().Down = true
	NewPlayerSystem(f.world).Update()

	assert.Equal(t, -230.0, f.transform(f.player).Translation.Y)
}

func TestPlayerSystemSimpleUnclamped(t *testing.T) {
	f := newFixture(t, config.VariantSimple)
	f.place(f.player, 400, 230)

	f.input().Up = true
	NewPlayerSystem(f.world).Update()

	assert.Equal(t, 240.0, f.transform(f.player).Translation.Y)
	assert.Zero(t, f.stat(status.KeyPlayerBlocked))
}

func TestPlayerSystemMissingPlayer(t *testing.T) {
	f := newFixture(t, config.VariantClassic)
	f.world.DestroyEntity(f.player)
	s := NewPlayerSystem(f.world)

	s.Update()
	assert.Zero(t, f.stat(status.KeyInvariantErrors), "no input, no lookup")

	f.input().Up = true
	assert.NotPanics(t, s.Update)
	assert.Equal(t, int64(1), f.stat(status.KeyInvariantErrors))
}

// TestPlayerSystemHeldInputReturns verifies the wall lookup never runs under the transform store lock
func TestPlayerSystemHeldInputReturns(t *testing.T) {
	for _, dir := range []string{"up", "down"} {
		t.Run(dir, func(t *testing.T) {
			f := newFixture(t, config.VariantClassic)
			in := f.input()
			in.Up, in.Down = dir == "up", dir == "down"
			s := NewPlayerSystem(f.world)

			returnsWithin(t, 2*time.Second, func() {
				for i := 0; i < 50; i++ {
					s.Update()
				}
			})

			want := 230.0
			if dir == "down" {
				want = -230.0
			}
			assert.Equal(t, want, f.transform(f.player).Translation.Y)
			assert.Positive(t, f.stat(status.KeyPlayerBlocked))
		})
	}
}
