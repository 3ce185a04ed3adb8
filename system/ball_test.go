package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestAdvanceTwice(t *testing.T) {
	ball := component.NewBall()
	tr := component.TransformComponent{Scale: vmath.V2(1, 1)}
	speed := vmath.V2(4, 1)

	Advance(&ball, &tr, speed)
	assert.Equal(t, vmath.V2(0, 0), ball.PreviousPosition)
	assert.Equal(t, vmath.V2(4, 1), ball.Position)

	Advance(&ball, &tr, speed)
	assert.Equal(t, vmath.V2(8, 2), tr.Translation, "two steps cover twice the per-frame displacement")
	assert.Equal(t, tr.Translation, ball.Position)
	assert.Equal(t, vmath.V2(4, 1), ball.PreviousPosition, "previous lags by one frame")
}

func TestAdvanceHonoursDirection(t *testing.T) {
	ball := component.BallComponent{XChange: -1, YChange: 1}
	tr := component.TransformComponent{Translation: vmath.V2(10, 10)}

	Advance(&ball, &tr, vmath.V2(4, 1))
	assert.Equal(t, vmath.V2(6, 11), ball.Position)
}

func TestBallSystemUpdate(t *testing.T) {
	for _, tc := range []struct {
		variant config.Variant
		want    vmath.Vec2
	}{
		{config.VariantClassic, vmath.V2(12, 3)},
		{config.VariantSimple, vmath.V2(3, 0)},
	} {
		t.Run(string(tc.variant), func(t *testing.T) {
			f := newFixture(t, tc.variant)
			s := NewBallSystem(f.world)

			for i := 0; i < 3; i++ {
				s.Update()
			}

			assert.Equal(t, tc.want, f.transform(f.ball).Translation)
			assert.Equal(t, tc.want, f.ballState().Position)
		})
	}
}

func TestBallSystemMissingBall(t *testing.T) {
	f := newFixture(t, config.VariantClassic)
	f.world.DestroyEntity(f.ball)

	s := NewBallSystem(f.world)
	require.NotPanics(t, s.Update)
	assert.Equal(t, int64(1), f.stat(status.KeyInvariantErrors))
}
