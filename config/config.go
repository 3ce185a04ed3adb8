// Package config loads game settings from TOML, layered over per-variant defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

var ErrInvalidConfig = errors.New("invalid config")

// Variant selects the rule set
type Variant string

const (
	// VariantClassic has walls, wall-clamped player, reactive opponent and collision events
	VariantClassic Variant = "classic"
	// VariantSimple has no walls, horizontal-only ball and a static opponent
	VariantSimple Variant = "simple"
)

// InsidePolicy decides which direction sign flips when the ball is fully inside a collider on the reported axis
type InsidePolicy string

const (
	InsideFlipX    InsidePolicy = "flip-x"
	InsideFlipY    InsidePolicy = "flip-y"
	InsideFlipBoth InsidePolicy = "flip-both"
)

// Duration decodes TOML strings such as "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Variant Variant `toml:"variant"`

	Game      GameConfig      `toml:"game"`
	Board     BoardConfig     `toml:"board"`
	Ball      BallConfig      `toml:"ball"`
	Paddle    PaddleConfig    `toml:"paddle"`
	Opponent  OpponentConfig  `toml:"opponent"`
	Collision CollisionConfig `toml:"collision"`
	Input     InputConfig     `toml:"input"`
	Log       LogConfig       `toml:"log"`
}

type GameConfig struct {
	Tick Duration `toml:"tick"`
}

type BoardConfig struct {
	HalfWidth     float64 `toml:"half_width"`
	HalfHeight    float64 `toml:"half_height"`
	Walls         bool    `toml:"walls"`
	WallOffsetY   float64 `toml:"wall_offset_y"`
	WallWidth     float64 `toml:"wall_width"`
	WallThickness float64 `toml:"wall_thickness"`
}

type BallConfig struct {
	SpeedX  float64 `toml:"speed_x"`
	SpeedY  float64 `toml:"speed_y"`
	Size    float64 `toml:"size"`
	Respawn bool    `toml:"respawn"`
}

type PaddleConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	PlayerX   float64 `toml:"player_x"`
	OpponentX float64 `toml:"opponent_x"`
	Step      float64 `toml:"step"`
	WallClamp bool    `toml:"wall_clamp"`
}

type OpponentConfig struct {
	Enabled  bool    `toml:"enabled"`
	DeadZone float64 `toml:"dead_zone"`
	Step     float64 `toml:"step"`
	Bound    float64 `toml:"bound"`
}

type CollisionConfig struct {
	Notify bool         `toml:"notify"`
	Inside InsidePolicy `toml:"inside"`
}

type InputConfig struct {
	HoldFrames int64 `toml:"hold_frames"`

	// Bindings overrides default keys, action name -> key names
	Bindings map[string][]string `toml:"bindings"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the settings of the given variant
// An unknown variant keeps its name over classic settings so Validate rejects it
func Default(variant Variant) Config {
	cfg := Config{
		Variant: variant,
		Game:    GameConfig{Tick: Duration{parameter.FrameUpdateInterval}},
		Board: BoardConfig{
			HalfWidth:     parameter.BoardHalfWidth,
			HalfHeight:    parameter.BoardHalfHeight,
			Walls:         true,
			WallOffsetY:   parameter.WallOffsetY,
			WallWidth:     parameter.WallWidth,
			WallThickness: parameter.WallThickness,
		},
		Ball: BallConfig{
			SpeedX:  parameter.BallSpeedX,
			SpeedY:  parameter.BallSpeedY,
			Size:    parameter.BallSize,
			Respawn: true,
		},
		Paddle: PaddleConfig{
			Width:     parameter.PaddleWidth,
			Height:    parameter.PaddleHeight,
			PlayerX:   parameter.PlayerX,
			OpponentX: parameter.OpponentX,
			Step:      parameter.PaddleStep,
			WallClamp: true,
		},
		Opponent: OpponentConfig{
			Enabled:  true,
			DeadZone: parameter.OpponentDeadZone,
			Step:     parameter.OpponentStep,
			Bound:    parameter.OpponentBound,
		},
		Collision: CollisionConfig{
			Notify: true,
			Inside: InsideFlipX,
		},
		Input: InputConfig{HoldFrames: parameter.InputHoldFrames},
		Log:   LogConfig{Dir: "logs"},
	}

	if variant == VariantSimple {
		cfg.Board.Walls = false
		cfg.Ball.SpeedX = parameter.SimpleBallSpeedX
		cfg.Ball.SpeedY = parameter.SimpleBallSpeedY
		cfg.Paddle.WallClamp = false
		cfg.Opponent.Enabled = false
		cfg.Collision.Notify = false
	}
	return cfg
}

// Load reads a TOML file over the defaults of the variant it declares
// An empty path returns the defaults of fallback
func Load(path string, fallback Variant) (Config, error) {
	if path == "" {
		cfg := Default(fallback)
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, fallback)
}

// Parse decodes TOML data; the document's variant key picks the defaults it overlays
func Parse(data []byte, fallback Variant) (Config, error) {
	var head struct {
		Variant Variant `toml:"variant"`
	}
	if _, err := toml.Decode(string(data), &head); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	variant := fallback
	if head.Variant != "" {
		variant = head.Variant
	}

	cfg := Default(variant)
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the systems cannot run with
func (c Config) Validate() error {
	switch c.Variant {
	case VariantClassic, VariantSimple:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}

	switch c.Collision.Inside {
	case InsideFlipX, InsideFlipY, InsideFlipBoth:
	default:
		return fmt.Errorf("%w: unknown inside policy %q", ErrInvalidConfig, c.Collision.Inside)
	}

	if c.Game.Tick.Duration <= 0 {
		return fmt.Errorf("%w: game.tick must be positive", ErrInvalidConfig)
	}

	type bound struct {
		name string
		v    float64
	}
	positive := []bound{
		{"board.half_width", c.Board.HalfWidth},
		{"board.half_height", c.Board.HalfHeight},
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
	}
	if c.Board.Walls {
		positive = append(positive,
			bound{"board.wall_width", c.Board.WallWidth},
			bound{"board.wall_thickness", c.Board.WallThickness},
		)
	}
	if c.Opponent.Enabled {
		positive = append(positive,
			bound{"opponent.step", c.Opponent.Step},
			bound{"opponent.bound", c.Opponent.Bound},
		)
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Ball.SpeedX == 0 {
		return fmt.Errorf("%w: ball.speed_x must be non-zero", ErrInvalidConfig)
	}
	if c.Opponent.DeadZone < 0 {
		return fmt.Errorf("%w: opponent.dead_zone must not be negative", ErrInvalidConfig)
	}
	if c.Paddle.Step < 0 {
		return fmt.Errorf("%w: paddle.step must not be negative", ErrInvalidConfig)
	}
	if c.Input.HoldFrames < 1 {
		return fmt.Errorf("%w: input.hold_frames must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// BallSpeed returns the per-frame displacement magnitudes as a vector
func (c Config) BallSpeed() vmath.Vec2 {
	return vmath.V2(c.Ball.SpeedX, c.Ball.SpeedY)
}
