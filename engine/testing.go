package engine

import "github.com/lixenwraith/vi-pong/config"

// NewTestWorld creates a world on the default configuration of the given variant
// Panics on an invalid built-in default, which only a broken parameter table can cause
func NewTestWorld(variant config.Variant) *World {
	cfg := config.Default(variant)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return NewWorld(cfg)
}
