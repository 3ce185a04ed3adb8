// Package system holds the per-tick game systems
// Every system implements engine.System and runs in parameter priority order
package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/status"
)

// invariantGuard logs and counts a failed singleton lookup
// The calling system skips its update for the frame
type invariantGuard struct {
	name string
	stat *atomic.Int64
}

func newInvariantGuard(name string, world *engine.World) invariantGuard {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return invariantGuard{name: name, stat: reg.Ints.Get(status.KeyInvariantErrors)}
}

func (g invariantGuard) report(what string, err error) {
	g.stat.Add(1)
	log.Printf("[%s] %s lookup: %v", g.name, what, err)
}
