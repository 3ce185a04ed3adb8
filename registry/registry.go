package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/vi-pong/engine"
)

// SystemFactory creates a System from a World
type SystemFactory func(world *engine.World) engine.System

var (
	systemsMu sync.RWMutex
	systems   = make(map[string]SystemFactory)
)

// RegisterSystem adds a system factory by name, replacing any previous one
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names, sorted
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
