package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// System is an interface that all systems must implement
type System interface {
	// Update runs one tick of the system
	Update()
	// Priority orders systems, lower values run first
	Priority() int
}

// World contains all entities, their components and global resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Components ComponentStore

	// Direct pointers for PushEvent
	eventQueue *event.EventQueue
	timeRes    *TimeResource

	systems []System
}

// NewWorld creates a world with every core resource registered
func NewWorld(cfg config.Config) *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Components:   newComponentStore(),
		eventQueue:   event.NewEventQueue(),
		timeRes:      &TimeResource{},
	}

	AddResource(w.Resources, w.timeRes)
	AddResource(w.Resources, &ConfigResource{Config: cfg})
	AddResource(w.Resources, &InputResource{})
	AddResource(w.Resources, &EventQueueResource{Queue: w.eventQueue})
	AddResource(w.Resources, status.NewRegistry())

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.Components.all() {
		store.Remove(e)
	}
}

// Clear removes all entities and components, systems and resources are kept
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntityID = 1
	for _, store := range w.Components.all() {
		store.Clear()
	}
}

// AddSystem adds a system and keeps the list ordered by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.timeRes.FrameNumber
}

// EventQueue returns the world's notification queue
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.timeRes.FrameNumber,
	})
}
