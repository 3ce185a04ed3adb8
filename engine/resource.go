package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared data (Time, Config, Input) through it instead of through the host
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces the resource of type T
// Pointer types are expected so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T, zero value and false if absent
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	res, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return res.(T), true
}

// MustGetResource retrieves a resource of type T and panics if absent
// Only for wiring code that runs before the first tick
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic(fmt.Sprintf("resource %v not registered", reflect.TypeFor[T]()))
	}
	return res
}

// Resource caches typed resource pointers, populated by GetResourceStore
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	Event  *EventQueueResource
	Status *status.Registry
}

// GetResourceStore resolves every core resource of the world
func GetResourceStore(w *World) Resource {
	return Resource{
		Time:   MustGetResource[*TimeResource](w.Resources),
		Config: MustGetResource[*ConfigResource](w.Resources),
		Input:  MustGetResource[*InputResource](w.Resources),
		Event:  MustGetResource[*EventQueueResource](w.Resources),
		Status: MustGetResource[*status.Registry](w.Resources),
	}
}

// TimeResource is advanced by the ClockScheduler at the start of each tick
type TimeResource struct {
	FrameNumber int64
	DeltaTime   time.Duration
}

// ConfigResource holds the immutable session configuration
type ConfigResource struct {
	config.Config
}

// InputResource is the keyboard state query, written by the host before each tick
type InputResource struct {
	Up   bool
	Down bool
}

// EventQueueResource exposes the collision notification channel
type EventQueueResource struct {
	Queue *event.EventQueue
}
