package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// ClockScheduler steps the world on a fixed tick
// One tick: advance frame counter, dispatch queued events, run systems in priority order
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource
	eqRes   *EventQueueResource

	tickInterval time.Duration

	// Event routing
	eventRouter *event.Router[*World]

	// Cached metric pointers
	statTicks   *atomic.Int64
	statPushed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewClockScheduler creates a scheduler for the world with the given tick interval
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	statusReg := MustGetResource[*status.Registry](world.Resources)
	eqRes := MustGetResource[*EventQueueResource](world.Resources)

	return &ClockScheduler{
		world:        world,
		timeRes:      MustGetResource[*TimeResource](world.Resources),
		eqRes:        eqRes,
		tickInterval: tickInterval,
		eventRouter:  event.NewRouter[*World](eqRes.Queue),
		statTicks:    statusReg.Ints.Get(status.KeyTicks),
		statPushed:   statusReg.Ints.Get(status.KeyEventsPushed),
		statDropped:  statusReg.Ints.Get(status.KeyEventsDropped),
	}
}

// RegisterEventHandler adds an event handler to router, must be called before the first tick
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler[*World]) {
	cs.eventRouter.Register(handler)
}

// Router exposes the event router for inspection
func (cs *ClockScheduler) Router() *event.Router[*World] {
	return cs.eventRouter
}

// Tick runs exactly one frame
func (cs *ClockScheduler) Tick() {
	cs.timeRes.FrameNumber++
	cs.timeRes.DeltaTime = cs.tickInterval

	// Events emitted during the previous frame
	cs.eventRouter.DispatchAll(cs.world)

	cs.world.Update()

	cs.statTicks.Add(1)
	cs.statPushed.Store(int64(cs.eqRes.Queue.Pushed()))
	cs.statDropped.Store(int64(cs.eqRes.Queue.Dropped()))
}

// RunFrames runs n ticks back to back without waiting
func (cs *ClockScheduler) RunFrames(n int) {
	for i := 0; i < n; i++ {
		cs.Tick()
	}
}

// Run ticks on a time.Ticker until ctx is cancelled
// onFrame, if set, is called after every tick on the same goroutine
func (cs *ClockScheduler) Run(ctx context.Context, onFrame func()) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cs.Tick()
			if onFrame != nil {
				onFrame()
			}
		}
	}
}
