package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/parameter"
)

// EventQueue is a fixed-size ring of game events between systems and the router
//
// Producers: systems call World.PushEvent during a tick, so in practice every
// Push comes from the scheduler goroutine. Push still claims slots with CAS and
// is safe from any goroutine.
// Consumer: the router, once at the start of the next tick.
//
// A slot is readable only after its published flag is set, so a consumer never
// observes a half-written event. When the ring is full the oldest unread events
// are overwritten and counted in Dropped.
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // next slot to read
	tail      atomic.Uint64 // next slot to claim
	pushed    atomic.Uint64
	dropped   atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(event GameEvent) {
	slot := eq.claim()
	idx := slot & parameter.EventBufferMask
	eq.events[idx] = event
	eq.published[idx].Store(true)
	eq.pushed.Add(1)

	// Slide head past overwritten events
	end := slot + 1
	if head := eq.head.Load(); end-head > parameter.EventQueueSize {
		floor := end - parameter.EventQueueSize
		if eq.head.CompareAndSwap(head, floor) {
			eq.dropped.Add(floor - head)
		}
	}
}

func (eq *EventQueue) claim() uint64 {
	for {
		tail := eq.tail.Load()
		if eq.tail.CompareAndSwap(tail, tail+1) {
			return tail
		}
	}
}

// Consume returns all published events in FIFO order in a new slice
func (eq *EventQueue) Consume() []GameEvent {
	events := eq.ConsumeInto(nil)
	if len(events) == 0 {
		return nil
	}
	return events
}

// ConsumeInto appends all published events to buf[:0] and returns it
// The router reuses one buffer across ticks; the result is valid until the next call
func (eq *EventQueue) ConsumeInto(buf []GameEvent) []GameEvent {
	buf = buf[:0]
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return buf
		}

		n := tail - head
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		buf = buf[:0]
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & parameter.EventBufferMask
			// Stop at a producer still writing its slot
			if !eq.published[idx].Load() {
				break
			}
			buf = append(buf, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(buf))) {
			return buf
		}
	}
}

// Discard drops every pending event and returns how many were dropped
// Discarded events are not counted in Dropped
func (eq *EventQueue) Discard() int {
	return len(eq.Consume())
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Pushed returns the number of events ever pushed
func (eq *EventQueue) Pushed() uint64 {
	return eq.pushed.Load()
}

// Dropped returns the number of events overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
