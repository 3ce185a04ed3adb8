// Package status holds process-wide game telemetry
// Systems cache metric pointers during construction and write atomics in Update
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and systems
const (
	KeyTicks           = "engine.ticks"
	KeyEventsPushed    = "engine.events_pushed"
	KeyEventsDropped   = "engine.events_dropped"
	KeyInvariantErrors = "engine.invariant_errors"
	KeyBallCollisions  = "ball.collisions"
	KeyBallRespawns    = "ball.respawns"
	KeyPlayerBlocked   = "player.blocked"
	KeyOpponentChasing = "opponent.chasing"
	KeyOpponentChases  = "opponent.chases"
	KeyOpponentSkips   = "opponent.prediction_skips"
	KeyOpponentPredict = "opponent.prediction"
)

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the current value of an integer metric, 0 if never registered
func (r *Registry) Int(key string) int64 {
	if ptr, ok := r.Ints.Lookup(key); ok {
		return ptr.Load()
	}
	return 0
}

// Metric is a rendered key/value pair
type Metric struct {
	Key   string
	Value string
}

// Snapshot renders every metric, ints first then floats then bools, each sorted by key
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Ints.Count()+r.Floats.Count()+r.Bools.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, Metric{key, strconv.FormatInt(ptr.Load(), 10)})
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out = append(out, Metric{key, strconv.FormatFloat(ptr.Get(), 'f', 1, 64)})
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out = append(out, Metric{key, strconv.FormatBool(ptr.Load())})
	})
	return out
}

// String formats the snapshot as space separated key=value pairs
func (r *Registry) String() string {
	var sb strings.Builder
	for i, m := range r.Snapshot() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%s", m.Key, m.Value)
	}
	return sb.String()
}
