// SPDX-License-Identifier: MIT
// Package clock supplies the timestamps that order operations on an LWW graph.
//
// A Timestamp is an int64 used purely for ordering. The default Wall source
// produces microseconds since the Unix epoch and never hands out the same
// value twice within one process. Hybrid and Lamport additionally implement
// Observer, so a graph can push the newest timestamp seen during a merge into
// the source and keep local writes ahead of everything it has received.
//
// All sources in this package are safe for concurrent use.
package clock

import (
	"sync/atomic"
	"time"
)

// Timestamp orders graph operations. Larger is later.
type Timestamp int64

// Source produces timestamps for operations that were not given one explicitly.
type Source interface {
	// Now returns a timestamp for a new operation.
	Now() Timestamp
}

// Observer is implemented by sources that can be advanced by timestamps
// received from other replicas.
type Observer interface {
	// Observe informs the source that ts has been seen.
	Observe(ts Timestamp)
}

// Wall is a wall-clock source with microsecond resolution.
// It is strictly monotonic per instance: when the system clock stalls or
// steps backwards, Now returns the previous value plus one.
type Wall struct {
	last atomic.Int64
	now  func() time.Time
}

// NewWall returns a Wall backed by time.Now.
func NewWall() *Wall {
	return NewWallFunc(time.Now)
}

// NewWallFunc returns a Wall backed by now. A nil now falls back to time.Now.
func NewWallFunc(now func() time.Time) *Wall {
	if now == nil {
		now = time.Now
	}

	return &Wall{now: now}
}

// Now returns max(current microseconds, last+1).
// Complexity: O(1); retries only under CAS contention.
func (w *Wall) Now() Timestamp {
	for {
		last := w.last.Load()
		next := w.now().UnixMicro()
		if next <= last {
			next = last + 1
		}
		if w.last.CompareAndSwap(last, next) {
			return Timestamp(next)
		}
	}
}

// raise lifts the floor of w to ts.
func (w *Wall) raise(ts Timestamp) {
	for {
		last := w.last.Load()
		if int64(ts) <= last || w.last.CompareAndSwap(last, int64(ts)) {
			return
		}
	}
}

// Hybrid is a Wall that also observes remote timestamps, so the next local
// timestamp is always greater than anything merged in, even under clock skew.
type Hybrid struct {
	Wall
}

// NewHybrid returns a Hybrid backed by time.Now.
func NewHybrid() *Hybrid {
	return &Hybrid{Wall: Wall{now: time.Now}}
}

// Observe implements Observer.
func (h *Hybrid) Observe(ts Timestamp) { h.raise(ts) }

// Lamport is a logical clock: a counter incremented on every Now and raised
// to the maximum observed value on every Observe.
type Lamport struct {
	counter atomic.Int64
}

// NewLamport returns a Lamport clock starting at zero.
func NewLamport() *Lamport { return &Lamport{} }

// Now increments the counter and returns the new value.
func (l *Lamport) Now() Timestamp { return Timestamp(l.counter.Add(1)) }

// Observe raises the counter to ts if ts is greater.
func (l *Lamport) Observe(ts Timestamp) {
	for {
		cur := l.counter.Load()
		if int64(ts) <= cur || l.counter.CompareAndSwap(cur, int64(ts)) {
			return
		}
	}
}

// Value returns the current counter without advancing it.
func (l *Lamport) Value() Timestamp { return Timestamp(l.counter.Load()) }

// Manual is a source for tests: Now returns the configured value unchanged
// until Set or Advance moves it.
type Manual struct {
	cur atomic.Int64
}

// NewManual returns a Manual source fixed at start.
func NewManual(start Timestamp) *Manual {
	m := &Manual{}
	m.cur.Store(int64(start))

	return m
}

// Now returns the current value.
func (m *Manual) Now() Timestamp { return Timestamp(m.cur.Load()) }

// Set replaces the current value.
func (m *Manual) Set(ts Timestamp) { m.cur.Store(int64(ts)) }

// Advance adds d to the current value and returns the result.
func (m *Manual) Advance(d Timestamp) Timestamp { return Timestamp(m.cur.Add(int64(d))) }

// Parse maps a source name to a fresh Source: "wall", "hybrid" or "lamport".
// The empty name selects "wall".
func Parse(name string) (Source, bool) {
	switch name {
	case "", "wall":
		return NewWall(), true
	case "hybrid":
		return NewHybrid(), true
	case "lamport":
		return NewLamport(), true
	default:
		return nil, false
	}
}
