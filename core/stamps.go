// SPDX-License-Identifier: MIT
// File: stamps.go
// Role: Insertion-ordered timestamp maps backing the four CRDT sets.
//
// Determinism:
//   - Keys are enumerated in first-insertion order; rewriting a key keeps its position.
//   - Keys are never deleted, so the order slice is append-only.
//
// Concurrency:
//   - Not synchronized; callers hold Graph.mu.

package core

// stamps maps vertices to timestamps and remembers first-insertion order.
type stamps[V comparable] struct {
	order []V
	at    map[V]Timestamp
}

func newStamps[V comparable]() *stamps[V] {
	return &stamps[V]{at: make(map[V]Timestamp)}
}

// get returns the timestamp stored for v.
func (s *stamps[V]) get(v V) (Timestamp, bool) {
	ts, ok := s.at[v]
	return ts, ok
}

// set writes ts for v unconditionally.
func (s *stamps[V]) set(v V, ts Timestamp) {
	if _, ok := s.at[v]; !ok {
		s.order = append(s.order, v)
	}
	s.at[v] = ts
}

// raise applies the merge rule: insert v if absent, otherwise replace only
// when ts is strictly greater. Reports whether the stored value changed.
func (s *stamps[V]) raise(v V, ts Timestamp) bool {
	cur, ok := s.at[v]
	if ok && ts <= cur {
		return false
	}
	s.set(v, ts)

	return true
}

func (s *stamps[V]) len() int { return len(s.order) }

// toMap returns a copy of the content.
func (s *stamps[V]) toMap() map[V]Timestamp {
	out := make(map[V]Timestamp, len(s.at))
	for v, ts := range s.at {
		out[v] = ts
	}

	return out
}
