// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: Two-level timestamp maps for edge sets: from → (to → timestamp).
//
// Determinism:
//   - Sources and, per source, targets enumerate in first-insertion order.
//
// Concurrency:
//   - Not synchronized; callers hold Graph.mu.

package core

// adjacency maps a source vertex to its timestamped targets.
type adjacency[V comparable] struct {
	order []V
	rows  map[V]*stamps[V]
}

func newAdjacency[V comparable]() *adjacency[V] {
	return &adjacency[V]{rows: make(map[V]*stamps[V])}
}

// row returns the targets of from, or nil if from has never been a source.
func (a *adjacency[V]) row(from V) *stamps[V] {
	return a.rows[from]
}

// ensureRow returns the targets of from, creating an empty row if needed.
func (a *adjacency[V]) ensureRow(from V) *stamps[V] {
	r, ok := a.rows[from]
	if !ok {
		r = newStamps[V]()
		a.rows[from] = r
		a.order = append(a.order, from)
	}

	return r
}

// get returns the timestamp stored for from→to.
func (a *adjacency[V]) get(from, to V) (Timestamp, bool) {
	r, ok := a.rows[from]
	if !ok {
		return 0, false
	}

	return r.get(to)
}

// set writes ts for from→to unconditionally.
func (a *adjacency[V]) set(from, to V, ts Timestamp) {
	a.ensureRow(from).set(to, ts)
}

// raise applies the merge rule to from→to; see stamps.raise.
func (a *adjacency[V]) raise(from, to V, ts Timestamp) bool {
	return a.ensureRow(from).raise(to, ts)
}

// len returns the number of stored pairs.
func (a *adjacency[V]) len() int {
	n := 0
	for _, r := range a.rows {
		n += r.len()
	}

	return n
}

// toMap returns a deep copy of the content.
func (a *adjacency[V]) toMap() map[V]map[V]Timestamp {
	out := make(map[V]map[V]Timestamp, len(a.rows))
	for from, r := range a.rows {
		out[from] = r.toMap()
	}

	return out
}
