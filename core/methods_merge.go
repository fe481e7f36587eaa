// SPDX-License-Identifier: MIT
// File: methods_merge.go
// Role: State-based merge of a remote replica into the local graph.
//
// Determinism:
//   - Per key: keep the strictly greater timestamp, local wins ties.
//   - Keys present only remotely are inserted after existing local keys, in remote order.
//
// Concurrency:
//   - One write-lock acquisition for the whole merge; a merge never interleaves
//     with a local mutation.

package core

import "github.com/katalvlaran/lwwgraph/clock"

// Merge applies remote, a snapshot from another replica, to g.
//
// Implementation:
//   - Stage 1: Under the write lock, raise every remote vertex entry into the
//     matching local vertex set.
//   - Stage 2: Raise every remote edge entry into the matching local edge set,
//     creating a local source row when the source is new.
//   - Stage 3: Release the lock; report the newest remote timestamp to the
//     clock if it is a clock.Observer; notify the merge hook.
//
// Behavior highlights:
//   - Commutative, associative and idempotent over the four sets.
//   - remote is only read; g keeps no reference to its slices.
//
// Returns:
//   - MergeReport: entries examined and keys changed per set.
//
// Complexity:
//   - Time O(remote.Len()) amortized, Space O(new keys).
func (g *Graph[V]) Merge(remote State[V]) MergeReport {
	var rep MergeReport

	g.mu.Lock()
	for _, e := range remote.VerticesAdded {
		rep.see(e.At)
		if g.verticesAdded.raise(e.Vertex, e.At) {
			rep.VerticesAdded++
		}
	}
	for _, e := range remote.VerticesRemoved {
		rep.see(e.At)
		if g.verticesRemoved.raise(e.Vertex, e.At) {
			rep.VerticesRemoved++
		}
	}
	for _, e := range remote.EdgesAdded {
		rep.see(e.At)
		if g.edgesAdded.raise(e.From, e.To, e.At) {
			rep.EdgesAdded++
		}
	}
	for _, e := range remote.EdgesRemoved {
		rep.see(e.At)
		if g.edgesRemoved.raise(e.From, e.To, e.At) {
			rep.EdgesRemoved++
		}
	}
	g.mu.Unlock()

	if obs, ok := g.cfg.clock.(clock.Observer); ok && rep.Entries > 0 {
		obs.Observe(rep.Latest)
	}
	if g.cfg.onMerge != nil {
		g.cfg.onMerge(rep)
	}

	return rep
}

// MergeSets applies the four sets of another replica given as plain mappings.
// It is Merge over StateFromSets.
func (g *Graph[V]) MergeSets(
	verticesAdded, verticesRemoved map[V]Timestamp,
	edgesAdded, edgesRemoved map[V]map[V]Timestamp,
) MergeReport {
	return g.Merge(StateFromSets(verticesAdded, verticesRemoved, edgesAdded, edgesRemoved))
}

// MergeFrom merges a snapshot of other into g. g and other may be the same graph.
func (g *Graph[V]) MergeFrom(other *Graph[V]) MergeReport {
	return g.Merge(other.Snapshot())
}

// NewGraphFromState creates a graph holding exactly the sets of s.
// Complexity: O(s.Len())
func NewGraphFromState[V comparable](s State[V], opts ...GraphOption) *Graph[V] {
	g := NewGraph[V](opts...)

	g.mu.Lock()
	for _, e := range s.VerticesAdded {
		g.verticesAdded.raise(e.Vertex, e.At)
	}
	for _, e := range s.VerticesRemoved {
		g.verticesRemoved.raise(e.Vertex, e.At)
	}
	for _, e := range s.EdgesAdded {
		g.edgesAdded.raise(e.From, e.To, e.At)
	}
	for _, e := range s.EdgesRemoved {
		g.edgesRemoved.raise(e.From, e.To, e.At)
	}
	g.mu.Unlock()

	return g
}
