// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - ConnectedVertices() follows first-insertion order of edgesAdded[v].
//   - Edges() walks sources, then targets, in first-insertion order.
//
// Concurrency:
//   - Public methods take g.mu exactly once; *Locked helpers assume it is held.

package core

// AddEdge adds from→to with a timestamp from the graph's clock, drawn under
// the write lock, and returns it.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V) Timestamp {
	g.mu.Lock()
	ts := g.cfg.clock.Now()
	implied := g.addEdgeLocked(from, to, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpAddEdge, At: ts, Implied: implied})

	return ts
}

// AddEdgeAt records from→to as added at ts.
//
// Implementation:
//   - Stage 1: Under the write lock, add `to` at ts if it does not currently exist.
//   - Stage 2: Add `from` at ts if it does not currently exist.
//   - Stage 3: Overwrite edgesAdded[from][to] with ts.
//   - Stage 4: Release the lock and notify the mutation hook.
//
// Behavior highlights:
//   - Auto-created endpoints share the edge's timestamp.
//   - An endpoint that exists keeps its own added timestamp.
//   - Self-loops are allowed; the endpoint is added at most once.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddEdgeAt(from, to V, ts Timestamp) {
	g.mu.Lock()
	implied := g.addEdgeLocked(from, to, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpAddEdge, At: ts, Implied: implied})
}

// RemoveEdge tombstones from→to with a timestamp from the graph's clock,
// drawn under the write lock, and returns it.
func (g *Graph[V]) RemoveEdge(from, to V) Timestamp {
	g.mu.Lock()
	ts := g.cfg.clock.Now()
	g.removeEdgeLocked(from, to, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpRemoveEdge, At: ts})

	return ts
}

// RemoveEdgeAt records from→to as removed at ts. Removing a never-added edge
// is accepted; the tombstone is simply never matched.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) RemoveEdgeAt(from, to V, ts Timestamp) {
	g.mu.Lock()
	g.removeEdgeLocked(from, to, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpRemoveEdge, At: ts})
}

// EdgeExists reports whether from→to is present: added, and not removed at a
// strictly later timestamp.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V]) EdgeExists(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	added, ok := g.edgesAdded.get(from, to)
	if !ok {
		return false
	}
	removed, ok := g.edgesRemoved.get(from, to)

	return !ok || removed <= added
}

// ConnectedVertices returns the targets of v's present outgoing edges, in
// first-insertion order. The result is empty, never nil, when v has none.
//
// Notes:
//   - Only the edge's own timestamps are consulted; the target vertex's
//     presence is not.
//
// Complexity:
//   - Time O(deg⁺(v)), Space O(deg⁺(v)).
func (g *Graph[V]) ConnectedVertices(v V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connectedLocked(v)
}

// Edges returns every present edge.
// Complexity: O(E)
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[V]
	for _, from := range g.edgesAdded.order {
		for _, to := range g.connectedLocked(from) {
			out = append(out, Edge[V]{From: from, To: to})
		}
	}
	if out == nil {
		out = []Edge[V]{}
	}

	return out
}

// EdgesAdded returns a deep copy of the added-edge set.
func (g *Graph[V]) EdgesAdded() map[V]map[V]Timestamp {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesAdded.toMap()
}

// EdgesRemoved returns a deep copy of the removed-edge set.
func (g *Graph[V]) EdgesRemoved() map[V]map[V]Timestamp {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesRemoved.toMap()
}

// addEdgeLocked returns the number of endpoints it had to add.
func (g *Graph[V]) addEdgeLocked(from, to V, ts Timestamp) int {
	implied := 0
	if !g.vertexExistsLocked(to) {
		g.addVertexLocked(to, ts)
		implied++
	}
	if !g.vertexExistsLocked(from) {
		g.addVertexLocked(from, ts)
		implied++
	}
	g.edgesAdded.set(from, to, ts)

	return implied
}

func (g *Graph[V]) removeEdgeLocked(from, to V, ts Timestamp) {
	g.edgesRemoved.set(from, to, ts)
}

func (g *Graph[V]) connectedLocked(v V) []V {
	added := g.edgesAdded.row(v)
	if added == nil {
		return []V{}
	}
	removed := g.edgesRemoved.row(v)

	out := make([]V, 0, added.len())
	for _, to := range added.order {
		if removed != nil {
			if rts, ok := removed.get(to); ok && rts > added.at[to] {
				continue
			}
		}
		out = append(out, to)
	}

	return out
}
