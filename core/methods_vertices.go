// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns present vertices in first-insertion order of the added set.
//
// Concurrency:
//   - Public methods take g.mu exactly once; *Locked helpers assume it is held.

package core

// AddVertex adds v with a timestamp from the graph's clock and returns it.
// The timestamp is drawn under the write lock, so generated timestamps are
// applied in the order they were issued.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddVertex(v V) Timestamp {
	g.mu.Lock()
	ts := g.cfg.clock.Now()
	g.addVertexLocked(v, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpAddVertex, At: ts})

	return ts
}

// AddVertexAt records v as added at ts.
//
// Implementation:
//   - Stage 1: Under the write lock, overwrite verticesAdded[v] with ts.
//   - Stage 2: Release the lock and notify the mutation hook.
//
// Behavior highlights:
//   - Unconditional overwrite: a smaller ts replaces a larger one. Callers
//     supplying explicit timestamps decide which write should win.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddVertexAt(v V, ts Timestamp) {
	g.mu.Lock()
	g.addVertexLocked(v, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpAddVertex, At: ts})
}

// RemoveVertex tombstones v and its incident edges with a timestamp from the
// graph's clock, drawn under the write lock, and returns it.
//
// Complexity:
//   - Time O(E) for the incoming-edge scan.
func (g *Graph[V]) RemoveVertex(v V) Timestamp {
	g.mu.Lock()
	ts := g.cfg.clock.Now()
	cascaded := g.removeVertexLocked(v, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpRemoveVertex, At: ts, Implied: cascaded})

	return ts
}

// RemoveVertexAt records v as removed at ts, then tombstones every edge that
// touches v, in either direction, with the same ts.
//
// Implementation:
//   - Stage 1: Under the write lock, overwrite verticesRemoved[v] with ts.
//   - Stage 2: Tombstone v→t for every target t in edgesAdded[v].
//   - Stage 3: Scan every other source s; tombstone s→v when edgesAdded[s] holds v.
//   - Stage 4: Release the lock and notify the mutation hook.
//
// Behavior highlights:
//   - Removing a never-added vertex is accepted; it only creates a tombstone.
//   - The cascade keeps the edge sets tidy; queries stay correct without it.
//
// Complexity:
//   - Time O(deg⁺(v) + S) where S is the number of sources in edgesAdded.
func (g *Graph[V]) RemoveVertexAt(v V, ts Timestamp) {
	g.mu.Lock()
	cascaded := g.removeVertexLocked(v, ts)
	g.mu.Unlock()

	g.notify(Mutation{Op: OpRemoveVertex, At: ts, Implied: cascaded})
}

// VertexExists reports whether v is present: added, and not removed at a
// strictly later timestamp. Equal timestamps favor the add.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V]) VertexExists(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexExistsLocked(v)
}

// Vertices returns the present vertices in first-insertion order.
// Complexity: O(V)
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, g.verticesAdded.len())
	for _, v := range g.verticesAdded.order {
		if g.vertexExistsLocked(v) {
			out = append(out, v)
		}
	}

	return out
}

// VerticesAdded returns a copy of the added-vertex set.
func (g *Graph[V]) VerticesAdded() map[V]Timestamp {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesAdded.toMap()
}

// VerticesRemoved returns a copy of the removed-vertex set.
func (g *Graph[V]) VerticesRemoved() map[V]Timestamp {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesRemoved.toMap()
}

func (g *Graph[V]) addVertexLocked(v V, ts Timestamp) {
	g.verticesAdded.set(v, ts)
}

func (g *Graph[V]) vertexExistsLocked(v V) bool {
	added, ok := g.verticesAdded.get(v)
	if !ok {
		return false
	}
	removed, ok := g.verticesRemoved.get(v)

	return !ok || added >= removed
}

// removeVertexLocked returns the number of edges tombstoned by the cascade.
func (g *Graph[V]) removeVertexLocked(v V, ts Timestamp) int {
	g.verticesRemoved.set(v, ts)

	cascaded := 0
	// Edges originating from v.
	if out := g.edgesAdded.row(v); out != nil {
		for _, to := range out.order {
			g.removeEdgeLocked(v, to, ts)
			cascaded++
		}
	}
	// Edges pointing to v.
	for _, from := range g.edgesAdded.order {
		if from == v {
			continue
		}
		if _, ok := g.edgesAdded.rows[from].get(v); ok {
			g.removeEdgeLocked(from, v, ts)
			cascaded++
		}
	}

	return cascaded
}

// notify delivers m to the mutation hook, if any. Called without the lock.
func (g *Graph[V]) notify(m Mutation) {
	if g.cfg.onMutation != nil {
		g.cfg.onMutation(m)
	}
}
