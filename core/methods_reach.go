// SPDX-License-Identifier: MIT
// File: methods_reach.go
// Role: Reachability and hop-shortest paths over present edges.
//
// Determinism:
//   - Results follow breadth-first order with neighbors in ConnectedVertices order.

package core

import (
	"context"

	"github.com/katalvlaran/lwwgraph/bfs"
)

// Reachable returns every vertex reachable from start over present edges,
// start first, in breadth-first order. An absent start yields an empty result.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph[V]) Reachable(start V) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertexExistsLocked(start) {
		return []V{}
	}
	// Background context and no options: the walk cannot fail.
	res, _ := bfs.Walk[V](lockedView[V]{g: g}, start)

	return res.Order
}

// ShortestPath returns a path from start to end with the fewest edges, or
// nil when end is unreachable or either endpoint is absent. Ties between
// equally short paths are broken by ConnectedVertices order.
func (g *Graph[V]) ShortestPath(ctx context.Context, start, end V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertexExistsLocked(start) || !g.vertexExistsLocked(end) {
		return nil, nil
	}
	res, err := bfs.Walk[V](lockedView[V]{g: g}, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(end)
	if err != nil {
		// Not reached.
		return nil, nil
	}

	return path, nil
}
