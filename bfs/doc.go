// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over any adjacency source,
// returning hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order returned by Adjacency.ConnectedVertices,
//	so the visit sequence is reproducible for a given adjacency.
//
// Complexity (V = reached vertices, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk[string](g, "a", bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrNilAdjacency, ErrOptionViolation, or the context error
//	}
//	path, err := res.PathTo("z") // ErrNotReached if z was not visited
package bfs
