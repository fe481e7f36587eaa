// SPDX-License-Identifier: MIT
// File: methods_paths.go
// Role: Exhaustive simple-path search over present edges.
//
// Concurrency:
//   - The read lock is held for the whole search, so every path is drawn from
//     the same state.

package core

import (
	"context"

	"github.com/katalvlaran/lwwgraph/dfs"
)

// FindPaths returns every simple path from start to end over present edges.
//
// Behavior highlights:
//   - start == end (present) yields [[start]].
//   - An absent start or end yields an empty result, never an error.
//   - Paths are ordered by depth-first exploration in ConnectedVertices order.
//
// Complexity:
//   - Exponential in the worst case; intended for small or sparse graphs.
func (g *Graph[V]) FindPaths(start, end V) [][]V {
	// Without a cancellable context or limits the search cannot fail.
	paths, _ := g.FindPathsContext(context.Background(), start, end)

	return paths
}

// FindPathsContext is FindPaths with cancellation and the dfs limits
// (dfs.WithMaxDepth, dfs.WithMaxPaths). On cancellation it returns the paths
// found so far together with the wrapped context error.
func (g *Graph[V]) FindPathsContext(ctx context.Context, start, end V, opts ...dfs.Option) ([][]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.vertexExistsLocked(start) || !g.vertexExistsLocked(end) {
		return [][]V{}, nil
	}

	all := make([]dfs.Option, 0, len(opts)+1)
	all = append(all, dfs.WithContext(ctx))
	all = append(all, opts...)

	return dfs.AllPaths[V](lockedView[V]{g: g}, start, end, all...)
}
