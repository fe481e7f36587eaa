// SPDX-License-Identifier: MIT
// File: view.go
// Role: Lock-free adjacency view handed to traversals while g.mu is held.

package core

// lockedView adapts a Graph whose read lock is already held to dfs.Adjacency.
// It must not outlive the critical section that created it.
type lockedView[V comparable] struct {
	g *Graph[V]
}

// ConnectedVertices implements dfs.Adjacency and bfs.Adjacency without touching the lock.
func (v lockedView[V]) ConnectedVertices(id V) []V {
	return v.g.connectedLocked(id)
}
