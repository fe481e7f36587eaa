// SPDX-License-Identifier: MIT
// Package core provides a Last-Write-Wins element graph: a directed graph
// CRDT that independent replicas mutate concurrently and reconcile by merging
// snapshots, without coordination.
//
// The Graph G = (V,E) is stored as four append-only timestamped sets:
//
//	verticesAdded    vertex → timestamp
//	verticesRemoved  vertex → timestamp   (tombstones)
//	edgesAdded       from → (to → timestamp)
//	edgesRemoved     from → (to → timestamp)   (tombstones)
//
// Nothing is ever deleted from these sets. Presence is computed on demand:
//
//   - a vertex exists iff added and (never removed or added >= removed);
//   - an edge exists iff added and (never removed or removed <= added).
//
// Equal timestamps therefore favor the add ("add-wins").
//
// Merge takes, per key, the strictly greater timestamp (local wins ties) and
// copies keys present only in the remote replica. It is commutative,
// associative and idempotent over the four sets.
//
// Core Methods:
//
//	// Mutation (timestamp generated by the configured clock.Source)
//	AddVertex(v) Timestamp                 // O(1)
//	AddEdge(from, to) Timestamp            // O(1), auto-adds missing endpoints
//	RemoveVertex(v) Timestamp              // O(E), cascades onto incident edges
//	RemoveEdge(from, to) Timestamp         // O(1)
//	...At(…, ts)                           // same, with an explicit timestamp
//
//	// Query
//	VertexExists(v) bool                   // O(1)
//	EdgeExists(from, to) bool              // O(1)
//	ConnectedVertices(v) []V               // O(deg(v)), first-insertion order
//	FindPaths(start, end) [][]V            // exhaustive simple-path DFS
//	Vertices() []V / Edges() []Edge[V]     // present elements, insertion order
//	Reachable(start) []V                   // O(V+E) breadth-first
//	ShortestPath(ctx, start, end) []V      // fewest edges, nil if unreachable
//
//	// Replication
//	Snapshot() State[V]                    // O(V+E) consistent copy
//	Merge(State[V]) MergeReport            // O(remote)
//	MergeSets(va, vr, ea, er) MergeReport  // plain-map form
//
// Concurrency:
//
//   - One sync.RWMutex guards all four sets. Every mutation and merge runs
//     under a single write-lock acquisition, including nested work such as
//     endpoint auto-creation and cascade removal; queries hold the read lock.
//   - Public methods never call other public methods, so the lock is never
//     acquired recursively.
//
// Timestamps come from a clock.Source (clock.NewWall by default) and are
// drawn inside the same write-lock acquisition that applies them. If the
// source implements clock.Observer, Merge reports the newest remote
// timestamp to it.
package core
