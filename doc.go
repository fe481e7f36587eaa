// SPDX-License-Identifier: MIT
// Package lwwgraph is a directed Last-Write-Wins element graph: a state-based
// CRDT that independent replicas mutate offline and reconcile by merging
// snapshots, without coordination.
//
// A replica keeps four timestamped sets: added and removed vertices, added
// and removed edges. Presence is computed on demand. A vertex or edge exists
// when it has been added and not removed at a strictly later timestamp, so an
// add and a remove at the same timestamp leave the element present. Merge
// keeps, per key, the greater timestamp; it is commutative, associative and
// idempotent.
//
// Packages:
//
//	core/      - Graph[V], State[V] snapshots, Merge, queries
//	clock/     - timestamp sources: Wall, Hybrid, Lamport, Manual
//	dfs/       - exhaustive simple-path enumeration with limits
//	bfs/       - breadth-first reachability and hop-shortest paths
//	builder/   - deterministic topologies and seeded operation scripts
//	snapshot/  - versioned JSON / msgpack state files
//	metrics/   - Prometheus counters fed by graph hooks
//	cmd/lwwgraph - CLI: run scenarios, merge snapshot files, list paths
//
// Quick start:
//
//	a := core.NewGraph[string]()
//	b := core.NewGraph[string]()
//	a.AddEdge("x", "y")
//	b.AddEdge("y", "z")
//	a.MergeFrom(b)
//	a.FindPaths("x", "z") // [[x y z]]
//
// Non-goals: network transport, persistence beyond snapshot files, tombstone
// garbage collection, causal ordering with version vectors.
package lwwgraph
