// SPDX-License-Identifier: MIT
// Package dfs enumerates simple paths by depth-first search over any
// adjacency source that can report the out-neighbors of a vertex.
//
// What:
//
//   - AllPaths(adj, start, end, opts...): every simple path (no repeated
//     vertex) from start to end, in the order the neighbors are reported.
//   - The current path doubles as the visited set, so cycles terminate.
//   - Each recursive step extends an immutable copy of the path; returned
//     paths never share backing arrays.
//
// Options:
//
//   - WithContext(ctx)      abort early when ctx is done.
//   - WithMaxDepth(limit)   ignore paths longer than limit edges (>=0).
//   - WithMaxPaths(limit)   stop after limit paths have been collected (>0).
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple paths of a dense graph).
//   - Memory: O(P·L) for P paths of average length L, plus O(L) recursion.
//
// Errors:
//
//   - ErrNilAdjacency      adjacency source is nil.
//   - context.Canceled / context.DeadlineExceeded (wrapped) when ctx is done.
package dfs
