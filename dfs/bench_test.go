// SPDX-License-Identifier: MIT
package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lwwgraph/dfs"
)

// BenchmarkAllPaths_Ladder measures enumeration on a ladder of k rungs, which
// has 2^k simple paths from the first to the last vertex.
func BenchmarkAllPaths_Ladder(b *testing.B) {
	const rungs = 12
	adj := adjList{}
	// vertex 2i and 2i+1 form rung i; both connect to both vertices of rung i+1
	for i := 0; i < rungs; i++ {
		a, c := 2*i, 2*i+1
		na, nc := 2*(i+1), 2*(i+1)+1
		adj[a] = []int{na, nc}
		adj[c] = []int{na, nc}
	}
	end := 2 * rungs

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.AllPaths[int](adj, 0, end)
	}
}
