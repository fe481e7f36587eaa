// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lwwgraph/core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
)

// Common timestamps used across core tests (avoid magic numbers in test bodies).
const (
	T10  clock.Timestamp = 10
	T20  clock.Timestamp = 20
	T30  clock.Timestamp = 30
	T100 clock.Timestamp = 100
	T200 clock.Timestamp = 200
	T300 clock.Timestamp = 300
)

// Common concurrency sizes used across core tests.
const (
	NWriters = 16
	NPerGo   = 100
	NReaders = 8
)

// pathFixture is the edge list from the path-enumeration scenario.
var pathFixture = [][2]int{{1, 2}, {1, 3}, {2, 5}, {3, 5}, {5, 7}, {4, 6}}

// newIntGraph returns an int-keyed graph with a default wall clock.
func newIntGraph(opts ...core.GraphOption) *core.Graph[int] {
	return core.NewGraph[int](opts...)
}

// buildPathFixture adds every edge of pathFixture to a fresh graph.
func buildPathFixture() *core.Graph[int] {
	g := newIntGraph()
	for _, e := range pathFixture {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// copyOf returns an independent graph with the same four sets as g.
func copyOf(g *core.Graph[int]) *core.Graph[int] {
	return core.NewGraphFromState(g.Snapshot())
}

// requireSameSets fails unless a and b hold identical four sets.
func requireSameSets(t *testing.T, a, b *core.Graph[int], msg string) {
	t.Helper()

	require.Equal(t, a.VerticesAdded(), b.VerticesAdded(), "%s: vertices added", msg)
	require.Equal(t, a.VerticesRemoved(), b.VerticesRemoved(), "%s: vertices removed", msg)
	require.Equal(t, a.EdgesAdded(), b.EdgesAdded(), "%s: edges added", msg)
	require.Equal(t, a.EdgesRemoved(), b.EdgesRemoved(), "%s: edges removed", msg)
	require.True(t, a.Snapshot().Equal(b.Snapshot()), "%s: snapshots", msg)
}

// keysOf returns the key set of a map for order-free comparisons.
func keysOf[K comparable, T any](m map[K]T) map[K]struct{} {
	out := make(map[K]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}

	return out
}

// set builds a key set literal.
func set(keys ...int) map[int]struct{} {
	out := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}

	return out
}
