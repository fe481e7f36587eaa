// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/core"
)

func TestSnapshot_InsertionOrder(t *testing.T) {
	g := newIntGraph()
	g.AddEdgeAt(1, 2, T10)
	g.AddEdgeAt(1, 3, T20)
	g.RemoveEdgeAt(1, 2, T30)

	s := g.Snapshot()
	assert.Equal(t, []core.VertexStamp[int]{{Vertex: 2, At: T10}, {Vertex: 1, At: T10}, {Vertex: 3, At: T20}}, s.VerticesAdded)
	assert.Empty(t, s.VerticesRemoved)
	assert.NotNil(t, s.VerticesRemoved)
	assert.Equal(t, []core.EdgeStamp[int]{{From: 1, To: 2, At: T10}, {From: 1, To: 3, At: T20}}, s.EdgesAdded)
	assert.Equal(t, []core.EdgeStamp[int]{{From: 1, To: 2, At: T30}}, s.EdgesRemoved)
	assert.Equal(t, 6, s.Len())
}

func TestSnapshot_IsDetached(t *testing.T) {
	g := newIntGraph()
	g.AddVertexAt(1, T10)

	s := g.Snapshot()
	g.AddVertexAt(2, T20)
	s.VerticesAdded[0].At = T300

	assert.Len(t, s.VerticesAdded, 1)
	assert.Equal(t, T10, g.VerticesAdded()[1])
}

func TestStateFromSets_RoundTrip(t *testing.T) {
	g := buildPathFixture()
	g.RemoveVertex(5)

	va, vr, ea, er := g.Snapshot().Sets()
	s := core.StateFromSets(va, vr, ea, er)

	assert.True(t, s.Equal(g.Snapshot()))
	assert.Equal(t, g.VerticesAdded(), va)
	assert.Equal(t, g.EdgesRemoved(), er)
}

func TestStateSets_DuplicatesKeepGreatest(t *testing.T) {
	s := core.State[int]{
		VerticesAdded: []core.VertexStamp[int]{{Vertex: 1, At: T20}, {Vertex: 1, At: T10}, {Vertex: 1, At: T30}},
		EdgesAdded:    []core.EdgeStamp[int]{{From: 1, To: 1, At: T30}, {From: 1, To: 1, At: T20}},
	}

	va, vr, ea, er := s.Sets()
	assert.Equal(t, map[int]core.Timestamp{1: T30}, va)
	assert.Empty(t, vr)
	assert.Equal(t, map[int]map[int]core.Timestamp{1: {1: T30}}, ea)
	assert.Empty(t, er)
}

func TestStateEqual_IgnoresOrder(t *testing.T) {
	a := core.State[int]{
		VerticesAdded: []core.VertexStamp[int]{{Vertex: 1, At: T10}, {Vertex: 2, At: T20}},
		EdgesAdded:    []core.EdgeStamp[int]{{From: 1, To: 2, At: T20}},
	}
	b := core.State[int]{
		VerticesAdded: []core.VertexStamp[int]{{Vertex: 2, At: T20}, {Vertex: 1, At: T10}},
		EdgesAdded:    []core.EdgeStamp[int]{{From: 1, To: 2, At: T20}},
	}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.EdgesAdded[0].At = T30
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.EdgesRemoved = []core.EdgeStamp[int]{{From: 2, To: 1, At: T10}}
	assert.False(t, a.Equal(c))
}

func TestStateClone_Independent(t *testing.T) {
	s := buildPathFixture().Snapshot()
	c := s.Clone()
	require.True(t, s.Equal(c))

	c.VerticesAdded[0].At = T300
	c.EdgesAdded = append(c.EdgesAdded, core.EdgeStamp[int]{From: 9, To: 9, At: T300})

	assert.False(t, s.Equal(c))
	assert.NotEqual(t, T300, s.VerticesAdded[0].At)
}

func TestStateValidate(t *testing.T) {
	assert.NoError(t, buildPathFixture().Snapshot().Validate())
	assert.NoError(t, core.State[int]{}.Validate())

	missingTarget := core.State[int]{
		VerticesAdded: []core.VertexStamp[int]{{Vertex: 1, At: T10}},
		EdgesAdded:    []core.EdgeStamp[int]{{From: 1, To: 2, At: T10}},
	}
	assert.ErrorIs(t, missingTarget.Validate(), core.ErrDanglingEdge)

	missingSource := core.State[int]{
		VerticesAdded: []core.VertexStamp[int]{{Vertex: 2, At: T10}},
		EdgesAdded:    []core.EdgeStamp[int]{{From: 1, To: 2, At: T10}},
	}
	assert.ErrorIs(t, missingSource.Validate(), core.ErrDanglingEdge)

	// A tombstone for an edge that was never added is legal.
	tombstoneOnly := core.State[int]{
		EdgesRemoved: []core.EdgeStamp[int]{{From: 7, To: 8, At: T10}},
	}
	assert.NoError(t, tombstoneOnly.Validate())
}

func TestNewGraphFromState(t *testing.T) {
	g := buildPathFixture()
	g.RemoveEdge(5, 7)

	h := core.NewGraphFromState(g.Snapshot())
	requireSameSets(t, g, h, "restored")
	assert.Equal(t, g.Vertices(), h.Vertices())
	assert.Equal(t, g.Edges(), h.Edges())
	assert.Equal(t, g.FindPaths(1, 5), h.FindPaths(1, 5))

	h.RemoveVertex(1)
	assert.True(t, g.VertexExists(1), "restored graph is independent")
}
