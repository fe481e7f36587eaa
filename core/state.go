// SPDX-License-Identifier: MIT
// File: state.go
// Role: Replica snapshot exchanged between graphs.
//
// Determinism:
//   - Snapshot() lists entries in first-insertion order (sources, then targets).
//   - Equal() compares content only; entry order is irrelevant to convergence.

package core

import "fmt"

// VertexStamp is one entry of a vertex set.
type VertexStamp[V comparable] struct {
	Vertex V         `json:"vertex" msgpack:"vertex" yaml:"vertex"`
	At     Timestamp `json:"at" msgpack:"at" yaml:"at"`
}

// EdgeStamp is one entry of an edge set.
type EdgeStamp[V comparable] struct {
	From V         `json:"from" msgpack:"from" yaml:"from"`
	To   V         `json:"to" msgpack:"to" yaml:"to"`
	At   Timestamp `json:"at" msgpack:"at" yaml:"at"`
}

// State is a complete copy of a replica's four sets, suitable for
// serialization and for Merge on another replica.
type State[V comparable] struct {
	VerticesAdded   []VertexStamp[V] `json:"vertices_added" msgpack:"vertices_added" yaml:"vertices_added"`
	VerticesRemoved []VertexStamp[V] `json:"vertices_removed" msgpack:"vertices_removed" yaml:"vertices_removed"`
	EdgesAdded      []EdgeStamp[V]   `json:"edges_added" msgpack:"edges_added" yaml:"edges_added"`
	EdgesRemoved    []EdgeStamp[V]   `json:"edges_removed" msgpack:"edges_removed" yaml:"edges_removed"`
}

// Snapshot returns a consistent copy of the graph's four sets.
// Complexity: O(V + E)
func (g *Graph[V]) Snapshot() State[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return State[V]{
		VerticesAdded:   vertexStamps(g.verticesAdded),
		VerticesRemoved: vertexStamps(g.verticesRemoved),
		EdgesAdded:      edgeStamps(g.edgesAdded),
		EdgesRemoved:    edgeStamps(g.edgesRemoved),
	}
}

// StateFromSets builds a State from plain mappings, as received from a
// replica after deserialization. Entry order follows map iteration.
func StateFromSets[V comparable](
	verticesAdded, verticesRemoved map[V]Timestamp,
	edgesAdded, edgesRemoved map[V]map[V]Timestamp,
) State[V] {
	return State[V]{
		VerticesAdded:   vertexStampsFromMap(verticesAdded),
		VerticesRemoved: vertexStampsFromMap(verticesRemoved),
		EdgesAdded:      edgeStampsFromMap(edgesAdded),
		EdgesRemoved:    edgeStampsFromMap(edgesRemoved),
	}
}

// Sets returns the four sets as plain mappings. Duplicate entries keep the
// greatest timestamp.
func (s State[V]) Sets() (
	verticesAdded, verticesRemoved map[V]Timestamp,
	edgesAdded, edgesRemoved map[V]map[V]Timestamp,
) {
	return vertexMap(s.VerticesAdded), vertexMap(s.VerticesRemoved),
		edgeMap(s.EdgesAdded), edgeMap(s.EdgesRemoved)
}

// Clone returns a copy of s that shares no slices with it.
func (s State[V]) Clone() State[V] {
	return State[V]{
		VerticesAdded:   append([]VertexStamp[V](nil), s.VerticesAdded...),
		VerticesRemoved: append([]VertexStamp[V](nil), s.VerticesRemoved...),
		EdgesAdded:      append([]EdgeStamp[V](nil), s.EdgesAdded...),
		EdgesRemoved:    append([]EdgeStamp[V](nil), s.EdgesRemoved...),
	}
}

// Equal reports whether s and other hold the same four sets, ignoring order.
func (s State[V]) Equal(other State[V]) bool {
	va, vr, ea, er := s.Sets()
	ova, ovr, oea, oer := other.Sets()

	return equalVertexMaps(va, ova) && equalVertexMaps(vr, ovr) &&
		equalEdgeMaps(ea, oea) && equalEdgeMaps(er, oer)
}

// Len returns the total number of entries across the four sets.
func (s State[V]) Len() int {
	return len(s.VerticesAdded) + len(s.VerticesRemoved) + len(s.EdgesAdded) + len(s.EdgesRemoved)
}

// Validate checks that every added edge has both endpoints in the
// added-vertex set. Tombstoned edges are not checked: removing a never-added
// edge is legal.
func (s State[V]) Validate() error {
	added := vertexMap(s.VerticesAdded)
	for _, e := range s.EdgesAdded {
		if _, ok := added[e.From]; !ok {
			return fmt.Errorf("core: Validate: %v→%v: source %v: %w", e.From, e.To, e.From, ErrDanglingEdge)
		}
		if _, ok := added[e.To]; !ok {
			return fmt.Errorf("core: Validate: %v→%v: target %v: %w", e.From, e.To, e.To, ErrDanglingEdge)
		}
	}

	return nil
}

func vertexStamps[V comparable](s *stamps[V]) []VertexStamp[V] {
	out := make([]VertexStamp[V], 0, s.len())
	for _, v := range s.order {
		out = append(out, VertexStamp[V]{Vertex: v, At: s.at[v]})
	}

	return out
}

func edgeStamps[V comparable](a *adjacency[V]) []EdgeStamp[V] {
	out := make([]EdgeStamp[V], 0, a.len())
	for _, from := range a.order {
		r := a.rows[from]
		for _, to := range r.order {
			out = append(out, EdgeStamp[V]{From: from, To: to, At: r.at[to]})
		}
	}

	return out
}

func vertexStampsFromMap[V comparable](m map[V]Timestamp) []VertexStamp[V] {
	out := make([]VertexStamp[V], 0, len(m))
	for v, ts := range m {
		out = append(out, VertexStamp[V]{Vertex: v, At: ts})
	}

	return out
}

func edgeStampsFromMap[V comparable](m map[V]map[V]Timestamp) []EdgeStamp[V] {
	var out []EdgeStamp[V]
	for from, row := range m {
		for to, ts := range row {
			out = append(out, EdgeStamp[V]{From: from, To: to, At: ts})
		}
	}
	if out == nil {
		out = []EdgeStamp[V]{}
	}

	return out
}

func vertexMap[V comparable](entries []VertexStamp[V]) map[V]Timestamp {
	out := make(map[V]Timestamp, len(entries))
	for _, e := range entries {
		if cur, ok := out[e.Vertex]; !ok || e.At > cur {
			out[e.Vertex] = e.At
		}
	}

	return out
}

func edgeMap[V comparable](entries []EdgeStamp[V]) map[V]map[V]Timestamp {
	out := make(map[V]map[V]Timestamp)
	for _, e := range entries {
		row, ok := out[e.From]
		if !ok {
			row = make(map[V]Timestamp)
			out[e.From] = row
		}
		if cur, ok := row[e.To]; !ok || e.At > cur {
			row[e.To] = e.At
		}
	}

	return out
}

func equalVertexMaps[V comparable](a, b map[V]Timestamp) bool {
	if len(a) != len(b) {
		return false
	}
	for v, ts := range a {
		if other, ok := b[v]; !ok || other != ts {
			return false
		}
	}

	return true
}

func equalEdgeMaps[V comparable](a, b map[V]map[V]Timestamp) bool {
	if len(a) != len(b) {
		return false
	}
	for from, row := range a {
		other, ok := b[from]
		if !ok || !equalVertexMaps(row, other) {
			return false
		}
	}

	return true
}
