// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph type, construction options and the events reported to hooks.
//
// Errors:
//   - ErrDanglingEdge: a snapshot holds an added edge whose endpoint was never added.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lwwgraph/clock"
)

// Sentinel errors for core graph operations.
var (
	// ErrDanglingEdge indicates an added edge whose endpoint has no entry in
	// the added-vertex set.
	ErrDanglingEdge = errors.New("core: edge endpoint missing from added vertices")
)

// Timestamp orders operations; see package clock.
type Timestamp = clock.Timestamp

// Edge is a directed pair of vertex identifiers.
type Edge[V comparable] struct {
	From V
	To   V
}

// Op identifies the kind of a mutation.
type Op uint8

// Mutation kinds.
const (
	OpAddVertex Op = iota + 1
	OpAddEdge
	OpRemoveVertex
	OpRemoveEdge
)

// String returns the snake_case name of the operation.
func (o Op) String() string {
	switch o {
	case OpAddVertex:
		return "add_vertex"
	case OpAddEdge:
		return "add_edge"
	case OpRemoveVertex:
		return "remove_vertex"
	case OpRemoveEdge:
		return "remove_edge"
	default:
		return "unknown"
	}
}

// Mutation describes one applied mutation.
type Mutation struct {
	// Op is the operation kind.
	Op Op

	// At is the timestamp written by the operation.
	At Timestamp

	// Implied counts the nested writes of the operation: endpoints auto-added
	// by AddEdge, or incident edges tombstoned by RemoveVertex.
	Implied int
}

// MergeReport summarizes a merge: how many remote entries were examined and
// how many local keys changed (inserted or raised) in each set.
type MergeReport struct {
	Entries         int
	VerticesAdded   int
	VerticesRemoved int
	EdgesAdded      int
	EdgesRemoved    int

	// Latest is the greatest timestamp among the examined entries.
	Latest Timestamp
}

// Changed returns the total number of changed keys.
func (r MergeReport) Changed() int {
	return r.VerticesAdded + r.VerticesRemoved + r.EdgesAdded + r.EdgesRemoved
}

// see records a remote timestamp.
func (r *MergeReport) see(ts Timestamp) {
	if r.Entries == 0 || ts > r.Latest {
		r.Latest = ts
	}
	r.Entries++
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// graphConfig collects construction-time settings independent of V.
type graphConfig struct {
	clock      clock.Source
	onMutation func(Mutation)
	onMerge    func(MergeReport)
}

// WithClock sets the timestamp source for operations without an explicit
// timestamp. A nil source is ignored.
func WithClock(src clock.Source) GraphOption {
	return func(cfg *graphConfig) {
		if src != nil {
			cfg.clock = src
		}
	}
}

// WithOnMutation installs fn, called after every mutation has been applied
// and the lock released. Hooks are chained in option order.
func WithOnMutation(fn func(Mutation)) GraphOption {
	return func(cfg *graphConfig) {
		if fn == nil {
			return
		}
		prev := cfg.onMutation
		if prev == nil {
			cfg.onMutation = fn
			return
		}
		cfg.onMutation = func(m Mutation) { prev(m); fn(m) }
	}
}

// WithOnMerge installs fn, called after every merge has been applied and the
// lock released. Hooks are chained in option order.
func WithOnMerge(fn func(MergeReport)) GraphOption {
	return func(cfg *graphConfig) {
		if fn == nil {
			return
		}
		prev := cfg.onMerge
		if prev == nil {
			cfg.onMerge = fn
			return
		}
		cfg.onMerge = func(r MergeReport) { prev(r); fn(r) }
	}
}

// Graph is a directed LWW element graph over vertex identifiers of type V.
//
// mu guards all four sets; see the package documentation for the locking
// model. The zero value is not usable; construct with NewGraph.
type Graph[V comparable] struct {
	mu  sync.RWMutex
	cfg graphConfig

	verticesAdded   *stamps[V]
	verticesRemoved *stamps[V]
	edgesAdded      *adjacency[V]
	edgesRemoved    *adjacency[V]
}

// NewGraph creates an empty Graph. By default timestamps come from clock.NewWall.
// Complexity: O(len(opts))
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	g := &Graph[V]{
		verticesAdded:   newStamps[V](),
		verticesRemoved: newStamps[V](),
		edgesAdded:      newAdjacency[V](),
		edgesRemoved:    newAdjacency[V](),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	if g.cfg.clock == nil {
		g.cfg.clock = clock.NewWall()
	}

	return g
}
