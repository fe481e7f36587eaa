// SPDX-License-Identifier: MIT
// Package metrics exports replica activity as Prometheus counters.
//
// A Collector is registered once per process; each replica obtains the
// graph options that feed it with For:
//
//	c := metrics.New(prometheus.NewRegistry())
//	g := core.NewGraph[string](c.For("a")...)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lwwgraph/core"
)

const namespace = "lwwgraph"

// Set label values for merge changes.
const (
	SetVerticesAdded   = "vertices_added"
	SetVerticesRemoved = "vertices_removed"
	SetEdgesAdded      = "edges_added"
	SetEdgesRemoved    = "edges_removed"
)

// Collector holds the counters shared by every replica of a process.
type Collector struct {
	// Mutations counts applied mutations.
	// Labels: replica, op (add_vertex, add_edge, remove_vertex, remove_edge)
	Mutations *prometheus.CounterVec

	// ImpliedWrites counts endpoints auto-added by AddEdge and edges
	// tombstoned by the RemoveVertex cascade.
	// Labels: replica, op
	ImpliedWrites *prometheus.CounterVec

	// Merges counts merges performed.
	// Labels: replica
	Merges *prometheus.CounterVec

	// MergeEntries counts remote entries examined by merges.
	// Labels: replica
	MergeEntries *prometheus.CounterVec

	// MergeChanges counts local keys inserted or raised by merges.
	// Labels: replica, set (vertices_added, vertices_removed, edges_added, edges_removed)
	MergeChanges *prometheus.CounterVec
}

// New creates a Collector and registers its counters with reg. A nil reg
// leaves the counters unregistered.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutations applied to a replica",
		}, []string{"replica", "op"}),
		ImpliedWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "implied_writes_total",
			Help:      "Endpoints auto-added and incident edges tombstoned by mutations",
		}, []string{"replica", "op"}),
		Merges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Merges of remote state into a replica",
		}, []string{"replica"}),
		MergeEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_entries_total",
			Help:      "Remote entries examined by merges",
		}, []string{"replica"}),
		MergeChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_changes_total",
			Help:      "Local keys inserted or raised by merges",
		}, []string{"replica", "set"}),
	}
}

// RecordMutation counts m for replica.
func (c *Collector) RecordMutation(replica string, m core.Mutation) {
	op := m.Op.String()
	c.Mutations.WithLabelValues(replica, op).Inc()
	if m.Implied > 0 {
		c.ImpliedWrites.WithLabelValues(replica, op).Add(float64(m.Implied))
	}
}

// RecordMerge counts r for replica.
func (c *Collector) RecordMerge(replica string, r core.MergeReport) {
	c.Merges.WithLabelValues(replica).Inc()
	c.MergeEntries.WithLabelValues(replica).Add(float64(r.Entries))

	for set, n := range map[string]int{
		SetVerticesAdded:   r.VerticesAdded,
		SetVerticesRemoved: r.VerticesRemoved,
		SetEdgesAdded:      r.EdgesAdded,
		SetEdgesRemoved:    r.EdgesRemoved,
	} {
		if n > 0 {
			c.MergeChanges.WithLabelValues(replica, set).Add(float64(n))
		}
	}
}

// For returns graph options that record replica's mutations and merges.
func (c *Collector) For(replica string) []core.GraphOption {
	return []core.GraphOption{
		core.WithOnMutation(func(m core.Mutation) { c.RecordMutation(replica, m) }),
		core.WithOnMerge(func(r core.MergeReport) { c.RecordMerge(replica, r) }),
	}
}
