// SPDX-License-Identifier: MIT
// File: report.go
// Role: Query evaluation and run summaries.

package scenario

import (
	"context"

	"github.com/katalvlaran/lwwgraph/core"
)

// Report is the printable outcome of a run.
type Report struct {
	Replicas  []ReplicaSummary `yaml:"replicas"`
	Queries   []QueryResult    `yaml:"queries,omitempty"`
	Converged bool             `yaml:"converged"`
}

// ReplicaSummary lists the present vertices and edges of one replica.
type ReplicaSummary struct {
	Name     string   `yaml:"name"`
	Vertices []string `yaml:"vertices"`
	Edges    []string `yaml:"edges"`

	// Entries is the number of entries across the four sets, tombstones included.
	Entries int `yaml:"entries"`
}

// QueryResult pairs a query with its value: a bool for exists and edge,
// a list of vertices for connected, vertices, reachable and shortest, a list
// of "from->to" strings for edges, and a list of paths for paths.
type QueryResult struct {
	Query  `yaml:",inline"`
	Result any `yaml:"result"`
}

func evaluate(ctx context.Context, g *core.Graph[string], q Query) (QueryResult, error) {
	out := QueryResult{Query: q}
	switch q.Kind {
	case QueryExists:
		out.Result = g.VertexExists(q.Vertex)
	case QueryEdge:
		out.Result = g.EdgeExists(q.From, q.To)
	case QueryConnected:
		out.Result = g.ConnectedVertices(q.Vertex)
	case QueryVertices:
		out.Result = g.Vertices()
	case QueryEdges:
		out.Result = edgeNames(g.Edges())
	case QueryPaths:
		paths, err := g.FindPathsContext(ctx, q.From, q.To)
		if err != nil {
			return QueryResult{}, err
		}
		out.Result = paths
	case QueryReachable:
		out.Result = g.Reachable(q.Vertex)
	case QueryShortest:
		path, err := g.ShortestPath(ctx, q.From, q.To)
		if err != nil {
			return QueryResult{}, err
		}
		if path == nil {
			path = []string{}
		}
		out.Result = path
	default:
		return QueryResult{}, ErrUnknownQuery
	}

	return out, nil
}

func edgeNames(edges []core.Edge[string]) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.From+"->"+e.To)
	}

	return out
}

func summarize(res *Result) []ReplicaSummary {
	out := make([]ReplicaSummary, 0, len(res.Names))
	for _, name := range res.Names {
		g := res.Graphs[name]
		out = append(out, ReplicaSummary{
			Name:     name,
			Vertices: g.Vertices(),
			Edges:    edgeNames(g.Edges()),
			Entries:  g.Snapshot().Len(),
		})
	}

	return out
}

// converged reports whether every replica holds the same four sets.
func converged(res *Result) bool {
	first := res.Graphs[res.Names[0]].Snapshot()
	for _, name := range res.Names[1:] {
		if !first.Equal(res.Graphs[name].Snapshot()) {
			return false
		}
	}

	return true
}
