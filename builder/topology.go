// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// topology.go - classic directed topologies emitted through AddEdge.
//
// Contract:
//   - Edges are emitted in increasing index order, so ConnectedVertices order is stable.
//   - Endpoints are created by AddEdge's auto-add; no separate vertex pass.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lwwgraph/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minSparseNodes   = 1
)

// Path returns a Constructor that adds 0→1→…→n-1.
func Path[V comparable](n int) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(id(i-1), id(i))
		}

		return nil
	}
}

// Cycle returns a Constructor that adds Path(n) and the closing edge n-1→0.
func Cycle[V comparable](n int) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(id(i-1), id(i))
		}
		g.AddEdge(id(n-1), id(0))

		return nil
	}
}

// Star returns a Constructor that adds the center 0 pointing at 1..n-1.
func Star[V comparable](n int) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := id(0)
		for i := 1; i < n; i++ {
			g.AddEdge(center, id(i))
		}

		return nil
	}
}

// Complete returns a Constructor that adds i→j for every ordered pair i ≠ j.
// Complete(1) adds the single vertex 0.
func Complete[V comparable](n int) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if n == 1 {
			g.AddVertex(id(0))
			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					g.AddEdge(id(i), id(j))
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that adds every vertex 0..n-1, then each
// ordered pair i→j (i ≠ j) independently with probability p, drawn from a
// generator seeded with seed.
func RandomSparse[V comparable](n int, p float64, seed int64) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			g.AddVertex(id(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				// One trial per ordered pair keeps the sequence stable for a seed.
				if i != j && rng.Float64() < p {
					g.AddEdge(id(i), id(j))
				}
			}
		}

		return nil
	}
}
