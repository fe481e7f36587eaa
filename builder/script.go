// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// script.go - seeded operation scripts with explicit timestamps.
//
// Scripts drive convergence tests: several replicas replay different scripts,
// then merge in different orders. Timestamps are drawn from a small range so
// that equal timestamps (add/remove ties) occur regularly.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
)

const methodRandomScript = "RandomScript"

// Step is one scripted mutation over vertex indices. Vertex operations use From only.
type Step struct {
	Op   core.Op
	From int
	To   int
	At   clock.Timestamp
}

// Script is an ordered list of steps.
type Script []Step

// RandomScript returns steps mutations over n vertices drawn from a
// generator seeded with seed. Each step picks one of the four operations
// uniformly and a timestamp in [1, steps].
func RandomScript(n, steps int, seed int64) (Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomScript, n, ErrTooFewVertices)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%s: steps=%d < min=1: %w", methodRandomScript, steps, ErrTooFewVertices)
	}

	rng := rand.New(rand.NewSource(seed))
	ops := [...]core.Op{core.OpAddVertex, core.OpAddEdge, core.OpRemoveVertex, core.OpRemoveEdge}
	out := make(Script, 0, steps)
	for i := 0; i < steps; i++ {
		out = append(out, Step{
			Op:   ops[rng.Intn(len(ops))],
			From: rng.Intn(n),
			To:   rng.Intn(n),
			At:   clock.Timestamp(rng.Int63n(int64(steps)) + 1),
		})
	}

	return out, nil
}

// Replay returns a Constructor that applies s with the scripted timestamps.
func Replay[V comparable](s Script) Constructor[V] {
	return func(g *core.Graph[V], id IDFn[V]) error {
		for i, st := range s {
			switch st.Op {
			case core.OpAddVertex:
				g.AddVertexAt(id(st.From), st.At)
			case core.OpAddEdge:
				g.AddEdgeAt(id(st.From), id(st.To), st.At)
			case core.OpRemoveVertex:
				g.RemoveVertexAt(id(st.From), st.At)
			case core.OpRemoveEdge:
				g.RemoveEdgeAt(id(st.From), id(st.To), st.At)
			default:
				return fmt.Errorf("Replay: step %d: op %v: %w", i, st.Op, ErrConstructFailed)
			}
		}

		return nil
	}
}
