// SPDX-License-Identifier: MIT
// Package: lwwgraph/builder
//
// api.go - public entry points.
//
// Design contract:
//   - BuildGraph creates a graph and runs constructors in order; Apply runs them on an existing graph.
//   - Constructors validate parameters first and never panic.
//   - Determinism: same inputs and constructor order ⇒ identical graphs (given a fixed clock).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lwwgraph/core"
)

// Constructor applies a deterministic mutation to g, mapping indices with id.
type Constructor[V comparable] func(g *core.Graph[V], id IDFn[V]) error

// BuildGraph creates a new core.Graph with gopts and applies every
// constructor in order. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph[V comparable](gopts []core.GraphOption, id IDFn[V], cons ...Constructor[V]) (*core.Graph[V], error) {
	g := core.NewGraph[V](gopts...)
	if err := Apply(g, id, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors on an existing graph. No partial cleanup is
// attempted on error: the CRDT sets are append-only.
func Apply[V comparable](g *core.Graph[V], id IDFn[V], cons ...Constructor[V]) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if id == nil {
		return fmt.Errorf("Apply: nil IDFn: %w", ErrConstructFailed)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, id); err != nil {
			return err
		}
	}

	return nil
}
