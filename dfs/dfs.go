// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"
)

// pathWalker encapsulates state during path enumeration.
type pathWalker[V comparable] struct {
	adj   Adjacency[V] // neighbor source
	end   V            // target vertex
	opts  Options      // search options
	paths [][]V        // collected paths
}

// AllPaths returns every simple path from start to end in adj.
//
// The base case start == end yields the single path [start]. A vertex with no
// out-neighbors, or whose neighbors are all already on the current path, ends
// its branch without contributing a path. The result is never nil; an
// unreachable pair yields an empty slice.
//
// AllPaths does not check whether start or end are members of any graph;
// callers that distinguish absent vertices filter before calling.
func AllPaths[V comparable](adj Adjacency[V], start, end V, opts ...Option) ([][]V, error) {
	// 1. Validate input
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Walk from start with an empty accumulator
	w := &pathWalker[V]{adj: adj, end: end, opts: o, paths: [][]V{}}
	if err := w.walk(nil, start); err != nil {
		return w.paths, err
	}

	return w.paths, nil
}

// walk appends at to path and either records a finished path or recurses.
func (w *pathWalker[V]) walk(path []V, at V) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return fmt.Errorf("dfs: AllPaths: %w", w.opts.Ctx.Err())
	default:
	}

	// 2. Extend an immutable copy
	path = extend(path, at)

	// 3. Base case
	if at == w.end {
		w.paths = append(w.paths, path)
		return nil
	}

	// 4. Depth limit: len(path)-1 edges so far
	if w.opts.MaxDepth >= 0 && len(path)-1 >= w.opts.MaxDepth {
		return nil
	}

	// 5. Explore neighbors not yet on the path
	for _, next := range w.adj.ConnectedVertices(at) {
		if w.full() {
			return nil
		}
		if IndexOf(path, next) >= 0 {
			continue
		}
		if err := w.walk(path, next); err != nil {
			return err
		}
	}

	return nil
}

// full reports whether MaxPaths has been reached.
func (w *pathWalker[V]) full() bool {
	return w.opts.MaxPaths > 0 && len(w.paths) >= w.opts.MaxPaths
}
