// SPDX-License-Identifier: MIT
package bfs

import "fmt"

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	adj   Adjacency[V]
	opts  Options
	queue []queueItem[V]
	res   *Result[V]
}

// Walk runs breadth-first search over adj starting from start, applying any
// number of functional Options. The start vertex is always visited; whether
// it exists is for the adjacency source to decide.
//
// Returns ErrNilAdjacency for a nil source, ErrOptionViolation for bad
// options, or the wrapped context error together with the partial result.
func Walk[V comparable](adj Adjacency[V], start V, opts ...Option) (*Result[V], error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		adj:  adj,
		opts: o,
		res: &Result[V]{
			Order:  []V{},
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue records v at depth d with its parent, if any, and queues it.
func (w *walker[V]) enqueue(v V, d int, parent *V) {
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.queue = append(w.queue, queueItem[V]{id: v, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("bfs: Walk: %w", err)
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.ConnectedVertices(item.id) {
			// first time seen?
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next, &item.id)
			}
		}
	}

	return nil
}
