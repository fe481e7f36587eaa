// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"errors"
)

// ErrNilAdjacency is returned when AllPaths is called without an adjacency source.
var ErrNilAdjacency = errors.New("dfs: adjacency is nil")

// Adjacency reports the out-neighbors of a vertex. Implementations decide
// which edges count as present; the order of the returned slice fixes the
// order of the paths AllPaths produces.
type Adjacency[V comparable] interface {
	ConnectedVertices(v V) []V
}

// Option configures optional behavior of path search.
type Option func(*Options)

// Options holds configurable parameters for path search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, drops paths with more than MaxDepth edges.
	// Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, stops the search once that many paths are found.
	// Default is 0 (no limit).
	MaxPaths int
}

// DefaultOptions returns Options with a background context and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxPaths: 0,
	}
}

// WithContext sets the context checked at every step.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits paths to at most limit edges. A limit of 0 only
// matches start == end.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithMaxPaths stops the search after limit paths. Non-positive means unlimited.
func WithMaxPaths(limit int) Option {
	return func(o *Options) {
		o.MaxPaths = limit
	}
}
