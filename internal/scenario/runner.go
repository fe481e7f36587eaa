// SPDX-License-Identifier: MIT
// File: runner.go
// Role: Executes a Scenario against in-process replicas.
//
// Phases:
//   - Apply: every replica applies its ops in its own goroutine.
//   - Sync: merges run one at a time, in declaration order.
//   - Query: queries are evaluated on the synced replicas.

package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lwwgraph/builder"
	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
)

// Runner executes scenarios. The zero value is not usable; use NewRunner.
type Runner struct {
	log   *slog.Logger
	gopts func(replica string) []core.GraphOption
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for phase and operation events. A nil logger is ignored.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithGraphOptions sets a function returning extra graph options per replica,
// for example metrics hooks.
func WithGraphOptions(fn func(replica string) []core.GraphOption) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.gopts = fn
		}
	}
}

// NewRunner returns a Runner that discards logs unless WithLogger is given.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		gopts: func(string) []core.GraphOption { return nil },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Result is the outcome of a run: the report and the final replicas.
type Result struct {
	Report Report

	// Graphs holds each replica by name; Names keeps declaration order.
	Graphs map[string]*core.Graph[string]
	Names  []string
}

// Run validates sc and executes it. On error no partial result is returned.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Graphs: make(map[string]*core.Graph[string], len(sc.Replicas))}
	for _, rep := range sc.Replicas {
		src, _ := clock.Parse(sc.Clock)
		opts := append([]core.GraphOption{core.WithClock(src)}, r.gopts(rep.Name)...)
		res.Graphs[rep.Name] = core.NewGraph[string](opts...)
		res.Names = append(res.Names, rep.Name)
	}

	r.log.Info("Applying local operations", "replicas", len(sc.Replicas))
	grp, gctx := errgroup.WithContext(ctx)
	for _, rep := range sc.Replicas {
		rep := rep
		g := res.Graphs[rep.Name]
		grp.Go(func() error {
			return r.apply(gctx, rep, g)
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	r.log.Info("Synchronizing replicas", "steps", len(sc.Sync))
	for i, st := range sc.Sync {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario: sync %d: %w", i, err)
		}
		r.sync(res, st)
	}

	r.log.Info("Evaluating queries", "queries", len(sc.Queries))
	for i, q := range sc.Queries {
		out, err := evaluate(ctx, res.Graphs[q.Replica], q)
		if err != nil {
			return nil, fmt.Errorf("scenario: query %d: %w", i, err)
		}
		res.Report.Queries = append(res.Report.Queries, out)
	}

	res.Report.Replicas = summarize(res)
	res.Report.Converged = converged(res)
	r.log.Info("Scenario finished", "converged", res.Report.Converged)

	return res, nil
}

// apply runs one replica's operations in order.
func (r *Runner) apply(ctx context.Context, rep Replica, g *core.Graph[string]) error {
	log := r.log.With("replica", rep.Name)
	for i, op := range rep.Ops {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scenario: replica %q: op %d: %w", rep.Name, i, err)
		}
		if err := applyOp(g, op); err != nil {
			return fmt.Errorf("scenario: replica %q: op %d: %w", rep.Name, i, err)
		}
		log.Debug("Applied op", "index", i, "op", op.Op, "vertex", op.Vertex, "from", op.From, "to", op.To)
	}

	return nil
}

func applyOp(g *core.Graph[string], op Op) error {
	ts, explicit := op.timestamp()
	switch op.Op {
	case OpAddVertex:
		if explicit {
			g.AddVertexAt(op.Vertex, ts)
		} else {
			g.AddVertex(op.Vertex)
		}
	case OpRemoveVertex:
		if explicit {
			g.RemoveVertexAt(op.Vertex, ts)
		} else {
			g.RemoveVertex(op.Vertex)
		}
	case OpAddEdge:
		if explicit {
			g.AddEdgeAt(op.From, op.To, ts)
		} else {
			g.AddEdge(op.From, op.To)
		}
	case OpRemoveEdge:
		if explicit {
			g.RemoveEdgeAt(op.From, op.To, ts)
		} else {
			g.RemoveEdge(op.From, op.To)
		}
	case OpTopology:
		con, err := topology(op)
		if err != nil {
			return err
		}
		return builder.Apply(g, builder.PrefixIDFn(op.Prefix), con)
	default:
		return fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
	}

	return nil
}

func topology(op Op) (builder.Constructor[string], error) {
	switch op.Topology {
	case TopologyPath:
		return builder.Path[string](op.N), nil
	case TopologyCycle:
		return builder.Cycle[string](op.N), nil
	case TopologyStar:
		return builder.Star[string](op.N), nil
	case TopologyComplete:
		return builder.Complete[string](op.N), nil
	case TopologyRandom:
		return builder.RandomSparse[string](op.N, op.P, op.Seed), nil
	default:
		return nil, fmt.Errorf("topology %q: %w", op.Topology, ErrUnknownOp)
	}
}

// sync performs one step. An all-to-all step gathers every replica into the
// first one, then hands the result back to the others.
func (r *Runner) sync(res *Result, st SyncStep) {
	if !st.All {
		r.merge(res, st.From, st.To)
		return
	}
	hub := res.Names[0]
	for _, name := range res.Names[1:] {
		r.merge(res, name, hub)
	}
	for _, name := range res.Names[1:] {
		r.merge(res, hub, name)
	}
}

func (r *Runner) merge(res *Result, from, to string) {
	rep := res.Graphs[to].MergeFrom(res.Graphs[from])
	r.log.Debug("Merged replica", "from", from, "to", to, "entries", rep.Entries, "changed", rep.Changed())
}
