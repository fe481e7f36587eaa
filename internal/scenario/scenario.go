// SPDX-License-Identifier: MIT
// File: scenario.go
// Role: Scenario document model, decoding and validation.

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lwwgraph/clock"
	"github.com/katalvlaran/lwwgraph/core"
)

// Operation names accepted in Op.Op. The first four match core.Op.String.
const (
	OpAddVertex    = "add_vertex"
	OpAddEdge      = "add_edge"
	OpRemoveVertex = "remove_vertex"
	OpRemoveEdge   = "remove_edge"
	OpTopology     = "topology"
)

// Topology names accepted in Op.Topology.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
	TopologyRandom   = "random"
)

// Query kinds accepted in Query.Kind.
const (
	QueryExists    = "exists"
	QueryEdge      = "edge"
	QueryConnected = "connected"
	QueryPaths     = "paths"
	QueryVertices  = "vertices"
	QueryEdges     = "edges"
	QueryReachable = "reachable"
	QueryShortest  = "shortest"
)

// Scenario is a complete multi-replica session.
type Scenario struct {
	// Clock selects the timestamp source of every replica: wall (default),
	// hybrid or lamport. Each replica gets its own instance.
	Clock    string     `yaml:"clock,omitempty"`
	Replicas []Replica  `yaml:"replicas"`
	Sync     []SyncStep `yaml:"sync,omitempty"`
	Queries  []Query    `yaml:"queries,omitempty"`
}

// Replica is a named graph and the operations applied to it locally.
type Replica struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops,omitempty"`
}

// Op is one local operation. Vertex operations use Vertex, edge operations
// use From and To. At, when set, is used as the explicit timestamp.
type Op struct {
	Op     string `yaml:"op"`
	Vertex string `yaml:"vertex,omitempty"`
	From   string `yaml:"from,omitempty"`
	To     string `yaml:"to,omitempty"`
	At     *int64 `yaml:"at,omitempty"`

	// Topology parameters: vertices are named Prefix+index.
	Topology string  `yaml:"topology,omitempty"`
	N        int     `yaml:"n,omitempty"`
	Prefix   string  `yaml:"prefix,omitempty"`
	P        float64 `yaml:"p,omitempty"`
	Seed     int64   `yaml:"seed,omitempty"`
}

// SyncStep merges the snapshot of From into To. With All set, every replica
// exchanges state with every other and From/To are ignored.
type SyncStep struct {
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
	All  bool   `yaml:"all,omitempty"`
}

// Query reads one replica after all sync steps.
type Query struct {
	Replica string `yaml:"replica"`
	Kind    string `yaml:"kind"`
	Vertex  string `yaml:"vertex,omitempty"`
	From    string `yaml:"from,omitempty"`
	To      string `yaml:"to,omitempty"`
}

// Load reads and validates the scenario stored at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: Load: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a YAML scenario from r, rejecting unknown fields, and validates it.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoReplicas
		}
		return nil, fmt.Errorf("scenario: Parse: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks names, references and required fields.
func (sc *Scenario) Validate() error {
	if _, ok := clock.Parse(sc.Clock); !ok {
		return fmt.Errorf("%q: %w", sc.Clock, ErrUnknownClock)
	}
	if len(sc.Replicas) == 0 {
		return ErrNoReplicas
	}

	names := make(map[string]struct{}, len(sc.Replicas))
	for i, rep := range sc.Replicas {
		if rep.Name == "" {
			return fmt.Errorf("replica %d: name: %w", i, ErrMissingField)
		}
		if _, dup := names[rep.Name]; dup {
			return fmt.Errorf("%q: %w", rep.Name, ErrDuplicateReplica)
		}
		names[rep.Name] = struct{}{}
		for j, op := range rep.Ops {
			if err := op.validate(); err != nil {
				return fmt.Errorf("replica %q: op %d: %w", rep.Name, j, err)
			}
		}
	}

	known := func(name string) error {
		if name == "" {
			return ErrMissingField
		}
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownReplica)
		}
		return nil
	}
	for i, st := range sc.Sync {
		if st.All {
			continue
		}
		if err := known(st.From); err != nil {
			return fmt.Errorf("sync %d: from: %w", i, err)
		}
		if err := known(st.To); err != nil {
			return fmt.Errorf("sync %d: to: %w", i, err)
		}
	}
	for i, q := range sc.Queries {
		if err := known(q.Replica); err != nil {
			return fmt.Errorf("query %d: replica: %w", i, err)
		}
		if err := q.validate(); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}

	return nil
}

func (op Op) validate() error {
	switch op.Op {
	case OpAddVertex, OpRemoveVertex:
		if op.Vertex == "" {
			return fmt.Errorf("%s: vertex: %w", op.Op, ErrMissingField)
		}
	case OpAddEdge, OpRemoveEdge:
		if op.From == "" || op.To == "" {
			return fmt.Errorf("%s: from/to: %w", op.Op, ErrMissingField)
		}
	case OpTopology:
		switch op.Topology {
		case TopologyPath, TopologyCycle, TopologyStar, TopologyComplete, TopologyRandom:
		case "":
			return fmt.Errorf("%s: topology: %w", op.Op, ErrMissingField)
		default:
			return fmt.Errorf("%s %q: %w", op.Op, op.Topology, ErrUnknownOp)
		}
	default:
		return fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
	}

	return nil
}

func (q Query) validate() error {
	switch q.Kind {
	case QueryExists, QueryConnected, QueryReachable:
		if q.Vertex == "" {
			return fmt.Errorf("%s: vertex: %w", q.Kind, ErrMissingField)
		}
	case QueryEdge, QueryPaths, QueryShortest:
		if q.From == "" || q.To == "" {
			return fmt.Errorf("%s: from/to: %w", q.Kind, ErrMissingField)
		}
	case QueryVertices, QueryEdges:
	default:
		return fmt.Errorf("%q: %w", q.Kind, ErrUnknownQuery)
	}

	return nil
}

// timestamp returns the explicit timestamp of op, if any.
func (op Op) timestamp() (core.Timestamp, bool) {
	if op.At == nil {
		return 0, false
	}

	return core.Timestamp(*op.At), true
}
