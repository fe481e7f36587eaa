// SPDX-License-Identifier: MIT
package scenario_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/internal/scenario"
)

func TestLoad(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "replicas.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "lamport", sc.Clock)
	require.Len(t, sc.Replicas, 3)
	assert.Equal(t, "b", sc.Replicas[1].Name)
	require.NotNil(t, sc.Replicas[1].Ops[1].At)
	assert.Equal(t, int64(30), *sc.Replicas[1].Ops[1].At)
	assert.Nil(t, sc.Replicas[2].Ops[0].At)
	assert.True(t, sc.Sync[1].All)
}

func TestLoad_Missing(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", ``, scenario.ErrNoReplicas},
		{"no replicas", `replicas: []`, scenario.ErrNoReplicas},
		{"clock", "clock: atomic\nreplicas: [{name: a}]", scenario.ErrUnknownClock},
		{"duplicate", `replicas: [{name: a}, {name: a}]`, scenario.ErrDuplicateReplica},
		{"unnamed", `replicas: [{ops: []}]`, scenario.ErrMissingField},
		{"op", `replicas: [{name: a, ops: [{op: rename}]}]`, scenario.ErrUnknownOp},
		{"topology", `replicas: [{name: a, ops: [{op: topology, topology: torus}]}]`, scenario.ErrUnknownOp},
		{"vertex", `replicas: [{name: a, ops: [{op: add_vertex}]}]`, scenario.ErrMissingField},
		{"edge", `replicas: [{name: a, ops: [{op: remove_edge, from: x}]}]`, scenario.ErrMissingField},
		{"sync", "replicas: [{name: a}]\nsync: [{from: a, to: z}]", scenario.ErrUnknownReplica},
		{"sync half", "replicas: [{name: a}]\nsync: [{from: a}]", scenario.ErrMissingField},
		{"query replica", "replicas: [{name: a}]\nqueries: [{replica: z, kind: vertices}]", scenario.ErrUnknownReplica},
		{"query kind", "replicas: [{name: a}]\nqueries: [{replica: a, kind: degree}]", scenario.ErrUnknownQuery},
		{"query args", "replicas: [{name: a}]\nqueries: [{replica: a, kind: paths, from: x}]", scenario.ErrMissingField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := scenario.Parse(strings.NewReader(`replicas: [{name: a, colour: red}]`))
	assert.Error(t, err)
}

func TestRun_Replicas(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "replicas.yaml"))
	require.NoError(t, err)

	res, err := scenario.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)

	assert.True(t, res.Report.Converged)
	assert.Equal(t, []string{"a", "b", "c"}, res.Names)

	require.Len(t, res.Report.Queries, 6)
	assert.Equal(t, false, res.Report.Queries[0].Result, "b removed 1→2 after both adds")
	assert.Equal(t, [][]string{{"1", "3", "5"}}, res.Report.Queries[1].Result)
	assert.Equal(t, []string{"c1"}, res.Report.Queries[2].Result)
	assert.Equal(t, false, res.Report.Queries[3].Result)
	assert.Equal(t, []string{"1", "3", "5"}, res.Report.Queries[4].Result)
	assert.Equal(t, []string{"1", "3", "5"}, res.Report.Queries[5].Result)

	a := res.Graphs["a"]
	assert.Equal(t, core.Timestamp(30), a.EdgesRemoved()["1"]["2"])
	assert.ElementsMatch(t, []string{"1", "2", "5", "3", "c1", "c0", "c2"}, a.Vertices())

	require.Len(t, res.Report.Replicas, 3)
	for _, sum := range res.Report.Replicas {
		assert.ElementsMatch(t, res.Report.Replicas[0].Vertices, sum.Vertices, sum.Name)
		assert.Equal(t, res.Report.Replicas[0].Entries, sum.Entries, sum.Name)
	}
}

func TestRun_NotConvergedWithoutSync(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(`
replicas:
  - {name: a, ops: [{op: add_vertex, vertex: x}]}
  - {name: b, ops: [{op: add_vertex, vertex: y}]}
queries:
  - {replica: a, kind: vertices}
  - {replica: b, kind: edges}
`))
	require.NoError(t, err)

	res, err := scenario.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)
	assert.False(t, res.Report.Converged)
	assert.Equal(t, []string{"x"}, res.Report.Queries[0].Result)
	assert.Equal(t, []string{}, res.Report.Queries[1].Result)
}

func TestRun_TopologyError(t *testing.T) {
	sc := &scenario.Scenario{Replicas: []scenario.Replica{{
		Name: "a",
		Ops:  []scenario.Op{{Op: scenario.OpTopology, Topology: scenario.TopologyCycle, N: 2}},
	}}}

	_, err := scenario.NewRunner().Run(context.Background(), sc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `replica "a"`)
}

func TestRun_Cancelled(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "replicas.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = scenario.NewRunner().Run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsAndHooks(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "replicas.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	merges := make(map[string]int)
	var mu syncCounter
	runner := scenario.NewRunner(
		scenario.WithLogger(logger),
		scenario.WithGraphOptions(func(replica string) []core.GraphOption {
			return []core.GraphOption{core.WithOnMerge(func(core.MergeReport) { mu.inc(merges, replica) })}
		}),
	)
	_, err = runner.Run(context.Background(), sc)
	require.NoError(t, err)

	// b→a, then a gathers b and c and hands back to both.
	assert.Equal(t, map[string]int{"a": 3, "b": 1, "c": 1}, merges)

	out := buf.String()
	assert.Contains(t, out, "Synchronizing replicas")
	assert.Contains(t, out, "msg=\"Merged replica\" from=b to=a")
	assert.Contains(t, out, "replica=c")
}

func TestReport_YAML(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "replicas.yaml"))
	require.NoError(t, err)
	res, err := scenario.NewRunner().Run(context.Background(), sc)
	require.NoError(t, err)

	data, err := yaml.Marshal(res.Report)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "converged: true")
	assert.Contains(t, out, "kind: paths")
	assert.Contains(t, out, "- name: a")
}
