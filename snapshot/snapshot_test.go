// SPDX-License-Identifier: MIT
package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

// sample returns a replica state with entries in all four sets.
func sample() core.State[string] {
	g := core.NewGraph[string]()
	g.AddEdgeAt("a", "b", 10)
	g.AddEdgeAt("b", "c", 20)
	g.RemoveVertexAt("b", 30)
	g.AddVertexAt("d", 40)
	g.RemoveEdgeAt("x", "y", 50)

	return g.Snapshot()
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			in := snapshot.New("r1", sample())

			var buf bytes.Buffer
			require.NoError(t, snapshot.Encode(&buf, f, in))

			out, err := snapshot.Decode[string](&buf, f)
			require.NoError(t, err)
			assert.Equal(t, snapshot.Version, out.Version)
			assert.Equal(t, "r1", out.Replica)
			assert.True(t, in.State.Equal(out.State))
			assert.Equal(t, in.State.EdgesAdded, out.State.EdgesAdded, "entry order survives the codec")
		})
	}
}

func TestEncode_JSONLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, snapshot.FormatJSON, snapshot.File[string]{
		State: core.State[string]{VerticesAdded: []core.VertexStamp[string]{{Vertex: "a", At: 7}}},
	}))

	out := buf.String()
	assert.Contains(t, out, `"version": 1`)
	assert.Contains(t, out, `"vertices_added": [`)
	assert.Contains(t, out, `"vertex": "a"`)
	assert.NotContains(t, out, `"replica"`)
}

func TestDecode_Rejects(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		_, err := snapshot.Decode[string](strings.NewReader(`{"version": 2, "state": {}}`), snapshot.FormatJSON)
		assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)
	})
	t.Run("dangling edge", func(t *testing.T) {
		doc := `{"version": 1, "state": {"edges_added": [{"from": "a", "to": "b", "at": 1}]}}`
		_, err := snapshot.Decode[string](strings.NewReader(doc), snapshot.FormatJSON)
		assert.ErrorIs(t, err, core.ErrDanglingEdge)
	})
	t.Run("unknown field", func(t *testing.T) {
		_, err := snapshot.Decode[string](strings.NewReader(`{"version": 1, "stat": {}}`), snapshot.FormatJSON)
		assert.Error(t, err)
	})
	t.Run("garbage msgpack", func(t *testing.T) {
		_, err := snapshot.Decode[string](bytes.NewReader([]byte{0xc1}), snapshot.FormatMsgpack)
		assert.Error(t, err)
	})
	t.Run("format", func(t *testing.T) {
		_, err := snapshot.Decode[string](strings.NewReader(`{}`), snapshot.Format("xml"))
		assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
		assert.ErrorIs(t, snapshot.Encode(&bytes.Buffer{}, snapshot.Format("xml"), snapshot.File[string]{}), snapshot.ErrUnknownFormat)
	})
}

func TestParseFormat(t *testing.T) {
	cases := map[string]snapshot.Format{
		"json":    snapshot.FormatJSON,
		"JSON":    snapshot.FormatJSON,
		"msgpack": snapshot.FormatMsgpack,
		"mp":      snapshot.FormatMsgpack,
	}
	for name, want := range cases {
		got, err := snapshot.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := snapshot.ParseFormat("yaml")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := snapshot.FormatFromPath("/tmp/a.json")
	require.NoError(t, err)
	assert.Equal(t, snapshot.FormatJSON, f)

	f, err = snapshot.FormatFromPath("replica.b.msgpack")
	require.NoError(t, err)
	assert.Equal(t, snapshot.FormatMsgpack, f)
	assert.Equal(t, ".msgpack", f.Ext())

	_, err = snapshot.FormatFromPath("state")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
	_, err = snapshot.FormatFromPath("state.txt")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	in := snapshot.New("r2", sample())

	for _, name := range []string{"r2.json", "r2.msgpack"} {
		path := filepath.Join(dir, name)
		require.NoError(t, snapshot.Write(path, in))

		out, err := snapshot.Read[string](path)
		require.NoError(t, err, name)
		assert.True(t, in.State.Equal(out.State), name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files left behind")

	assert.ErrorIs(t, snapshot.Write(filepath.Join(dir, "r2.txt"), in), snapshot.ErrUnknownFormat)
	_, err = snapshot.Read[string](filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_RestoresGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, snapshot.Write(path, snapshot.New("g", sample())))

	file, err := snapshot.Read[string](path)
	require.NoError(t, err)

	g := core.NewGraphFromState(file.State)
	assert.Equal(t, []string{"a", "c", "d"}, g.Vertices())
	assert.Empty(t, g.ConnectedVertices("a"))
}
