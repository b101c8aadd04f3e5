package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/core"
)

func sampleSerialized() core.SerializedGraph {
	return core.SerializedGraph{
		Directed: true,
		Nodes: []core.SerializedNode{
			{ID: "A", Label: "start", X: 120, Y: 120},
			{ID: "B", X: 320, Y: 120},
		},
		Edges: []core.SerializedEdge{
			{ID: "ab", Source: "A", Target: "B", Weight: core.Weight(1.5)},
			{ID: "ba", Source: "B", Target: "A"},
		},
	}
}

func TestSerializedRoundTrip(t *testing.T) {
	in := sampleSerialized()
	g, err := core.FromSerialized(in)
	require.NoError(t, err)
	require.True(t, g.Directed())
	if diff := cmp.Diff(in, g.ToSerialized()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	g, err := core.FromSerialized(sampleSerialized())
	require.NoError(t, err)

	for _, f := range []core.Format{core.FormatJSON, core.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, core.Encode(&buf, g, f))
			back, err := core.Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(g.ToSerialized(), back.ToSerialized()); diff != "" {
				t.Fatalf("codec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFailsOnDanglingEdge(t *testing.T) {
	payload := `{"directed":false,"nodes":[{"id":"A","x":0,"y":0}],` +
		`"edges":[{"id":"e1","source":"A","target":"ghost"}]}`
	_, err := core.DecodeJSON(strings.NewReader(payload))
	require.ErrorIs(t, err, core.ErrDanglingEdge)
}

func TestDecodeFailsOnParallelEdge(t *testing.T) {
	s := sampleSerialized()
	s.Directed = false
	_, err := core.FromSerialized(s)
	require.ErrorIs(t, err, core.ErrParallelEdge)

	payload := `{"directed":true,"nodes":[{"id":"A","x":0,"y":0},{"id":"B","x":1,"y":0}],` +
		`"edges":[{"id":"e1","source":"A","target":"B"},{"id":"e2","source":"A","target":"B"}]}`
	_, err = core.DecodeJSON(strings.NewReader(payload))
	require.ErrorIs(t, err, core.ErrParallelEdge)
}

func TestDecodeValidation(t *testing.T) {
	yml := "directed: true\nnodes:\n  - id: \"\"\n    x: 1\n    y: 2\nedges: []\n"
	_, err := core.DecodeYAML(strings.NewReader(yml))
	require.ErrorIs(t, err, core.ErrInvalidGraph)

	s := sampleSerialized()
	s.Nodes = append(s.Nodes, core.SerializedNode{ID: "A"})
	_, err = core.FromSerialized(s)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := core.DecodeJSON(strings.NewReader("{"))
	require.Error(t, err)
	_, err = core.Decode(strings.NewReader("{}"), core.Format("toml"))
	require.ErrorIs(t, err, core.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	f, err := core.FormatFromPath("graphs/demo.JSON")
	require.NoError(t, err)
	require.Equal(t, core.FormatJSON, f)
	f, err = core.FormatFromPath("demo.yml")
	require.NoError(t, err)
	require.Equal(t, core.FormatYAML, f)
	_, err = core.FormatFromPath("demo.txt")
	require.ErrorIs(t, err, core.ErrUnknownFormat)
}
