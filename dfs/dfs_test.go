package dfs_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dfs"
)

func TestDFS_Sample(t *testing.T) {
	tests := []struct {
		name      string
		directed  bool
		wantOrder []string
		wantEdges []string
		wantSteps int
	}{
		{"directed", true, []string{"A", "B", "F", "C"}, []string{"A-B", "B-F", "A-C"}, 4},
		{"undirected", false, []string{"A", "B", "F", "E", "D", "C"}, []string{"A-B", "B-F", "E-F", "D-E", "D-C"}, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := dfs.New()
			require.NoError(t, d.Initialize(builder.SampleGraph(tc.directed)))
			assert.Equal(t, []string{"A"}, d.State().CurrentNodes)

			steps := 0
			for d.Step() {
				steps++
			}
			assert.Equal(t, tc.wantSteps, steps)
			assert.Equal(t, tc.wantOrder, d.Order())
			assert.Equal(t, tc.wantEdges, d.State().HighlightedEdges)
			assert.Equal(t, algorithm.Terminal, d.Phase())
			assert.Empty(t, d.Stack())
			for i, id := range tc.wantOrder {
				assert.Equal(t, float64(i+1), d.State().NodeValues[id])
			}
		})
	}
}

func TestDFS_StepDescription(t *testing.T) {
	d := dfs.New()
	require.NoError(t, d.Initialize(builder.SampleGraph(true)))

	require.True(t, d.Step())
	assert.Equal(t,
		"Visiting node A.\n"+
			"Pushed node B via edge A-B with weight 1.\n"+
			"Pushed node C via edge A-C with weight 4.\n"+
			"Pushed node F via edge A-F with weight 9.",
		d.StepInfo())
	assert.Equal(t, []string{"B", "C", "F"}, d.Stack())

	require.True(t, d.Step())
	assert.Equal(t, "Visiting node B via edge A-B (A→B).\nPushed node F via edge B-F with weight 5.", d.StepInfo())
	assert.Equal(t, []string{"B", "F"}, d.State().CurrentNodes)
	assert.Equal(t, []string{"A-B"}, d.State().CurrentEdges)
}

func TestDFS_Degenerate(t *testing.T) {
	d := dfs.New()
	assert.False(t, d.Step())
	assert.ErrorIs(t, d.Initialize(nil), algorithm.ErrGraphNil)

	require.NoError(t, d.Initialize(core.NewGraph()))
	assert.Equal(t, algorithm.Terminal, d.Phase())
	assert.False(t, d.Step())

	d = dfs.New(algorithm.WithStart("nope"))
	assert.ErrorIs(t, d.Initialize(builder.SampleGraph(false)), algorithm.ErrStartNotFound)
}

func TestDFS_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("tree edges connect each visit to an earlier one", prop.ForAll(
		func(seed int64, n int, directed bool) bool {
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(directed)},
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomSparse(n, 0.3),
			)
			if err != nil {
				return false
			}
			d := dfs.New()
			if d.Initialize(g) != nil {
				return false
			}
			for d.Step() {
			}
			order := d.Order()
			pos := make(map[string]int, len(order))
			for i, id := range order {
				pos[id] = i
			}
			edges := d.State().HighlightedEdges
			if len(edges) != len(order)-1 {
				return false
			}
			for _, eid := range edges {
				e := g.Edge(eid)
				ps, okS := pos[e.Source.ID]
				pt, okT := pos[e.Target.ID]
				if !okS || !okT {
					return false
				}
				if directed && ps > pt {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 12),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
