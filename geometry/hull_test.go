package geometry_test

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
	"github.com/katalvlaran/lvstep/geometry"
)

func TestHull_Sample(t *testing.T) {
	h := geometry.NewHull()
	require.NoError(t, h.Initialize(builder.SampleGraph(false)))
	assert.Equal(t, []string{"A"}, h.State().CurrentNodes)

	for i := 0; i < 3; i++ {
		require.True(t, h.Step())
	}
	require.True(t, h.Step()) // B pops F and C off the lower chain
	assert.Equal(t, "Processing node B for the lower hull.\nRemoved node(s) F, C due to a non-counter-clockwise turn.", h.StepInfo())
	assert.Equal(t, []string{"A", "B", "F", "C"}, h.State().CurrentNodes)
	assert.Equal(t, []string{"A-B"}, h.State().CurrentEdges)
	assert.Equal(t, []string{"A", "B"}, h.State().HighlightedNodes)
	assert.Empty(t, h.State().HighlightedEdges)

	require.True(t, h.Step())
	require.True(t, h.Step())
	require.True(t, h.Step())
	assert.Equal(t, "Lower hull completed. Starting upper hull.", h.StepInfo())
	assert.Empty(t, h.State().CurrentNodes)

	steps := 0
	for h.Step() {
		steps++
	}
	assert.Equal(t, 5, steps, "the sixth upper node finalizes in its own step")
	assert.Equal(t, algorithm.Terminal, h.Phase())
	assert.Equal(t, []string{"A", "B", "D", "E", "F"}, h.Hull())
	assert.Equal(t, "Processing node A for the upper hull.\n"+
		"Removed node(s) C due to a non-counter-clockwise turn.\n"+
		"Convex hull completed with vertex order: A → B → D → E → F.", h.StepInfo())

	st := h.State()
	assert.Equal(t, []string{"A", "B", "D", "E", "F"}, st.HighlightedNodes)
	assert.Equal(t, []string{"A-B", "D-E", "E-F", "A-F"}, st.HighlightedEdges)
	assert.Equal(t, st.HighlightedNodes, st.CurrentNodes)
	assert.Equal(t, map[string]float64{"A": 1, "B": 2, "D": 3, "E": 4, "F": 5}, st.NodeValues)
	assert.False(t, h.Step())
}

func TestHull_DirectedEdgesFollowOrientation(t *testing.T) {
	h := geometry.NewHull()
	require.NoError(t, h.Initialize(builder.SampleGraph(true)))
	for h.Step() {
	}
	assert.Equal(t, []string{"A-B", "D-E", "E-F"}, h.State().HighlightedEdges)
}

func TestHull_Degenerate(t *testing.T) {
	h := geometry.NewHull()
	assert.ErrorIs(t, h.Initialize(nil), algorithm.ErrGraphNil)

	require.NoError(t, h.Initialize(core.NewGraph()))
	assert.Equal(t, algorithm.Terminal, h.Phase())
	assert.Empty(t, h.Hull())
	assert.Equal(t, "Graph has no nodes to construct a convex hull.", h.StepInfo())

	one, err := core.FromParts([]core.Node{{ID: "p", X: 3, Y: 4}}, nil, false)
	require.NoError(t, err)
	require.NoError(t, h.Initialize(one))
	assert.False(t, h.Step())
	assert.Equal(t, []string{"p"}, h.Hull())
	assert.Equal(t, map[string]float64{"p": 1}, h.State().NodeValues)
	assert.Equal(t, []string{"p"}, h.State().CurrentNodes)

	two, err := core.FromParts(
		[]core.Node{{ID: "r", X: 9, Y: 0}, {ID: "l", X: 1, Y: 0}},
		[]core.EdgeRef{{ID: "rl", Source: "r", Target: "l"}}, false)
	require.NoError(t, err)
	require.NoError(t, h.Initialize(two))
	assert.Equal(t, []string{"l", "r"}, h.Hull())
	assert.Equal(t, []string{"rl"}, h.State().HighlightedEdges)
	assert.Equal(t, map[string]float64{"l": 1, "r": 2}, h.State().NodeValues)
	assert.Equal(t, "Convex hull is the segment between l and r.", h.StepInfo())
}

func TestHull_Collinear(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	h := geometry.NewHull()
	require.NoError(t, h.Initialize(g))
	for h.Step() {
	}
	assert.Equal(t, []string{"A", "E"}, h.Hull())
}

func TestHull_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 80
	properties := gopter.NewProperties(parameters)

	properties.Property("hull is convex, counter-clockwise and contains every node", prop.ForAll(
		func(seed int64, n int) bool {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Scatter(n))
			if err != nil {
				return false
			}
			h := geometry.NewHull()
			if h.Initialize(g) != nil {
				return false
			}
			for h.Step() {
			}
			hull := make([]*core.Node, 0)
			for _, id := range h.Hull() {
				hull = append(hull, g.Node(id))
			}
			k := len(hull)
			if k < 3 {
				return false
			}
			for i := range hull {
				a, b, c := hull[i], hull[(i+1)%k], hull[(i+2)%k]
				if geometry.Cross(a, b, c) <= 0 {
					return false
				}
				for _, p := range g.Nodes() {
					if geometry.Cross(a, b, p) < -1e-9 {
						return false
					}
				}
			}
			return h.State().NodeValues[hull[k-1].ID] == float64(k)
		},
		gen.Int64(),
		gen.IntRange(3, 25),
	))

	properties.TestingRun(t)
}
