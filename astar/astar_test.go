package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/astar"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
)

func TestAStar_SampleFixedTarget(t *testing.T) {
	a := astar.New(algorithm.WithTarget("E"))
	require.NoError(t, a.Initialize(builder.SampleGraph(false)))
	assert.Equal(t, "Initialized A* with start node A and target node E.", a.StepInfo())
	assert.Equal(t, []string{"A", "E"}, a.State().HighlightedNodes)
	assert.Equal(t, []string{"A"}, a.State().CurrentNodes)

	require.True(t, a.Step()) // A: discovers B, C, F
	assert.Equal(t, []string{"A", "B", "C", "F"}, a.State().CurrentNodes)
	require.True(t, a.Step()) // F has the lowest f and discovers E
	assert.Contains(t, a.StepInfo(), "Discovered node E via edge E-F (E→F) with weight 3; gScore is 12.")

	assert.False(t, a.Step()) // E popped: terminal in the same step
	assert.Equal(t, algorithm.Terminal, a.Phase())
	assert.True(t, a.Found())
	assert.Equal(t, []string{"A", "F", "E"}, a.Path())
	assert.Equal(t, []string{"A", "F", "E"}, a.State().HighlightedNodes)
	assert.Equal(t, []string{"A-F", "E-F"}, a.State().HighlightedEdges)
	assert.Equal(t, []string{"E"}, a.State().CurrentNodes)
	cost, ok := a.Cost()
	assert.True(t, ok)
	assert.Equal(t, 12.0, cost)
	assert.Contains(t, a.StepInfo(), "Path: A → F → E (cost 12).")
	assert.False(t, a.Step())
}

func TestAStar_Unreachable(t *testing.T) {
	a := astar.New(algorithm.WithTarget("D"))
	require.NoError(t, a.Initialize(builder.SampleGraph(true)))
	for a.Step() {
	}
	assert.False(t, a.Found())
	assert.Empty(t, a.Path())
	assert.Equal(t, "Frontier exhausted; target node D is unreachable from A.", a.StepInfo())
	_, ok := a.Cost()
	assert.False(t, ok)
}

func TestAStar_StartIsTarget(t *testing.T) {
	a := astar.New(algorithm.WithStart("C"), algorithm.WithTarget("C"))
	require.NoError(t, a.Initialize(builder.SampleGraph(false)))
	assert.False(t, a.Step())
	assert.Equal(t, []string{"C"}, a.Path())
	assert.Empty(t, a.State().HighlightedEdges)
}

func TestAStar_SeededTargetIsReproducible(t *testing.T) {
	g := builder.SampleGraph(false)
	a := astar.New(algorithm.WithSeed(42))
	require.NoError(t, a.Initialize(g))
	first := a.Target()
	require.NotEmpty(t, first)
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Initialize(g))
		assert.Equal(t, first, a.Target())
	}

	shared := astar.New(algorithm.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, shared.Initialize(g))
	assert.True(t, g.HasNode(shared.Target()))
}

// With every node on one point the heuristic is zero. X is lowered to 4
// behind W, so W is expanded first and claims T.
func TestAStar_LoweredKeyStaysBehindTies(t *testing.T) {
	g, err := core.FromParts(
		[]core.Node{{ID: "S"}, {ID: "X"}, {ID: "Y"}, {ID: "W"}, {ID: "T"}},
		[]core.EdgeRef{
			{ID: "S-X", Source: "S", Target: "X", Weight: core.Weight(5)},
			{ID: "S-Y", Source: "S", Target: "Y", Weight: core.Weight(3)},
			{ID: "S-W", Source: "S", Target: "W", Weight: core.Weight(4)},
			{ID: "Y-X", Source: "Y", Target: "X", Weight: core.Weight(1)},
			{ID: "X-T", Source: "X", Target: "T", Weight: core.Weight(1)},
			{ID: "W-T", Source: "W", Target: "T", Weight: core.Weight(1)},
		},
		true,
	)
	require.NoError(t, err)

	a := astar.New(algorithm.WithTarget("T"))
	require.NoError(t, a.Initialize(g))
	for a.Step() {
	}
	require.True(t, a.Found())
	assert.Equal(t, []string{"S", "W", "T"}, a.Path())
	cost, _ := a.Cost()
	assert.Equal(t, 5.0, cost)
}

func TestAStar_Errors(t *testing.T) {
	a := astar.New(algorithm.WithTarget("nope"))
	assert.ErrorIs(t, a.Initialize(nil), algorithm.ErrGraphNil)
	assert.ErrorIs(t, a.Initialize(builder.SampleGraph(false)), algorithm.ErrTargetNotFound)
	assert.Equal(t, algorithm.Uninitialized, a.Phase())

	g := builder.SampleGraph(false)
	require.NoError(t, g.SetEdgeWeight("A-B", core.Weight(-1)))
	assert.ErrorIs(t, astar.New().Initialize(g), dijkstra.ErrNegativeWeight)

	empty := astar.New()
	require.NoError(t, empty.Initialize(core.NewGraph()))
	assert.Equal(t, algorithm.Terminal, empty.Phase())
	assert.Equal(t, "", empty.Target())
}

// euclidean rewrites every weight to the rounded-up endpoint distance, which
// makes the heuristic admissible.
func euclidean(g *core.Graph) {
	for _, e := range g.Edges() {
		_ = g.SetEdgeWeight(e.ID, core.Weight(math.Ceil(astar.Heuristic(e.Source, e.Target))))
	}
}

func TestAStar_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("with an admissible heuristic the cost is the shortest distance", prop.ForAll(
		func(seed int64, n int, directed bool) bool {
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(directed)},
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomSparse(n, 0.4),
			)
			if err != nil {
				return false
			}
			euclidean(g)

			ref := dijkstra.New()
			if ref.Initialize(g) != nil {
				return false
			}
			for ref.Step() {
			}
			dist := ref.Distances()

			a := astar.New(algorithm.WithSeed(seed))
			if a.Initialize(g) != nil {
				return false
			}
			for a.Step() {
			}
			want, reachable := dist[a.Target()]
			if a.Found() != reachable {
				return false
			}
			if !reachable {
				return true
			}
			cost, _ := a.Cost()
			path := a.Path()
			return math.Abs(cost-want) < 1e-9 &&
				path[0] == g.First().ID &&
				path[len(path)-1] == a.Target() &&
				len(a.State().HighlightedEdges) == len(path)-1
		},
		gen.Int64(),
		gen.IntRange(1, 12),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
