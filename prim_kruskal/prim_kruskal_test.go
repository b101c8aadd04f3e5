package prim_kruskal_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/prim_kruskal"
)

// mst is the subset of both engines the tests drive.
type mst interface {
	algorithm.Algorithm
	Accepted() []string
	TotalWeight() float64
}

func drain(a algorithm.Algorithm) int {
	n := 0
	for a.Step() {
		n++
	}

	return n
}

func TestKruskal_Sample(t *testing.T) {
	k := prim_kruskal.NewKruskal()
	require.NoError(t, k.Initialize(builder.SampleGraph(false)))
	assert.Empty(t, k.State().CurrentNodes)
	assert.Equal(t, []string{"A-B", "D-C", "E-F", "A-C", "B-F", "D-E", "A-F"}, k.Remaining())

	require.True(t, k.Step())
	assert.Equal(t, "Added edge A-B (A, B) with weight 1 to the MST.", k.StepInfo())
	assert.Equal(t, []string{"A", "B"}, k.State().CurrentNodes)
	assert.Equal(t, []string{"A-B"}, k.State().CurrentEdges)

	assert.Equal(t, 6, drain(k))
	assert.Equal(t, []string{"A-B", "D-C", "E-F", "A-C", "B-F"}, k.Accepted())
	assert.Equal(t, 15.0, k.TotalWeight())
	assert.Equal(t, "All edges have been processed. MST total weight is 15 with 5 edges.", k.StepInfo())
	assert.Equal(t, k.Accepted(), k.State().HighlightedEdges)
	assert.Len(t, k.State().HighlightedNodes, 6)
}

func TestKruskal_SkipMessage(t *testing.T) {
	k := prim_kruskal.NewKruskal()
	require.NoError(t, k.Initialize(builder.SampleGraph(true)))
	for i := 0; i < 6; i++ {
		require.True(t, k.Step())
	}
	assert.Equal(t, "Skipped edge D-E (D, E) with weight 8 to avoid creating a cycle.", k.StepInfo())
	assert.NotContains(t, k.State().HighlightedEdges, "D-E")
	assert.Equal(t, []string{"D", "E"}, k.State().CurrentNodes)
}

func TestPrim_Sample(t *testing.T) {
	var visits []string
	p := prim_kruskal.NewPrim(algorithm.WithOnVisit(func(id string, _ int) { visits = append(visits, id) }))
	require.NoError(t, p.Initialize(builder.SampleGraph(false)))
	assert.Equal(t, []string{"A"}, p.State().CurrentNodes)
	assert.Equal(t, 3, p.Boundary())

	assert.Equal(t, 7, drain(p))
	assert.Equal(t, []string{"A-B", "A-C", "D-C", "B-F", "E-F"}, p.Accepted())
	assert.Equal(t, 15.0, p.TotalWeight())
	assert.Equal(t, []string{"A", "B", "C", "D", "F", "E"}, visits)
	assert.Equal(t, "All edges have been considered. MST total weight is 15 with 5 edges.", p.StepInfo())
}

func TestPrim_SkipAndStart(t *testing.T) {
	p := prim_kruskal.NewPrim(algorithm.WithStart("E"))
	require.NoError(t, p.Initialize(builder.SampleGraph(false)))
	var skipped []string
	for p.Step() {
		if strings.HasPrefix(p.StepInfo(), "Skipped") {
			skipped = append(skipped, p.State().CurrentEdges[0])
		}
	}
	assert.Equal(t, 15.0, p.TotalWeight())
	assert.ElementsMatch(t, []string{"A-F", "D-E"}, skipped)

	assert.ErrorIs(t, prim_kruskal.NewPrim(algorithm.WithStart("Z")).Initialize(builder.SampleGraph(false)), algorithm.ErrStartNotFound)
}

func TestMST_Degenerate(t *testing.T) {
	for _, a := range []mst{prim_kruskal.NewKruskal(), prim_kruskal.NewPrim()} {
		t.Run(a.Name(), func(t *testing.T) {
			assert.False(t, a.Step())
			assert.ErrorIs(t, a.Initialize(nil), algorithm.ErrGraphNil)

			require.NoError(t, a.Initialize(core.NewGraph()))
			assert.False(t, a.Step())
			assert.Zero(t, a.TotalWeight())

			single, err := core.FromParts([]core.Node{{ID: "solo"}}, nil, false)
			require.NoError(t, err)
			require.NoError(t, a.Initialize(single))
			assert.False(t, a.Step())
			assert.Empty(t, a.Accepted())
		})
	}
}

func TestMST_MissingWeightsCountAsZero(t *testing.T) {
	g, err := core.FromParts(
		[]core.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]core.EdgeRef{
			{ID: "ab", Source: "a", Target: "b", Weight: core.Weight(2)},
			{ID: "bc", Source: "b", Target: "c"},
			{ID: "ac", Source: "a", Target: "c", Weight: core.Weight(1)},
		}, false)
	require.NoError(t, err)
	k := prim_kruskal.NewKruskal()
	require.NoError(t, k.Initialize(g))
	drain(k)
	assert.Equal(t, []string{"bc", "ac"}, k.Accepted())
	assert.Equal(t, 1.0, k.TotalWeight())
}

// referenceMST is an O(V²) Prim over the lightest edge between each pair.
func referenceMST(g *core.Graph) float64 {
	ids := g.NodeIDs()
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	n := len(ids)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			w[i][j] = math.Inf(1)
		}
	}
	for _, e := range g.Edges() {
		i, j := idx[e.Source.ID], idx[e.Target.ID]
		if x := e.WeightOr(0); x < w[i][j] {
			w[i][j], w[j][i] = x, x
		}
	}
	in := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0
	total := 0.0
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !in[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		in[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if !in[v] && w[u][v] < best[v] {
				best[v] = w[u][v]
			}
		}
	}

	return total
}

// connected builds a random undirected graph and threads a path through it.
func connected(seed int64, n int) (*core.Graph, error) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 12)},
		builder.RandomSparse(n, 0.3))
	if err != nil {
		return nil, err
	}
	ids := g.NodeIDs()
	for i := 0; i+1 < len(ids); i++ {
		if g.EdgeBetween(ids[i], ids[i+1]) != nil {
			continue
		}
		w := float64(10 + (int(seed)+i)%7)
		ref := core.EdgeRef{ID: fmt.Sprintf("path-%d", i), Source: ids[i], Target: ids[i+1], Weight: core.Weight(w)}
		if err = g.AddEdge(ref); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func TestMST_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	check := func(a mst) func(seed int64, n int) bool {
		return func(seed int64, n int) bool {
			g, err := connected(seed, n)
			if err != nil || a.Initialize(g) != nil {
				return false
			}
			for a.Step() {
			}
			return len(a.Accepted()) == n-1 && math.Abs(a.TotalWeight()-referenceMST(g)) < 1e-9
		}
	}

	properties.Property("Kruskal spans with minimum weight", prop.ForAll(
		check(prim_kruskal.NewKruskal()), gen.Int64Range(0, 1<<30), gen.IntRange(1, 14)))
	properties.Property("Prim spans with minimum weight", prop.ForAll(
		check(prim_kruskal.NewPrim()), gen.Int64Range(0, 1<<30), gen.IntRange(1, 14)))

	properties.TestingRun(t)
}
