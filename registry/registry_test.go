package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/bfs"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/prim_kruskal"
	"github.com/katalvlaran/lvstep/registry"
)

func TestDefaultNames(t *testing.T) {
	r := registry.Default()
	assert.Equal(t, []string{
		"AStar", "BFS", "ClosestPair", "ConvexHull", "DFS",
		"Dijkstra", "FarthestPair", "Kruskal", "Prim",
	}, r.Names())
}

func TestEveryEngineRunsOnTheSample(t *testing.T) {
	r := registry.Default()
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			a, err := r.New(name, algorithm.WithSeed(5), algorithm.WithStart("A"))
			require.NoError(t, err)
			assert.Equal(t, name, a.Name())
			require.NoError(t, a.Initialize(builder.SampleGraph(false)))
			if name != prim_kruskal.KruskalName {
				assert.Equal(t, []string{"A"}, a.State().CurrentNodes, "Initialize focuses the start node")
			}

			steps := 0
			for a.Step() {
				steps++
				require.Less(t, steps, 1000)
			}
			assert.False(t, a.Step(), "terminal engines stay terminal")
			assert.NotEmpty(t, a.StepInfo())
		})
	}
}

func TestRegister(t *testing.T) {
	r := registry.NewRegistry()
	_, err := r.New("BFS")
	require.ErrorIs(t, err, registry.ErrUnknownAlgorithm)

	f := func(o ...algorithm.Option) algorithm.Algorithm { return bfs.New(o...) }
	require.NoError(t, r.Register("breadth", f))
	require.ErrorIs(t, r.Register("breadth", f), registry.ErrDuplicateName)
	require.ErrorIs(t, r.Register("nil", nil), registry.ErrNilFactory)
	assert.True(t, r.Has("breadth"))

	a, err := r.New("breadth")
	require.NoError(t, err)
	assert.Equal(t, bfs.Name, a.Name())
}

func TestConcurrentLookups(t *testing.T) {
	r := registry.Default()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = r.Register("extra"+string(rune('a'+i)), func(o ...algorithm.Option) algorithm.Algorithm { return bfs.New(o...) })
				return
			}
			_, _ = r.New("Dijkstra")
			_ = r.Names()
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Names(), 13)
}
