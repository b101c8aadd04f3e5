package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
)

// ExampleBuildGraph composes a seeded, integer-weighted wheel.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v")), builder.WithConstantWeight(2)},
		builder.Wheel(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeIDs())
	for _, e := range g.Edges() {
		fmt.Printf("%s w=%g\n", e.ID, e.EffectiveWeight())
	}

	// Output:
	// [v0 v1 v2 Center]
	// v0-v1 w=2
	// v1-v2 w=2
	// v2-v0 w=2
	// Center-v0 w=2
	// Center-v1 w=2
	// Center-v2 w=2
}
