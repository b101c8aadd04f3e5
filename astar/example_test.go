package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/astar"
	"github.com/katalvlaran/lvstep/builder"
)

// ExampleAStar searches a grid from its top-left to its bottom-right corner.
func ExampleAStar() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(100)}, builder.Grid(3, 3))
	a := astar.New(algorithm.WithTarget("I"))
	_ = a.Initialize(g)
	for a.Step() {
	}
	cost, _ := a.Cost()
	fmt.Println(a.Path(), cost)

	// Output:
	// [A B E F I] 400
}
