package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/dfs"
)

// ExampleDFS_path walks a path graph and reports each visit through the hook.
func ExampleDFS_path() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(4))
	var visits []string
	d := dfs.New(algorithm.WithStart("B"), algorithm.WithOnVisit(func(id string, order int) {
		visits = append(visits, fmt.Sprintf("%d:%s", order, id))
	}))
	_ = d.Initialize(g)
	for d.Step() {
	}
	fmt.Println(strings.Join(visits, " "))
	fmt.Println(d.StepInfo())

	// Output:
	// 1:B 2:A 3:C 4:D
	// DFS traversal completed. All reachable nodes have been visited.
}
