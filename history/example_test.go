package history_test

import (
	"fmt"

	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/history"
)

// ExampleRecorder steps Dijkstra forward, then replays an earlier snapshot.
func ExampleRecorder() {
	r, err := history.New(dijkstra.New(), builder.SampleGraph(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = r.RunToEnd(0)
	fmt.Println("records:", r.Len(), "complete:", r.Complete())

	rec, _ := r.Seek(2)
	fmt.Println(rec.State.HighlightedEdges)
	fmt.Println(r.Last().Description)

	// Output:
	// records: 6 complete: true
	// [A-B A-C B-F]
	// All reachable nodes have been settled.
}
