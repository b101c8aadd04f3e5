// Package lvstep is a set of step-by-step algorithm engines for teaching
// and visualizing graph and geometry algorithms.
//
// 🚀 What is lvstep?
//
//	Every engine advances in small atomic steps and exposes, after each
//	step, a snapshot of what it is doing:
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, A*
//		• Minimum spanning trees: Kruskal, Prim
//		• Computational geometry: convex hull, closest pair, farthest pair
//
// A snapshot (algorithm.State) carries two kinds of marks plus a per-node
// number:
//
//   - Highlighted nodes/edges accumulate: visited, settled, in the tree.
//   - Current nodes/edges are the focus of the latest step only.
//   - NodeValues label nodes with a visit order, distance, g-score or rank.
//
// Layout:
//
//	core/         — Graph, Node, Edge; JSON/YAML wire form
//	builder/      — sample graph and deterministic generators
//	algorithm/    — the Algorithm contract, State, Tracker, shared Options
//	bfs/ dfs/ dijkstra/ astar/ prim_kruskal/ geometry/ — the engines
//	registry/     — name → engine factory
//	history/      — step recorder with replay, zap logging, Prometheus metrics
//	library/      — named graphs persisted to one JSON or YAML file
//	cmd/lvstep/   — command-line driver and interactive console
//
// Quick start:
//
//	g := builder.SampleGraph(true)
//	rec, _ := history.New(dijkstra.New(), g)
//	_ = rec.RunToEnd(0)
//	for _, r := range rec.Records() {
//		fmt.Println(r.Description)
//	}
//
// Engines never panic on bad input: a nil graph, a missing start node or a
// negative weight is reported by Initialize as a sentinel error, and an
// empty graph simply finishes at once with an explanatory description.
package lvstep
