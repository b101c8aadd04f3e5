// Package dfs provides a stepping depth-first traversal over a core.Graph.
//
// What
//
//   - Explicit stack of (node, edge it was reached by), seeded with the start
//     node (WithStart, default first node).
//   - One Step pops the most recently pushed unvisited node, visits it,
//     highlights it together with its tree edge, and pushes every unvisited
//     neighbor in reverse enumeration order, so the first neighbor is explored
//     first.
//   - A node may sit on the stack more than once; stale entries for visited
//     nodes are discarded inside the same Step.
//   - NodeValues hold the 1-based visiting order.
//   - The Step that finds no unvisited entry left clears the current focus,
//     reports completion and returns false.
//
// Determinism
//
//	Neighbors are enumerated in edge insertion order; the visiting order is
//	the one recursive DFS would produce.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) over a whole run
//   - Memory: O(V + E) stack entries in the worst case
//
// Usage
//
//	d := dfs.New()
//	_ = d.Initialize(g)
//	for d.Step() {
//	    fmt.Println(d.StepInfo())
//	}
package dfs
