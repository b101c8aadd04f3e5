// Package bfs provides a stepping breadth-first traversal over a core.Graph.
//
// What
//
//   - FIFO queue seeded with the start node (WithStart, default first node).
//   - One Step dequeues one node, visits it and enqueues every neighbor not
//     seen before, highlighting the neighbor and the edge that discovered it.
//   - A node is marked seen on enqueue, so it enters the queue at most once.
//   - NodeValues hold the 1-based visiting order.
//   - The Step that finds the queue empty clears the current focus, reports
//     completion and returns false.
//
// Determinism
//
//	Neighbors are enumerated in edge insertion order (core.Graph.Neighbors),
//	so the visiting order is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) over a whole run (Neighbors is a linear edge scan)
//   - Memory: O(V)
//
// Usage
//
//	b := bfs.New(algorithm.WithStart("A"))
//	if err := b.Initialize(g); err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation
//	}
//	for b.Step() {
//	    fmt.Println(b.StepInfo())
//	}
package bfs
