// Package astar provides a stepping A* search between a start and a target
// node, guided by the Euclidean distance between node positions.
//
// What
//
//   - Start: WithStart, default first node.
//   - Target: WithTarget, otherwise drawn uniformly from the nodes at every
//     Initialize. WithSeed makes the draw reproducible across resets;
//     WithRand shares a caller-owned source.
//   - The frontier is keyed by f = g + h with ties going to the earlier
//     entry. Relaxation is the one Dijkstra uses: only unsettled neighbors,
//     only strict improvements, the previous tree edge is unhighlighted.
//   - NodeValues hold g-scores.
//   - Popping the target ends the run in that same Step: the highlight sets
//     are replaced by exactly the start→target path. An exhausted frontier
//     ends the run with a failure message instead.
//
// Euclidean h is admissible only while every edge weight is at least the
// distance between its endpoints. With smaller weights the search still
// terminates, but the reported path need not be shortest.
//
// Complexity
//
//   - Time:   O(V·E + V log V) worst case
//   - Memory: O(V)
package astar
