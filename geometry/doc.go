// Package geometry provides stepping engines that work on node positions
// rather than on graph structure: a monotone-chain convex hull and
// brute-force closest and farthest pair searches.
//
// ConvexHull
//
//   - Nodes are sorted by x, then y. The lower chain is built left to right,
//     the upper chain right to left; each Step feeds one node and discards
//     middle points while the last three do not turn strictly
//     counter-clockwise (cross product > 0).
//   - One extra Step separates the phases ("Lower hull completed...").
//   - The Step that feeds the last upper node also finalizes: the hull is the
//     lower chain followed by the upper chain without its endpoints, ranks
//     1..k go to NodeValues, and graph edges joining consecutive hull
//     vertices (wrapping around) are highlighted.
//   - 0, 1 and 2 nodes are resolved by Initialize.
//
// ClosestPair and FarthestPair
//
//   - Pairs (i, j), i < j, in node insertion order, one per Step.
//   - The highlight sets show the pair under comparison plus the best pair so
//     far; NodeValues show the best distance rounded to two decimals on both
//     best nodes.
//   - The Step after the last pair re-presents the winning pair alone.
//   - Fewer than two nodes is a degenerate terminal state.
//
// Complexity: hull O(n log n) sort + O(n) amortized over all Steps;
// pair searches O(n²) Steps.
package geometry
