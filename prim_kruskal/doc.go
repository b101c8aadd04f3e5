// Package prim_kruskal provides stepping minimum-spanning-tree engines:
// Kruskal's edge-ordered construction and Prim's tree-growing construction.
//
// What:
//
//   - Kruskal sorts every edge once, ascending by weight and stable for equal
//     weights, and consumes one edge per Step. A disjoint-set union over node
//     IDs (path-compressing find, union without rank) decides between
//     "added" and "skipped to avoid a cycle". Edge direction is ignored.
//   - Prim grows a tree from the start node (WithStart, default first node).
//     The boundary holds edges touching the tree; one Step pops the lightest
//     (ties in insertion order), skips it when both endpoints are in the tree,
//     otherwise visits the new endpoint and adds its boundary edges. Prim
//     follows core.Graph.Neighbors, so a directed graph yields an
//     arborescence-like tree of out-edges.
//   - Accepted edges and their endpoints are highlighted; the Step under
//     consideration is the current focus.
//   - Missing weights count as 0 in this family.
//
// Disconnected graphs are not an error: Kruskal returns a spanning forest
// and Prim spans the start node's component.
//
// Complexity:
//
//   - Kruskal: O(E log E) sort + O(E·α(V)) unions over a whole run
//   - Prim:    O(E log E) heap operations + O(V·E) neighbor scans
//   - Memory:  O(V + E)
package prim_kruskal
