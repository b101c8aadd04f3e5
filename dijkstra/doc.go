// Package dijkstra provides a stepping single-source shortest-path engine for
// graphs with non-negative edge weights.
//
// Overview:
//
//   - The frontier is seeded with the start node (WithStart, default first
//     node) at distance 0. Absent distances mean "infinite".
//   - One Step settles the frontier node with the smallest tentative distance
//     and relaxes every edge to an unsettled neighbor. A relaxation applies only
//     on a strict improvement; it moves the neighbor's tree edge in the
//     highlight set and pushes the neighbor onto the frontier if absent.
//   - Ties on distance go to the node that entered the frontier first.
//   - NodeValues hold tentative (then settled) distances.
//   - The Step that finds the frontier empty clears the focus, reports that
//     every reachable node is settled and returns false.
//
// Settled nodes are never reconsidered. Initialize rejects negative weights
// with ErrNegativeWeight; unweighted edges count as core.DefaultWeight.
//
// Complexity:
//
//   - Time:  O(V·E + V log V) over a whole run (Neighbors is a linear scan)
//   - Space: O(V)
//
// Example usage:
//
//	d := dijkstra.New(algorithm.WithStart("A"))
//	if err := d.Initialize(g); err != nil {
//	    log.Fatal(err)
//	}
//	for d.Step() {
//	}
//	fmt.Println(d.Distances()["F"])
package dijkstra
