// File: methods_clone.go
// Role: Deep copies of a Graph.
// Identity:
//   - Clone copies every Node value and re-resolves every Edge endpoint
//     against the copies, so the clone never points into the source graph.

package core

// Clone returns a deep copy of the Graph: flag, nodes, edges and weights.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.nodes = make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		cp := *n
		clone.nodes[i] = &cp
		clone.nodeIndex[cp.ID] = i
	}
	clone.edges = make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		ne := &Edge{
			ID:     e.ID,
			Source: clone.nodes[clone.nodeIndex[e.Source.ID]],
			Target: clone.nodes[clone.nodeIndex[e.Target.ID]],
		}
		if e.Weight != nil {
			ne.Weight = Weight(*e.Weight)
		}
		clone.edges[i] = ne
		clone.edgeIndex[ne.ID] = i
	}

	return clone
}
