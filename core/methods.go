// Package core: read-only Graph queries.
//
// Every query takes the read lock. Slices returned are fresh copies of the
// internal pointer lists, in insertion order; the pointed-to Node and Edge
// values are live and must not be modified by callers.

package core

import "fmt"

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Nodes returns the nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns the node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}

	return out
}

// Edges returns the edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIndex[id]

	return ok
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeLocked(id)
}

// Edge returns the edge with the given ID, or nil.
func (g *Graph) Edge(id string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i, ok := g.edgeIndex[id]; ok {
		return g.edges[i]
	}

	return nil
}

// First returns the first inserted node, or nil for an empty graph.
// Every start-based engine seeds from it unless told otherwise.
func (g *Graph) First() *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.nodes) == 0 {
		return nil
	}

	return g.nodes[0]
}

// Neighbors returns one Neighbor per edge touching id, in edge insertion order.
//
// Neighborhood policy:
//   - Directed graph: only edges with Source == id, reporting the Target.
//   - Undirected graph: every incident edge, reporting the opposite endpoint.
//     A self-loop is reported once.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(E).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodeIndex[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	out := make([]Neighbor, 0)
	for _, e := range g.edges {
		switch {
		case e.Source.ID == id:
			out = append(out, Neighbor{Node: e.Target, Weight: e.EffectiveWeight(), Edge: e})
		case !g.directed && e.Target.ID == id:
			out = append(out, Neighbor{Node: e.Source, Weight: e.EffectiveWeight(), Edge: e})
		}
	}

	return out, nil
}

// EdgeBetween returns the first edge (in insertion order) leading from a to b.
// In undirected graphs the orientation of the stored edge is ignored.
// Returns nil when no such edge exists.
func (g *Graph) EdgeBetween(a, b string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeBetweenLocked(a, b)
}

// edgeBetweenLocked is EdgeBetween without locking; caller holds g.mu.
func (g *Graph) edgeBetweenLocked(a, b string) *Edge {
	for _, e := range g.edges {
		if e.Source.ID == a && e.Target.ID == b {
			return e
		}
		if !g.directed && e.Source.ID == b && e.Target.ID == a {
			return e
		}
	}

	return nil
}

// nodeLocked looks up a node; caller holds g.mu.
func (g *Graph) nodeLocked(id string) *Node {
	if i, ok := g.nodeIndex[id]; ok {
		return g.nodes[i]
	}

	return nil
}
