// File: methods_edit.go
// Role: Graph editing used by the external editor collaborator.
// Concurrency:
//   - Every method takes the write lock for its whole duration.
// Determinism:
//   - Removals keep the relative order of the surviving nodes/edges.

package core

import "fmt"

// AddNode appends a copy of n to the node list.
// Errors: ErrEmptyNodeID, ErrDuplicateNode.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodeIndex[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	node := n
	g.nodeIndex[node.ID] = len(g.nodes)
	g.nodes = append(g.nodes, &node)

	return nil
}

// MoveNode sets the position of node id.
// Errors: ErrNodeNotFound.
func (g *Graph) MoveNode(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.nodeLocked(id)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	n.X, n.Y = x, y

	return nil
}

// RelabelNode sets the display label of node id.
// Errors: ErrNodeNotFound.
func (g *Graph) RelabelNode(id, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.nodeLocked(id)
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	n.Label = label

	return nil
}

// RemoveNode deletes node id together with every edge touching it.
// Errors: ErrNodeNotFound.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.nodeIndex[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Source.ID != id && e.Target.ID != id {
			kept = append(kept, e)
		}
	}
	// clear the tail so dropped edges can be collected
	for j := len(kept); j < len(g.edges); j++ {
		g.edges[j] = nil
	}
	g.edges = kept
	g.reindexLocked()

	return nil
}

// AddEdge appends an edge described by ref, resolving its endpoints against
// the current node list. At most one edge may join a pair of nodes: a
// repeated (source, target) is rejected, and so is the reversed pair when
// the graph is undirected.
// Errors: ErrEmptyEdgeID, ErrDuplicateEdge, ErrDanglingEdge, ErrParallelEdge.
// Complexity: O(E).
func (g *Graph) AddEdge(ref EdgeRef) error {
	if ref.ID == "" {
		return ErrEmptyEdgeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edgeIndex[ref.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateEdge, ref.ID)
	}
	src := g.nodeLocked(ref.Source)
	tgt := g.nodeLocked(ref.Target)
	if src == nil || tgt == nil {
		return fmt.Errorf("%w: edge %q (%s→%s)", ErrDanglingEdge, ref.ID, ref.Source, ref.Target)
	}
	if other := g.edgeBetweenLocked(ref.Source, ref.Target); other != nil {
		return fmt.Errorf("%w: edge %q (%s→%s) repeats %q", ErrParallelEdge, ref.ID, ref.Source, ref.Target, other.ID)
	}
	e := &Edge{ID: ref.ID, Source: src, Target: tgt}
	if ref.Weight != nil {
		e.Weight = Weight(*ref.Weight)
	}
	g.edgeIndex[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)

	return nil
}

// SetEdgeWeight replaces the weight of edge id; nil clears it.
// Errors: ErrEdgeNotFound.
func (g *Graph) SetEdgeWeight(id string, w *float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.edgeIndex[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	if w == nil {
		g.edges[i].Weight = nil
	} else {
		g.edges[i].Weight = Weight(*w)
	}

	return nil
}

// RemoveEdge deletes edge id.
// Errors: ErrEdgeNotFound.
// Complexity: O(E).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, ok := g.edgeIndex[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	g.reindexLocked()

	return nil
}

// SetDirected switches between directed and undirected interpretation of the
// existing edges. Stored orientation (Source/Target) is kept.
func (g *Graph) SetDirected(directed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.directed = directed
}

// ClearWeights drops every edge weight (switching the graph to unweighted mode).
func (g *Graph) ClearWeights() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.edges {
		e.Weight = nil
	}
}

// reindexLocked rebuilds both ID→position maps; caller holds the write lock.
func (g *Graph) reindexLocked() {
	g.nodeIndex = make(map[string]int, len(g.nodes))
	for i, n := range g.nodes {
		g.nodeIndex[n.ID] = i
	}
	g.edgeIndex = make(map[string]int, len(g.edges))
	for i, e := range g.edges {
		g.edgeIndex[e.ID] = i
	}
}
