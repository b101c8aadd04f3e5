package bfs

import (
	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

// Name is the registry name of the engine.
const Name = "BFS"

// BFS is the stepping breadth-first engine. The zero value is not usable;
// construct with New.
type BFS struct {
	algorithm.Tracker

	opts    algorithm.Options
	graph   *core.Graph
	queue   []*core.Node
	visited map[string]bool
	order   []string
}

// New returns an uninitialized BFS engine configured by opts.
func New(opts ...algorithm.Option) *BFS {
	return &BFS{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (b *BFS) Name() string { return Name }

// Initialize resets the traversal on g.
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound.
func (b *BFS) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := b.opts.Err(); err != nil {
		return err
	}
	start, err := algorithm.ResolveStart(g, b.opts)
	if err != nil {
		return err
	}

	b.Begin()
	b.graph = g
	b.queue = b.queue[:0]
	b.visited = make(map[string]bool, g.NodeCount())
	b.order = b.order[:0]
	if start == nil {
		b.Halt("Graph has no nodes to traverse.")
		return nil
	}

	b.queue = append(b.queue, start)
	b.visited[start.ID] = true
	b.HighlightNodes(start.ID)
	b.Focus([]string{start.ID}, nil)
	b.Sayf("Initialized BFS with start node %s.", start.ID)

	return nil
}

// Step dequeues and visits one node.
func (b *BFS) Step() bool {
	if !b.NextStep() {
		return false
	}
	if len(b.queue) == 0 {
		b.Sayf("BFS traversal completed. All reachable nodes have been visited.")
		b.Finish()
		return false
	}

	cur := b.queue[0]
	b.queue = b.queue[1:]
	b.order = append(b.order, cur.ID)
	b.SetValue(cur.ID, float64(len(b.order)))
	b.HighlightNodes(cur.ID)
	b.opts.OnVisit(cur.ID, len(b.order))
	b.Sayf("Visiting node %s.", cur.ID)

	nbs, err := b.graph.Neighbors(cur.ID)
	if err != nil {
		b.Halt("Traversal aborted: %v.", err)
		return false
	}
	stepNodes := []string{cur.ID}
	var stepEdges []string
	for _, nb := range nbs {
		if b.visited[nb.Node.ID] {
			continue
		}
		b.visited[nb.Node.ID] = true
		b.queue = append(b.queue, nb.Node)
		b.HighlightNodes(nb.Node.ID)
		b.HighlightEdges(nb.Edge.ID)
		stepNodes = append(stepNodes, nb.Node.ID)
		stepEdges = append(stepEdges, nb.Edge.ID)
		b.Sayf("Enqueued node %s via edge %s (%s→%s) with weight %g.",
			nb.Node.ID, nb.Edge.ID, nb.Edge.Source.ID, nb.Edge.Target.ID, nb.Weight)
	}
	b.Focus(stepNodes, stepEdges)

	return true
}

// Order returns the nodes visited so far, in visiting order.
func (b *BFS) Order() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)

	return out
}

// Queue returns the IDs waiting in the queue, head first.
func (b *BFS) Queue() []string {
	out := make([]string, len(b.queue))
	for i, n := range b.queue {
		out[i] = n.ID
	}

	return out
}
