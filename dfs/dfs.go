package dfs

import (
	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

// Name is the registry name of the engine.
const Name = "DFS"

// entry is one stack frame: a node and the edge it was discovered through
// (nil for the start node).
type entry struct {
	node *core.Node
	via  *core.Edge
}

// DFS is the stepping depth-first engine. Construct with New.
type DFS struct {
	algorithm.Tracker

	opts    algorithm.Options
	graph   *core.Graph
	stack   []entry
	visited map[string]bool
	order   []string
}

// New returns an uninitialized DFS engine configured by opts.
func New(opts ...algorithm.Option) *DFS {
	return &DFS{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (d *DFS) Name() string { return Name }

// Initialize resets the traversal on g.
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound.
func (d *DFS) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := d.opts.Err(); err != nil {
		return err
	}
	start, err := algorithm.ResolveStart(g, d.opts)
	if err != nil {
		return err
	}

	d.Begin()
	d.graph = g
	d.stack = d.stack[:0]
	d.visited = make(map[string]bool, g.NodeCount())
	d.order = d.order[:0]
	if start == nil {
		d.Halt("Graph has no nodes to traverse.")
		return nil
	}

	d.stack = append(d.stack, entry{node: start})
	d.HighlightNodes(start.ID)
	d.Focus([]string{start.ID}, nil)
	d.Sayf("Initialized DFS with start node %s.", start.ID)

	return nil
}

// Step visits the next node in depth-first order.
func (d *DFS) Step() bool {
	if !d.NextStep() {
		return false
	}

	cur, ok := d.pop()
	if !ok {
		d.Sayf("DFS traversal completed. All reachable nodes have been visited.")
		d.Finish()
		return false
	}

	id := cur.node.ID
	d.visited[id] = true
	d.order = append(d.order, id)
	d.SetValue(id, float64(len(d.order)))
	d.HighlightNodes(id)
	d.opts.OnVisit(id, len(d.order))

	var stepEdges []string
	if cur.via != nil {
		d.HighlightEdges(cur.via.ID)
		stepEdges = append(stepEdges, cur.via.ID)
		d.Sayf("Visiting node %s via edge %s (%s→%s).", id, cur.via.ID, cur.via.Source.ID, cur.via.Target.ID)
	} else {
		d.Sayf("Visiting node %s.", id)
	}

	nbs, err := d.graph.Neighbors(id)
	if err != nil {
		d.Halt("Traversal aborted: %v.", err)
		return false
	}
	stepNodes := []string{id}
	var pushed []entry
	for _, nb := range nbs {
		if d.visited[nb.Node.ID] {
			continue
		}
		pushed = append(pushed, entry{node: nb.Node, via: nb.Edge})
		stepNodes = append(stepNodes, nb.Node.ID)
		d.Sayf("Pushed node %s via edge %s with weight %g.", nb.Node.ID, nb.Edge.ID, nb.Weight)
	}
	for i := len(pushed) - 1; i >= 0; i-- {
		d.stack = append(d.stack, pushed[i])
	}
	d.Focus(stepNodes, stepEdges)

	return true
}

// pop removes stale entries and returns the next unvisited one.
func (d *DFS) pop() (entry, bool) {
	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		if !d.visited[top.node.ID] {
			return top, true
		}
	}

	return entry{}, false
}

// Order returns the nodes visited so far, in visiting order.
func (d *DFS) Order() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Stack returns the node IDs on the stack, top first. Stale entries are
// included until a Step discards them.
func (d *DFS) Stack() []string {
	out := make([]string, 0, len(d.stack))
	for i := len(d.stack) - 1; i >= 0; i-- {
		out = append(out, d.stack[i].node.ID)
	}

	return out
}
