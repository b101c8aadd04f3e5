package prim_kruskal

import (
	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/internal/frontier"
)

// Prim is the stepping Prim engine. Construct with NewPrim.
type Prim struct {
	algorithm.Tracker
	tree

	opts     algorithm.Options
	graph    *core.Graph
	boundary *frontier.EdgeQueue
	visited  map[string]bool
	order    int
}

// NewPrim returns an uninitialized Prim engine configured by opts.
func NewPrim(opts ...algorithm.Option) *Prim {
	return &Prim{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (p *Prim) Name() string { return PrimName }

// Initialize seeds the tree with the start node of g.
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound.
func (p *Prim) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := p.opts.Err(); err != nil {
		return err
	}
	start, err := algorithm.ResolveStart(g, p.opts)
	if err != nil {
		return err
	}

	p.Begin()
	p.reset()
	p.graph = g
	p.boundary = frontier.NewEdgeQueue()
	p.visited = make(map[string]bool, g.NodeCount())
	p.order = 0
	if start == nil {
		p.Halt("Graph has no nodes; the spanning tree is empty.")
		return nil
	}

	p.HighlightNodes(start.ID)
	p.Focus([]string{start.ID}, nil)
	p.Sayf("Initialized Prim's Algorithm with start node %s.", start.ID)
	if err = p.visit(start.ID); err != nil {
		return err
	}

	return nil
}

// visit adds id to the tree and pushes its edges to unvisited neighbors.
func (p *Prim) visit(id string) error {
	p.visited[id] = true
	p.order++
	p.opts.OnVisit(id, p.order)
	nbs, err := p.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		if !p.visited[nb.Node.ID] {
			p.boundary.Push(nb.Edge, mstWeight(nb.Edge))
		}
	}

	return nil
}

// Step pops the lightest boundary edge.
func (p *Prim) Step() bool {
	if !p.NextStep() {
		return false
	}
	e, w, ok := p.boundary.Pop()
	if !ok {
		p.Sayf("All edges have been considered. MST total weight is %g with %d edges.", p.total, len(p.accepted))
		p.Finish()
		return false
	}

	s, t := e.Source.ID, e.Target.ID
	p.Focus([]string{s, t}, []string{e.ID})
	if p.visited[s] && p.visited[t] {
		p.Sayf("Skipped edge %s (%s, %s) with weight %g because both nodes are already in the MST.", e.ID, s, t, w)
		return true
	}

	fresh := t
	if !p.visited[s] {
		fresh = s
	}
	p.accept(e)
	p.HighlightNodes(s, t)
	p.HighlightEdges(e.ID)
	p.Sayf("Added edge %s (%s, %s) with weight %g to the MST and visited node %s.", e.ID, s, t, w, fresh)
	if err := p.visit(fresh); err != nil {
		p.Halt("Construction aborted: %v.", err)
		return false
	}

	return true
}

// Boundary returns the number of edges waiting on the boundary.
func (p *Prim) Boundary() int {
	if p.boundary == nil {
		return 0
	}

	return p.boundary.Len()
}
