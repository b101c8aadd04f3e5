package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/internal/frontier"
)

// Name is the registry name of the engine.
const Name = "Dijkstra"

// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// CheckWeights scans g once and reports the first negative edge weight.
// Complexity: O(E).
func CheckWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if w := e.EffectiveWeight(); w < 0 {
			return fmt.Errorf("%w: edge %q has weight %g", ErrNegativeWeight, e.ID, w)
		}
	}

	return nil
}

// Dijkstra is the stepping shortest-path engine. Construct with New.
type Dijkstra struct {
	algorithm.Tracker

	opts     algorithm.Options
	graph    *core.Graph
	pq       *frontier.Queue
	dist     map[string]float64
	settled  map[string]bool
	order    []string
	treeEdge map[string]string
}

// New returns an uninitialized engine configured by opts.
func New(opts ...algorithm.Option) *Dijkstra {
	return &Dijkstra{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (d *Dijkstra) Name() string { return Name }

// Initialize resets the search on g.
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound, ErrNegativeWeight.
func (d *Dijkstra) Initialize(g *core.Graph) error {
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
	if err = CheckWeights(g); err != nil {
		return err
	}

	d.Begin()
	d.graph = g
	d.pq = frontier.New()
	d.dist = make(map[string]float64, g.NodeCount())
	d.settled = make(map[string]bool, g.NodeCount())
	d.order = d.order[:0]
	d.treeEdge = make(map[string]string)
	if start == nil {
		d.Halt("Graph has no nodes; nothing to settle.")
		return nil
	}

	d.dist[start.ID] = 0
	d.pq.Push(start.ID, 0)
	d.HighlightNodes(start.ID)
	d.SetValue(start.ID, 0)
	d.Focus([]string{start.ID}, nil)
	d.Sayf("Initialized Dijkstra's Algorithm with start node %s.", start.ID)

	return nil
}

// Step settles one node and relaxes its outgoing edges.
func (d *Dijkstra) Step() bool {
	if !d.NextStep() {
		return false
	}
	id, du, ok := d.pq.Pop()
	if !ok {
		d.Sayf("All reachable nodes have been settled.")
		d.Finish()
		return false
	}

	d.settled[id] = true
	d.order = append(d.order, id)
	d.HighlightNodes(id)
	d.opts.OnVisit(id, len(d.order))

	nbs, err := d.graph.Neighbors(id)
	if err != nil {
		d.Halt("Search aborted: %v.", err)
		return false
	}
	stepNodes := []string{id}
	var stepEdges []string
	for _, nb := range nbs {
		v := nb.Node.ID
		if d.settled[v] {
			continue
		}
		nd := du + nb.Weight
		if old, seen := d.dist[v]; seen && nd >= old {
			continue
		}
		d.dist[v] = nd
		d.pq.Push(v, nd)
		d.SetValue(v, nd)
		d.HighlightNodes(v)
		if prev, had := d.treeEdge[v]; had {
			d.UnhighlightEdge(prev)
		}
		d.treeEdge[v] = nb.Edge.ID
		d.HighlightEdges(nb.Edge.ID)
		stepNodes = append(stepNodes, v)
		stepEdges = append(stepEdges, nb.Edge.ID)
		d.Sayf("Updated node %s via edge %s (%s→%s) with weight %g; new distance is %g.",
			v, nb.Edge.ID, nb.Edge.Source.ID, nb.Edge.Target.ID, nb.Weight, nd)
	}
	d.Sayf("Selected node %s with distance %g.", id, du)
	d.Focus(stepNodes, stepEdges)

	return true
}

// Distances returns a copy of the tentative distances; settled entries are final.
func (d *Dijkstra) Distances() map[string]float64 {
	out := make(map[string]float64, len(d.dist))
	for k, v := range d.dist {
		out[k] = v
	}

	return out
}

// Settled returns the settled nodes in settling order.
func (d *Dijkstra) Settled() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// TreeEdges returns, for every reached node except the start, the ID of the
// edge its current shortest path arrives by.
func (d *Dijkstra) TreeEdges() map[string]string {
	out := make(map[string]string, len(d.treeEdge))
	for k, v := range d.treeEdge {
		out[k] = v
	}

	return out
}

// Frontier returns the unsettled frontier in pop order.
func (d *Dijkstra) Frontier() []string {
	if d.pq == nil {
		return nil
	}

	return d.pq.IDs()
}
