package astar

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/internal/frontier"
)

// Name is the registry name of the engine.
const Name = "AStar"

// AStar is the stepping A* engine. Construct with New.
type AStar struct {
	algorithm.Tracker

	opts     algorithm.Options
	graph    *core.Graph
	start    *core.Node
	target   *core.Node
	open     *frontier.Queue
	gScore   map[string]float64
	closed   map[string]bool
	cameFrom map[string]*core.Edge
	path     []string
	found    bool
}

// New returns an uninitialized engine configured by opts.
func New(opts ...algorithm.Option) *AStar {
	return &AStar{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (a *AStar) Name() string { return Name }

// Heuristic is the straight-line distance between two node positions.
func Heuristic(u, v *core.Node) float64 {
	return math.Hypot(u.X-v.X, u.Y-v.Y)
}

// Initialize picks the start and target and resets the search on g.
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound,
// ErrTargetNotFound, dijkstra.ErrNegativeWeight.
func (a *AStar) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := a.opts.Err(); err != nil {
		return err
	}
	start, err := algorithm.ResolveStart(g, a.opts)
	if err != nil {
		return err
	}
	target, err := algorithm.ResolveTarget(g, a.opts)
	if err != nil {
		return err
	}
	if err = dijkstra.CheckWeights(g); err != nil {
		return err
	}

	a.Begin()
	a.graph = g
	a.start, a.target = start, target
	a.open = frontier.New()
	a.gScore = make(map[string]float64, g.NodeCount())
	a.closed = make(map[string]bool, g.NodeCount())
	a.cameFrom = make(map[string]*core.Edge)
	a.path = nil
	a.found = false
	if start == nil {
		a.Halt("Graph has no nodes; there is nothing to search.")
		return nil
	}

	a.gScore[start.ID] = 0
	a.open.Push(start.ID, Heuristic(start, target))
	a.HighlightNodes(start.ID, target.ID)
	a.SetValue(start.ID, 0)
	a.Focus([]string{start.ID}, nil)
	a.Sayf("Initialized A* with start node %s and target node %s.", start.ID, target.ID)

	return nil
}

// Step expands the frontier node with the lowest f-score.
func (a *AStar) Step() bool {
	if !a.NextStep() {
		return false
	}
	id, _, ok := a.open.Pop()
	if !ok {
		a.Sayf("Frontier exhausted; target node %s is unreachable from %s.", a.target.ID, a.start.ID)
		a.Finish()
		return false
	}

	a.closed[id] = true
	a.HighlightNodes(id)
	a.Sayf("Visiting node %s.", id)

	if id == a.target.ID {
		a.found = true
		nodes, edges := a.reconstruct()
		a.path = nodes
		a.ReplaceHighlights(nodes, edges)
		a.Focus([]string{id}, nil)
		a.Sayf("Target node %s found. Path: %s (cost %g).", id, strings.Join(nodes, " → "), a.gScore[id])
		a.Finish()
		return false
	}

	nbs, err := a.graph.Neighbors(id)
	if err != nil {
		a.Halt("Search aborted: %v.", err)
		return false
	}
	gu := a.gScore[id]
	stepNodes := []string{id}
	var stepEdges []string
	for _, nb := range nbs {
		v := nb.Node.ID
		if a.closed[v] {
			continue
		}
		tg := gu + nb.Weight
		if old, seen := a.gScore[v]; seen && tg >= old {
			continue
		}
		if prev, had := a.cameFrom[v]; had {
			a.UnhighlightEdge(prev.ID)
		}
		a.cameFrom[v] = nb.Edge
		a.gScore[v] = tg
		a.open.Push(v, tg+Heuristic(nb.Node, a.target))
		a.SetValue(v, tg)
		a.HighlightNodes(v)
		a.HighlightEdges(nb.Edge.ID)
		stepNodes = append(stepNodes, v)
		stepEdges = append(stepEdges, nb.Edge.ID)
		a.Sayf("Discovered node %s via edge %s (%s→%s) with weight %g; gScore is %g.",
			v, nb.Edge.ID, nb.Edge.Source.ID, nb.Edge.Target.ID, nb.Weight, tg)
	}
	a.Focus(stepNodes, stepEdges)

	return true
}

// reconstruct walks cameFrom back from the target; results are start-first.
func (a *AStar) reconstruct() ([]string, []string) {
	nodes := []string{a.target.ID}
	var edges []string
	for cur := a.target.ID; cur != a.start.ID; {
		e := a.cameFrom[cur]
		edges = append(edges, e.ID)
		cur = e.Other(cur).ID
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges
}

// Target returns the chosen target ID, or "" before a successful Initialize
// on a non-empty graph.
func (a *AStar) Target() string {
	if a.target == nil {
		return ""
	}

	return a.target.ID
}

// Found reports whether the target has been reached.
func (a *AStar) Found() bool { return a.found }

// Path returns the start→target node sequence once the target is found.
func (a *AStar) Path() []string {
	out := make([]string, len(a.path))
	copy(out, a.path)

	return out
}

// Cost returns the g-score of the target and whether it was reached.
func (a *AStar) Cost() (float64, bool) {
	if !a.found {
		return 0, false
	}

	return a.gScore[a.target.ID], true
}
