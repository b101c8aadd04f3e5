package geometry

import (
	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

// Pair is the best pair found by a pair search.
type Pair struct {
	A, B     string
	Distance float64
}

// PairSearch is the stepping brute-force pair scanner behind ClosestPair and
// FarthestPair. Construct with NewClosestPair or NewFarthestPair.
type PairSearch struct {
	algorithm.Tracker

	name   string
	noun   string
	title  string
	better func(candidate, best float64) bool

	opts   algorithm.Options
	graph  *core.Graph
	nodes  []*core.Node
	i, j   int
	best   [2]*core.Node
	bestD  float64
	hasWin bool
}

// NewClosestPair returns a pair search minimizing distance.
func NewClosestPair(opts ...algorithm.Option) *PairSearch {
	return &PairSearch{
		name:   ClosestPairName,
		noun:   "closest",
		title:  "Closest",
		better: func(c, b float64) bool { return c < b },
		opts:   algorithm.NewOptions(opts...),
	}
}

// NewFarthestPair returns a pair search maximizing distance.
func NewFarthestPair(opts ...algorithm.Option) *PairSearch {
	return &PairSearch{
		name:   FarthestPairName,
		noun:   "farthest",
		title:  "Farthest",
		better: func(c, b float64) bool { return c > b },
		opts:   algorithm.NewOptions(opts...),
	}
}

// Name implements algorithm.Algorithm.
func (p *PairSearch) Name() string { return p.name }

// Initialize snapshots the node order of g and resets the scan.
// Errors: ErrGraphNil, ErrOptionViolation.
func (p *PairSearch) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := p.opts.Err(); err != nil {
		return err
	}

	p.Begin()
	p.graph = g
	p.nodes = g.Nodes()
	p.i, p.j = 0, 1
	p.best = [2]*core.Node{}
	p.bestD = 0
	p.hasWin = false
	if len(p.nodes) < 2 {
		all := ids(p.nodes)
		p.HighlightNodes(all...)
		p.Focus(all, nil)
		p.Halt("At least two nodes are required to compute the %s pair.", p.noun)
		return nil
	}
	p.Focus([]string{p.nodes[0].ID}, nil)
	p.Sayf("Initialized %s pair search.", p.noun)

	return nil
}

// Step compares one pair, or presents the winner once every pair is done.
func (p *PairSearch) Step() bool {
	if !p.NextStep() {
		return false
	}
	if p.i >= len(p.nodes)-1 {
		p.present()
		return false
	}

	a, b := p.nodes[p.i], p.nodes[p.j]
	d := Distance(a, b)
	p.Sayf("Comparing %s and %s; distance = %.2f.", a.ID, b.ID, d)
	if !p.hasWin || p.better(d, p.bestD) {
		p.best = [2]*core.Node{a, b}
		p.bestD = d
		p.hasWin = true
		p.Sayf("Updated %s pair.", p.noun)
	}

	var cmpEdges []string
	if e := p.graph.EdgeBetween(a.ID, b.ID); e != nil {
		cmpEdges = []string{e.ID}
	}
	edges := append([]string{}, cmpEdges...)
	if e := p.graph.EdgeBetween(p.best[0].ID, p.best[1].ID); e != nil {
		edges = append(edges, e.ID)
	}
	p.ReplaceHighlights(uniq([]string{a.ID, b.ID, p.best[0].ID, p.best[1].ID}), uniq(edges))
	p.Focus([]string{a.ID, b.ID}, cmpEdges)
	p.ClearValues()
	p.SetValue(p.best[0].ID, round2(p.bestD))
	p.SetValue(p.best[1].ID, round2(p.bestD))

	p.j++
	if p.j >= len(p.nodes) {
		p.i++
		p.j = p.i + 1
	}

	return true
}

func (p *PairSearch) present() {
	a, b := p.best[0], p.best[1]
	var edges []string
	if e := p.graph.EdgeBetween(a.ID, b.ID); e != nil {
		edges = []string{e.ID}
	}
	p.ReplaceHighlights([]string{a.ID, b.ID}, edges)
	p.Focus([]string{a.ID, b.ID}, edges)
	p.ClearValues()
	p.SetValue(a.ID, round2(p.bestD))
	p.SetValue(b.ID, round2(p.bestD))
	p.Sayf("%s pair identified. Distance: %g.", p.title, round2(p.bestD))
	p.Finish()
}

// Best returns the best pair so far and whether any pair was compared.
func (p *PairSearch) Best() (Pair, bool) {
	if !p.hasWin {
		return Pair{}, false
	}

	return Pair{A: p.best[0].ID, B: p.best[1].ID, Distance: p.bestD}, true
}

// Progress returns how many pairs have been compared and how many exist.
func (p *PairSearch) Progress() (done, total int) {
	n := len(p.nodes)
	total = n * (n - 1) / 2
	for i := 0; i < p.i && i < n; i++ {
		done += n - 1 - i
	}
	if p.i < n-1 {
		done += p.j - p.i - 1
	}

	return done, total
}
