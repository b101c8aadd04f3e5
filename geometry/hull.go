package geometry

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

type hullPhase int

const (
	phaseLower hullPhase = iota
	phaseUpper
)

// ConvexHull is the stepping monotone-chain engine. Construct with NewHull.
type ConvexHull struct {
	algorithm.Tracker

	opts   algorithm.Options
	graph  *core.Graph
	sorted []*core.Node
	lower  []*core.Node
	upper  []*core.Node
	li, ui int
	phase  hullPhase
	hull   []string
}

// NewHull returns an uninitialized convex hull engine.
func NewHull(opts ...algorithm.Option) *ConvexHull {
	return &ConvexHull{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (h *ConvexHull) Name() string { return HullName }

// Initialize sorts the nodes of g and resolves the degenerate sizes.
// Errors: ErrGraphNil, ErrOptionViolation.
func (h *ConvexHull) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := h.opts.Err(); err != nil {
		return err
	}

	h.Begin()
	h.graph = g
	h.sorted = g.Nodes()
	sort.SliceStable(h.sorted, func(i, j int) bool {
		a, b := h.sorted[i], h.sorted[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	h.lower = h.lower[:0]
	h.upper = h.upper[:0]
	h.li, h.ui = 0, len(h.sorted)-1
	h.phase = phaseLower
	h.hull = nil

	switch len(h.sorted) {
	case 0:
		h.Halt("Graph has no nodes to construct a convex hull.")
	case 1:
		n := h.sorted[0]
		h.hull = []string{n.ID}
		h.HighlightNodes(n.ID)
		h.SetValue(n.ID, 1)
		h.Focus(h.hull, nil)
		h.Halt("Convex hull is a single node (%s).", n.ID)
	case 2:
		a, b := h.sorted[0], h.sorted[1]
		h.hull = []string{a.ID, b.ID}
		edges := edgesAround(g, h.sorted)
		h.ReplaceHighlights(h.hull, edges)
		h.SetValue(a.ID, 1)
		h.SetValue(b.ID, 2)
		h.Focus(h.hull, edges)
		h.Halt("Convex hull is the segment between %s and %s.", a.ID, b.ID)
	default:
		h.Focus([]string{h.sorted[0].ID}, nil)
		h.Sayf("Initialized convex hull construction.")
	}

	return nil
}

// push appends n to chain and pops middle points until the tail turns
// strictly counter-clockwise. It returns the grown chain and the removed nodes.
func push(chain []*core.Node, n *core.Node) ([]*core.Node, []*core.Node) {
	chain = append(chain, n)
	var removed []*core.Node
	for len(chain) >= 3 && Cross(chain[len(chain)-3], chain[len(chain)-2], chain[len(chain)-1]) <= 0 {
		removed = append(removed, chain[len(chain)-2])
		chain = append(chain[:len(chain)-2], chain[len(chain)-1])
	}

	return chain, removed
}

// Step feeds one node to the active chain.
func (h *ConvexHull) Step() bool {
	if !h.NextStep() {
		return false
	}

	if h.phase == phaseLower && h.li >= len(h.sorted) {
		h.phase = phaseUpper
		h.syncChains()
		h.Sayf("Lower hull completed. Starting upper hull.")
		return true
	}

	var (
		n       *core.Node
		removed []*core.Node
		chain   *[]*core.Node
		label   string
	)
	if h.phase == phaseLower {
		n = h.sorted[h.li]
		h.li++
		chain, label = &h.lower, "lower"
	} else {
		n = h.sorted[h.ui]
		h.ui--
		chain, label = &h.upper, "upper"
	}
	*chain, removed = push(*chain, n)

	h.syncChains()
	c := *chain
	tail := c[max(0, len(c)-3):]
	h.Focus(uniq(append(ids(tail), ids(removed)...)), edgesAround(h.graph, c[max(0, len(c)-2):]))
	h.ClearValues()
	h.Sayf("Processing node %s for the %s hull.", n.ID, label)
	if len(removed) > 0 {
		h.Sayf("Removed node(s) %s due to a non-counter-clockwise turn.", strings.Join(ids(removed), ", "))
	}

	if h.phase == phaseUpper && h.ui < 0 {
		h.finalize()
		return false
	}

	return true
}

// syncChains highlights the union of both chains and no edges.
func (h *ConvexHull) syncChains() {
	h.ReplaceHighlights(uniq(append(ids(h.lower), ids(h.upper)...)), nil)
}

func (h *ConvexHull) finalize() {
	raw := append([]*core.Node{}, h.lower...)
	if len(h.upper) > 2 {
		raw = append(raw, h.upper[1:len(h.upper)-1]...)
	}
	seen := make(map[string]bool, len(raw))
	ordered := raw[:0:0]
	for _, n := range raw {
		if !seen[n.ID] {
			seen[n.ID] = true
			ordered = append(ordered, n)
		}
	}

	h.hull = ids(ordered)
	edges := edgesAround(h.graph, ordered)
	h.ReplaceHighlights(h.hull, edges)
	h.Focus(h.hull, edges)
	h.ClearValues()
	for i, id := range h.hull {
		h.SetValue(id, float64(i+1))
	}
	h.Sayf("Convex hull completed with vertex order: %s.", strings.Join(h.hull, " → "))
	h.Finish()
}

// Hull returns the hull vertex IDs in counter-clockwise (y-up) order once
// the hull is known.
func (h *ConvexHull) Hull() []string {
	out := make([]string, len(h.hull))
	copy(out, h.hull)

	return out
}
