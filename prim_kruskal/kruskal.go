package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

// Kruskal is the stepping Kruskal engine. Construct with NewKruskal.
type Kruskal struct {
	algorithm.Tracker
	tree

	opts   algorithm.Options
	edges  []*core.Edge
	next   int
	parent map[string]string
	joined int
}

// NewKruskal returns an uninitialized Kruskal engine. It accepts the shared
// options for uniformity; only OnVisit has an effect (called for every node
// an accepted edge brings into the forest for the first time).
func NewKruskal(opts ...algorithm.Option) *Kruskal {
	return &Kruskal{opts: algorithm.NewOptions(opts...)}
}

// Name implements algorithm.Algorithm.
func (k *Kruskal) Name() string { return KruskalName }

// Initialize sorts the edges of g and resets the forest.
// Errors: ErrGraphNil, ErrOptionViolation.
func (k *Kruskal) Initialize(g *core.Graph) error {
	if g == nil {
		return algorithm.ErrGraphNil
	}
	if err := k.opts.Err(); err != nil {
		return err
	}

	k.Begin()
	k.reset()
	k.edges = g.Edges()
	sort.SliceStable(k.edges, func(i, j int) bool {
		return mstWeight(k.edges[i]) < mstWeight(k.edges[j])
	})
	k.next = 0
	k.joined = 0
	k.parent = make(map[string]string, g.NodeCount())
	for _, id := range g.NodeIDs() {
		k.parent[id] = id
	}
	if g.NodeCount() == 0 {
		k.Halt("Graph has no nodes; the spanning tree is empty.")
		return nil
	}
	k.Sayf("Initialized Kruskal's Algorithm.")

	return nil
}

// find returns the set representative of u, compressing the path on the way.
func (k *Kruskal) find(u string) string {
	for k.parent[u] != u {
		k.parent[u] = k.parent[k.parent[u]]
		u = k.parent[u]
	}

	return u
}

// Step consumes the next edge in weight order.
func (k *Kruskal) Step() bool {
	if !k.NextStep() {
		return false
	}
	if k.next >= len(k.edges) {
		k.Sayf("All edges have been processed. MST total weight is %g with %d edges.", k.total, len(k.accepted))
		k.Finish()
		return false
	}

	e := k.edges[k.next]
	k.next++
	s, t := e.Source.ID, e.Target.ID
	k.Focus([]string{s, t}, []string{e.ID})

	rs, rt := k.find(s), k.find(t)
	if rs == rt {
		k.Sayf("Skipped edge %s (%s, %s) with weight %g to avoid creating a cycle.", e.ID, s, t, mstWeight(e))
		return true
	}
	k.parent[rs] = rt
	k.accept(e)
	for _, id := range []string{s, t} {
		if !k.NodeHighlighted(id) {
			k.HighlightNodes(id)
			k.joined++
			k.opts.OnVisit(id, k.joined)
		}
	}
	k.HighlightEdges(e.ID)
	k.Sayf("Added edge %s (%s, %s) with weight %g to the MST.", e.ID, s, t, mstWeight(e))

	return true
}

// Remaining returns the IDs of the edges not yet consumed, in order.
func (k *Kruskal) Remaining() []string {
	out := make([]string, 0, len(k.edges)-k.next)
	for _, e := range k.edges[k.next:] {
		out = append(out, e.ID)
	}

	return out
}
