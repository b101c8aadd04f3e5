package prim_kruskal

import "github.com/katalvlaran/lvstep/core"

const (
	// KruskalName is the registry name of the Kruskal engine.
	KruskalName = "Kruskal"

	// PrimName is the registry name of the Prim engine.
	PrimName = "Prim"
)

// mstWeight is the weight both engines order and sum by.
func mstWeight(e *core.Edge) float64 { return e.WeightOr(0) }

// tree accumulates accepted edges. Both engines embed it.
type tree struct {
	accepted []string
	total    float64
}

func (t *tree) reset() {
	t.accepted = t.accepted[:0]
	t.total = 0
}

func (t *tree) accept(e *core.Edge) {
	t.accepted = append(t.accepted, e.ID)
	t.total += mstWeight(e)
}

// Accepted returns the IDs of the accepted edges in acceptance order.
func (t *tree) Accepted() []string {
	out := make([]string, len(t.accepted))
	copy(out, t.accepted)

	return out
}

// TotalWeight returns the summed weight of the accepted edges.
func (t *tree) TotalWeight() float64 { return t.total }
