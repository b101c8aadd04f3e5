package geometry

import (
	"math"

	"github.com/katalvlaran/lvstep/core"
)

// Registry names of the engines.
const (
	HullName         = "ConvexHull"
	ClosestPairName  = "ClosestPair"
	FarthestPairName = "FarthestPair"
)

// Cross returns (a-o)×(b-o); positive means o→a→b turns counter-clockwise
// in a y-up frame.
func Cross(o, a, b *core.Node) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Distance is the Euclidean distance between two node positions.
func Distance(a, b *core.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// edgesAround returns the IDs of graph edges joining consecutive nodes of
// seq, including last→first, once each.
func edgesAround(g *core.Graph, seq []*core.Node) []string {
	if len(seq) < 2 {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for i, cur := range seq {
		next := seq[(i+1)%len(seq)]
		if cur.ID == next.ID {
			continue
		}
		if e := g.EdgeBetween(cur.ID, next.ID); e != nil && !seen[e.ID] {
			seen[e.ID] = true
			out = append(out, e.ID)
		}
	}

	return out
}

func ids(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}

// uniq keeps the first occurrence of every ID.
func uniq(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, id := range in {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
