package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstep/core"
)

// edgeID is the deterministic builder edge ID "<u>-<v>".
func edgeID(u, v string) string { return u + "-" + v }

// addNode inserts a positioned node, wrapping failures with method context.
func addNode(g *core.Graph, method, id string, x, y float64) error {
	if err := g.AddNode(core.Node{ID: id, X: x, Y: y}); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, err, ErrConstructFailed)
	}

	return nil
}

// addEdge inserts u→v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	ref := core.EdgeRef{ID: edgeID(u, v), Source: u, Target: v, Weight: cfg.weight()}
	if err := g.AddEdge(ref); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// ringPoint returns the position of slot i of n on the configured circle,
// starting at twelve o'clock and going clockwise on screen.
func ringPoint(cfg builderConfig, i, n int) (float64, float64) {
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	x := cfg.centerX + cfg.radius*math.Cos(theta)
	y := cfg.centerY + cfg.radius*math.Sin(theta)

	return round2(x), round2(y)
}

// addRing inserts n nodes idFn(offset)..idFn(offset+n-1) around the circle.
func addRing(g *core.Graph, cfg builderConfig, method string, offset, n int) error {
	for i := 0; i < n; i++ {
		x, y := ringPoint(cfg, i, n)
		if err := addNode(g, method, cfg.idFn(offset+i), x, y); err != nil {
			return err
		}
	}

	return nil
}

// round2 keeps generated coordinates readable in serialized files.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
