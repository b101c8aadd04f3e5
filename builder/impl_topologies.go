// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_topologies.go — deterministic classic topologies.
//
// Contract (all constructors):
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in a stable, documented order with IDs "<u>-<v>".
//   • Weight policy: cfg.weightFn(cfg.rng), or none under WithUnweighted.
//   • Return only sentinel errors; never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4 // rim cycle needs at least 3 nodes
	minCompleteNodes = 1
	minGridDim       = 1

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Path builds P_n laid out left to right; edges i→i+1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		x0 := cfg.centerX - cfg.spacing*float64(n-1)/2
		for i := 0; i < n; i++ {
			if err := addNode(g, methodPath, cfg.idFn(i), round2(x0+cfg.spacing*float64(i)), cfg.centerY); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n on a circle; edges i→(i+1)%n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		if err := addRing(g, cfg, methodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub "Center" at the layout center with n-1 leaves on the
// circle; edges Center→leaf.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := addNode(g, methodStar, CenterVertexID, cfg.centerX, cfg.centerY); err != nil {
			return err
		}
		if err := addRing(g, cfg, methodStar, 0, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} on the circle plus hub "Center"; rim edges first,
// then spokes Center→rim.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := addNode(g, methodWheel, CenterVertexID, cfg.centerX, cfg.centerY); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n on a circle; edges i→j for i<j in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		if err := addRing(g, cfg, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice centered on the layout
// center. Vertex r,c gets idFn(r*cols+c); edges per cell: right, then down.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		x0 := cfg.centerX - cfg.spacing*float64(cols-1)/2
		y0 := cfg.centerY - cfg.spacing*float64(rows-1)/2
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x := round2(x0 + cfg.spacing*float64(c))
				y := round2(y0 + cfg.spacing*float64(r))
				if err := addNode(g, methodGrid, id(r, c), x, y); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
