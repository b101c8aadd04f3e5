// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_random.go — seeded stochastic constructors.
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable trial order: for each i asc, j asc (undirected uses j>i).
//   - Identical output for a fixed seed and option set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodScatter      = "Scatter"

	minRandomSparseVertices = 1
	minScatterVertices      = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi-like graph over n vertices laid out on
// the circle, including each admissible edge independently with probability p.
// Directed graphs try every ordered pair (i,j), i≠j; undirected graphs every
// unordered pair i<j.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource (only
// when 0 < p < 1).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addRing(g, cfg, methodRandomSparse, 0, n); err != nil {
			return err
		}

		include := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !include() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Scatter adds n unconnected vertices at uniformly random positions inside
// the configured bounds. It is the natural fixture for the geometric engines.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource.
// Complexity: O(n).
func Scatter(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minScatterVertices {
			return tooFew(methodScatter, n, minScatterVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			x := round2(cfg.rng.Float64() * cfg.width)
			y := round2(cfg.rng.Float64() * cfg.height)
			if err := addNode(g, methodScatter, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}

		return nil
	}
}
