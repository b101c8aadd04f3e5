// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.weighted = true
	}
}

// WithUnweighted emits edges without a weight.
func WithUnweighted() BuilderOption {
	return func(c *builderConfig) { c.weighted = false }
}

// WithCenter sets the center of circular layouts.
func WithCenter(x, y float64) BuilderOption {
	return func(c *builderConfig) { c.centerX, c.centerY = x, y }
}

// WithRadius sets the radius of circular layouts. Panics if r <= 0.
func WithRadius(r float64) BuilderOption {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) { c.radius = r }
}

// WithSpacing sets the distance between neighbors in Path and Grid layouts.
// Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithBounds sets the canvas used by Scatter. Panics on a non-positive extent.
func WithBounds(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithBounds(width<=0 || height<=0)")
	}
	return func(c *builderConfig) { c.width, c.height = width, height }
}
