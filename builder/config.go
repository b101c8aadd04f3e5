// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = LetterIDFn          ("A","B",...,"Z","AA",...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)
//   • weighted = true
//   • center   = (400, 400), radius = 250, spacing = 100
//   • bounds   = 800 × 800

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	weighted bool

	// layout
	centerX, centerY float64
	radius           float64
	spacing          float64
	width, height    float64
}

const (
	defaultCenter  = 400.0
	defaultRadius  = 250.0
	defaultSpacing = 100.0
	defaultExtent  = 800.0
)

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     LetterIDFn,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
		weighted: true,
		centerX:  defaultCenter,
		centerY:  defaultCenter,
		radius:   defaultRadius,
		spacing:  defaultSpacing,
		width:    defaultExtent,
		height:   defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight returns the next edge weight, or nil when the builder is unweighted.
func (c builderConfig) weight() *float64 {
	if !c.weighted {
		return nil
	}
	w := c.weightFn(c.rng)

	return &w
}
