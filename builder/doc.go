// Package builder assembles positioned core.Graph fixtures: the reference
// sample graph, classic topologies laid out on a canvas, and seeded random
// graphs for property tests and demos.
//
// The package offers the following key components:
//
//   - One orchestrator:
//     – BuildGraph(gopts, bopts, cons...): creates the graph, resolves the
//     configuration, runs the constructors in order.
//   - Constructors:
//     – Sample():           the six-node reference graph A..F.
//     – Path, Cycle, Star, Wheel, Complete, Grid: classic topologies.
//     – RandomSparse(n, p): Erdős–Rényi-like sampling on a circle layout.
//     – Scatter(n):         random positions, no edges (geometry fixtures).
//   - Vertex-ID schemes (IDFn):
//     – LetterIDFn:         spreadsheet letters ("A".."Z","AA",...), the default.
//     – DecimalIDFn:        decimal strings ("0","1",...).
//     – PrefixIDFn(p):      p + decimal ("v0","v1",...).
//   - Edge weights (WeightFn):
//     – ConstantWeightFn, UniformWeightFn, IntWeightFn; WithUnweighted drops
//     weights altogether.
//   - Layout knobs: WithCenter, WithRadius, WithSpacing, WithBounds.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give identical
//     graphs, including positions and edge IDs ("<u>-<v>").
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves only return sentinel errors.
//
// Errors:
//
//	ErrTooFewVertices     – size parameter below the constructor minimum
//	ErrInvalidProbability – p outside [0,1]
//	ErrNeedRandSource     – stochastic constructor without WithSeed/WithRand
//	ErrConstructFailed    – nil constructor or a core insertion failure
package builder
