// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_sample.go — the reference graph every demo and scenario test starts from.
//
// Nodes: A(120,120) B(320,120) C(220,320) D(520,180) E(360,460) F(260,620).
// Edges in insertion order: A-B=1, A-C=4, D-C=2, E-F=3, A-F=9, B-F=5, D-E=8.
// Node IDs, positions and weights are fixed; idFn, weightFn and layout
// options do not apply. WithUnweighted still drops the weights.

package builder

import "github.com/katalvlaran/lvstep/core"

const methodSample = "Sample"

var sampleNodes = []core.Node{
	{ID: "A", X: 120, Y: 120},
	{ID: "B", X: 320, Y: 120},
	{ID: "C", X: 220, Y: 320},
	{ID: "D", X: 520, Y: 180},
	{ID: "E", X: 360, Y: 460},
	{ID: "F", X: 260, Y: 620},
}

var sampleEdges = []struct {
	u, v string
	w    float64
}{
	{"A", "B", 1},
	{"A", "C", 4},
	{"D", "C", 2},
	{"E", "F", 3},
	{"A", "F", 9},
	{"B", "F", 5},
	{"D", "E", 8},
}

// Sample returns a Constructor that adds the six-node reference graph.
// Complexity: O(1).
func Sample() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, n := range sampleNodes {
			if err := addNode(g, methodSample, n.ID, n.X, n.Y); err != nil {
				return err
			}
		}
		fixed := cfg
		for _, e := range sampleEdges {
			fixed.weightFn = ConstantWeightFn(e.w)
			if err := addEdge(g, fixed, methodSample, e.u, e.v); err != nil {
				return err
			}
		}

		return nil
	}
}
