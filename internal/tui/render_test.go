package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/builder"
)

func TestSnapshot(t *testing.T) {
	g := builder.SampleGraph(true)
	rec := algorithm.StepRecord{
		State: algorithm.State{
			HighlightedNodes: []string{"A", "B"},
			CurrentNodes:     []string{"B"},
			HighlightedEdges: []string{"A-B"},
			CurrentEdges:     []string{"A-B"},
			NodeValues:       map[string]float64{"A": 0, "B": 1.5},
		},
		Description: "Selected node B with distance 1.5.",
	}
	out := stripped(Snapshot(g, rec))

	assert.Contains(t, out, "▶ B")
	assert.Contains(t, out, "= 1.5")
	assert.Contains(t, out, "● A")
	assert.Contains(t, out, "· C")
	assert.Contains(t, out, "▶ A-B      A → B w=1")
	assert.Contains(t, out, "· A-F      A → F w=9")
	assert.Contains(t, out, "Selected node B with distance 1.5.")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3", formatValue(3))
	assert.Equal(t, "188.68", formatValue(188.68))
}
