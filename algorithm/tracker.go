package algorithm

import (
	"fmt"
	"strings"
)

// Tracker carries the lifecycle, live State and step description of one
// engine. Engines embed it and get State, StepInfo and Phase for free.
//
// Highlight sets are kept in Marks for O(1) membership and copied into the
// live State whenever State is read.
type Tracker struct {
	phase Phase
	state *State
	nodes Marks
	edges Marks
	info  []string
}

// Begin resets everything and enters Running.
func (t *Tracker) Begin() {
	t.phase = Running
	t.state = NewState()
	t.nodes.Reset()
	t.edges.Reset()
	t.info = t.info[:0]
}

// Finish enters Terminal. The current step's effects stay visible.
func (t *Tracker) Finish() { t.phase = Terminal }

// Halt describes a degenerate input and enters Terminal at once.
func (t *Tracker) Halt(format string, args ...any) {
	t.Sayf(format, args...)
	t.Finish()
}

// Phase returns the lifecycle position.
func (t *Tracker) Phase() Phase { return t.phase }

// NextStep opens a new step: clears the description and the current focus.
// It returns false, touching nothing, unless the engine is Running.
func (t *Tracker) NextStep() bool {
	if t.phase != Running {
		return false
	}
	t.info = t.info[:0]
	t.state.CurrentNodes = []string{}
	t.state.CurrentEdges = []string{}

	return true
}

// Sayf appends one line to the step description.
func (t *Tracker) Sayf(format string, args ...any) {
	t.info = append(t.info, fmt.Sprintf(format, args...))
}

// StepInfo joins the description lines of the latest step.
func (t *Tracker) StepInfo() string { return strings.Join(t.info, "\n") }

// State returns the live snapshot. Before Begin it is empty.
func (t *Tracker) State() *State {
	if t.state == nil {
		t.state = NewState()
	}
	t.state.HighlightedNodes = t.nodes.IDs()
	t.state.HighlightedEdges = t.edges.IDs()

	return t.state
}

// HighlightNodes marks nodes persistently.
func (t *Tracker) HighlightNodes(ids ...string) {
	for _, id := range ids {
		t.nodes.Add(id)
	}
}

// HighlightEdges marks edges persistently.
func (t *Tracker) HighlightEdges(ids ...string) {
	for _, id := range ids {
		t.edges.Add(id)
	}
}

// UnhighlightEdge drops a persistent edge mark.
func (t *Tracker) UnhighlightEdge(id string) { t.edges.Remove(id) }

// NodeHighlighted reports whether id is persistently marked.
func (t *Tracker) NodeHighlighted(id string) bool { return t.nodes.Has(id) }

// EdgeHighlighted reports whether id is persistently marked.
func (t *Tracker) EdgeHighlighted(id string) bool { return t.edges.Has(id) }

// ReplaceHighlights drops every persistent mark and sets exactly the given ones.
func (t *Tracker) ReplaceHighlights(nodes, edges []string) {
	t.nodes.Reset()
	t.edges.Reset()
	t.HighlightNodes(nodes...)
	t.HighlightEdges(edges...)
}

// Focus replaces the transient current marks.
func (t *Tracker) Focus(nodes, edges []string) {
	t.state.CurrentNodes = cloneIDs(nodes)
	t.state.CurrentEdges = cloneIDs(edges)
}

// SetValue sets the numeric label of a node.
func (t *Tracker) SetValue(id string, v float64) { t.state.NodeValues[id] = v }

// ClearValues drops every numeric label.
func (t *Tracker) ClearValues() { t.state.NodeValues = map[string]float64{} }
