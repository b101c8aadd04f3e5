package algorithm

// State is the visualization snapshot of one engine.
//
// Highlighted* accumulate (persistent marking); Current* hold only the latest
// step's focus (transient marking). NodeValues carries the engine-specific
// label: visiting order, distance, g-score, hull rank, pair distance.
type State struct {
	HighlightedNodes []string           `json:"highlightedNodes" yaml:"highlightedNodes"`
	HighlightedEdges []string           `json:"highlightedEdges" yaml:"highlightedEdges"`
	CurrentNodes     []string           `json:"currentNodes" yaml:"currentNodes"`
	CurrentEdges     []string           `json:"currentEdges" yaml:"currentEdges"`
	NodeValues       map[string]float64 `json:"nodeValues" yaml:"nodeValues"`
}

// NewState returns an empty State with non-nil containers.
func NewState() *State {
	return &State{
		HighlightedNodes: []string{},
		HighlightedEdges: []string{},
		CurrentNodes:     []string{},
		CurrentEdges:     []string{},
		NodeValues:       map[string]float64{},
	}
}

// Clone returns a deep copy sharing no container with s.
func (s *State) Clone() State {
	if s == nil {
		return *NewState()
	}
	out := State{
		HighlightedNodes: cloneIDs(s.HighlightedNodes),
		HighlightedEdges: cloneIDs(s.HighlightedEdges),
		CurrentNodes:     cloneIDs(s.CurrentNodes),
		CurrentEdges:     cloneIDs(s.CurrentEdges),
		NodeValues:       make(map[string]float64, len(s.NodeValues)),
	}
	for k, v := range s.NodeValues {
		out.NodeValues[k] = v
	}

	return out
}

func cloneIDs(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}

// StepRecord is one immutable history entry.
type StepRecord struct {
	State       State  `json:"state" yaml:"state"`
	Description string `json:"description" yaml:"description"`
}

// NewStepRecord deep-copies live into a record.
func NewStepRecord(live *State, description string) StepRecord {
	return StepRecord{State: live.Clone(), Description: description}
}

// Clone returns a deep copy of r.
func (r StepRecord) Clone() StepRecord {
	return StepRecord{State: r.State.Clone(), Description: r.Description}
}
