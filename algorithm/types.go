package algorithm

import (
	"errors"

	"github.com/katalvlaran/lvstep/core"
)

// Sentinel errors shared by all engines.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Initialize.
	ErrGraphNil = errors.New("algorithm: graph is nil")

	// ErrStartNotFound is returned when the configured start node is absent.
	ErrStartNotFound = errors.New("algorithm: start node not found")

	// ErrTargetNotFound is returned when the configured target node is absent.
	ErrTargetNotFound = errors.New("algorithm: target node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("algorithm: invalid option supplied")
)

// Algorithm is the stepping contract every engine satisfies.
type Algorithm interface {
	// Name is the registry name of the engine ("Dijkstra", "ConvexHull", ...).
	Name() string

	// Initialize resets every internal structure from g and enters Running
	// (or Terminal for degenerate inputs). Safe to call repeatedly.
	Initialize(g *core.Graph) error

	// Step performs one atomic unit of work and reports whether more remain.
	Step() bool

	// State returns the live snapshot, mutated in place by Step.
	State() *State

	// StepInfo describes the most recent step; lines are "\n"-separated.
	StepInfo() string
}

// Phase is the engine lifecycle position.
type Phase int

const (
	// Uninitialized is the zero Phase: Initialize has never succeeded.
	Uninitialized Phase = iota
	// Running means Step will perform work.
	Running
	// Terminal means the final step has been applied.
	Terminal
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}
