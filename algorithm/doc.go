// Package algorithm defines the stepping contract shared by every engine in
// lvstep, together with the visualization snapshot it produces.
//
// What
//
//   - Algorithm: Initialize / Step / State / StepInfo. One Step is one atomic
//     unit of work (one pop, one edge, one pair).
//   - State: persistent highlights (everything touched so far), transient
//     current focus (replaced every step) and per-node numeric labels.
//   - StepRecord: a deep, value-type copy of State plus its description.
//   - Tracker: the lifecycle and bookkeeping every engine embeds.
//
// Lifecycle
//
//	Uninitialized ──Initialize──▶ Running ──Step()==false──▶ Terminal
//	      ▲                          │                          │
//	      └──────────── Initialize (reset) ◀────────────────────┘
//
// Around the transitions:
//
//   - The Step call that returns false still applies its visual effects.
//   - Step before Initialize, or after Terminal, is a no-op returning false.
//   - State before Initialize is an empty, non-nil snapshot.
//   - A graph with zero nodes is not an error: the engine goes straight to
//     Terminal with an explanatory StepInfo.
//
// Aliasing
//
//	State() returns the live object; engines mutate it in place on every
//	step. Anything that outlives the next Step call must be a Clone
//	(NewStepRecord does this).
//
// Options
//
//	Engines share one functional Options bag so a registry can construct any of
//	them uniformly. Each engine reads the fields it understands (Start,
//	Target, Rand, OnVisit) and ignores the rest. Invalid options are recorded
//	and surfaced by Initialize.
//
// Errors:
//
//	ErrGraphNil         – Initialize received a nil *core.Graph
//	ErrStartNotFound    – WithStart named a node that is not in the graph
//	ErrTargetNotFound   – a target option named a node that is not in the graph
//	ErrOptionViolation  – an option was given an invalid value
package algorithm
