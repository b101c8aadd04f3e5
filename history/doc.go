// Package history records the snapshots of one stepping engine and lets a
// driver navigate them.
//
// A Recorder owns a private clone of the graph, initializes the engine on it
// and keeps one algorithm.StepRecord per executed step, starting with the
// initialized state. Navigation (First, Prev, Next, Last, Seek) replays
// stored records; only Next at the newest record executes the engine, and it
// executes exactly one Step. Records are deep-copied on the way in and on the
// way out, so nothing handed to a caller aliases the engine's live state.
//
// All methods are serialized by one mutex; a Recorder may be shared between
// a UI goroutine and a metrics endpoint.
//
// Observability:
//
//   - WithLogger attaches a *zap.Logger (default: zap.NewNop()).
//   - WithMetrics attaches Prometheus collectors built by NewMetrics.
package history
