package history

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

var (
	// ErrNoAlgorithm is returned by New for a nil engine.
	ErrNoAlgorithm = errors.New("history: no algorithm")

	// ErrIndexOutOfRange is returned by Seek for an index outside the records.
	ErrIndexOutOfRange = errors.New("history: index out of range")

	// ErrStepLimit is returned by RunToEnd when the engine is still running
	// after the allowed number of steps.
	ErrStepLimit = errors.New("history: step limit reached")
)

const (
	initialDescription = "Algorithm initialized."
	stepDescription    = "Step %d."
)

// phaser is implemented by engines that expose their lifecycle.
type phaser interface {
	Phase() algorithm.Phase
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(r *Recorder) { r.metrics = m }
}

// Recorder is the step history of one engine run.
type Recorder struct {
	mu       sync.Mutex
	alg      algorithm.Algorithm
	graph    *core.Graph
	records  []algorithm.StepRecord
	index    int
	complete bool
	steps    int

	log     *zap.Logger
	metrics *Metrics
}

// New clones g, initializes alg on the clone and records the initial state.
// Errors: ErrNoAlgorithm, and whatever alg.Initialize returns.
func New(alg algorithm.Algorithm, g *core.Graph, opts ...Option) (*Recorder, error) {
	if alg == nil {
		return nil, ErrNoAlgorithm
	}
	if g == nil {
		return nil, algorithm.ErrGraphNil
	}
	r := &Recorder{alg: alg, graph: g.Clone(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(zap.String("algorithm", alg.Name()))
	if err := r.initialize(); err != nil {
		return nil, err
	}

	return r, nil
}

// initialize (re)starts the engine; caller holds r.mu or owns r exclusively.
func (r *Recorder) initialize() error {
	if err := r.alg.Initialize(r.graph); err != nil {
		r.log.Warn("initialize failed", zap.Error(err))
		return fmt.Errorf("history: initialize %s: %w", r.alg.Name(), err)
	}
	r.records = r.records[:0]
	r.index = 0
	r.steps = 0
	r.complete = false
	r.append(initialDescription)
	if p, ok := r.alg.(phaser); ok && p.Phase() == algorithm.Terminal {
		r.complete = true
	}
	r.log.Debug("initialized",
		zap.Int("nodes", r.graph.NodeCount()),
		zap.Int("edges", r.graph.EdgeCount()),
		zap.Bool("complete", r.complete))

	return nil
}

// append snapshots the live state with the engine's description, or fallback
// when the description is blank.
func (r *Recorder) append(fallback string) {
	desc := r.alg.StepInfo()
	if strings.TrimSpace(desc) == "" {
		desc = fallback
	}
	r.records = append(r.records, algorithm.NewStepRecord(r.alg.State(), desc))
	if r.metrics != nil {
		r.metrics.HistoryLength.WithLabelValues(r.alg.Name()).Set(float64(len(r.records)))
	}
}

func (r *Recorder) replayed() {
	if r.metrics != nil {
		r.metrics.Replays.WithLabelValues(r.alg.Name()).Inc()
	}
}

func (r *Recorder) current() algorithm.StepRecord {
	return r.records[r.index].Clone()
}

// Current returns a copy of the record at the cursor.
func (r *Recorder) Current() algorithm.StepRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current()
}

// Index returns the cursor position.
func (r *Recorder) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.index
}

// Len returns the number of records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// Complete reports whether the engine has reached its terminal state.
func (r *Recorder) Complete() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.complete
}

// StepCount returns how many times Step has been called on the engine since
// the last (re)initialization.
func (r *Recorder) StepCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.steps
}

// Algorithm returns the engine name.
func (r *Recorder) Algorithm() string { return r.alg.Name() }

// Records returns copies of all records.
func (r *Recorder) Records() []algorithm.StepRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]algorithm.StepRecord, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Clone()
	}

	return out
}

// First moves the cursor to the initial record.
func (r *Recorder) First() algorithm.StepRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = 0
	r.replayed()

	return r.current()
}

// Prev moves the cursor back one record; at the first record it stays put.
// moved reports whether the cursor changed.
func (r *Recorder) Prev() (rec algorithm.StepRecord, moved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index == 0 {
		return r.current(), false
	}
	r.index--
	r.replayed()

	return r.current(), true
}

// Last moves the cursor to the newest record without executing the engine.
func (r *Recorder) Last() algorithm.StepRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = len(r.records) - 1
	r.replayed()

	return r.current()
}

// Seek moves the cursor to record i without executing the engine.
// Errors: ErrIndexOutOfRange.
func (r *Recorder) Seek(i int) (algorithm.StepRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.records) {
		return algorithm.StepRecord{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(r.records))
	}
	r.index = i
	r.replayed()

	return r.current(), nil
}

// Next advances the cursor. Behind the newest record it replays; at the
// newest record of a running engine it executes exactly one Step and records
// the result. moved is false only when the engine is complete and the cursor
// is already at the newest record.
func (r *Recorder) Next() (rec algorithm.StepRecord, moved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.next()
}

func (r *Recorder) next() (algorithm.StepRecord, bool) {
	if r.index < len(r.records)-1 {
		r.index++
		r.replayed()
		return r.current(), true
	}
	if r.complete {
		return r.current(), false
	}

	began := time.Now()
	more := r.alg.Step()
	elapsed := time.Since(began)
	r.steps++
	r.append(fmt.Sprintf(stepDescription, len(r.records)+1))
	r.index = len(r.records) - 1
	if !more {
		r.complete = true
	}
	if r.metrics != nil {
		name := r.alg.Name()
		r.metrics.StepsExecuted.WithLabelValues(name).Inc()
		r.metrics.StepDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	}
	r.log.Debug("step executed",
		zap.Int("index", r.index),
		zap.Bool("more", more),
		zap.Duration("elapsed", elapsed))
	if r.complete {
		r.log.Info("algorithm complete", zap.Int("steps", r.steps), zap.Int("records", len(r.records)))
	}

	return r.current(), true
}

// RunToEnd executes Next until the engine completes, allowing at most limit
// engine steps (limit <= 0 means no limit). The cursor ends at the newest
// record.
// Errors: ErrStepLimit.
func (r *Recorder) RunToEnd(limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = len(r.records) - 1
	for taken := 0; !r.complete; taken++ {
		if limit > 0 && taken >= limit {
			r.log.Warn("step limit reached", zap.Int("limit", limit))
			return fmt.Errorf("%w: %d", ErrStepLimit, limit)
		}
		r.next()
	}

	return nil
}

// Reset re-initializes the engine on the stored graph clone and drops every
// record but the new initial one.
func (r *Recorder) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.initialize()
}
