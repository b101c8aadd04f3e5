package algorithm

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvstep/core"
)

// Option configures an engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Initialize.
type Option func(*Options)

// Options is the configuration bag shared by every engine.
type Options struct {
	// Start is the seed node of start-based engines; "" means the first node.
	Start string

	// Target is the goal of goal-directed engines; "" means "pick one".
	Target string

	// Rand drives randomized defaults (A* target choice). Nil means a
	// time-seeded source created at Initialize.
	Rand *rand.Rand

	// Seed, when non-nil, takes precedence over Rand: a fresh source seeded
	// with *Seed is created at every Initialize, so resets replay the same
	// random choices.
	Seed *int64

	// OnVisit is called when a traversal engine visits a node, with the
	// 1-based visiting order.
	OnVisit func(id string, order int)

	err error
}

// DefaultOptions returns Options with no start, no target, no random source
// and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{OnVisit: func(string, int) {}}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Err returns the first option error recorded.
func (o *Options) Err() error { return o.err }

// Fail records an option error; only the first one is kept.
func (o *Options) Fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithStart selects the seed node of start-based engines.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithTarget fixes the goal of goal-directed engines.
func WithTarget(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.Fail("target ID is empty")
			return
		}
		o.Target = id
	}
}

// WithRand supplies the random source for randomized defaults.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.Fail("random source is nil")
			return
		}
		o.Rand = r
	}
}

// WithSeed makes every Initialize draw from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = &seed }
}

// WithOnVisit registers a hook for traversal visits.
func WithOnVisit(fn func(id string, order int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.Fail("OnVisit hook is nil")
			return
		}
		o.OnVisit = fn
	}
}

// RandSource returns the random source for one Initialize call: seeded from
// Seed when set, else Rand, else a time-seeded source.
func (o *Options) RandSource() *rand.Rand {
	switch {
	case o.Seed != nil:
		return rand.New(rand.NewSource(*o.Seed))
	case o.Rand != nil:
		return o.Rand
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// ResolveStart returns the configured start node, or the first node of g when
// none is configured. A nil node with a nil error means g is empty.
func ResolveStart(g *core.Graph, o Options) (*core.Node, error) {
	if o.Start == "" {
		return g.First(), nil
	}
	n := g.Node(o.Start)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
	}

	return n, nil
}

// ResolveTarget returns the configured target of g, or one drawn uniformly
// from the nodes with o.RandSource(). A nil node with a nil error means g is
// empty.
func ResolveTarget(g *core.Graph, o Options) (*core.Node, error) {
	if o.Target != "" {
		n := g.Node(o.Target)
		if n == nil {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, o.Target)
		}
		return n, nil
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}

	return nodes[o.RandSource().Intn(len(nodes))], nil
}
