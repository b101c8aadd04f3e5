// Package registry maps algorithm names to engine factories, so drivers can
// pick an engine from a flag or a config file.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/astar"
	"github.com/katalvlaran/lvstep/bfs"
	"github.com/katalvlaran/lvstep/dfs"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/geometry"
	"github.com/katalvlaran/lvstep/prim_kruskal"
)

var (
	// ErrUnknownAlgorithm is returned by New for a name nobody registered.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

	// ErrDuplicateName is returned by Register for a name already taken.
	ErrDuplicateName = errors.New("registry: algorithm already registered")

	// ErrNilFactory is returned by Register for a nil factory.
	ErrNilFactory = errors.New("registry: nil factory")
)

// Factory builds a fresh, uninitialized engine.
type Factory func(opts ...algorithm.Option) algorithm.Algorithm

// Registry is a concurrency-safe name → Factory table.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a Registry holding all nine built-in engines.
func Default() *Registry {
	r := NewRegistry()
	builtin := map[string]Factory{
		dijkstra.Name:             func(o ...algorithm.Option) algorithm.Algorithm { return dijkstra.New(o...) },
		bfs.Name:                  func(o ...algorithm.Option) algorithm.Algorithm { return bfs.New(o...) },
		dfs.Name:                  func(o ...algorithm.Option) algorithm.Algorithm { return dfs.New(o...) },
		astar.Name:                func(o ...algorithm.Option) algorithm.Algorithm { return astar.New(o...) },
		prim_kruskal.KruskalName:  func(o ...algorithm.Option) algorithm.Algorithm { return prim_kruskal.NewKruskal(o...) },
		prim_kruskal.PrimName:     func(o ...algorithm.Option) algorithm.Algorithm { return prim_kruskal.NewPrim(o...) },
		geometry.HullName:         func(o ...algorithm.Option) algorithm.Algorithm { return geometry.NewHull(o...) },
		geometry.ClosestPairName:  func(o ...algorithm.Option) algorithm.Algorithm { return geometry.NewClosestPair(o...) },
		geometry.FarthestPairName: func(o ...algorithm.Option) algorithm.Algorithm { return geometry.NewFarthestPair(o...) },
	}
	for name, f := range builtin {
		r.factories[name] = f
	}

	return r
}

// Register adds a factory under name.
// Errors: ErrDuplicateName, ErrNilFactory.
func (r *Registry) Register(name string, f Factory) error {
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.factories[name] = f

	return nil
}

// New builds the engine registered under name with opts.
func (r *Registry) New(name string, opts ...algorithm.Option) (algorithm.Algorithm, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return f(opts...), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]

	return ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}
