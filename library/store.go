package library

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstep/core"
)

var (
	// ErrEmptyName is returned when a graph is saved without a name.
	ErrEmptyName = errors.New("library: empty graph name")

	// ErrNotFound is returned when no entry carries the requested name.
	ErrNotFound = errors.New("library: graph not found")

	// ErrNilGraph is returned by Save for a nil graph.
	ErrNilGraph = errors.New("library: graph is nil")
)

const filePermissions = 0o644

// Entry is one saved graph.
type Entry struct {
	Name  string               `json:"name" yaml:"name"`
	Graph core.SerializedGraph `json:"graph" yaml:"graph"`
}

func (e Entry) clone() Entry {
	out := e
	out.Graph.Nodes = append([]core.SerializedNode(nil), e.Graph.Nodes...)
	out.Graph.Edges = make([]core.SerializedEdge, len(e.Graph.Edges))
	for i, se := range e.Graph.Edges {
		if se.Weight != nil {
			se.Weight = core.Weight(*se.Weight)
		}
		out.Graph.Edges[i] = se
	}

	return out
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is a file-backed list of entries. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	path    string
	format  core.Format
	entries []Entry
	log     *zap.Logger
}

// Open loads the library at path. The extension selects the format
// (.json, .yaml, .yml). A missing, empty or corrupt file yields an empty
// library; only an unsupported extension is an error.
func Open(path string, opts ...Option) (*Store, error) {
	format, err := core.FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}
	s := &Store{path: path, format: format, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("path", path))
	s.entries = s.load()

	return s, nil
}

func (s *Store) load() []Entry {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.log.Debug("library file does not exist yet")
		return nil
	case err != nil:
		s.log.Warn("failed to read library", zap.Error(err))
		return nil
	case len(bytes.TrimSpace(data)) == 0:
		return nil
	}

	var entries []Entry
	if s.format == core.FormatYAML {
		err = yaml.Unmarshal(data, &entries)
	} else {
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		s.log.Warn("failed to decode library, starting empty", zap.Error(err))
		return nil
	}

	kept := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			s.log.Warn("dropping unnamed entry")
			continue
		}
		if err := e.Graph.Validate(); err != nil {
			s.log.Warn("dropping invalid entry", zap.String("name", e.Name), zap.Error(err))
			continue
		}
		kept = append(kept, e)
	}
	s.log.Debug("library loaded", zap.Int("entries", len(kept)))

	return kept
}

// persist writes every entry through a temporary file and renames it over
// the library. Caller holds s.mu.
func (s *Store) persist() error {
	var (
		data []byte
		err  error
	)
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	if s.format == core.FormatYAML {
		data, err = yaml.Marshal(entries)
	} else {
		data, err = json.MarshalIndent(entries, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("library: encode: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("library: create dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		return fmt.Errorf("library: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("library: rename: %w", err)
	}

	return nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// List returns the saved names in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}

	return names
}

func (s *Store) indexOf(name string) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}

	return -1
}

// Get returns the entry saved under name.
// Errors: ErrNotFound.
func (s *Store) Get(name string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(name)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return s.entries[i].clone(), nil
}

// Load rebuilds the graph saved under name.
// Errors: ErrNotFound, and any core.FromSerialized error.
func (s *Store) Load(name string) (*core.Graph, error) {
	e, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	return core.FromSerialized(e.Graph)
}

// Save stores g under name as the last entry and rewrites the file. An
// entry already saved under name is dropped first, so re-saving moves it to
// the end of List.
// Errors: ErrEmptyName, ErrNilGraph, and I/O failures.
func (s *Store) Save(name string, g *core.Graph) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if g == nil {
		return ErrNilGraph
	}
	entry := Entry{Name: name, Graph: g.ToSerialized()}

	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	if i := s.indexOf(name); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		replaced = true
	}
	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("graph saved",
		zap.String("name", name),
		zap.Bool("replaced", replaced),
		zap.Int("nodes", len(entry.Graph.Nodes)),
		zap.Int("edges", len(entry.Graph.Edges)))

	return nil
}

// Delete removes the entry saved under name and rewrites the file.
// Errors: ErrNotFound, and I/O failures.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("graph deleted", zap.String("name", name))

	return nil
}
