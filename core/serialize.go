// File: serialize.go
// Role: Graph <-> wire form, consumed by persistence and import/export.
// Contract:
//   - ToSerialized is the exact inverse of FromSerialized (field sets preserved,
//     object identity not).
//   - FromSerialized fails fast on a dangling edge reference; it never drops an edge.

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format selects a wire encoding.
type Format string

const (
	// FormatJSON is encoding/json with two-space indentation.
	FormatJSON Format = "json"

	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates a Format other than FormatJSON or FormatYAML.
var ErrUnknownFormat = errors.New("core: unknown serialization format")

// SerializedNode is the wire form of a Node.
type SerializedNode struct {
	ID    string  `json:"id" yaml:"id" validate:"required"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// SerializedEdge is the wire form of an Edge; endpoints are node IDs.
type SerializedEdge struct {
	ID     string   `json:"id" yaml:"id" validate:"required"`
	Source string   `json:"source" yaml:"source" validate:"required"`
	Target string   `json:"target" yaml:"target" validate:"required"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// SerializedGraph is the wire form of a Graph.
type SerializedGraph struct {
	Directed bool             `json:"directed" yaml:"directed"`
	Nodes    []SerializedNode `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges    []SerializedEdge `json:"edges" yaml:"edges" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields. It does not resolve references; that is
// FromSerialized's job.
func (s SerializedGraph) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}

	return nil
}

// ToSerialized snapshots g into its wire form.
// Complexity: O(V + E).
func (g *Graph) ToSerialized() SerializedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := SerializedGraph{
		Directed: g.directed,
		Nodes:    make([]SerializedNode, len(g.nodes)),
		Edges:    make([]SerializedEdge, len(g.edges)),
	}
	for i, n := range g.nodes {
		out.Nodes[i] = SerializedNode{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y}
	}
	for i, e := range g.edges {
		se := SerializedEdge{ID: e.ID, Source: e.Source.ID, Target: e.Target.ID}
		if e.Weight != nil {
			se.Weight = Weight(*e.Weight)
		}
		out.Edges[i] = se
	}

	return out
}

// FromSerialized rebuilds a Graph, resolving every edge endpoint against the
// freshly created nodes.
//
// Errors: ErrInvalidGraph, ErrDuplicateNode, ErrDuplicateEdge, ErrDanglingEdge.
func FromSerialized(s SerializedGraph) (*Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	nodes := make([]Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y}
	}
	refs := make([]EdgeRef, len(s.Edges))
	for i, e := range s.Edges {
		refs[i] = EdgeRef{ID: e.ID, Source: e.Source, Target: e.Target, Weight: e.Weight}
	}

	return FromParts(nodes, refs, s.Directed)
}

// EncodeJSON writes g as indented JSON.
func EncodeJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(g.ToSerialized())
}

// DecodeJSON reads a JSON graph and rebuilds it.
func DecodeJSON(r io.Reader) (*Graph, error) {
	var s SerializedGraph
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("core: decode json: %w", err)
	}

	return FromSerialized(s)
}

// EncodeYAML writes g as YAML.
func EncodeYAML(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.ToSerialized()); err != nil {
		return err
	}

	return enc.Close()
}

// DecodeYAML reads a YAML graph and rebuilds it.
func DecodeYAML(r io.Reader) (*Graph, error) {
	var s SerializedGraph
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("core: decode yaml: %w", err)
	}

	return FromSerialized(s)
}

// Encode dispatches on format.
func Encode(w io.Writer, g *Graph, format Format) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, g)
	case FormatYAML:
		return EncodeYAML(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode dispatches on format.
func Decode(r io.Reader, format Format) (*Graph, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatFromPath picks a Format from a file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}
