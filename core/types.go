// Package core defines the central Graph, Node, and Edge types and the
// sentinel errors shared by graph construction, editing, and decoding.
//
// All Graph methods take a single sync.RWMutex: queries hold the read lock,
// edits hold the write lock. Nodes and edges handed out by queries are live
// pointers and must be treated as read-only by callers.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyEdgeID indicates that an edge ID is the empty string.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateNode indicates an attempt to add a node whose ID already exists.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates an attempt to add an edge whose ID already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDanglingEdge indicates an edge whose source or target ID is not in the node list.
	ErrDanglingEdge = errors.New("core: edge references missing node")

	// ErrParallelEdge indicates an edge joining a pair of nodes that another edge already joins.
	ErrParallelEdge = errors.New("core: parallel edge")

	// ErrInvalidGraph indicates a serialized graph that failed structural validation.
	ErrInvalidGraph = errors.New("core: invalid serialized graph")
)

// Node is a positioned vertex. X and Y drive both rendering and the
// Euclidean computations of A* and the geometric engines.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Label is an optional display name.
	Label string

	// X, Y is the node position.
	X, Y float64
}

// Edge connects two nodes of the same Graph.
//
// Source and Target are shared pointers into the owning Graph's node list;
// Clone and FromParts re-resolve them so they never dangle.
type Edge struct {
	// ID uniquely identifies this Edge within its Graph.
	ID string

	// Source is the tail node (the only traversal origin in directed graphs).
	Source *Node

	// Target is the head node.
	Target *Node

	// Weight is optional; nil means the edge carries no weight.
	Weight *float64
}

// DefaultWeight is the weight traversal engines assume for an unweighted edge.
const DefaultWeight = 1.0

// EffectiveWeight returns the edge weight, or DefaultWeight when none is set.
func (e *Edge) EffectiveWeight() float64 {
	return e.WeightOr(DefaultWeight)
}

// WeightOr returns the edge weight, or def when none is set.
func (e *Edge) WeightOr(def float64) float64 {
	if e.Weight == nil {
		return def
	}

	return *e.Weight
}

// HasWeight reports whether an explicit weight is attached.
func (e *Edge) HasWeight() bool { return e.Weight != nil }

// Other returns the endpoint opposite to id, or nil if id is not an endpoint.
func (e *Edge) Other(id string) *Node {
	switch id {
	case e.Source.ID:
		return e.Target
	case e.Target.ID:
		return e.Source
	default:
		return nil
	}
}

// Weight is a convenience constructor for an explicit edge weight.
func Weight(w float64) *float64 { return &w }

// Neighbor is one adjacency link reported by Graph.Neighbors: the node at the
// far end, the effective weight, and the edge that realizes the link.
type Neighbor struct {
	Node   *Node
	Weight float64
	Edge   *Edge
}

// EdgeRef describes an edge by endpoint IDs. FromParts and AddEdge resolve it
// against the node list.
type EdgeRef struct {
	ID     string
	Source string
	Target string
	Weight *float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an ordered node list plus an ordered edge list.
//
// nodeIndex and edgeIndex map IDs to positions for O(1) lookups; they are
// rebuilt whenever removals shift positions.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes []*Node
	edges []*Edge

	nodeIndex map[string]int
	edgeIndex map[string]int
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make([]*Node, 0),
		edges:     make([]*Edge, 0),
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromParts builds a Graph from node values and endpoint-ID edge references.
// Every node is copied; every edge is re-resolved against the copies, so the
// result never shares memory with its inputs.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode, ErrEmptyEdgeID, ErrDuplicateEdge,
// ErrDanglingEdge, ErrParallelEdge (wrapped with the offending edge ID).
// Complexity: O(V + E²).
func FromParts(nodes []Node, edges []EdgeRef, directed bool) (*Graph, error) {
	g := NewGraph(WithDirected(directed))
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, ref := range edges {
		if err := g.AddEdge(ref); err != nil {
			return nil, err
		}
	}

	return g, nil
}
