// Package core provides the graph model shared by every stepping engine:
// positioned nodes, optionally weighted edges, and an ordered, thread-safe
// Graph that answers neighbor queries in edge-insertion order.
//
// The Graph G = (V,E) keeps:
//
//   - An ordered node list. Node.ID is the sole identity key.
//   - An ordered edge list. Every Edge.Source/Edge.Target points at the very
//     *Node stored in the same Graph (never a copy, never a foreign node).
//   - A directed flag. Undirected graphs expose each edge as a neighbor link in
//     both directions; directed graphs only from source to target.
//
// Weights:
//
//	Edge.Weight is a *float64; nil means "no weight". Traversal and
//	shortest-path engines read Edge.EffectiveWeight() (nil → 1), the MST
//	family reads Edge.WeightOr(0).
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	FromParts(nodes []Node, edges []EdgeRef, directed bool) (*Graph, error)
//
//	// Queries (read lock)
//	Nodes() []*Node, Edges() []*Edge, Node(id), Edge(id), First()
//	Neighbors(id) ([]Neighbor, error)        // insertion order
//	EdgeBetween(a, b) *Edge                  // first edge a→b (either way if undirected)
//
//	// Editing (write lock)
//	AddNode, MoveNode, RelabelNode, RemoveNode
//	AddEdge, SetEdgeWeight, RemoveEdge, SetDirected, ClearWeights
//
//	// Snapshots
//	Clone() *Graph                           // deep copy, endpoints re-resolved
//	ToSerialized() SerializedGraph
//	FromSerialized(SerializedGraph) (*Graph, error)
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrEmptyEdgeID    – zero-length edge ID
//	ErrDuplicateNode  – node ID already present
//	ErrDuplicateEdge  – edge ID already present
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrDanglingEdge   – an edge references a node ID absent from the node list
//	ErrParallelEdge   – another edge already joins the same pair of nodes
//	ErrInvalidGraph   – serialized payload failed validation
//
// Engines treat the Graph passed to Initialize as a read-only snapshot. The
// history recorder hands every engine a Clone, so edits made afterwards never
// leak into a run.
package core
