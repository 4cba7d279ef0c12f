// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node/edge/graph data model, sentinel errors and the NewGraph constructor.
// Policy:
//   - Node IDs are dense: 0..n-1. Storage is array-indexed, never hash-indexed.
//   - The graph is simple and undirected: no self-loops, no parallel edges,
//     every adjacency entry has a reciprocal entry with the same weight.
//   - Search state never lives here; algorithms return their own results.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count was passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeNotFound indicates an operation referenced an id outside 0..n-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrBadPosition indicates a NaN or infinite coordinate.
	ErrBadPosition = errors.New("core: coordinate must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair of nodes.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBrokenInvariant is returned by Validate when adjacency and edge records disagree.
	ErrBrokenInvariant = errors.New("core: graph invariant violated")
)

// NodeID identifies a node. Valid ids form the contiguous range 0..NodeCount()-1.
type NodeID int

// NoNode is the "none" sentinel used for absent parents and failed lookups.
const NoNode NodeID = -1

// Point is a 2-D coordinate. The graph stores it for presentation layers only;
// no algorithm in this module reads it unless explicitly asked to.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Neighbor is one adjacency entry: the node on the other side and the edge weight.
type Neighbor struct {
	ID     NodeID
	Weight float64
}

// Edge is an undirected edge record, kept in insertion order for enumeration.
// From/To preserve the orientation the edge was added with.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Node is a read-only snapshot of one node returned by Graph.Nodes.
type Node struct {
	// ID is the dense node identifier.
	ID NodeID

	// Pos is the node coordinate; meaningful only when HasPos is true.
	Pos Point

	// HasPos reports whether a coordinate was assigned.
	HasPos bool

	// Neighbors is a copy of the ordered adjacency list.
	Neighbors []Neighbor
}

// node is the internal arena slot.
type node struct {
	pos       Point
	hasPos    bool
	neighbors []Neighbor
}

// pairKey is the canonical (min,max) key of an undirected pair.
type pairKey struct{ lo, hi NodeID }

// keyOf normalizes (u,v) so that both orientations map to one key.
func keyOf(u, v NodeID) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// Graph is a simple undirected graph over a dense id space.
//
// mu guards every field. Reads take the read lock and may run concurrently;
// AddEdge and SetPosition take the write lock.
type Graph struct {
	mu sync.RWMutex

	nodes []node          // arena indexed by NodeID
	edges []Edge          // edge records in insertion order
	index map[pairKey]int // pair → position in edges, for O(1) HasEdge
	nPos  int             // number of nodes with a position
}

// NewGraph allocates a graph with n isolated nodes, ids 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrBadNodeCount)
	}

	return &Graph{
		nodes: make([]node, n),
		edges: make([]Edge, 0),
		index: make(map[pairKey]int),
	}, nil
}

// MaxSimpleEdges returns n(n-1)/2, the edge count of the complete simple graph K_n.
// Non-positive n yields 0.
func MaxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
