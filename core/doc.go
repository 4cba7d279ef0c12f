// Package core provides the graph arena shared by every other package in
// graphwalk: a simple undirected graph over dense node ids 0..n-1.
//
// Data model:
//
//   - NodeID   – dense int identifier; NoNode (-1) stands for "none".
//   - Neighbor – (id, weight) adjacency entry, kept in insertion order.
//   - Edge     – (from, to, weight) record, one per undirected edge, insertion order.
//   - Point    – optional 2-D coordinate for presentation layers.
//
// Invariants (checked by Validate):
//
//   - no self-loops, no parallel edges;
//   - u→(v,w) in u's list implies v→(u,w) in v's list;
//   - adjacency entries and edge records describe one edge set.
//
// Core methods:
//
//	NewGraph(n int) (*Graph, error)               // O(n)
//	AddEdge(u, v NodeID, w float64) error         // O(1) amortized
//	HasEdge(u, v) bool / Weight(u, v)             // O(1)
//	Neighbors(id) ([]Neighbor, error)             // O(deg), copy
//	ForEachNeighbor(id, fn) error                 // O(deg), no copy
//	Edges() []Edge                                // O(E), copy
//	SetPosition / Position / Positioned           // O(1)
//	Nodes() []Node                                // O(V+E) snapshot
//	Clone() *Graph                                // O(V+E) deep copy
//	Stats() GraphStats / Validate() error         // O(V+E)
//
// Errors:
//
//	ErrBadNodeCount        – negative n
//	ErrNodeNotFound        – id outside 0..n-1
//	ErrBadWeight           – negative, NaN or infinite weight
//	ErrBadPosition         – NaN or infinite coordinate
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – pair already connected
//	ErrBrokenInvariant     – Validate failure
//
// Concurrency: one sync.RWMutex guards the arena. Algorithms only read, so
// any number of searches may run on one graph at once, as long as nobody is
// adding edges or moving nodes at the same time.
package core
