// File: methods_edges.go
// Role: Edge insertion and edge/adjacency queries.
// Determinism:
//   - Edges() returns records in insertion order.
//   - Neighbors() returns entries in insertion order.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge u-v with weight w.
//
// Steps:
//  1. Validate weight (finite, ≥ 0) and ids.
//  2. Reject u == v and an existing pair in either orientation.
//  3. Append reciprocal adjacency entries and one edge record.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID, w float64) error {
	// 1) Weight domain.
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("AddEdge(%d,%d,w=%g): %w", u, v, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}

	// 2) Simple-graph constraints.
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	key := keyOf(u, v)
	if _, dup := g.index[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// 3) Link both sides and record the edge.
	g.nodes[u].neighbors = append(g.nodes[u].neighbors, Neighbor{ID: v, Weight: w})
	g.nodes[v].neighbors = append(g.nodes[v].neighbors, Neighbor{ID: u, Weight: w})
	g.index[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// HasEdge reports whether u-v exists (orientation-insensitive).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[keyOf(u, v)]
	return ok
}

// Weight returns the weight of u-v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v NodeID) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[keyOf(u, v)]
	if !ok {
		return 0, false
	}
	return g.edges[i].Weight, true
}

// Edges returns a copy of all edge records in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns a copy of id's ordered adjacency list.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	src := g.nodes[id].neighbors
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out, nil
}

// ForEachNeighbor calls fn for each adjacency entry of id, in order, until fn
// returns false. The read lock is held for the whole walk, so fn must not call
// back into g. It exists so hot loops (Dijkstra, DFS) avoid a copy per node.
// Complexity: O(deg(id)).
func (g *Graph) ForEachNeighbor(id NodeID, fn func(Neighbor) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return fmt.Errorf("ForEachNeighbor(%d): %w", id, ErrNodeNotFound)
	}
	for _, nb := range g.nodes[id].neighbors {
		if !fn(nb) {
			break
		}
	}

	return nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}
	return len(g.nodes[id].neighbors), nil
}
