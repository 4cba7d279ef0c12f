// File: methods_vertices.go
// Role: Node queries and coordinate assignment.
// Determinism:
//   - Nodes() returns snapshots in id order.
// Concurrency:
//   - SetPosition under the write lock; everything else under the read lock.

package core

import (
	"fmt"
	"math"
)

// has reports whether id is in range. Caller holds g.mu.
func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// HasNode reports whether id is a valid node id of g.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

// NodeCount returns n; ids are 0..n-1.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetPosition assigns a coordinate to id. NaN and infinite coordinates are
// rejected with ErrBadPosition.
func (g *Graph) SetPosition(id NodeID, p Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("SetPosition(%d, %s): %w", id, p, ErrBadPosition)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(id) {
		return fmt.Errorf("SetPosition(%d): %w", id, ErrNodeNotFound)
	}
	if !g.nodes[id].hasPos {
		g.nPos++
	}
	g.nodes[id].pos = p
	g.nodes[id].hasPos = true

	return nil
}

// Position returns id's coordinate and whether one was assigned.
func (g *Graph) Position(id NodeID) (Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) || !g.nodes[id].hasPos {
		return Point{}, false
	}
	return g.nodes[id].pos, true
}

// Positioned reports whether every node has a coordinate.
// An empty graph is trivially positioned.
func (g *Graph) Positioned() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nPos == len(g.nodes)
}

// Nodes returns a snapshot of every node in id order, adjacency lists copied.
// Complexity: O(V + E).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i := range g.nodes {
		src := &g.nodes[i]
		nbs := make([]Neighbor, len(src.neighbors))
		copy(nbs, src.neighbors)
		out[i] = Node{
			ID:        NodeID(i),
			Pos:       src.pos,
			HasPos:    src.hasPos,
			Neighbors: nbs,
		}
	}

	return out
}
