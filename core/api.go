// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries: Stats() and Validate().
// Policy:
//   - No mutation here.
//   - Validate is O(V+E) and intended for tests, imports and debug assertions.

package core

import "fmt"

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	NodeCount     int     // n
	EdgeCount     int     // m
	IsolatedCount int     // nodes with degree 0
	MaxDegree     int     // largest adjacency list
	Density       float64 // m / (n(n-1)/2); 0 when n < 2
	Positioned    bool    // every node has a coordinate
}

// Stats produces a deterministic snapshot of counts and degree figures.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		NodeCount:  len(g.nodes),
		EdgeCount:  len(g.edges),
		Positioned: g.nPos == len(g.nodes),
	}
	var d int
	for i := range g.nodes {
		d = len(g.nodes[i].neighbors)
		if d == 0 {
			st.IsolatedCount++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	if full := MaxSimpleEdges(st.NodeCount); full > 0 {
		st.Density = float64(st.EdgeCount) / float64(full)
	}

	return st
}

// Validate checks the structural invariants:
//   - no self-loops and no duplicate neighbor ids in any adjacency list;
//   - every entry u→(v,w) has the reciprocal v→(u,w);
//   - adjacency entries and edge records describe the same edge set.
//
// It returns nil or an error wrapping ErrBrokenInvariant.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entries := 0
	for i := range g.nodes {
		u := NodeID(i)
		seen := make(map[NodeID]struct{}, len(g.nodes[i].neighbors))
		for _, nb := range g.nodes[i].neighbors {
			if nb.ID == u {
				return fmt.Errorf("Validate: node %d lists itself: %w", u, ErrBrokenInvariant)
			}
			if !g.has(nb.ID) {
				return fmt.Errorf("Validate: node %d lists unknown %d: %w", u, nb.ID, ErrBrokenInvariant)
			}
			if _, dup := seen[nb.ID]; dup {
				return fmt.Errorf("Validate: node %d lists %d twice: %w", u, nb.ID, ErrBrokenInvariant)
			}
			seen[nb.ID] = struct{}{}
			if !g.hasEntry(nb.ID, u, nb.Weight) {
				return fmt.Errorf("Validate: %d→%d has no reciprocal: %w", u, nb.ID, ErrBrokenInvariant)
			}
			ei, ok := g.index[keyOf(u, nb.ID)]
			if !ok || g.edges[ei].Weight != nb.Weight {
				return fmt.Errorf("Validate: %d-%d missing from edge records: %w", u, nb.ID, ErrBrokenInvariant)
			}
			entries++
		}
	}
	if entries != 2*len(g.edges) || len(g.index) != len(g.edges) {
		return fmt.Errorf("Validate: %d adjacency entries for %d edges: %w",
			entries, len(g.edges), ErrBrokenInvariant)
	}

	return nil
}

// hasEntry reports whether u's list contains (v, w). Caller holds g.mu.
func (g *Graph) hasEntry(u, v NodeID, w float64) bool {
	for _, nb := range g.nodes[u].neighbors {
		if nb.ID == v {
			return nb.Weight == w
		}
	}
	return false
}
