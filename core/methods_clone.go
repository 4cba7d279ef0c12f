// File: methods_clone.go
// Role: Deep copy.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of g: nodes, positions, adjacency order and edge
// records. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		nodes: make([]node, len(g.nodes)),
		edges: make([]Edge, len(g.edges)),
		index: make(map[pairKey]int, len(g.index)),
		nPos:  g.nPos,
	}
	for i := range g.nodes {
		src := &g.nodes[i]
		out.nodes[i] = node{
			pos:       src.pos,
			hasPos:    src.hasPos,
			neighbors: append([]Neighbor(nil), src.neighbors...),
		}
	}
	copy(out.edges, g.edges)
	for k, v := range g.index {
		out.index[k] = v
	}

	return out
}
