// Package bfs provides breadth-first search over a core.Graph: hop counts
// from a source and the connected components of the whole graph.
//
// Both ignore edge weights. On a graph whose edges all weigh the same, Hops
// times that weight equals the Dijkstra distance, which makes BFS a cheap
// oracle for the weighted engine.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order and components are
//	discovered from the lowest unvisited id, so results are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
