// Package dijkstra implements single-source shortest paths over a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths runs Dijkstra from one source and returns a *Result: the
//     distance and parent of every node, fixed at return time.
//   - Result.Path (or ReconstructPath) walks parent links back to the source
//     and reports ErrUnreachable instead of a partial path.
//   - The graph is only read. Each run allocates its own queue and arrays, so
//     any number of goroutines may search the same graph at once.
//
// Determinism:
//
//   - The priority queue orders entries by (distance, node id), both ascending.
//   - Relaxation uses strict "<": the first parent found at the final
//     distance is kept. Equal graphs and sources give identical results.
//
// Options:
//
//   - WithTarget(t):           stop as soon as t is settled.
//   - WithMaxDistance(d):      never settle a node farther than d.
//   - WithInfEdgeThreshold(w): treat edges of weight ≥ w as walls.
//
// Only settled nodes carry a finite distance and a parent. When a run stops
// early (target reached, distance cap) Complete reports false and the
// remaining nodes read as unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key: stale heap entries are
//     skipped on pop instead of being updated in place.
//   - Space: O(V + E) worst case for the heap.
package dijkstra
