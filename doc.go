// Package graphwalk generates random simple graphs and searches them.
//
// 🚀 What is inside?
//
//   - core/: dense-id Graph with ordered adjacency, edge records, positions, RW locks
//   - layout/: canvas bounds, uniform scatter with an inset, distance, hit-testing
//   - builder/: Generate(n, m, opts...) with exact node/edge counts, seeded, two strategies
//   - dijkstra/: ShortestPaths over a binary heap, immutable Result, path reconstruction
//   - dfs/: lazy, restartable depth-first preorder as an iter.Seq
//   - bfs/: hop counts and connected components
//   - export/: JSON snapshot of graph + search state for a renderer
//   - cmd/graphwalk: the whole pipeline from the command line
//   - examples/: runnable scenarios
//
// ✨ Guarantees
//
//   - Generated graphs are simple and undirected: no self-loops, no duplicate
//     pairs, every adjacency entry mirrored with the same weight.
//   - Impossible requests fail up front with builder.ErrInvalidParameters;
//     generation never loops forever.
//   - Searches never write to the graph. Each run returns its own Result, so
//     concurrent searches on one graph are safe.
//   - Same seed, same options ⇒ same graph; same graph, same source ⇒ same Result.
//
// Quick ASCII example:
//
//	0 ──(1)── 1
//	 \        │
//	 (4)     (2)
//	   \      │
//	    ───── 2 ──(1)── 3
//
//	res, _ := dijkstra.ShortestPaths(g, 0)
//	res.Distances() // [0 1 3 4]
//	res.Path(3)     // [0 1 2 3]
package graphwalk
