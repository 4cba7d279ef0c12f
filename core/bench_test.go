package core_test

import (
	"testing"

	"github.com/katalvlaran/graphwalk/core"
)

// BenchmarkAddEdge_Path measures building a 10,000-node path graph.
func BenchmarkAddEdge_Path(b *testing.B) {
	const n = 10000
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGraph(n)
		for v := 1; v < n; v++ {
			_ = g.AddEdge(core.NodeID(v-1), core.NodeID(v), 1)
		}
	}
}

// BenchmarkForEachNeighbor measures the no-copy adjacency walk on a hub.
func BenchmarkForEachNeighbor(b *testing.B) {
	const n = 1000
	g, _ := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, core.NodeID(v), 1)
	}
	b.ResetTimer()

	var sum float64
	for i := 0; i < b.N; i++ {
		_ = g.ForEachNeighbor(0, func(nb core.Neighbor) bool {
			sum += nb.Weight
			return true
		})
	}
	_ = sum
}
