package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

func TestNewGraph(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.HasNode(0))
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasNode(core.NoNode))

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NodeCount())
	assert.True(t, empty.Positioned(), "empty graph is trivially positioned")

	_, err = core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrBadNodeCount)
}

func TestMaxSimpleEdges(t *testing.T) {
	cases := map[int]int{-3: 0, 0: 0, 1: 0, 2: 1, 3: 3, 4: 6, 10: 45}
	for n, want := range cases {
		assert.Equal(t, want, core.MaxSimpleEdges(n), "n=%d", n)
	}
}

func TestAddEdge_Reciprocal(t *testing.T) {
	g := mustGraph(t, 3, edgeSpec{0, 2, 2.5})

	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0), "undirected lookup must ignore orientation")
	assert.False(t, g.HasEdge(0, 1))

	w, ok := g.Weight(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 2.5, w)

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: 2, Weight: 2.5}}, n0)
	assert.Equal(t, []core.Neighbor{{ID: 0, Weight: 2.5}}, n2)

	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 2.5}}, g.Edges())
	require.NoError(t, g.Validate())
}

func TestAddEdge_Rejections(t *testing.T) {
	g := mustGraph(t, 3, edgeSpec{0, 1, 1})

	tests := []struct {
		name string
		u, v core.NodeID
		w    float64
		want error
	}{
		{"self-loop", 1, 1, 1, core.ErrLoopNotAllowed},
		{"duplicate", 0, 1, 3, core.ErrMultiEdgeNotAllowed},
		{"duplicate reversed", 1, 0, 3, core.ErrMultiEdgeNotAllowed},
		{"unknown to", 0, 7, 1, core.ErrNodeNotFound},
		{"negative id", -1, 0, 1, core.ErrNodeNotFound},
		{"negative weight", 0, 2, -1, core.ErrBadWeight},
		{"nan weight", 0, 2, math.NaN(), core.ErrBadWeight},
		{"inf weight", 0, 2, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, tc.w), tc.want)
		})
	}

	// Nothing above may have leaked into the arena.
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestAddEdge_ZeroWeightAllowed(t *testing.T) {
	g := mustGraph(t, 2, edgeSpec{0, 1, 0})
	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Zero(t, w)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := mustGraph(t, 4, edgeSpec{0, 3, 1}, edgeSpec{0, 1, 1}, edgeSpec{2, 0, 1})

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	ids := make([]core.NodeID, 0, len(nbs))
	for _, nb := range nbs {
		ids = append(ids, nb.ID)
	}
	assert.Equal(t, []core.NodeID{3, 1, 2}, ids)

	// Returned slice is a copy.
	nbs[0].ID = 99
	again, _ := g.Neighbors(0)
	assert.Equal(t, core.NodeID(3), again[0].ID)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestForEachNeighbor_StopsEarly(t *testing.T) {
	g := diamond(t)

	var seen []core.NodeID
	err := g.ForEachNeighbor(2, func(nb core.Neighbor) bool {
		seen = append(seen, nb.ID)
		return len(seen) < 2
	})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 0}, seen)

	assert.ErrorIs(t, g.ForEachNeighbor(4, func(core.Neighbor) bool { return true }), core.ErrNodeNotFound)
}

func TestDegree(t *testing.T) {
	g := diamond(t)
	for id, want := range []int{2, 2, 3, 1} {
		d, err := g.Degree(core.NodeID(id))
		require.NoError(t, err)
		assert.Equal(t, want, d, "deg(%d)", id)
	}
	_, err := g.Degree(-2)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPositions(t *testing.T) {
	g := mustGraph(t, 2)
	assert.False(t, g.Positioned())

	_, ok := g.Position(0)
	assert.False(t, ok)

	require.NoError(t, g.SetPosition(0, core.Point{X: 10, Y: 20}))
	assert.False(t, g.Positioned())
	require.NoError(t, g.SetPosition(1, core.Point{X: 1, Y: 2}))
	require.NoError(t, g.SetPosition(1, core.Point{X: 3, Y: 4}), "moving a node keeps the count stable")
	assert.True(t, g.Positioned())

	p, ok := g.Position(1)
	assert.True(t, ok)
	assert.Equal(t, core.Point{X: 3, Y: 4}, p)
	assert.Equal(t, "(3, 4)", p.String())

	assert.ErrorIs(t, g.SetPosition(5, core.Point{}), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetPosition(0, core.Point{X: math.NaN()}), core.ErrBadPosition)
	assert.ErrorIs(t, g.SetPosition(0, core.Point{Y: math.Inf(-1)}), core.ErrBadPosition)
}

func TestNodes_Snapshot(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetPosition(3, core.Point{X: 5, Y: 6}))

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, core.NodeID(3), nodes[3].ID)
	assert.True(t, nodes[3].HasPos)
	assert.Equal(t, core.Point{X: 5, Y: 6}, nodes[3].Pos)
	assert.False(t, nodes[0].HasPos)
	assert.Equal(t, []core.Neighbor{{ID: 2, Weight: 1}}, nodes[3].Neighbors)

	nodes[3].Neighbors[0].Weight = 100
	w, _ := g.Weight(2, 3)
	assert.Equal(t, 1.0, w, "snapshot must not alias the arena")
}

func TestClone_Independent(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetPosition(0, core.Point{X: 1, Y: 1}))

	c := g.Clone()
	require.NoError(t, c.Validate())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Nodes(), c.Nodes())

	require.NoError(t, c.AddEdge(1, 3, 7))
	require.NoError(t, c.SetPosition(0, core.Point{X: 9, Y: 9}))

	assert.False(t, g.HasEdge(1, 3))
	assert.Equal(t, 4, g.EdgeCount())
	p, _ := g.Position(0)
	assert.Equal(t, core.Point{X: 1, Y: 1}, p)
}

func TestStats(t *testing.T) {
	g := mustGraph(t, 5, edgeSpec{0, 1, 1}, edgeSpec{0, 2, 1}, edgeSpec{0, 3, 1})

	st := g.Stats()
	assert.Equal(t, 5, st.NodeCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, 3, st.MaxDegree)
	assert.InDelta(t, 0.3, st.Density, 1e-12)
	assert.False(t, st.Positioned)

	single := mustGraph(t, 1)
	assert.Zero(t, single.Stats().Density)
}

func TestValidate_Fixtures(t *testing.T) {
	assert.NoError(t, mustGraph(t, 0).Validate())
	assert.NoError(t, mustGraph(t, 1).Validate())
	assert.NoError(t, diamond(t).Validate())
}
