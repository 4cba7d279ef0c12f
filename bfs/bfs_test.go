package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
)

// twoComponents: square 0-1-3-2-0 plus a tail 3-4, an edge 5-6, isolated 7.
func twoComponents(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(8)
	require.NoError(t, err)
	for _, e := range [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {5, 6}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 7))
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(twoComponents(t), 8)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_Levels(t *testing.T) {
	res, err := bfs.BFS(twoComponents(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 3, bfs.Unreached, bfs.Unreached, bfs.Unreached}, res.Hops)
	assert.Equal(t, core.NodeID(1), res.Parent[3], "first discoverer wins")
	assert.Equal(t, core.NoNode, res.Parent[0])
	assert.Equal(t, core.NoNode, res.Parent[6])
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(twoComponents(t))
	require.NoError(t, err)

	assert.Equal(t, [][]core.NodeID{
		{0, 1, 2, 3, 4},
		{5, 6},
		{7},
	}, comps)

	empty, _ := core.NewGraph(0)
	comps, err = bfs.Components(empty)
	require.NoError(t, err)
	assert.Empty(t, comps)
}
