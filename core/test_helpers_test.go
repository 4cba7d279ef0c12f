// SPDX-License-Identifier: MIT
// Package core_test shared fixtures.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

// edgeSpec is a compact (u, v, w) triple for fixtures.
type edgeSpec struct {
	u, v core.NodeID
	w    float64
}

// mustGraph builds an n-node graph with the given edges or fails the test.
func mustGraph(t testing.TB, n int, edges ...edgeSpec) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}
	return g
}

// diamond is the four-node fixture 0-1(1), 1-2(2), 0-2(4), 2-3(1).
func diamond(t testing.TB) *core.Graph {
	return mustGraph(t, 4,
		edgeSpec{0, 1, 1},
		edgeSpec{1, 2, 2},
		edgeSpec{0, 2, 4},
		edgeSpec{2, 3, 1},
	)
}
