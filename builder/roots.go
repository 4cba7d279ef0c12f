// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// roots.go - picking a random search root that is not isolated.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphwalk/core"
)

// RandomRoot returns a uniformly random node among those with degree > 0.
//
// Errors: ErrNeedRandSource on nil rng, ErrConstructFailed on nil g,
// ErrNoEdges when every node is isolated.
// Complexity: O(V).
func RandomRoot(g *core.Graph, rng *rand.Rand) (core.NodeID, error) {
	if g == nil {
		return core.NoNode, builderErrorf(methodRandomRoot, "nil graph: %w", ErrConstructFailed)
	}
	if rng == nil {
		return core.NoNode, builderErrorf(methodRandomRoot, "%w", ErrNeedRandSource)
	}

	candidates := make([]core.NodeID, 0, g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		id := core.NodeID(i)
		if d, _ := g.Degree(id); d > 0 {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return core.NoNode, builderErrorf(methodRandomRoot, "%d isolated nodes: %w", g.NodeCount(), ErrNoEdges)
	}

	return candidates[rng.Intn(len(candidates))], nil
}
