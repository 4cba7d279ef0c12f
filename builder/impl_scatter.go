// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_scatter.go - Scatter(b): give every node a uniform position inside b.

package builder

import (
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/layout"
)

// Scatter returns a Constructor that positions every node uniformly inside
// [inset, Width-inset] × [inset, Height-inset], drawing X then Y per node in
// id order. Requires cfg.rng; bounds that cannot hold a node of the
// configured inset report ErrInvalidParameters.
func Scatter(b layout.Bounds) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return builderErrorf(methodScatter, "nil graph: %w", ErrConstructFailed)
		}
		if err := b.Validate(cfg.inset); err != nil {
			return builderErrorf(methodScatter, "%w: %w", ErrInvalidParameters, err)
		}
		if cfg.rng == nil {
			return builderErrorf(methodScatter, "%w", ErrNeedRandSource)
		}

		return layout.Scatter(g, b, cfg.inset, cfg.rng)
	}
}
