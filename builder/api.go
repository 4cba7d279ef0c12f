// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Generate validates everything up front and allocates nothing on failure.
//   - BuildGraph is the composition orchestrator: create n isolated nodes,
//     resolve cfg, run constructors in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.

package builder

import (
	"github.com/katalvlaran/graphwalk/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate their own parameters and return sentinel errors
// (never panic), and preserve determinism for the same cfg and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with numNodes isolated nodes, resolves bopts and
// applies cons in order. The first failing constructor aborts the build; its
// error is wrapped as "BuildGraph: %w" and no graph is returned.
//
// Errors: ErrInvalidParameters for numNodes < 0, ErrConstructFailed for a
// nil constructor, plus whatever a constructor reports.
func BuildGraph(numNodes int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return buildGraph(numNodes, newBuilderConfig(bopts...), cons)
}

func buildGraph(numNodes int, cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(numNodes)
	if err != nil {
		return nil, builderErrorf(methodBuildGraph, "%v: %w", err, ErrInvalidParameters)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(methodBuildGraph, "nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, builderErrorf(methodBuildGraph, "%w", err)
		}
	}

	return g, nil
}

// Generate builds a random simple undirected graph with exactly numNodes
// nodes and numEdges edges.
//
// Validation, in order (first failure wins, nothing is allocated):
//  1. numNodes < 1.
//  2. numEdges < 0.
//  3. numNodes == 1 with numEdges > 0.
//  4. numEdges > numNodes(numNodes-1)/2.
//  5. WithBounds given but unable to hold a node of the configured inset.
//  6. WithEuclideanWeight given without WithBounds.
//  7. Random choices needed (0 < numEdges < max, bounds set, or random
//     weights on at least one edge) but no RNG.
//
// Steps 1-6 report ErrInvalidParameters, step 7 ErrNeedRandSource.
// When bounds are set every node is positioned first; edges follow.
//
// Complexity: O(V + E) expected for sparse targets, O(V²) for dense ones.
func Generate(numNodes, numEdges int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) - 4) Counts.
	if numNodes < 1 {
		return nil, builderErrorf(methodGenerate, "numNodes=%d < 1: %w", numNodes, ErrInvalidParameters)
	}
	if numEdges < 0 {
		return nil, builderErrorf(methodGenerate, "numEdges=%d < 0: %w", numEdges, ErrInvalidParameters)
	}
	if numNodes == 1 && numEdges > 0 {
		return nil, builderErrorf(methodGenerate, "numEdges=%d on a single node: %w", numEdges, ErrInvalidParameters)
	}
	full := core.MaxSimpleEdges(numNodes)
	if numEdges > full {
		return nil, builderErrorf(methodGenerate, "numEdges=%d > max=%d for numNodes=%d: %w",
			numEdges, full, numNodes, ErrInvalidParameters)
	}

	// 5) - 6) Geometry.
	if cfg.hasBounds {
		if err := cfg.bounds.Validate(cfg.inset); err != nil {
			return nil, builderErrorf(methodGenerate, "%w: %w", ErrInvalidParameters, err)
		}
	}
	if cfg.euclidean && !cfg.hasBounds {
		return nil, builderErrorf(methodGenerate, "euclidean weights without bounds: %w", ErrInvalidParameters)
	}

	// 7) Randomness.
	stochastic := cfg.hasBounds || (numEdges > 0 && (numEdges < full || cfg.drawsWeights()))
	if stochastic && cfg.rng == nil {
		return nil, builderErrorf(methodGenerate, "%w", ErrNeedRandSource)
	}

	cons := make([]Constructor, 0, 2)
	if cfg.hasBounds {
		cons = append(cons, Scatter(cfg.bounds))
	}
	cons = append(cons, RandomEdges(numEdges))

	g, err := buildGraph(numNodes, cfg, cons)
	if err != nil {
		return nil, builderErrorf(methodGenerate, "%w", err)
	}

	return g, nil
}
