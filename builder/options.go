// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Generate and the constructors themselves never panic.
//   - Values that depend on each other (bounds vs. inset, euclidean vs.
//     bounds) are checked by Generate and reported as ErrInvalidParameters.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphwalk/layout"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed each time the
// option is applied, so the same option value reproduces the same graph.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
// Clears a previous WithEuclideanWeight. fn must tolerate a nil rng, since
// Generate cannot tell whether a caller-supplied function draws from it.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.euclidean = false
		c.randomWeights = false
	}
}

// withRandomWeightFn is WithWeightFn for generators that draw from the RNG;
// Generate then requires a seed even for a complete fill.
func withRandomWeightFn(fn WeightFn) BuilderOption {
	set := WithWeightFn(fn)
	return func(c *builderConfig) {
		set(c)
		c.randomWeights = true
	}
}

// WithConstantWeight gives every edge weight w. Panics if w < 0 or not finite.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max). Requires an RNG.
func WithUniformWeight(min, max float64) BuilderOption {
	return withRandomWeightFn(UniformWeightFn(min, max))
}

// WithUniformIntWeight draws integer weights uniformly from [min, max].
// Requires an RNG.
func WithUniformIntWeight(min, max int) BuilderOption {
	return withRandomWeightFn(UniformIntWeightFn(min, max))
}

// WithEuclideanWeight weighs each edge by the distance between its endpoint
// positions. Generate requires WithBounds alongside it.
func WithEuclideanWeight() BuilderOption {
	return func(c *builderConfig) {
		c.euclidean = true
	}
}

// WithBounds scatters nodes uniformly inside b (minus the inset) before any
// edge is added. b is validated by Generate, not here.
func WithBounds(b layout.Bounds) BuilderOption {
	return func(c *builderConfig) {
		c.bounds = b
		c.hasBounds = true
	}
}

// WithInset sets the margin kept between node centres and the canvas edge.
// Panics if inset is negative or not finite.
func WithInset(inset float64) BuilderOption {
	if math.IsNaN(inset) || math.IsInf(inset, 0) || inset < 0 {
		panic(fmt.Sprintf("builder: WithInset(%g)", inset))
	}
	return func(c *builderConfig) {
		c.inset = inset
	}
}

// WithStrategy forces an edge selection strategy. Panics on unknown values.
func WithStrategy(s Strategy) BuilderOption {
	if s < StrategyAuto || s > StrategyShuffle {
		panic(fmt.Sprintf("builder: WithStrategy(%d)", int(s)))
	}
	return func(c *builderConfig) {
		c.strategy = s
	}
}

// WithDensityThreshold moves the StrategyAuto switch point.
// Panics unless 0 < t ≤ 1.
func WithDensityThreshold(t float64) BuilderOption {
	if !(t > 0 && t <= 1) {
		panic(fmt.Sprintf("builder: WithDensityThreshold(%g)", t))
	}
	return func(c *builderConfig) {
		c.densityThreshold = t
	}
}
