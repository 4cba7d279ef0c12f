// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng              = nil (no randomness unless seeded)
//   - weightFn         = DefaultWeightFn (every edge weighs 1)
//   - euclidean        = false
//   - bounds           = unset (no positions)
//   - inset            = layout.DefaultInset (20)
//   - strategy         = StrategyAuto
//   - densityThreshold = DefaultDensityThreshold (0.5)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphwalk/layout"
)

// DefaultDensityThreshold is the target density m/capacity above which
// StrategyAuto switches from rejection sampling to shuffle-prefix.
const DefaultDensityThreshold = 0.5

// Strategy selects how RandomEdges picks node pairs.
type Strategy int

const (
	// StrategyAuto chooses by target density (see DefaultDensityThreshold).
	StrategyAuto Strategy = iota
	// StrategyRejection draws random pairs and skips existing ones.
	StrategyRejection
	// StrategyShuffle shuffles the missing pairs and takes a prefix.
	StrategyShuffle
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyRejection:
		return "rejection"
	case StrategyShuffle:
		return "shuffle"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn

	// euclidean replaces weightFn with the distance between endpoint positions.
	euclidean bool

	// randomWeights marks a weightFn that draws from rng.
	randomWeights bool

	hasBounds bool
	bounds    layout.Bounds
	inset     float64

	strategy         Strategy
	densityThreshold float64
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:         DefaultWeightFn,
		inset:            layout.DefaultInset,
		strategy:         StrategyAuto,
		densityThreshold: DefaultDensityThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// drawsWeights reports whether edge weights consume the RNG.
func (c builderConfig) drawsWeights() bool {
	return c.randomWeights && !c.euclidean
}

// pickStrategy resolves StrategyAuto for m new edges out of capacity free pairs.
func (c builderConfig) pickStrategy(m, capacity int) Strategy {
	if c.strategy != StrategyAuto {
		return c.strategy
	}
	if capacity == 0 || float64(m)/float64(capacity) <= c.densityThreshold {
		return StrategyRejection
	}

	return StrategyShuffle
}
