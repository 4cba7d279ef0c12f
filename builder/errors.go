// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w: "Generate: numEdges=12 > 10: ...".
//   - Algorithms never panic; panics are confined to WithX option constructors.
//
// Priority when several validations fail (first one wins):
//   ErrInvalidParameters (sizes, bounds, weight/bounds pairing) →
//   ErrNeedRandSource → errors surfaced by core while mutating.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters indicates node/edge counts, bounds or option
// combinations that cannot describe a simple graph.
// Usage: if errors.Is(err, ErrInvalidParameters) { /* fix the request */ }.
var ErrInvalidParameters = errors.New("builder: invalid parameters")

// ErrNeedRandSource indicates stochastic work was requested without a
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNoEdges indicates RandomRoot found no node with at least one neighbor.
var ErrNoEdges = errors.New("builder: graph has no edges")

// ErrConstructFailed indicates a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method names used as error prefixes.
const (
	methodGenerate    = "Generate"
	methodBuildGraph  = "BuildGraph"
	methodRandomEdges = "RandomEdges"
	methodScatter     = "Scatter"
	methodRandomRoot  = "RandomRoot"
)

// builderErrorf prefixes a formatted message with method and keeps the
// trailing %w operand (if any) reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
