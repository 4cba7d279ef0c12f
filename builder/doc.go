// SPDX-License-Identifier: MIT

// Package builder generates random simple undirected graphs.
//
// The single high-level entry point is Generate:
//
//	g, err := builder.Generate(8, 10,
//		builder.WithSeed(42),
//		builder.WithBounds(layout.Bounds{Width: 800, Height: 600}),
//		builder.WithUniformIntWeight(1, 10),
//	)
//
// Generate validates every argument before it allocates anything; on failure
// it returns a nil graph together with ErrInvalidParameters or
// ErrNeedRandSource. On success the graph has exactly the requested number of
// nodes and edges, no self-loops and no duplicate pairs.
//
// Lower-level composition follows the Constructor pattern: BuildGraph creates
// an empty graph of n nodes and runs constructors in order (Scatter places
// nodes on a canvas, RandomEdges adds m new random edges).
//
// Edge selection strategies:
//
//   - Rejection sampling draws two distinct ids uniformly and skips pairs that
//     already exist. Cheap for sparse targets; expected wasted draws per
//     accepted edge grow like d/(1-d) for target density d.
//   - Shuffle-prefix enumerates the missing pairs, partially shuffles them
//     (Fisher–Yates) and takes the first m. O(n²) memory, no waste.
//
// StrategyAuto picks rejection while m/capacity ≤ DefaultDensityThreshold and
// shuffle-prefix above it.
//
// Determinism: for the same options, seed and constructor order the output
// (edges, their order, weights and positions) is identical. Randomness comes
// only from the *rand.Rand supplied via WithSeed or WithRand; nothing is
// seeded from the clock.
package builder
