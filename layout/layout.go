// Package layout places graph nodes in a 2-D plane for presentation layers
// and answers the small geometric questions those layers ask: how far apart
// two nodes are, and which node sits under a given point.
//
// Nothing here draws. Coordinates are plain numbers in whatever unit the
// caller's canvas uses; Bounds describes that canvas and inset keeps whole
// node markers (circles of radius inset) inside it.
//
// Complexity:
//
//   - Scatter:  O(V)
//   - Distance: O(1)
//   - NodeAt:   O(V)
package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphwalk/core"
)

// DefaultInset is the margin kept between a node centre and the canvas edge.
// It matches the default node radius used by the reference renderer.
const DefaultInset = 20.0

var (
	// ErrBadBounds indicates a canvas that cannot hold a node: non-positive or
	// non-finite size, or a side shorter than twice the inset.
	ErrBadBounds = errors.New("layout: bounds cannot hold a node")

	// ErrBadInset indicates a negative or non-finite inset.
	ErrBadInset = errors.New("layout: inset must be finite and non-negative")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("layout: graph is nil")

	// ErrNeedRandSource indicates Scatter was called without an RNG.
	ErrNeedRandSource = errors.New("layout: rng is required")
)

// Bounds is the canvas size. The usable area for node centres is
// [inset, Width-inset] × [inset, Height-inset].
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate reports whether b can hold a node marker of radius inset.
func (b Bounds) Validate(inset float64) error {
	if math.IsNaN(inset) || math.IsInf(inset, 0) || inset < 0 {
		return fmt.Errorf("inset=%g: %w", inset, ErrBadInset)
	}
	if !finitePositive(b.Width) || !finitePositive(b.Height) {
		return fmt.Errorf("bounds=%gx%g: %w", b.Width, b.Height, ErrBadBounds)
	}
	if b.Width < 2*inset || b.Height < 2*inset {
		return fmt.Errorf("bounds=%gx%g inset=%g: %w", b.Width, b.Height, inset, ErrBadBounds)
	}

	return nil
}

// Contains reports whether p lies inside the inset area of b.
func (b Bounds) Contains(p core.Point, inset float64) bool {
	return p.X >= inset && p.X <= b.Width-inset &&
		p.Y >= inset && p.Y <= b.Height-inset
}

// RandomPoint draws a point uniformly from the inset area of b.
// b and inset must already satisfy Validate.
func RandomPoint(rng *rand.Rand, b Bounds, inset float64) core.Point {
	return core.Point{
		X: inset + rng.Float64()*(b.Width-2*inset),
		Y: inset + rng.Float64()*(b.Height-2*inset),
	}
}

// Scatter gives every node of g an independent uniform point inside b,
// drawing X then Y for node 0, 1, ... in id order. Existing positions are
// overwritten. Deterministic for a fixed RNG state.
func Scatter(g *core.Graph, b Bounds, inset float64, rng *rand.Rand) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := b.Validate(inset); err != nil {
		return fmt.Errorf("Scatter: %w", err)
	}
	if rng == nil {
		return fmt.Errorf("Scatter: %w", ErrNeedRandSource)
	}

	n := g.NodeCount()
	for i := 0; i < n; i++ {
		if err := g.SetPosition(core.NodeID(i), RandomPoint(rng, b, inset)); err != nil {
			return fmt.Errorf("Scatter: %w", err)
		}
	}

	return nil
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b core.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NodeDistance is the Euclidean distance between the positions of u and v.
// ok is false when either node is missing or has no position.
func NodeDistance(g *core.Graph, u, v core.NodeID) (d float64, ok bool) {
	pu, okU := g.Position(u)
	pv, okV := g.Position(v)
	if !okU || !okV {
		return 0, false
	}
	return Distance(pu, pv), true
}

// NodeAt returns the lowest-id node whose marker of the given radius covers p
// (distance ≤ radius, boundary inclusive). Nodes without a position are skipped.
func NodeAt(g *core.Graph, p core.Point, radius float64) (core.NodeID, bool) {
	if g == nil || radius < 0 {
		return core.NoNode, false
	}

	r2 := radius * radius
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		q, ok := g.Position(core.NodeID(i))
		if !ok {
			continue
		}
		dx, dy := p.X-q.X, p.Y-q.Y
		if dx*dx+dy*dy <= r2 {
			return core.NodeID(i), true
		}
	}

	return core.NoNode, false
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
