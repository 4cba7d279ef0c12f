package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphwalk/core"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilResult indicates ReconstructPath was given a nil *Result.
	ErrNilResult = errors.New("dijkstra: result is nil")

	// ErrInvalidNode indicates a source, target or path node outside 0..n-1.
	ErrInvalidNode = errors.New("dijkstra: invalid node")

	// ErrUnreachable indicates the target has no path from the source
	// (or was not settled before the search stopped).
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options configures a ShortestPaths run.
//
// Target           – stop once this node is settled; core.NoNode runs to exhaustion.
// MaxDistance      – nodes farther than this are never settled. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this value are impassable. Default +Inf.
type Options struct {
	Target           core.NodeID
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the options of a plain, full Dijkstra run.
func DefaultOptions() Options {
	return Options{
		Target:           core.NoNode,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithTarget stops the search as soon as target is settled. The target id is
// validated by ShortestPaths (ErrInvalidNode).
func WithTarget(target core.NodeID) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithMaxDistance caps the distance of settled nodes.
// Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		panic(fmt.Sprintf("dijkstra: WithMaxDistance(%g): must be non-negative", max))
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with weight ≥ threshold impassable.
// Panics if threshold ≤ 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || threshold <= 0 {
		panic(fmt.Sprintf("dijkstra: WithInfEdgeThreshold(%g): must be positive", threshold))
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}
