package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphwalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Preorder or Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start id is outside 0..n-1.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Visit is one step of a preorder traversal.
type Visit struct {
	// Node is the node being visited.
	Node core.NodeID

	// Parent is the node it was discovered from, or core.NoNode for a tree root.
	Parent core.NodeID

	// Depth is the number of tree edges from the root.
	Depth int
}

// Option configures optional behavior of a traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is
	// pushed. Return false to skip it.
	FilterNeighbor func(id core.NodeID) bool

	// FullTraversal, if true, continues from every unvisited node once the
	// start tree is exhausted (forest traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns options for a plain single-tree traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before every visit.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to depth limit. A negative limit removes the cap.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a neighbor filter; fn(id) == false skips id.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes the traversal cover every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}
