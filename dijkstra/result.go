package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphwalk/core"
)

// Result is the outcome of one ShortestPaths run. It is immutable and safe
// for concurrent reads; accessors return copies of its slices.
type Result struct {
	source       core.NodeID
	dist         []float64
	parent       []core.NodeID
	settledCount int
	complete     bool
}

// Source returns the node the search started from.
func (r *Result) Source() core.NodeID { return r.source }

// Len returns the number of nodes the search covered (the graph size at run time).
func (r *Result) Len() int { return len(r.dist) }

// Distance returns the shortest distance from the source to id,
// or +Inf when id is unreachable or out of range.
func (r *Result) Distance(id core.NodeID) float64 {
	if !r.has(id) {
		return math.Inf(1)
	}
	return r.dist[id]
}

// Parent returns the predecessor of id on its shortest path, or core.NoNode
// for the source, unreachable nodes and out-of-range ids.
func (r *Result) Parent(id core.NodeID) core.NodeID {
	if !r.has(id) {
		return core.NoNode
	}
	return r.parent[id]
}

// Reachable reports whether id was settled with a finite distance.
func (r *Result) Reachable(id core.NodeID) bool {
	return r.has(id) && !math.IsInf(r.dist[id], 1)
}

// Distances returns a copy of the distance array, indexed by node id.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.dist))
	copy(out, r.dist)
	return out
}

// Parents returns a copy of the parent array, indexed by node id.
func (r *Result) Parents() []core.NodeID {
	out := make([]core.NodeID, len(r.parent))
	copy(out, r.parent)
	return out
}

// Settled returns how many nodes received a final distance.
func (r *Result) Settled() int { return r.settledCount }

// Complete reports whether the search ran until the queue was empty, in
// which case every unreachable answer is definitive.
func (r *Result) Complete() bool { return r.complete }

// Path returns the node sequence from the source to target.
//
// Errors:
//   - ErrInvalidNode if target is out of range.
//   - ErrUnreachable if the parent chain ends before reaching the source.
//
// Path(Source()) is [Source()]. Complexity: O(path length).
func (r *Result) Path(target core.NodeID) ([]core.NodeID, error) {
	if !r.has(target) {
		return nil, fmt.Errorf("Path(%d): %w", target, ErrInvalidNode)
	}
	if !r.Reachable(target) {
		return nil, fmt.Errorf("Path(%d) from %d: %w", target, r.source, ErrUnreachable)
	}

	// 1) Walk parents back to the source; the chain is at most Len() long.
	path := make([]core.NodeID, 0, 8)
	for cur := target; ; cur = r.parent[cur] {
		if cur == core.NoNode || len(path) > len(r.parent) {
			return nil, fmt.Errorf("Path(%d) from %d: %w", target, r.source, ErrUnreachable)
		}
		path = append(path, cur)
		if cur == r.source {
			break
		}
	}

	// 2) Reverse into source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ReconstructPath is the free-function form of res.Path(target).
func ReconstructPath(res *Result, target core.NodeID) ([]core.NodeID, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	return res.Path(target)
}

// PathWeight sums edge weights along path, checking that every node exists
// and that consecutive nodes are adjacent in g. An empty path weighs 0.
func PathWeight(g *core.Graph, path []core.NodeID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	total := 0.0
	for i, id := range path {
		if !g.HasNode(id) {
			return 0, fmt.Errorf("PathWeight: node %d: %w", id, ErrInvalidNode)
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(path[i-1], id)
		if !ok {
			return 0, fmt.Errorf("PathWeight: %d-%d: %w", path[i-1], id, core.ErrEdgeNotFound)
		}
		total += w
	}

	return total, nil
}

func (r *Result) has(id core.NodeID) bool {
	return id >= 0 && int(id) < len(r.dist)
}
