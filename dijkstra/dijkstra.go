package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphwalk/core"
)

// ShortestPaths computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in 0..n-1 (ErrInvalidNode).
//  3. a target set via WithTarget must be in 0..n-1 (ErrInvalidNode).
//
// The returned Result is independent of g: later mutations of g do not
// affect it and it holds no reference to g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("ShortestPaths: source %d: %w", source, ErrInvalidNode)
	}
	if cfg.Target != core.NoNode && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("ShortestPaths: target %d: %w", cfg.Target, ErrInvalidNode)
	}

	// 3) Prepare per-run state and run.
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]core.NodeID, n),
		settled: make([]bool, n),
		pq:      binaryheap.NewWith(byDistanceThenID),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	res := r.result(source)
	klog.V(2).Infof("dijkstra: source=%d settled=%d/%d complete=%t", source, res.settledCount, n, res.complete)

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64        // tentative distance per node
	prev    []core.NodeID    // tentative parent per node
	settled []bool           // distance is final
	pq      *binaryheap.Heap // of item, min by (dist, id)

	nSettled int
	stopped  bool // left the loop before the queue ran dry
	capped   bool // a candidate was dropped for exceeding MaxDistance
}

// item is one priority-queue entry. Several items may exist for one node;
// all but the smallest are stale once it is settled.
type item struct {
	id   core.NodeID
	dist float64
}

// byDistanceThenID orders items by ascending distance, ties by ascending id.
func byDistanceThenID(a, b interface{}) int {
	x, y := a.(item), b.(item)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	default:
		return 0
	}
}

// init sets every distance to +Inf and every parent to NoNode, then seeds
// the queue with (0, source).
func (r *runner) init(source core.NodeID) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = core.NoNode
	}
	r.dist[source] = 0
	r.pq.Push(item{id: source, dist: 0})
}

// process is the main loop. It ends when the queue is empty, when the
// target is settled, or when the closest candidate exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	for !r.pq.Empty() {
		// 1) Pop the closest entry.
		v, _ := r.pq.Pop()
		it := v.(item)

		// 2) Stale duplicate of an already settled node.
		if r.settled[it.id] {
			continue
		}

		// 3) Everything left is farther than the cap.
		if it.dist > cfg.MaxDistance {
			r.stopped = true
			break
		}

		// 4) Settle.
		r.settled[it.id] = true
		r.nSettled++
		if it.id == cfg.Target {
			r.stopped = r.nSettled < len(r.dist)
			break
		}

		// 5) Relax.
		if err := r.relax(it.id); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every passable edge of u to its neighbor. A neighbor is
// updated only on a strictly shorter candidate.
func (r *runner) relax(u core.NodeID) error {
	du := r.dist[u]
	err := r.g.ForEachNeighbor(u, func(nb core.Neighbor) bool {
		if r.settled[nb.ID] || nb.Weight >= r.options.InfEdgeThreshold {
			return true
		}
		cand := du + nb.Weight
		if cand > r.options.MaxDistance {
			r.capped = true
			return true
		}
		if cand >= r.dist[nb.ID] {
			return true
		}
		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		r.pq.Push(item{id: nb.ID, dist: cand})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	return nil
}

// result freezes the run. Unsettled nodes are reset to +Inf / NoNode so a
// stopped search never exposes tentative values.
func (r *runner) result(source core.NodeID) *Result {
	for i, ok := range r.settled {
		if !ok {
			r.dist[i] = math.Inf(1)
			r.prev[i] = core.NoNode
		}
	}

	return &Result{
		source:       source,
		dist:         r.dist,
		parent:       r.prev,
		settledCount: r.nSettled,
		complete:     !r.stopped && !r.capped,
	}
}
