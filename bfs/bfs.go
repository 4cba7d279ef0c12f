package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphwalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start id is outside 0..n-1.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")
)

// Unreached is the hop count reported for nodes not connected to the source.
const Unreached = -1

// Result holds the BFS tree from one source.
type Result struct {
	// Order is the visit sequence, source first.
	Order []core.NodeID

	// Hops[v] is the edge count of a shortest path to v, or Unreached.
	Hops []int

	// Parent[v] is v's predecessor in the BFS tree, or core.NoNode.
	Parent []core.NodeID
}

// BFS explores g level by level from source.
func BFS(g *core.Graph, source core.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("bfs: source %d: %w", source, ErrStartNodeNotFound)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]core.NodeID, 0, n),
		Hops:   make([]int, n),
		Parent: make([]core.NodeID, n),
	}
	for i := range res.Hops {
		res.Hops[i] = Unreached
		res.Parent[i] = core.NoNode
	}
	res.Hops[source] = 0

	order, err := walk(g, source, res.Hops, res.Parent, res.Order)
	if err != nil {
		return nil, err
	}
	res.Order = order

	return res, nil
}

// Components returns the connected components of g, each listed in BFS
// order from its lowest id; components are ordered by that id.
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	hops := make([]int, n)
	for i := range hops {
		hops[i] = Unreached
	}

	var out [][]core.NodeID
	for i := 0; i < n; i++ {
		if hops[i] != Unreached {
			continue
		}
		hops[i] = 0
		comp, err := walk(g, core.NodeID(i), hops, nil, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// walk runs one BFS from root, which the caller has already marked with
// hops[root] = 0. parent may be nil. Visited ids are appended to order.
func walk(g *core.Graph, root core.NodeID, hops []int, parent []core.NodeID, order []core.NodeID) ([]core.NodeID, error) {
	queue := []core.NodeID{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		err := g.ForEachNeighbor(u, func(nb core.Neighbor) bool {
			if hops[nb.ID] != Unreached {
				return true
			}
			hops[nb.ID] = hops[u] + 1
			if parent != nil {
				parent[nb.ID] = u
			}
			queue = append(queue, nb.ID)
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
	}

	return order, nil
}
