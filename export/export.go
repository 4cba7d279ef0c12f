// Package export converts a graph and the state of a search or walk over it
// into a plain JSON document for a presentation layer.
//
// The snapshot carries ids, optional coordinates, weights, distances,
// parents and the highlighted path. It never mentions pixels, colors or
// timing; how any of it is drawn is up to the consumer.
//
// Every number in the output is finite: unreachable distances and missing
// parents are omitted instead of being written as Inf or -1.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/dijkstra"
)

var (
	// ErrNilGraph indicates FromGraph was given a nil graph.
	ErrNilGraph = errors.New("export: graph is nil")

	// ErrNilResult indicates AttachSearch was given a nil result.
	ErrNilResult = errors.New("export: result is nil")

	// ErrSizeMismatch indicates attached state covers a different node count
	// than the snapshot, or references ids outside it.
	ErrSizeMismatch = errors.New("export: state does not match snapshot")
)

// Snapshot is the JSON document handed to a renderer.
type Snapshot struct {
	Nodes  []Node  `json:"nodes"`
	Edges  []Edge  `json:"edges"`
	Search *Search `json:"search,omitempty"`
	Walk   []Step  `json:"walk,omitempty"`
}

// Node is one node with its presentation-relevant state.
type Node struct {
	ID     core.NodeID `json:"id"`
	Pos    *core.Point `json:"pos,omitempty"`
	Degree int         `json:"degree"`

	// Search state, present after AttachSearch.
	Reachable *bool        `json:"reachable,omitempty"`
	Distance  *float64     `json:"distance,omitempty"`
	Parent    *core.NodeID `json:"parent,omitempty"`
	OnPath    bool         `json:"on_path,omitempty"`
}

// Edge is one undirected edge in insertion order.
type Edge struct {
	From   core.NodeID `json:"from"`
	To     core.NodeID `json:"to"`
	Weight float64     `json:"weight"`
	OnPath bool        `json:"on_path,omitempty"`
}

// Search summarizes a shortest-path run.
type Search struct {
	Source   core.NodeID   `json:"source"`
	Target   *core.NodeID  `json:"target,omitempty"`
	Path     []core.NodeID `json:"path,omitempty"`
	Settled  int           `json:"settled"`
	Complete bool          `json:"complete"`
}

// Step is one preorder visit.
type Step struct {
	Node   core.NodeID  `json:"node"`
	Parent *core.NodeID `json:"parent,omitempty"`
	Depth  int          `json:"depth"`
}

// FromGraph snapshots the nodes and edges of g.
func FromGraph(g *core.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := g.Nodes()
	s := &Snapshot{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for i, nd := range nodes {
		s.Nodes[i] = Node{ID: nd.ID, Degree: len(nd.Neighbors)}
		if nd.HasPos {
			p := nd.Pos
			s.Nodes[i].Pos = &p
		}
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return s, nil
}

// AttachSearch records per-node distances and parents from res and marks
// path (which may be nil) on nodes and edges. The path's last node becomes
// the search target.
func (s *Snapshot) AttachSearch(res *dijkstra.Result, path []core.NodeID) error {
	if res == nil {
		return ErrNilResult
	}
	if res.Len() != len(s.Nodes) {
		return fmt.Errorf("AttachSearch: result covers %d nodes, snapshot %d: %w", res.Len(), len(s.Nodes), ErrSizeMismatch)
	}
	for _, id := range path {
		if id < 0 || int(id) >= len(s.Nodes) {
			return fmt.Errorf("AttachSearch: path node %d: %w", id, ErrSizeMismatch)
		}
	}

	// 1) Per-node state. Unreachable nodes keep Distance and Parent nil.
	for i := range s.Nodes {
		id := core.NodeID(i)
		ok := res.Reachable(id)
		s.Nodes[i].Reachable = &ok
		s.Nodes[i].Distance, s.Nodes[i].Parent, s.Nodes[i].OnPath = nil, nil, false
		if ok {
			d := res.Distance(id)
			s.Nodes[i].Distance = &d
		}
		if p := res.Parent(id); p != core.NoNode {
			s.Nodes[i].Parent = &p
		}
	}

	// 2) Path highlighting.
	onPath := make(map[[2]core.NodeID]bool, len(path))
	for i, id := range path {
		s.Nodes[id].OnPath = true
		if i > 0 {
			onPath[[2]core.NodeID{path[i-1], id}] = true
			onPath[[2]core.NodeID{id, path[i-1]}] = true
		}
	}
	for i := range s.Edges {
		s.Edges[i].OnPath = onPath[[2]core.NodeID{s.Edges[i].From, s.Edges[i].To}]
	}

	s.Search = &Search{
		Source:   res.Source(),
		Settled:  res.Settled(),
		Complete: res.Complete(),
	}
	if len(path) > 0 {
		t := path[len(path)-1]
		s.Search.Target = &t
		s.Search.Path = append([]core.NodeID(nil), path...)
	}

	return nil
}

// AttachWalk records a preorder traversal.
func (s *Snapshot) AttachWalk(visits []dfs.Visit) error {
	steps := make([]Step, len(visits))
	for i, v := range visits {
		if v.Node < 0 || int(v.Node) >= len(s.Nodes) {
			return fmt.Errorf("AttachWalk: node %d: %w", v.Node, ErrSizeMismatch)
		}
		steps[i] = Step{Node: v.Node, Depth: v.Depth}
		if v.Parent != core.NoNode {
			p := v.Parent
			steps[i].Parent = &p
		}
	}
	s.Walk = steps

	return nil
}

// Encode writes s as indented JSON.
func Encode(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}

	return nil
}
