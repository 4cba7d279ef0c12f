package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/graphwalk/core"
)

// Preorder returns the depth-first preorder of g from start as a lazy
// sequence. Validation happens now; traversal happens on each range.
func Preorder(g *core.Graph, start core.NodeID, opts ...Option) (iter.Seq[Visit], error) {
	// 1. Validate input graph and start.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start %d: %w", start, ErrStartNodeNotFound)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Each call of the returned function is an independent traversal.
	return func(yield func(Visit) bool) {
		w := newWalker(g, dopts)
		if !w.tree(start, yield) || !dopts.FullTraversal {
			return
		}
		for i := range w.seen {
			if !w.seen[i] && !w.tree(core.NodeID(i), yield) {
				return
			}
		}
	}, nil
}

// Walk runs Preorder to completion and collects the visits. If the context
// stopped the traversal, the visits so far are returned with ctx.Err().
func Walk(g *core.Graph, start core.NodeID, opts ...Option) ([]Visit, error) {
	seq, err := Preorder(g, start, opts...)
	if err != nil {
		return nil, err
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	out := make([]Visit, 0, g.NodeCount())
	for v := range seq {
		out = append(out, v)
	}
	if err = dopts.Ctx.Err(); err != nil {
		return out, fmt.Errorf("dfs: walk from %d: %w", start, err)
	}

	return out, nil
}

// walker is the per-traversal state.
type walker struct {
	g     *core.Graph
	opts  DFSOptions
	seen  []bool
	stack []Visit
	buf   []core.Neighbor
}

func newWalker(g *core.Graph, opts DFSOptions) *walker {
	return &walker{
		g:    g,
		opts: opts,
		seen: make([]bool, g.NodeCount()),
	}
}

// tree yields the preorder of the tree rooted at root. It returns false when
// the consumer or the context asked to stop.
func (w *walker) tree(root core.NodeID, yield func(Visit) bool) bool {
	w.stack = append(w.stack[:0], Visit{Node: root, Parent: core.NoNode})
	for len(w.stack) > 0 {
		// 1. Cancellation check.
		if w.opts.Ctx.Err() != nil {
			return false
		}

		// 2. Pop; a node pushed twice is visited only the first time.
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.seen[top.Node] {
			continue
		}
		w.seen[top.Node] = true
		if !yield(top) {
			return false
		}

		// 3. Depth limit: children would be too deep.
		if w.opts.MaxDepth >= 0 && top.Depth >= w.opts.MaxDepth {
			continue
		}

		// 4. Push unvisited neighbors in reverse so the first pops first.
		// Ids on the stack come from g itself, so ForEachNeighbor cannot fail.
		w.buf = w.buf[:0]
		_ = w.g.ForEachNeighbor(top.Node, func(nb core.Neighbor) bool {
			w.buf = append(w.buf, nb)
			return true
		})
		for i := len(w.buf) - 1; i >= 0; i-- {
			id := w.buf[i].ID
			if w.seen[id] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id) {
				continue
			}
			w.stack = append(w.stack, Visit{Node: id, Parent: top.Node, Depth: top.Depth + 1})
		}
	}

	return true
}
