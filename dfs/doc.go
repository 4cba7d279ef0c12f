// Package dfs implements a lazy depth-first preorder over core.Graph.
//
// Preorder validates its arguments eagerly and returns an iter.Seq[Visit].
// Nothing is traversed until the sequence is ranged over, and every range
// starts a fresh traversal with its own stack and visited set, so one
// sequence can be consumed many times and by several goroutines.
//
// Order: neighbors are pushed in reverse, so the first neighbor in a node's
// adjacency list is visited first. A node reached again later is skipped.
//
// Options:
//
//   - WithContext(ctx)       stops the sequence once ctx is done.
//   - WithMaxDepth(limit)    never visits nodes deeper than limit (0 = start only).
//   - WithFilterNeighbor(fn) skips neighbors for which fn returns false.
//   - WithFullTraversal()    after start's tree, roots every unvisited node in id order.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrStartNodeNotFound  if start is outside 0..n-1.
//   - ctx.Err() from Walk   if the context ended the traversal.
//
// Complexity: O(V + E) time, O(V + E) space for the stack.
package dfs
