// Package dfs implements depth-first search on core.Graph.
package dfs

import "github.com/katalvlaran/graphsearch/core"

// dfsWalker encapsulates state during DFS.
type dfsWalker[T comparable] struct {
	graph   *core.Graph[T] // underlying graph
	opts    DFSOptions[T]  // traversal options
	stack   []T            // pending vertices, top at the end
	visited core.Set[T]    // result collector
}

// DFS performs depth-first search on g from start and returns the set of
// vertices reachable from start, start included. An absent start (or nil
// g) yields an empty set.
//
// The walk uses an explicit stack rather than recursion, so deep graphs do
// not grow the goroutine stack. A vertex may be pushed several times
// before it is popped; pops of already visited vertices are skipped.
func DFS[T comparable](g *core.Graph[T], start T, opts ...Option[T]) core.Set[T] {
	// 1. Apply options
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 2. Absent start: nothing is reachable
	if g == nil || !g.HasVertex(start) {
		return core.NewSet[T]()
	}

	walker := &dfsWalker[T]{
		graph:   g,
		opts:    dopts,
		stack:   []T{start},
		visited: make(core.Set[T], g.VertexCount()),
	}
	walker.traverse()

	return walker.visited
}

// traverse pops until the stack is empty.
func (w *dfsWalker[T]) traverse() {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		v := w.stack[top]
		w.stack = w.stack[:top]

		if w.visited.Has(v) {
			continue
		}

		// Pre-order hook
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(v)
		}
		w.visited.Add(v)

		// Push unvisited neighbors; the last pushed is explored first
		nbs, _ := w.graph.Neighbors(v)
		for _, nid := range nbs {
			if !w.visited.Has(nid) {
				w.stack = append(w.stack, nid)
			}
		}
	}
}
