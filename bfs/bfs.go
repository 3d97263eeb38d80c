// Package bfs provides breadth-first search over a core.Graph, returning
// the reachable vertex set.
//
// BFS explores vertices in non-decreasing distance from a start vertex,
// with an optional visit hook.
package bfs

import "github.com/katalvlaran/graphsearch/core"

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	opts    BFSOptions[T]
	queue   []T
	visited core.Set[T]
}

// BFS runs breadth-first search on g starting from start and returns the
// set of vertices reachable from start, start included.
//
// A start vertex that is not in g (or a nil g) is not an error: the result
// is simply empty. Duplicate enqueues are tolerated; a vertex that is
// already visited when dequeued is skipped.
func BFS[T comparable](g *core.Graph[T], start T, opts ...Option[T]) core.Set[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil || !g.HasVertex(start) {
		return core.NewSet[T]()
	}

	w := &walker[T]{
		graph:   g,
		opts:    o,
		queue:   make([]T, 0, g.VertexCount()),
		visited: make(core.Set[T], g.VertexCount()),
	}
	w.queue = append(w.queue, start)
	w.loop()

	return w.visited
}

// loop processes the queue until empty.
func (w *walker[T]) loop() {
	for len(w.queue) > 0 {
		v := w.dequeue()
		if w.visited.Has(v) {
			continue
		}
		w.visit(v)
		w.enqueueNeighbors(v)
	}
}

// dequeue pops the first item.
func (w *walker[T]) dequeue() T {
	v := w.queue[0]
	w.queue = w.queue[1:]

	return v
}

// visit fires OnVisit, then marks v visited.
func (w *walker[T]) visit(v T) {
	w.opts.OnVisit(v)
	w.visited.Add(v)
}

// enqueueNeighbors appends every neighbor of v that is not yet visited.
func (w *walker[T]) enqueueNeighbors(v T) {
	neighbors, _ := w.graph.Neighbors(v)
	for _, nbr := range neighbors {
		if !w.visited.Has(nbr) {
			w.queue = append(w.queue, nbr)
		}
	}
}
