// Package bfs provides functional options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import "errors"

// ErrNoPath is returned by a path lookup when the target was never
// discovered from the start vertex. It is never accompanied by a partial path.
var ErrNoPath = errors.New("bfs: no path")

// Option configures BFS behavior via functional arguments.
type Option[T comparable] func(*BFSOptions[T])

// BFSOptions holds callbacks to customize BFS execution.
type BFSOptions[T comparable] struct {
	// OnVisit is called exactly once per reachable vertex, right before it
	// is marked visited. It observes the traversal only; it cannot alter
	// the result. The order of calls follows visitation order.
	OnVisit func(v T)
}

// DefaultOptions returns BFSOptions with a no-op OnVisit hook.
func DefaultOptions[T comparable]() BFSOptions[T] {
	return BFSOptions[T]{
		OnVisit: func(T) {},
	}
}

// WithOnVisit registers a callback to run as each vertex is visited.
// A nil fn keeps the no-op default.
func WithOnVisit[T comparable](fn func(v T)) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// PathFunc maps a target vertex to the shortest path from a fixed start
// vertex, start and target inclusive, ordered start → target.
// Unreachable targets yield an error wrapping ErrNoPath.
type PathFunc[T comparable] func(target T) ([]T, error)
