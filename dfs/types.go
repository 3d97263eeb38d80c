// Package dfs defines options for depth-first search traversal.
package dfs

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[T comparable] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions[T comparable] struct {
	// OnVisit, if non-nil, is invoked once per vertex immediately before it
	// is marked visited (pre-order).
	OnVisit func(v T)
}

// DefaultOptions returns a DFSOptions struct with no hooks.
func DefaultOptions[T comparable]() DFSOptions[T] {
	return DFSOptions[T]{OnVisit: nil}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[T comparable](fn func(v T)) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnVisit = fn
	}
}
