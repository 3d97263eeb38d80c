// Package core defines the generic Graph, Edge and Set types, and the
// NewGraph/New constructors.
//
// All Graph methods take an internal sync.RWMutex, so concurrent reads are
// safe. Mutating a Graph while a traversal runs over it is not supported.
package core

import "sync"

// Edge is an unordered pair of vertices. Edge{U: a, V: b} and
// Edge{U: b, V: a} describe the same undirected edge.
type Edge[T comparable] struct {
	// U is the first endpoint.
	U T

	// V is the second endpoint.
	V T
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	capacity int // expected vertex count, 0 = unknown
}

// WithCapacity pre-sizes the vertex catalog for about n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(cfg *graphConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// neighborSet keeps a vertex's neighbors deduplicated and in insertion order.
type neighborSet[T comparable] struct {
	members map[T]struct{}
	order   []T
}

func newNeighborSet[T comparable]() *neighborSet[T] {
	return &neighborSet[T]{members: make(map[T]struct{})}
}

// add inserts v once; reports whether v was new.
func (n *neighborSet[T]) add(v T) bool {
	if _, ok := n.members[v]; ok {
		return false
	}
	n.members[v] = struct{}{}
	n.order = append(n.order, v)

	return true
}

func (n *neighborSet[T]) has(v T) bool {
	_, ok := n.members[v]
	return ok
}

// Graph is an undirected graph over comparable vertices.
//
// mu guards every field below it. vertices maps each vertex to its
// neighbor set; order records first insertion so enumeration is
// reproducible, and index is the inverse of order.
type Graph[T comparable] struct {
	mu sync.RWMutex

	vertices map[T]*neighborSet[T]
	order    []T
	index    map[T]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		vertices: make(map[T]*neighborSet[T], cfg.capacity),
		order:    make([]T, 0, cfg.capacity),
		index:    make(map[T]int, cfg.capacity),
	}
}

// New builds a Graph from an ordered list of vertices and an ordered list
// of edges. All vertices are added first, then all edges, each with the
// usual AddVertex/AddEdge semantics: repeated vertices are reset, and edges
// naming an unknown endpoint are skipped.
//
// Complexity: O(V + E)
func New[T comparable](vertices []T, edges []Edge[T], opts ...GraphOption) *Graph[T] {
	if len(vertices) > 0 {
		opts = append([]GraphOption{WithCapacity(len(vertices))}, opts...)
	}
	g := NewGraph[T](opts...)
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		g.AddEdge(e.U, e.V)
	}

	return g
}
