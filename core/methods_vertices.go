// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertices() returns vertices in order of first insertion.
//
// Concurrency:
//   - Catalog protected by mu (write lock for AddVertex, read lock otherwise).

package core

// AddVertex inserts v with an empty neighbor set.
//
// Implementation:
//   - Stage 1: Under the write lock, allocate a fresh neighbor set for v.
//   - Stage 2: Record v in the insertion order on first sight only.
//
// Behavior highlights:
//   - Overwrite semantics: if v already exists its neighbor set is replaced
//     by an empty one. Vertices adjacent to v keep v in their own sets, so
//     adjacency may become one-sided. Add all vertices before edges.
//   - Re-adding v does not move it in Vertices() order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddVertex(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: fresh neighbor set, replacing any previous one.
	g.vertices[v] = newNeighborSet[T]()

	// Stage 2: first insertion fixes the enumeration position.
	if _, seen := g.index[v]; !seen {
		g.index[v] = len(g.order)
		g.order = append(g.order, v)
	}
}

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1)
func (g *Graph[T]) HasVertex(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// Vertices returns all vertices in order of first insertion.
// The returned slice is a copy.
// Complexity: O(V)
func (g *Graph[T]) Vertices() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the neighbors of v in the order their edges were first
// added, and whether v is a vertex at all. The returned slice is a copy;
// callers may keep or modify it.
//
// Complexity: O(deg v)
func (g *Graph[T]) Neighbors(v T) ([]T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ns, ok := g.vertices[v]
	if !ok {
		return nil, false
	}
	out := make([]T, len(ns.order))
	copy(out, ns.order)

	return out, true
}

// Degree returns |N(v)| and whether v exists. A self-loop counts once.
func (g *Graph[T]) Degree(v T) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ns, ok := g.vertices[v]
	if !ok {
		return 0, false
	}

	return len(ns.order), true
}
