// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Policy:
//   - Undirected only: every successful AddEdge writes both directions.
//   - Unknown endpoints are a silent no-op, never an error.
//
// Determinism:
//   - Edges() walks vertices in insertion order and neighbors in insertion
//     order, so the result is reproducible for a given build sequence.

package core

// AddEdge links u and v.
//
// Implementation:
//   - Stage 1: Under the write lock, look up both endpoints.
//   - Stage 2: If either is missing, return without touching anything.
//   - Stage 3: Add v to N(u) and u to N(v); sets absorb duplicates.
//
// Behavior highlights:
//   - Idempotent: repeating AddEdge(u, v) or adding AddEdge(v, u) changes nothing.
//   - Self-loop AddEdge(v, v) puts v in N(v) exactly once.
//   - Edges to unknown vertices are dropped without a trace; no vertex is
//     created implicitly.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddEdge(u, v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu, okU := g.vertices[u]
	nv, okV := g.vertices[v]
	if !okU || !okV {
		return
	}
	nu.add(v)
	nv.add(u)
}

// HasEdge reports whether v is a neighbor of u.
// For edges built only through AddEdge this is symmetric; after a vertex
// has been re-added with AddVertex it may not be.
func (g *Graph[T]) HasEdge(u, v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nu, ok := g.vertices[u]
	if !ok {
		return false
	}

	return nu.has(v)
}

// Edges returns every undirected edge once. An edge {u,v} is reported when
// v ∈ N(u) or u ∈ N(v); U is always the endpoint inserted first.
//
// Complexity: O(V + E)
func (g *Graph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// EdgeCount returns |E| as reported by Edges.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgesLocked())
}

// edgesLocked collects edges; caller holds mu.
func (g *Graph[T]) edgesLocked() []Edge[T] {
	seen := make(map[[2]int]struct{})
	out := make([]Edge[T], 0)
	for i, u := range g.order {
		for _, v := range g.vertices[u].order {
			j := g.index[v]
			key := [2]int{i, j}
			if j < i {
				key = [2]int{j, i}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Edge[T]{U: g.order[key[0]], V: g.order[key[1]]})
		}
	}

	return out
}
