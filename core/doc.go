// Package core provides a small generic in-memory undirected Graph with a
// minimal, composable API surface.
//
// The Graph G = (V,E) is a mapping from vertex to its set of neighbors:
//
//   - Any comparable vertex type (ints, strings, small structs).
//   - Symmetric adjacency: AddEdge(u, v) records v in N(u) and u in N(v).
//   - Self-loops are accepted; AddEdge(v, v) records v in N(v) once.
//   - Duplicate edges have no effect (neighbor sets deduplicate).
//   - Isolated vertices are valid and have an empty neighbor set.
//
// Why use core.Graph?
//
//   - Single generic type — no casting vertex IDs back and forth.
//   - Reproducible iteration — Vertices() and Neighbors() return insertion order.
//   - Read-safe sharing — one sync.RWMutex guards the catalog so several
//     traversals can read the same graph at once.
//
// Insertion policy:
//
//	– AddVertex(v)
//	    Inserts v with an empty neighbor set. If v already exists its own
//	    neighbor set is reset to empty; other vertices keep v in theirs.
//	    Add every vertex before any edge to avoid losing adjacency.
//
//	– AddEdge(u, v)
//	    Links u and v when both are vertices. When either endpoint is
//	    unknown the call is silently ignored: nothing is created and no
//	    error is reported.
//
//	– New(vertices, edges)
//	    Bulk constructor: all vertices first, then all edges, in order.
//
// Core Methods:
//
//	// Construction
//	NewGraph[T](opts ...GraphOption) *Graph[T]          // O(1)
//	New[T](vertices []T, edges []Edge[T], opts ...)     // O(V+E)
//	AddVertex(v T)                                      // O(1)
//	AddEdge(u, v T)                                     // O(1)
//
//	// Query
//	HasVertex(v T) bool                                 // O(1)
//	HasEdge(u, v T) bool                                // O(1)
//	Neighbors(v T) ([]T, bool)                          // O(deg v)
//	Degree(v T) (int, bool)                             // O(1)
//	Vertices() []T                                      // O(V)
//	Edges() []Edge[T]                                   // O(V+E)
//	VertexCount() int                                   // O(1)
//	EdgeCount() int                                     // O(V+E)
//
//	// Cloning
//	Clone() *Graph[T]                                   // O(V+E)
//
// There is no deletion: a Graph only grows. Traversal results are returned
// as Set[T], a membership-only map.
package core
