// Package bfs provides breadth-first search over a core.Graph: the
// reachable set of a start vertex and unweighted shortest paths.
//
// What
//
//   - BFS(g, start, opts...) returns the Set of vertices reachable from
//     start, start included.
//   - ShortestPath(g, start) runs one BFS and returns a PathFunc that maps
//     any target to its fewest-edge path from start.
//   - ShortestPaths(g, start) returns the same state as a *Paths value
//     with PathTo, Reachable and Func.
//   - WithOnVisit registers a hook fired once per vertex as it is visited.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover the connected component of a vertex.
//
// Determinism
//
//	core.Graph returns neighbors in insertion order and BFS enqueues them
//	in that order, so for a given build sequence the OnVisit sequence is
//	reproducible. Only the result Set is part of the contract; callers
//	must not depend on hook order across graph implementations.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (a vertex may be enqueued once per incident edge)
//
// Usage
//
//	reachable := bfs.BFS(g, 1)
//
//	pathTo := bfs.ShortestPath(g, 1)
//	path, err := pathTo(9)
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // 9 is in another component
//	}
//
// Errors
//
//   - A start vertex absent from the graph is not an error: BFS returns an
//     empty Set.
//   - ErrNoPath (wrapped) when a PathFunc target was never discovered.
package bfs
