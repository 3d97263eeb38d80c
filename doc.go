// Package graphsearch is a small generic toolkit for undirected graphs:
// build a graph, walk it breadth-first or depth-first, and recover
// fewest-edge paths.
//
// Under the hood, everything is organized under subpackages:
//
//	core/     — generic Graph[T], Edge[T] and Set[T]
//	bfs/      — BFS reachable set, ShortestPath / Paths
//	dfs/      — DFS reachable set
//	builder/  — deterministic graph fixtures (path, cycle, star, grid, random)
//
// Quick example:
//
//	g := core.New([]int{1, 2, 3}, []core.Edge[int]{{U: 1, V: 2}})
//	bfs.BFS(g, 1)                    // {1, 2}
//	path, err := bfs.ShortestPath(g, 1)(3) // err wraps bfs.ErrNoPath
//
// The cmd/graphsearch command prints these results for the built-in
// sample graph or a YAML graph file.
package graphsearch
