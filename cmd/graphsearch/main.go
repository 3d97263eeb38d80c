// Command graphsearch builds a graph (the embedded sample or a YAML file)
// and prints BFS, DFS and shortest-path results for one start vertex.
//
//	graphsearch                      # demo on the sample graph from vertex 1
//	graphsearch --start 5 path 9 12  # shortest paths from 5
//	graphsearch --graph g.yaml bfs   # BFS order and reachable set
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
