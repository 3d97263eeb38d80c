package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

// traversal runs one search from start, reporting each vertex to visit.
type traversal func(g *core.Graph[string], start string, visit func(string)) core.Set[string]

func breadthFirst(g *core.Graph[string], start string, visit func(string)) core.Set[string] {
	return bfs.BFS(g, start, bfs.WithOnVisit(visit))
}

func depthFirst(g *core.Graph[string], start string, visit func(string)) core.Set[string] {
	return dfs.DFS(g, start, dfs.WithOnVisit(visit))
}

// runDemo prints the shortest path to every target, then the DFS and BFS
// visit orders.
func runDemo(w io.Writer, g *core.Graph[string], targets []string, start string) error {
	if err := runPaths(w, g, start, targets); err != nil {
		return err
	}
	for _, step := range []struct {
		name string
		run  traversal
	}{
		{"dfs", depthFirst},
		{"bfs", breadthFirst},
	} {
		var order []string
		step.run(g, start, func(v string) { order = append(order, v) })
		if _, err := fmt.Fprintf(w, "%s: %s\n", step.name, join(order)); err != nil {
			return err
		}
	}

	return nil
}

// runTraversal prints the visit order and the naturally sorted reachable set.
func runTraversal(w io.Writer, g *core.Graph[string], start string, run traversal) error {
	var order []string
	reachable := run(g, start, func(v string) { order = append(order, v) })

	members := reachable.Slice()
	sort.Sort(natural.StringSlice(members))

	_, err := fmt.Fprintf(w, "order: %s\nreachable: %s\n", join(order), join(members))

	return err
}

// runPaths prints one line per target: the shortest path or "no path".
func runPaths(w io.Writer, g *core.Graph[string], start string, targets []string) error {
	pathTo := bfs.ShortestPath(g, start)
	for _, target := range targets {
		line := "no path"
		path, err := pathTo(target)
		switch {
		case errors.Is(err, bfs.ErrNoPath):
		case err != nil:
			return err
		default:
			line = join(path)
		}
		if _, err = fmt.Fprintf(w, "shortest path to %s: %s\n", target, line); err != nil {
			return err
		}
	}

	return nil
}

func join(vs []string) string { return strings.Join(vs, ", ") }
