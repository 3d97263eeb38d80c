package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// Paths holds the predecessor links of one BFS run from a fixed start
// vertex. It answers any number of shortest-path queries without
// re-running the search.
//
// The links reflect g's adjacency at the time ShortestPaths was called;
// later mutation of g is not seen.
type Paths[T comparable] struct {
	start    T
	previous map[T]T
}

// ShortestPaths runs a single BFS from start, recording for each newly
// discovered vertex the vertex it was discovered from. First discovery
// wins; since BFS reaches vertices in non-decreasing distance, every
// recorded predecessor lies on a shortest path. The start vertex never
// gets a predecessor.
//
// If start is not a vertex of g (or g is nil) no links are recorded: only
// start itself is then reachable.
//
// Complexity: O(V + E) once; each PathTo is O(path length).
func ShortestPaths[T comparable](g *core.Graph[T], start T) *Paths[T] {
	p := &Paths[T]{start: start, previous: make(map[T]T)}
	if g == nil || !g.HasVertex(start) {
		return p
	}

	discovered := core.NewSet(start)
	queue := []T{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		neighbors, _ := g.Neighbors(v)
		for _, nbr := range neighbors {
			if discovered.Has(nbr) {
				continue
			}
			discovered.Add(nbr)
			p.previous[nbr] = v
			queue = append(queue, nbr)
		}
	}

	return p
}

// ShortestPath runs BFS from start once and returns a lookup function over
// the captured predecessor links. See Paths.PathTo for its contract.
func ShortestPath[T comparable](g *core.Graph[T], start T) PathFunc[T] {
	return ShortestPaths(g, start).Func()
}

// Start returns the vertex the search began from.
func (p *Paths[T]) Start() T { return p.start }

// Reachable reports whether target was discovered from the start vertex.
// The start vertex is always reachable from itself.
func (p *Paths[T]) Reachable(target T) bool {
	if target == p.start {
		return true
	}
	_, ok := p.previous[target]

	return ok
}

// PathTo reconstructs the shortest path from the start vertex to target,
// both inclusive, ordered start → target.
//
//   - target == start → [start]
//   - target unreachable → nil and an error wrapping ErrNoPath
func (p *Paths[T]) PathTo(target T) ([]T, error) {
	if !p.Reachable(target) {
		return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, p.start, target)
	}

	// build reversed path
	path := []T{target}
	for cur := target; cur != p.start; {
		cur = p.previous[cur]
		path = append(path, cur)
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Func exposes PathTo as a PathFunc sharing p's predecessor links.
func (p *Paths[T]) Func() PathFunc[T] { return p.PathTo }
