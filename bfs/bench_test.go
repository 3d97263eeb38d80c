package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/core"
)

func mustBuild(b *testing.B, cons ...builder.Constructor) *core.Graph[int] {
	b.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph.
func BenchmarkBFS_Chain(b *testing.B) {
	g := mustBuild(b, builder.Path(10000))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 100×100 lattice, where most vertices are
// enqueued twice.
func BenchmarkBFS_Grid(b *testing.B) {
	g := mustBuild(b, builder.Grid(100, 100))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.BFS(g, 0)
	}
}

// BenchmarkShortestPath_Build measures the one-off search behind a PathFunc.
func BenchmarkShortestPath_Build(b *testing.B) {
	g := mustBuild(b, builder.RandomSparse(2000, 0.005))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.ShortestPath(g, 0)
	}
}

// BenchmarkShortestPath_Lookup times repeated lookups against one search.
func BenchmarkShortestPath_Lookup(b *testing.B) {
	pathTo := bfs.ShortestPath(mustBuild(b, builder.Path(10000)), 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathTo(9999)
	}
}
