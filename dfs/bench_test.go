package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 vertices.
// The graph is built once; only the traversal is timed.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Path(10000))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.DFS(g, 0)
	}
}

// BenchmarkDFS_Complete200 stresses duplicate pushes on a dense graph.
func BenchmarkDFS_Complete200(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Complete(200))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.DFS(g, 0)
	}
}
