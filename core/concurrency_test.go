// Package core_test verifies that concurrent readers of core.Graph do not race.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphsearch/core"
)

// TestConcurrentReaders runs many read-only queries against one graph at
// once; with -race this anchors the read-sharing contract.
func TestConcurrentReaders(t *testing.T) {
	g := core.New(sampleVertices, sampleEdges)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_, ok := g.Neighbors(v)
				assert.True(t, ok)
			}
			assert.Equal(t, 11, g.EdgeCount())
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
