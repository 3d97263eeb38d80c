// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_star.go - Star(n) and Complete(n).
//
// Contract:
//   - Star: n ≥ 2; hub 0 linked to every leaf 1..n-1.
//   - Complete: n ≥ 1; every pair i<j linked, trial order i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds the star K_{1,n-1} centered on 0.
func Star(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for leaf := 1; leaf < n; leaf++ {
			g.AddEdge(0, leaf)
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(i, j)
			}
		}

		return nil
	}
}
