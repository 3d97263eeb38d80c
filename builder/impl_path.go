// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 1; edges (i-1)–i for i=1..n-1.
//   - Cycle: n ≥ 3; Path edges plus (n-1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 1; i < n; i++ {
			g.AddEdge(i-1, i)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		g.AddEdge(n-1, 0)

		return nil
	}
}
