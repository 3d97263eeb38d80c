// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1.
//   - Vertex (r, c) has ID r*cols + c.
//   - Each cell links right, then down, in row-major order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					g.AddEdge(id, id+1)
				}
				if r+1 < rows {
					g.AddEdge(id, id+cols)
				}
			}
		}

		return nil
	}
}
