// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1]; NaN is rejected.
//   - RNG required only for 0 < p < 1.
//   - Trial order: i asc, j asc with j > i; no self-loops.
//
// Determinism:
//   - Fixed seed and options ⇒ identical edge set.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// possible edges independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					g.AddEdge(i, j)
				}
			}
		}

		return nil
	}
}
