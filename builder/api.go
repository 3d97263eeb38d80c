// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs, seed and constructor order ⇒ identical graphs.
//   - Vertices are ints 0..n-1. A constructor only adds a vertex that is not
//     there yet, so composing constructors never resets earlier adjacency.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a new core.Graph[int], resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts 0..n-1, skipping vertices already present.
func addVertices(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		if !g.HasVertex(i) {
			g.AddVertex(i)
		}
	}
}
