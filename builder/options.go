// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// options.go — functional options resolved into an immutable builderConfig.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand is given
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand attaches r as the randomness source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed, so stochastic
// constructors are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
