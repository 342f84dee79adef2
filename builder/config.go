// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = HouseIDFn             ("Casa 1","Casa 2",...)
//   • rng        = nil                   (BuildGraph callers must seed)
//   • weightFn   = UniformWeightFn(1,20)
//   • links      = [2,4]                 (targets sampled per vertex)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every inserted edge.
	weightFn WeightFn

	// Inclusive bounds on how many targets RandomNeighborhood samples per vertex.
	minLinks int
	maxLinks int

	// First option violation recorded while applying options.
	err error
}

const (
	defaultMinWeight = 1
	defaultMaxWeight = 20
	defaultMinLinks  = 2
	defaultMaxLinks  = 4
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     HouseIDFn,
		weightFn: UniformWeightFn(defaultMinWeight, defaultMaxWeight),
		minLinks: defaultMinLinks,
		maxLinks: defaultMaxLinks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
