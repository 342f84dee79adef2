// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on nil functions (programmer error).
//   • Out-of-range numeric knobs are recorded and surface as
//     ErrOptionViolation from BuildGraph/Generate.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws integer weights uniformly from [min, max].
// Requires 1 ≤ min ≤ max, else ErrOptionViolation.
func WithWeightRange(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		if min < 1 || max < min {
			c.fail(fmt.Errorf("WithWeightRange(%d,%d): require 1 ≤ min ≤ max: %w", min, max, ErrOptionViolation))
			return
		}
		c.weightFn = UniformWeightFn(min, max)
	}
}

// WithLinkRange sets how many targets RandomNeighborhood samples per vertex,
// drawn uniformly from [min, max]. Requires 1 ≤ min ≤ max, else
// ErrOptionViolation.
func WithLinkRange(min, max int) BuilderOption {
	return func(c *builderConfig) {
		if min < 1 || max < min {
			c.fail(fmt.Errorf("WithLinkRange(%d,%d): require 1 ≤ min ≤ max: %w", min, max, ErrOptionViolation))
			return
		}
		c.minLinks, c.maxLinks = min, max
	}
}

// fail records the first option violation only.
func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
