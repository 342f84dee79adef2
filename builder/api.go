// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     then freezes the result into an immutable core.Graph.
//   - Generate(n, opts...) is the single-call random generator used by the pipeline.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pipeplan/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching b,
// return sentinel errors instead of panicking, and emit vertices and edges
// in a stable order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors to a fresh core.Builder in order, and returns the frozen
// graph. Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial graph is returned.
//
// Errors:
//   - ErrOptionViolation if an option recorded an invalid value.
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrNeedRandSource, ...).
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V+E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	b := core.NewBuilder()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// Generate produces a random house neighborhood of n vertices: the
// GraphGenerator entry point. Without WithSeed/WithRand the RNG is seeded
// from the clock; any seeding option passed in opts takes precedence.
//
// Errors:
//   - ErrTooFewVertices if n <= 0.
//   - ErrOptionViolation for invalid link or weight ranges.
//
// Complexity: O(n·maxLinks).
func Generate(n int, opts ...BuilderOption) (*core.Graph, error) {
	seeded := make([]BuilderOption, 0, len(opts)+1)
	seeded = append(seeded, WithSeed(time.Now().UnixNano()))
	seeded = append(seeded, opts...)

	return BuildGraph(seeded, RandomNeighborhood(n))
}
