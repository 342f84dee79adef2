// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// impl_neighborhood.go - implementation of RandomNeighborhood(n).
//
// Model:
//   - n houses labeled by cfg.idFn(0..n-1).
//   - For each house i (ascending): draw k ∈ [minLinks, maxLinks], sample k
//     distinct indices from [0,n) without replacement, skip i itself, and
//     connect i—j with weight cfg.weightFn(rng).
//   - A pair drawn twice keeps the latest weight (symmetric overwrite).
//   - k is clamped to n so that tiny neighborhoods stay valid.
//   - Connectivity is NOT guaranteed.
//
// Complexity:
//   - Time: O(n·maxLinks) draws; sampling uses a partial Fisher–Yates over a
//     reusable index pool, O(n) to reset per vertex ⇒ O(n²) worst case.
//   - Space: O(n) for the pool.
//
// Determinism:
//   - Fixed draw order (k, then k swaps, then one weight per kept target).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pipeplan/core"
)

const (
	methodRandomNeighborhood      = "RandomNeighborhood"
	minRandomNeighborhoodVertices = 1
)

// RandomNeighborhood returns a Constructor that links every house to a
// random handful of other houses with random positive weights.
func RandomNeighborhood(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate before any side effect.
		if n < minRandomNeighborhoodVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomNeighborhood, n, minRandomNeighborhoodVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomNeighborhood, ErrNeedRandSource)
		}

		// 2) Add every house first so isolated houses still appear.
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := b.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomNeighborhood, ids[i], err)
			}
		}

		// 3) Sample targets per house.
		rng := cfg.rng
		pool := make([]int, n)
		span := cfg.maxLinks - cfg.minLinks + 1
		var (
			i, k int
			w    int64
		)
		for i = 0; i < n; i++ {
			k = cfg.minLinks + rng.Intn(span)
			if k > n {
				k = n
			}
			for _, j := range sampleIndices(rng, pool, k) {
				if j == i {
					continue
				}
				w = cfg.weightFn(rng)
				if err := b.AddEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w",
						methodRandomNeighborhood, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}

// sampleIndices returns k distinct indices from [0, len(pool)) using a
// partial Fisher–Yates shuffle. The returned slice aliases pool and is only
// valid until the next call.
func sampleIndices(rng *rand.Rand, pool []int, k int) []int {
	n := len(pool)
	for i := range pool {
		pool[i] = i
	}
	for t := 0; t < k; t++ {
		r := t + rng.Intn(n-t)
		pool[t], pool[r] = pool[r], pool[t]
	}

	return pool[:k]
}
