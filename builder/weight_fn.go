// Package builder provides edge-weight distributions for graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a strictly positive edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. With a nil rng it yields min, so deterministic
// constructors stay usable without seeding.
// Panics unless 1 ≤ min ≤ max.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
