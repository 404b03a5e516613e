// SPDX-License-Identifier: MIT
// Package synth: edge weight generators.

package synth

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is given.
const DefaultEdgeWeight float32 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float32

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float32 { return DefaultEdgeWeight }

// ConstantWeightFn always yields value. Panics on 0, which would erase
// every edge.
func ConstantWeightFn(value float32) WeightFn {
	if value == 0 {
		panic("synth: ConstantWeightFn(0)")
	}

	return func(_ *rand.Rand) float32 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi). Panics unless 0 < lo <= hi.
// A nil rng yields lo.
func UniformWeightFn(lo, hi float32) WeightFn {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("synth: UniformWeightFn: require 0 < lo ≤ hi, got lo=%g hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float32 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + (hi-lo)*rng.Float32()
	}
}

// IntWeightFn samples an integer weight in [1, max]. Integer weights make
// exactly equal reciprocal pairs likely. Panics on max < 1. A nil rng yields 1.
func IntWeightFn(max int) WeightFn {
	if max < 1 {
		panic("synth: IntWeightFn(max<1)")
	}

	return func(rng *rand.Rand) float32 {
		if rng == nil {
			return 1
		}

		return float32(1 + rng.Intn(max))
	}
}
