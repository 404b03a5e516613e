// SPDX-License-Identifier: MIT
// Package synth: functional options.
//
// Option constructors validate and panic on meaningless input; generators
// themselves only return sentinel errors.

package synth

import "math/rand"

// Option customizes a generation run.
type Option func(*config)

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("synth: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithSignedFraction negates each generated weight with probability f,
// producing a signed graph. Panics unless 0 ≤ f ≤ 1.
func WithSignedFraction(f float64) Option {
	if f < probMin || f > probMax {
		panic("synth: WithSignedFraction(f∉[0,1])")
	}

	return func(c *config) { c.signedFraction = f }
}
