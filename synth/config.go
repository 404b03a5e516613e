// SPDX-License-Identifier: MIT
// Package synth: resolved configuration.

package synth

import "math/rand"

const (
	probMin = 0.0
	probMax = 1.0
)

// config is the single source of truth for generator knobs. It is passed by
// value to constructors.
type config struct {
	rng            *rand.Rand // nil ⇒ no randomness
	weightFn       WeightFn
	signedFraction float64
}

func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// validate rejects configurations whose stochastic knobs lack an RNG.
func (c config) validate() error {
	if c.rng == nil && c.signedFraction > probMin && c.signedFraction < probMax {
		return ErrNeedRandSource
	}

	return nil
}

// weight draws one edge weight, applying the sign policy.
func (c config) weight() float32 {
	w := c.weightFn(c.rng)
	switch {
	case c.signedFraction == probMax:
		w = -w
	case c.signedFraction > probMin && c.rng.Float64() < c.signedFraction:
		w = -w
	}

	return w
}
