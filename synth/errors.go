// SPDX-License-Identifier: MIT
// Package synth: sentinel errors. Match with errors.Is.

package synth

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below its minimum.
	ErrTooFewVertices = errors.New("synth: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("synth: probability out of range")

	// ErrNeedRandSource indicates a stochastic step without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("synth: rng is required")

	// ErrNoConstructors indicates Generate called without constructors.
	ErrNoConstructors = errors.New("synth: no constructors")
)
