// SPDX-License-Identifier: MIT
// Package synth: RandomSparse(n, p).
//
// Erdős–Rényi over ordered pairs: each (i,j), i ≠ j, is kept independently
// with probability p. Trials run i ascending, then j ascending, so a fixed
// seed fixes the edge set. p ∈ {0,1} needs no RNG.
//
// Complexity: O(n²) trials.

package synth

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse samples a directed graph over n nodes with edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *Buffer, cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if trial(cfg, p) {
					b.add(cfg, i, j)
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli(p) draw; p ∈ {0,1} does not touch the RNG.
func trial(cfg config, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
