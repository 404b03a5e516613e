// SPDX-License-Identifier: MIT
// Package synth: deterministic topologies.
//
// Emission order is fixed (source ascending, then target ascending), so the
// only randomness comes from the weight function and the sign policy.

package synth

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 2
)

// Path emits i→i+1 for i = 0..n-2. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(b *Buffer, cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i+1 < n; i++ {
			b.add(cfg, i, i+1)
		}

		return nil
	}
}

// Cycle emits i→(i+1) mod n for i = 0..n-1. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(b *Buffer, cfg config) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i < n; i++ {
			b.add(cfg, i, (i+1)%n)
		}

		return nil
	}
}

// Star emits 0→i for i = 1..n-1 (hub 0 pointing outwards). Requires n ≥ 2.
func Star(n int) Constructor {
	return func(b *Buffer, cfg config) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 1; i < n; i++ {
			b.add(cfg, 0, i)
		}

		return nil
	}
}

// Complete emits every ordered pair i→j, i ≠ j. Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(b *Buffer, cfg config) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		b.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					b.add(cfg, i, j)
				}
			}
		}

		return nil
	}
}
