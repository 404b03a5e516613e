// SPDX-License-Identifier: MIT
// Package laplacian: Chebyshev rescaling and self-loop injection.

package laplacian

import (
	"fmt"
	"math"
)

// DefaultLambdaMax is the λmax used by the service path. The largest
// eigenvalue of a symmetrically normalized Laplacian is bounded by 2, so the
// rescaled operator 2L/λmax - I lands in [-1, 1] without an eigensolve.
const DefaultLambdaMax float32 = 2.0

// Self-loop fill values appended by Normalize.
const (
	SelfLoopFillReal float32 = -1
	SelfLoopFillImag float32 = 0
)

// Normalize returns a new Kernel holding 2L/λmax - I:
//  1. every weight w in every component becomes 2w/λmax; a result that
//     overflows to ±Inf becomes 0, and a zero weight stays 0 for any λmax;
//  2. N self-loops (n,n), n = 0..N-1, are appended after all blocks, with
//     SelfLoopFillReal on the real vector and SelfLoopFillImag on i, j, k.
//
// The input is not modified.
//
// λmax = 0 is accepted: every nonzero weight overflows and is masked to 0,
// leaving only the self-loops. A NaN λmax would turn every weight into NaN,
// which no mask recovers.
//
// Errors: ErrNilKernel, ErrInvalidLambdaMax (λmax is NaN),
// ErrAlreadyNormalized (k already carries appended self-loops).
// Complexity: O(E + N).
func Normalize(k *Kernel, lambdaMax float32) (*Kernel, error) {
	const op = "Normalize"
	if k == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if math.IsNaN(float64(lambdaMax)) {
		return nil, fmt.Errorf("%s: λmax=%v: %w", op, lambdaMax, ErrInvalidLambdaMax)
	}
	if k.HasSelfLoops {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyNormalized)
	}

	e, n := k.Len(), k.NumNodes
	out := &Kernel{
		NumNodes:     n,
		Src:          make([]int, e, e+n),
		Dst:          make([]int, e, e+n),
		Offsets:      k.Offsets,
		HasSelfLoops: true,
		LoopStart:    e,
	}
	copy(out.Src, k.Src)
	copy(out.Dst, k.Dst)
	for node := 0; node < n; node++ {
		out.Src = append(out.Src, node)
		out.Dst = append(out.Dst, node)
	}

	out.Real = rescale(k.Real, lambdaMax, n, SelfLoopFillReal)
	out.ImagI = rescale(k.ImagI, lambdaMax, n, SelfLoopFillImag)
	out.ImagJ = rescale(k.ImagJ, lambdaMax, n, SelfLoopFillImag)
	out.ImagK = rescale(k.ImagK, lambdaMax, n, SelfLoopFillImag)

	return out, nil
}

// rescale maps w to 2w/λ (±Inf → 0) and appends n copies of fill.
// Zero slots are skipped so that 0/0 never produces NaN.
func rescale(w []float32, lambdaMax float32, n int, fill float32) []float32 {
	out := make([]float32, len(w), len(w)+n)
	for i, v := range w {
		if v == 0 {
			continue
		}
		s := 2 * v / lambdaMax
		if math.IsInf(float64(s), 0) {
			s = 0
		}
		out[i] = s
	}
	for i := 0; i < n; i++ {
		out = append(out, fill)
	}

	return out
}
