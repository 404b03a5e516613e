// SPDX-License-Identifier: MIT
// Package laplacian: renormalized adjacency for plain graph convolutions.

package laplacian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlap/sparse"
)

// NormalizeAdj returns the GCN renormalized adjacency D^-½ (A+I)ᵀ D^-½,
// where D holds the row sums of A + I. Existing self-loops are kept and
// stacked with the added identity. Degrees whose inverse square root is not
// finite (zero or negative row sums) contribute 0.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrNonSquare.
func NormalizeAdj(a *sparse.Matrix) (*sparse.Matrix, error) {
	const op = "NormalizeAdj"
	if err := sparse.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := sparse.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	I, err := sparse.Identity(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ai, err := sparse.Add(a, I)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := ai.RowSums()
	d := make([]float32, len(rows))
	for i, r := range rows {
		v := math.Pow(float64(r), -0.5)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		d[i] = float32(v)
	}

	out, err := sparse.DiagSandwich(d, ai.Transpose())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
