// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - One place for the nil, shape, square and vector-length guards.
//  - Return sentinels wrapped with a validator tag; kernels add their own
//    operation tag on top, so a failure reads
//    "Add: ValidateSameShape: sparse: dimension mismatch".
//
// Determinism & Performance:
//  - Pure checks, no allocation on success.
//
// Note:
//  - Composite guards follow a fixed order: NotNil, then shape.

package sparse

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is square. Assumes m is non-nil.
func ValidateSquare(m *Matrix) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows(). Assumes both are non-nil.
func ValidateMulShape(a, b *Matrix) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float32, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
