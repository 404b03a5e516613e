// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// All kernels return these sentinels wrapped with an operation tag
// ("Add: ...: sparse: dimension mismatch"). Callers branch with errors.Is.
// Option constructors panic on nonsensical values; kernels never panic on
// user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or
	// coordinate/value slices of different lengths.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a kernel.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
