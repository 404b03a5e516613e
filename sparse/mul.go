// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Mul: sparse × sparse product (Gustavson, row by row).
//  - DiagSandwich: diag(d)·m·diag(d), the D^-1/2 · A · D^-1/2 step.
//  - MulVec: m·x for dense vectors.
//
// Determinism & Performance:
//  - Each output row is accumulated into one reused dense scratch row, then
//    its touched columns are sorted; time O(flops + Σ w_i·log w_i).
//  - Summation order follows the storage order of a and b, so results are
//    reproducible across runs.

package sparse

import "sort"

const opMul = "Mul"

// Mul returns the matrix product a × b.
//
// Row i of the result is accumulated into a dense scratch row of width
// b.Cols(); touched columns are tracked, sorted and flushed, so the output
// keeps the ascending-column invariant. Cancellations that land exactly on
// zero are dropped.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(flops + Σ_i w_i·log w_i) time, O(b.Cols()) scratch.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := newEmpty(a.r, b.c, len(a.data)+len(b.data))
	acc := make([]float32, b.c)
	seen := make([]bool, b.c)
	touched := make([]int, 0, 16)

	for i := 0; i < a.r; i++ {
		touched = touched[:0]
		for pa := a.indptr[i]; pa < a.indptr[i+1]; pa++ {
			k, av := a.indices[pa], a.data[pa]
			for pb := b.indptr[k]; pb < b.indptr[k+1]; pb++ {
				j := b.indices[pb]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += av * b.data[pb]
			}
		}
		sort.Ints(touched)
		for _, j := range touched {
			if acc[j] != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, acc[j])
			}
			acc[j] = 0
			seen[j] = false
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// DiagSandwich returns diag(d) · m · diag(d) as two products, in that order,
// so rounding matches an explicit D·A·D chain.
func DiagSandwich(d []float32, m *Matrix) (*Matrix, error) {
	const op = "DiagSandwich"
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateVecLen(d, m.r); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	D := Diag(d)
	left, err := Mul(D, m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := Mul(left, D)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// MulVec returns y = m·x.
func MulVec(m *Matrix, x []float32) ([]float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	y := make([]float32, m.r)
	for i := 0; i < m.r; i++ {
		var s float32
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			s += m.data[p] * x[m.indices[p]]
		}
		y[i] = s
	}

	return y, nil
}
