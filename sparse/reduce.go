// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Row and column reductions (RowSums, ColSums) used for degree vectors.
//  - Comparisons: IsSymmetric, Equal (exact) and AllClose (tolerance).
//
// Determinism & Performance:
//  - Sums accumulate in float32 in storage order; O(nnz).
//  - Equal compares storage directly. AllClose and IsSymmetric go through Sub,
//    so absent entries count as 0.

package sparse

import "math"

// RowSums returns r[i] = Σ_j m[i,j].
func (m *Matrix) RowSums() []float32 {
	out := make([]float32, m.r)
	for i := 0; i < m.r; i++ {
		var s float32
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			s += m.data[p]
		}
		out[i] = s
	}

	return out
}

// ColSums returns c[j] = Σ_i m[i,j], accumulated in row order.
func (m *Matrix) ColSums() []float32 {
	out := make([]float32, m.c)
	for p, j := range m.indices {
		out[j] += m.data[p]
	}

	return out
}

// IsSymmetric reports whether m == mᵀ within atol (atol = 0 means exact).
func (m *Matrix) IsSymmetric(atol float32) bool {
	if m.r != m.c {
		return false
	}
	ok, _ := AllClose(m, m.Transpose(), atol)

	return ok
}

// Equal reports exact equality of shape, pattern and values.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.indptr {
		if a.indptr[i] != b.indptr[i] {
			return false
		}
	}
	for p := range a.data {
		if a.indices[p] != b.indices[p] || a.data[p] != b.data[p] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] - b[i,j]| <= atol everywhere, treating
// absent entries as 0. Shapes must match.
func AllClose(a, b *Matrix, atol float32) (bool, error) {
	diff, err := Sub(a, b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	tol := math.Abs(float64(atol))
	for _, v := range diff.data {
		if math.IsNaN(float64(v)) || math.Abs(float64(v)) > tol {
			return false, nil
		}
	}

	return true, nil
}
