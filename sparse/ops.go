// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Element-wise kernels: Add, Sub, Hadamard, Mask (binary) and Map, Scale,
//    Neg, Abs, Sign, Pattern (unary).
//  - Structural slices: Triu, Tril, OffDiagonal, Transpose, Symmetrize.
//
// Design:
//  - Binary kernels share one two-pointer row merge (merge). Union kernels
//    (Add, Sub) visit every stored position of either operand; intersection
//    kernels (Hadamard, Mask) only positions stored in both.
//  - Results that come out exactly zero are dropped, keeping data[k] != 0.
//  - Shape checks run up front through the validators; a failing call
//    allocates nothing.
//
// Determinism & Performance:
//  - Fixed row-major loop order; float32 arithmetic throughout.
//  - O(nnz(a)+nnz(b)) per binary kernel, O(nnz) per unary kernel,
//    O(nnz + rows + cols) for Transpose (counting sort by column).

package sparse

import "math"

// Operation tags for uniform error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opMask     = "Mask"
)

// combineFn merges a pair of values at one position; absent operands read 0.
type combineFn func(x, y float32) float32

// merge runs a row-wise two-pointer merge of a and b.
func merge(tag string, a, b *Matrix, fn combineFn, intersect bool) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	hint := len(a.data) + len(b.data)
	if intersect {
		hint = len(a.data)
		if len(b.data) < hint {
			hint = len(b.data)
		}
	}
	out := newEmpty(a.r, a.c, hint)
	emit := func(j int, v float32) {
		if v != 0 {
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
	}

	for i := 0; i < a.r; i++ {
		pa, ea := a.indptr[i], a.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && a.indices[pa] < b.indices[pb]):
				if !intersect {
					emit(a.indices[pa], fn(a.data[pa], 0))
				}
				pa++
			case pa >= ea || b.indices[pb] < a.indices[pa]:
				if !intersect {
					emit(b.indices[pb], fn(0, b.data[pb]))
				}
				pb++
			default: // same column
				emit(a.indices[pa], fn(a.data[pa], b.data[pb]))
				pa++
				pb++
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}

// Add returns a + b. Complexity: O(nnz(a)+nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	return merge(opAdd, a, b, func(x, y float32) float32 { return x + y }, false)
}

// Sub returns a - b. Complexity: O(nnz(a)+nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	return merge(opSub, a, b, func(x, y float32) float32 { return x - y }, false)
}

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(nnz(a)+nnz(b)).
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return merge(opHadamard, a, b, func(x, y float32) float32 { return x * y }, true)
}

// Mask returns a restricted to the stored positions of pattern, values of a
// unchanged. Equivalent to Hadamard(a, pattern.Pattern()).
func Mask(a, pattern *Matrix) (*Matrix, error) {
	return merge(opMask, a, pattern, func(x, _ float32) float32 { return x }, true)
}

// Map returns a matrix with fn applied to every stored value. fn(0) is
// assumed to be 0: absent entries stay absent. Zero results are dropped.
func (m *Matrix) Map(fn func(float32) float32) *Matrix {
	out := newEmpty(m.r, m.c, len(m.data))
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if v := fn(m.data[p]); v != 0 {
				out.indices = append(out.indices, m.indices[p])
				out.data = append(out.data, v)
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out
}

// Scale returns alpha·m. alpha == 0 yields the zero matrix.
func (m *Matrix) Scale(alpha float32) *Matrix {
	return m.Map(func(v float32) float32 { return alpha * v })
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	return m.Map(func(v float32) float32 { return -v })
}

// Abs returns |m| element-wise.
func (m *Matrix) Abs() *Matrix {
	return m.Map(func(v float32) float32 { return float32(math.Abs(float64(v))) })
}

// Sign returns sign(m) element-wise (+1 or -1 on stored entries).
func (m *Matrix) Sign() *Matrix {
	return m.Map(func(v float32) float32 {
		if v > 0 {
			return 1
		}
		if v < 0 {
			return -1
		}
		return 0 // NaN
	})
}

// Pattern returns the structural pattern of m: 1 on every stored entry.
func (m *Matrix) Pattern() *Matrix {
	return m.Map(func(float32) float32 { return 1 })
}

// Triu returns the upper triangle of m including the main diagonal.
func (m *Matrix) Triu() *Matrix {
	return m.filter(func(i, j int) bool { return j >= i })
}

// Tril returns the lower triangle of m including the main diagonal.
func (m *Matrix) Tril() *Matrix {
	return m.filter(func(i, j int) bool { return j <= i })
}

// OffDiagonal returns m with its main diagonal removed.
func (m *Matrix) OffDiagonal() *Matrix {
	return m.filter(func(i, j int) bool { return i != j })
}

// filter keeps the stored entries whose position satisfies keep.
func (m *Matrix) filter(keep func(i, j int) bool) *Matrix {
	out := newEmpty(m.r, m.c, len(m.data))
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if keep(i, m.indices[p]) {
				out.indices = append(out.indices, m.indices[p])
				out.data = append(out.data, m.data[p])
			}
		}
		out.indptr[i+1] = len(out.data)
	}

	return out
}

// Transpose returns mᵀ. Complexity: O(nnz + rows + cols).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{
		r:       m.c,
		c:       m.r,
		indptr:  make([]int, m.c+1),
		indices: make([]int, len(m.data)),
		data:    make([]float32, len(m.data)),
	}
	for _, j := range m.indices {
		out.indptr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		out.indptr[j+1] += out.indptr[j]
	}
	next := make([]int, m.c)
	copy(next, out.indptr[:m.c])
	// Rows are visited in ascending order, so each output row receives its
	// column indices already sorted.
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j := m.indices[p]
			q := next[j]
			next[j]++
			out.indices[q] = i
			out.data[q] = m.data[p]
		}
	}

	return out
}

// Symmetrize returns 0.5·(m + mᵀ). m must be square.
func Symmetrize(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, m.Transpose())
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return sum.Scale(0.5), nil
}
