// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Define the CSR container (*Matrix) and its constructors: Zeros, Identity,
//    Diag and FromCOO (coordinate ingestion with duplicate summation).
//  - Offer the read-only accessors every kernel builds on: At, Has, Do,
//    Triplets, Diagonal, Clone.
//
// Invariants (held by every constructor and kernel in this package):
//  - len(indptr) == rows+1, indptr[0] == 0, indptr non-decreasing.
//  - indices[indptr[i]:indptr[i+1]] strictly ascending, each in [0, cols).
//  - data[k] != 0 for every stored k.
//
// Determinism & Performance:
//  - FromCOO buckets by row (counting sort), stable-sorts each row by column
//    and sums duplicates in input order, so equal inputs give bit-identical
//    matrices.
//  - At is a binary search inside one row: O(log(row width)).
//  - Do and Triplets walk storage row-major, the order Linearize relies on.
//
// Note:
//  - A *Matrix is never mutated after construction; sharing is safe.

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is an immutable rows×cols float32 matrix in CSR layout.
// The zero value is not usable; build matrices with FromCOO, Zeros,
// Identity or Diag.
type Matrix struct {
	r, c    int       // shape
	indptr  []int     // row pointers, len r+1
	indices []int     // column index per stored entry
	data    []float32 // value per stored entry, never 0
}

// newEmpty allocates an all-zero r×c matrix with room for nnzHint entries.
func newEmpty(r, c, nnzHint int) *Matrix {
	return &Matrix{
		r:       r,
		c:       c,
		indptr:  make([]int, r+1),
		indices: make([]int, 0, nnzHint),
		data:    make([]float32, 0, nnzHint),
	}
}

// Zeros returns the rows×cols zero matrix.
// Returns ErrBadShape for negative dimensions.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("Zeros", ErrBadShape)
	}

	return newEmpty(rows, cols, 0), nil
}

// Identity returns I_n.
// Returns ErrBadShape for n < 0.
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, matrixErrorf("Identity", ErrBadShape)
	}
	ones := make([]float32, n)
	for i := range ones {
		ones[i] = 1
	}

	return Diag(ones), nil
}

// Diag returns the square diagonal matrix diag(d). Zero entries of d are not
// stored. Complexity: O(n).
func Diag(d []float32) *Matrix {
	n := len(d)
	m := newEmpty(n, n, n)
	for i, v := range d {
		if v != 0 {
			m.indices = append(m.indices, i)
			m.data = append(m.data, v)
		}
		m.indptr[i+1] = len(m.data)
	}

	return m
}

// FromCOO builds a rows×cols matrix from coordinate triplets.
//
// Duplicate (i,j) pairs are summed in input order; entries that end up exactly
// zero (including explicit zero weights) are dropped. vals may be nil, in
// which case every triplet carries weight 1.
//
// Errors: ErrBadShape, ErrDimensionMismatch (slice lengths), ErrOutOfRange,
// ErrNaNInf (unless WithNoValidateNaNInf).
//
// Complexity: O(nnz·log(row width) + rows).
func FromCOO(rows, cols int, ri, ci []int, vals []float32, opts ...Option) (*Matrix, error) {
	const op = "FromCOO"
	o := gatherOptions(opts...)

	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(op, ErrBadShape)
	}
	if len(ri) != len(ci) || (vals != nil && len(vals) != len(ri)) {
		return nil, matrixErrorf(op, ErrDimensionMismatch)
	}

	var k int
	for k = range ri {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, fmt.Errorf("%s: entry %d (%d,%d) in %dx%d: %w", op, k, ri[k], ci[k], rows, cols, ErrOutOfRange)
		}
		if o.validateNaNInf && vals != nil && isNonFinite(vals[k]) {
			return nil, fmt.Errorf("%s: entry %d: %w", op, k, ErrNaNInf)
		}
	}

	// Counting sort by row keeps the input order inside each row.
	start := make([]int, rows+1)
	for _, i := range ri {
		start[i+1]++
	}
	for i := 0; i < rows; i++ {
		start[i+1] += start[i]
	}
	next := make([]int, rows)
	copy(next, start[:rows])
	colBuf := make([]int, len(ri))
	valBuf := make([]float32, len(ri))
	for k = range ri {
		p := next[ri[k]]
		next[ri[k]]++
		colBuf[p] = ci[k]
		if vals == nil {
			valBuf[p] = 1
		} else {
			valBuf[p] = vals[k]
		}
	}

	m := newEmpty(rows, cols, len(ri))
	for i := 0; i < rows; i++ {
		lo, hi := start[i], start[i+1]
		sort.Stable(rowSegment{cols: colBuf[lo:hi], vals: valBuf[lo:hi]})
		for p := lo; p < hi; {
			j, acc := colBuf[p], valBuf[p]
			p++
			for p < hi && colBuf[p] == j {
				acc += valBuf[p]
				p++
			}
			if acc != 0 {
				m.indices = append(m.indices, j)
				m.data = append(m.data, acc)
			}
		}
		m.indptr[i+1] = len(m.data)
	}

	return m, nil
}

// rowSegment sorts one row's (col, val) pairs by column.
type rowSegment struct {
	cols []int
	vals []float32
}

func (s rowSegment) Len() int           { return len(s.cols) }
func (s rowSegment) Less(a, b int) bool { return s.cols[a] < s.cols[b] }
func (s rowSegment) Swap(a, b int) {
	s.cols[a], s.cols[b] = s.cols[b], s.cols[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int { return len(m.data) }

// At returns the value at (i,j), 0 when not stored.
// Returns ErrOutOfRange for invalid indices. Complexity: O(log row width).
func (m *Matrix) At(i, j int) (float32, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// at is At without bounds checks.
func (m *Matrix) at(i, j int) float32 {
	lo, hi := m.indptr[i], m.indptr[i+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], j)
	if p < hi && m.indices[p] == j {
		return m.data[p]
	}

	return 0
}

// Has reports whether (i,j) is stored. Out-of-range indices report false.
func (m *Matrix) Has(i, j int) bool {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false
	}

	return m.at(i, j) != 0
}

// Do calls fn for every stored entry in row-major order.
func (m *Matrix) Do(fn func(i, j int, v float32)) {
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			fn(i, m.indices[p], m.data[p])
		}
	}
}

// Triplets returns copies of the stored entries as coordinate slices in
// row-major order (row ascending, then column ascending).
func (m *Matrix) Triplets() (ri, ci []int, vals []float32) {
	n := len(m.data)
	ri = make([]int, n)
	ci = make([]int, n)
	vals = make([]float32, n)
	copy(ci, m.indices)
	copy(vals, m.data)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			ri[p] = i
		}
	}

	return ri, ci, vals
}

// Diagonal returns the main diagonal as a dense slice of length min(r,c).
func (m *Matrix) Diagonal() []float32 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	d := make([]float32, n)
	for i := 0; i < n; i++ {
		d[i] = m.at(i, i)
	}

	return d
}

// Clone returns a deep copy. Kernels never mutate their inputs, so Clone is
// only needed when a caller wants to own independent storage.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		r:       m.r,
		c:       m.c,
		indptr:  make([]int, len(m.indptr)),
		indices: make([]int, len(m.indices)),
		data:    make([]float32, len(m.data)),
	}
	copy(out.indptr, m.indptr)
	copy(out.indices, m.indices)
	copy(out.data, m.data)

	return out
}

// String renders stored entries as "(i,j)=v" lines; handy in test failures.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sparse %dx%d nnz=%d\n", m.r, m.c, len(m.data))
	m.Do(func(i, j int, v float32) {
		fmt.Fprintf(&sb, "  (%d,%d)=%g\n", i, j, v)
	})

	return sb.String()
}
