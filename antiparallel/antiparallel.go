// SPDX-License-Identifier: MIT
// Package: qlap/antiparallel
//
// Purpose:
//  - Classify each stored entry of a square adjacency by its reverse entry:
//    equal reciprocal (SameWeight), any reciprocal (DifferentWeight),
//    unequal reciprocal (Unequal) or one-way (OneWay).
//
// Design:
//  - Every extraction is a predicate over (u, v, w, rev) applied by one
//    walker (extract) against the transpose; values are never changed.
//  - Equality is exact float32 ==, no tolerance.
//
// Determinism & Performance:
//  - One transpose plus one binary search per stored entry:
//    O(nnz·log(row width)). Output order is row-major.

package antiparallel

import (
	"fmt"

	"github.com/katalvlaran/qlap/sparse"
)

// keepFn decides whether the stored entry (u,v)=w survives, given the value
// stored at the reverse position (0 when absent).
type keepFn func(u, v int, w, rev float32) bool

// extract keeps the entries of a accepted by keep, values unchanged.
func extract(op string, a *sparse.Matrix, keep keepFn) (*sparse.Matrix, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := sparse.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rev := a.Transpose()
	var (
		ri, ci []int
		vals   []float32
	)
	a.Do(func(u, v int, w float32) {
		r, _ := rev.At(u, v) // rev[u,v] == a[v,u]; indices are in range
		if keep(u, v, w, r) {
			ri = append(ri, u)
			ci = append(ci, v)
			vals = append(vals, w)
		}
	})
	if vals == nil {
		vals = []float32{}
	}

	out, err := sparse.FromCOO(a.Rows(), a.Cols(), ri, ci, vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// SameWeight returns the entries (u,v) of a where a[v,u] is stored and
// a[u,v] == a[v,u] exactly. Stored diagonal entries always qualify.
//
// The result is symmetric and SameWeight(SameWeight(a)) == SameWeight(a).
// Errors: sparse.ErrNilMatrix, sparse.ErrNonSquare.
// Complexity: O(nnz·log(row width)).
func SameWeight(a *sparse.Matrix) (*sparse.Matrix, error) {
	return extract("SameWeight", a, func(_, _ int, w, rev float32) bool {
		return rev != 0 && w == rev
	})
}

// DifferentWeight returns the off-diagonal entries (u,v) of a whose reverse
// (v,u) is also stored, regardless of weight equality.
//
// DifferentWeight is idempotent: every surviving entry keeps its surviving
// reverse. Errors: sparse.ErrNilMatrix, sparse.ErrNonSquare.
func DifferentWeight(a *sparse.Matrix) (*sparse.Matrix, error) {
	return extract("DifferentWeight", a, func(u, v int, _, rev float32) bool {
		return u != v && rev != 0
	})
}

// OneWay returns the entries of a with no stored reverse, diagonal excluded.
// It is a - DifferentWeight(a) without the diagonal, handy for inspecting
// which edges carry pure direction.
func OneWay(a *sparse.Matrix) (*sparse.Matrix, error) {
	return extract("OneWay", a, func(u, v int, _, rev float32) bool {
		return u != v && rev == 0
	})
}

// Unequal returns the off-diagonal entries (u,v) of a whose reverse is stored
// with a different value: DifferentWeight(a) minus the reciprocal pairs that
// SameWeight(a) keeps. Unequal(Unequal(a)) == Unequal(a).
func Unequal(a *sparse.Matrix) (*sparse.Matrix, error) {
	return extract("Unequal", a, func(u, v int, w, rev float32) bool {
		return u != v && rev != 0 && w != rev
	})
}
