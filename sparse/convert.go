// SPDX-License-Identifier: MIT
// Package: qlap/sparse
//
// Purpose:
//  - Bridge to gonum: ToDense widens to float64, FromDense narrows to float32
//    and drops zeros.
//
// Note:
//  - Dense copies are O(rows·cols) in time and memory; use them for
//    diagnostics and small reference checks only.

package sparse

import (
	"gonum.org/v1/gonum/mat"
)

// ToDense returns m as a gonum *mat.Dense (float64).
// gonum rejects zero-sized matrices, so empty shapes return ErrBadShape.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf("ToDense", ErrBadShape)
	}
	d := mat.NewDense(m.r, m.c, nil)
	m.Do(func(i, j int, v float32) {
		d.Set(i, j, float64(v))
	})

	return d, nil
}

// FromDense converts any gonum matrix to sparse form, narrowing to float32
// and dropping zeros.
func FromDense(d mat.Matrix, opts ...Option) (*Matrix, error) {
	r, c := d.Dims()
	var ri, ci []int
	var vals []float32
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := d.At(i, j); v != 0 {
				ri = append(ri, i)
				ci = append(ci, j)
				vals = append(vals, float32(v))
			}
		}
	}
	if vals == nil {
		vals = []float32{}
	}

	return FromCOO(r, c, ri, ci, vals, opts...)
}
