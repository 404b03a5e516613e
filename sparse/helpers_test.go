// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlap/sparse"
)

// fromRows builds a sparse matrix from a dense row-major literal.
func fromRows(t *testing.T, rows [][]float32) *sparse.Matrix {
	t.Helper()
	var ri, ci []int
	var vals []float32
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				ri = append(ri, i)
				ci = append(ci, j)
				vals = append(vals, v)
			}
		}
	}
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	if vals == nil {
		vals = []float32{}
	}
	m, err := sparse.FromCOO(len(rows), c, ri, ci, vals)
	require.NoError(t, err)

	return m
}

// toRows expands m into a dense row-major literal.
func toRows(m *sparse.Matrix) [][]float32 {
	out := make([][]float32, m.Rows())
	for i := range out {
		out[i] = make([]float32, m.Cols())
	}
	m.Do(func(i, j int, v float32) { out[i][j] = v })

	return out
}
