// SPDX-License-Identifier: MIT

package laplacian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlap/laplacian"
	"github.com/katalvlaran/qlap/sparse"
)

func TestNormalizeAdj(t *testing.T) {
	// A+I = [[1 1] [0 1]], row sums [2 1].
	a := matrix(t, 2, [][3]float32{{0, 1, 1}})
	got, err := laplacian.NormalizeAdj(a)
	require.NoError(t, err)

	e := entries(got)
	require.Len(t, e, 3)
	require.InDelta(t, 0.5, e[[2]int{0, 0}], 1e-6)
	require.InDelta(t, 1/math.Sqrt2, e[[2]int{1, 0}], 1e-6)
	require.InDelta(t, 1.0, e[[2]int{1, 1}], 1e-6)
	require.NotContains(t, e, [2]int{0, 1})
}

func TestNormalizeAdj_NonPositiveRowSum(t *testing.T) {
	// Row 0 of A+I sums to -1; its scale factor collapses to 0.
	a := matrix(t, 2, [][3]float32{{0, 1, -2}})
	got, err := laplacian.NormalizeAdj(a)
	require.NoError(t, err)
	e := entries(got)
	require.Equal(t, map[[2]int]float32{{1, 1}: 1}, e)
}

func TestNormalizeAdj_Errors(t *testing.T) {
	_, err := laplacian.NormalizeAdj(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	rect, err := sparse.Zeros(2, 3)
	require.NoError(t, err)
	_, err = laplacian.NormalizeAdj(rect)
	require.ErrorIs(t, err, sparse.ErrNonSquare)
}
