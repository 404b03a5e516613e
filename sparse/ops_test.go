// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlap/sparse"
)

func TestAddSubHadamard(t *testing.T) {
	a := fromRows(t, [][]float32{
		{1, 0, 2},
		{0, 3, 0},
		{4, 0, 0},
	})
	b := fromRows(t, [][]float32{
		{1, 1, 0},
		{0, -3, 5},
		{0, 0, 6},
	})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{2, 1, 2}, {0, 0, 5}, {4, 0, 6}}, toRows(sum))
	require.False(t, sum.Has(1, 1), "3 + (-3) must be dropped")

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, -1, 2}, {0, 6, -5}, {4, 0, -6}}, toRows(diff))
	require.False(t, diff.Has(0, 0))

	had, err := sparse.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{1, 0, 0}, {0, -9, 0}, {0, 0, 0}}, toRows(had))
	require.Equal(t, 2, had.NNZ())
}

func TestBinaryOps_Errors(t *testing.T) {
	a := fromRows(t, [][]float32{{1, 0}, {0, 1}})
	b := fromRows(t, [][]float32{{1, 0, 0}})

	_, err := sparse.Add(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Hadamard(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Mul(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Symmetrize(b)
	require.ErrorIs(t, err, sparse.ErrNonSquare)
	_, err = sparse.DiagSandwich([]float32{1}, a)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestMask_KeepsValuesOnPattern(t *testing.T) {
	a := fromRows(t, [][]float32{{1, 2}, {3, 4}})
	p := fromRows(t, [][]float32{{7, 0}, {0, -2}})
	m, err := sparse.Mask(a, p)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{1, 0}, {0, 4}}, toRows(m))
}

func TestUnaryMaps(t *testing.T) {
	a := fromRows(t, [][]float32{
		{-2, 3, 0},
		{0, 0.5, -1},
		{7, 0, 4},
	})
	require.Equal(t, [][]float32{{2, 3, 0}, {0, 0.5, 1}, {7, 0, 4}}, toRows(a.Abs()))
	require.Equal(t, [][]float32{{-1, 1, 0}, {0, 1, -1}, {1, 0, 1}}, toRows(a.Sign()))
	require.Equal(t, [][]float32{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}, toRows(a.Pattern()))
	require.Equal(t, [][]float32{{-1, 1.5, 0}, {0, 0.25, -0.5}, {3.5, 0, 2}}, toRows(a.Scale(0.5)))
	require.Zero(t, a.Scale(0).NNZ())
	require.Equal(t, [][]float32{{2, -3, 0}, {0, -0.5, 1}, {-7, 0, -4}}, toRows(a.Neg()))
	require.Equal(t, [][]float32{{-2, 3, 0}, {0, 0.5, -1}, {0, 0, 4}}, toRows(a.Triu()))
	require.Equal(t, [][]float32{{-2, 0, 0}, {0, 0.5, 0}, {7, 0, 4}}, toRows(a.Tril()))
	require.Equal(t, [][]float32{{0, 3, 0}, {0, 0, -1}, {7, 0, 0}}, toRows(a.OffDiagonal()))
}

func TestTranspose(t *testing.T) {
	a := fromRows(t, [][]float32{
		{1, 0, 2, 0},
		{0, 0, 3, 4},
	})
	at := a.Transpose()
	require.Equal(t, 4, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, [][]float32{{1, 0}, {0, 0}, {2, 3}, {0, 4}}, toRows(at))
	require.True(t, sparse.Equal(a, at.Transpose()))
}

func TestSymmetrize(t *testing.T) {
	a := fromRows(t, [][]float32{{0, 2}, {0, 1}})
	s, err := sparse.Symmetrize(a)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, 1}, {1, 1}}, toRows(s))
	require.True(t, s.IsSymmetric(0))
	require.False(t, a.IsSymmetric(0))
}

func TestMul_MatchesGonum(t *testing.T) {
	a := fromRows(t, [][]float32{
		{1, 0, 2},
		{0, -1, 0},
		{3, 0, 0},
		{0, 4, 5},
	})
	b := fromRows(t, [][]float32{
		{0, 1},
		{2, 0},
		{1, -1},
	})
	got, err := sparse.Mul(a, b)
	require.NoError(t, err)

	da, err := a.ToDense()
	require.NoError(t, err)
	db, err := b.ToDense()
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(da, db)

	dg, err := got.ToDense()
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(dg, &want, 1e-6), "got\n%v\nwant\n%v", mat.Formatted(dg), mat.Formatted(&want))
}

func TestMul_DropsCancellation(t *testing.T) {
	a := fromRows(t, [][]float32{{1, 1}})
	b := fromRows(t, [][]float32{{1}, {-1}})
	got, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Zero(t, got.NNZ())
}

func TestDiagSandwich(t *testing.T) {
	a := fromRows(t, [][]float32{{1, 2}, {3, 4}})
	got, err := sparse.DiagSandwich([]float32{2, 0.5}, a)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{4, 2}, {3, 1}}, toRows(got))
}

func TestReductions(t *testing.T) {
	a := fromRows(t, [][]float32{{1, -2}, {3, 0}})
	require.Equal(t, []float32{-1, 3}, a.RowSums())
	require.Equal(t, []float32{4, -2}, a.ColSums())

	y, err := sparse.MulVec(a, []float32{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float32{-1, 3}, y)
	_, err = sparse.MulVec(a, []float32{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := fromRows(t, [][]float32{{1, 0}, {0, 1}})
	b := fromRows(t, [][]float32{{1.0000001, 0}, {0, 1}})
	ok, err := sparse.AllClose(a, b, 1e-5)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = sparse.AllClose(a, b, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDenseRoundTrip(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{0, 1.5, 0, -2, 0, 3})
	m, err := sparse.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	back, err := m.ToDense()
	require.NoError(t, err)
	require.True(t, mat.Equal(d, back))

	empty, err := sparse.Zeros(0, 0)
	require.NoError(t, err)
	_, err = empty.ToDense()
	require.ErrorIs(t, err, sparse.ErrBadShape)
}
