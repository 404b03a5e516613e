// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlap/sparse"
)

func TestFromCOO_SumsDuplicatesAndDropsZeros(t *testing.T) {
	m, err := sparse.FromCOO(3, 3,
		[]int{0, 0, 1, 2, 2},
		[]int{1, 1, 2, 0, 2},
		[]float32{1, 2, 0, 5, -5})
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, [][]float32{
		{0, 3, 0},
		{0, 0, 0},
		{5, 0, -5},
	}, toRows(m))
	require.False(t, m.Has(1, 2), "explicit zero weight must not be stored")
}

func TestFromCOO_CancellingDuplicatesVanish(t *testing.T) {
	m, err := sparse.FromCOO(2, 2, []int{0, 0}, []int{1, 1}, []float32{2, -2})
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
}

func TestFromCOO_NilValuesMeanOnes(t *testing.T) {
	m, err := sparse.FromCOO(2, 2, []int{0, 1}, []int{1, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{0, 1}, {1, 0}}, toRows(m))
}

func TestFromCOO_UnsortedInputIsSorted(t *testing.T) {
	m, err := sparse.FromCOO(2, 4, []int{1, 0, 1, 0}, []int{3, 2, 0, 0}, []float32{4, 3, 2, 1})
	require.NoError(t, err)
	ri, ci, v := m.Triplets()
	require.Equal(t, []int{0, 0, 1, 1}, ri)
	require.Equal(t, []int{0, 2, 0, 3}, ci)
	require.Equal(t, []float32{1, 3, 2, 4}, v)
}

func TestFromCOO_Errors(t *testing.T) {
	_, err := sparse.FromCOO(-1, 2, nil, nil, nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.FromCOO(2, 2, []int{0}, []int{0, 1}, nil)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.FromCOO(2, 2, []int{0}, []int{1}, []float32{1, 2})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.FromCOO(2, 2, []int{2}, []int{0}, nil)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.FromCOO(2, 2, []int{0}, []int{-1}, nil)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	nan := float32(math.NaN())
	_, err = sparse.FromCOO(2, 2, []int{0}, []int{1}, []float32{nan})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	m, err := sparse.FromCOO(2, 2, []int{0}, []int{1}, []float32{float32(math.Inf(1))}, sparse.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 1, m.NNZ())
}

func TestAt_BoundsAndLookup(t *testing.T) {
	m := fromRows(t, [][]float32{{1, 0}, {0, 2}})
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, float32(2), v)

	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.False(t, m.Has(-1, 0))
}

func TestIdentityDiagZeros(t *testing.T) {
	I, err := sparse.Identity(3)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 1, 1}, I.Diagonal())
	require.Equal(t, 3, I.NNZ())

	D := sparse.Diag([]float32{2, 0, -1})
	require.Equal(t, 2, D.NNZ())

	Z, err := sparse.Zeros(2, 3)
	require.NoError(t, err)
	require.Zero(t, Z.NNZ())

	_, err = sparse.Identity(-1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
	_, err = sparse.Zeros(1, -3)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestClone_IsIndependent(t *testing.T) {
	m := fromRows(t, [][]float32{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, sparse.Equal(m, c))
	require.Contains(t, c.String(), "(1,0)=3")
}
