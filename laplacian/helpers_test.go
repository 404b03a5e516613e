// SPDX-License-Identifier: MIT

package laplacian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlap/edgelist"
	"github.com/katalvlaran/qlap/sparse"
)

// graph builds a weighted EdgeList from (u, v, w) triples.
func graph(t *testing.T, edges [][3]float32) edgelist.EdgeList {
	t.Helper()
	src := make([]int, len(edges))
	dst := make([]int, len(edges))
	w := make([]float32, len(edges))
	for k, e := range edges {
		src[k], dst[k], w[k] = int(e[0]), int(e[1]), e[2]
	}
	el, err := edgelist.New(src, dst, w)
	require.NoError(t, err)

	return el
}

// entries maps every stored (i,j) of m to its value.
func entries(m *sparse.Matrix) map[[2]int]float32 {
	out := make(map[[2]int]float32, m.NNZ())
	m.Do(func(i, j int, v float32) { out[[2]int{i, j}] = v })

	return out
}

// matrix builds an n×n matrix from (i, j, v) triples.
func matrix(t *testing.T, n int, vals [][3]float32) *sparse.Matrix {
	t.Helper()
	ri := make([]int, len(vals))
	ci := make([]int, len(vals))
	v := make([]float32, len(vals))
	for k, e := range vals {
		ri[k], ci[k], v[k] = int(e[0]), int(e[1]), e[2]
	}
	m, err := sparse.FromCOO(n, n, ri, ci, v)
	require.NoError(t, err)

	return m
}

// requireAntisymmetric asserts m == -mᵀ within atol.
func requireAntisymmetric(t *testing.T, m *sparse.Matrix, atol float32) {
	t.Helper()
	ok, err := sparse.AllClose(m, m.Transpose().Neg(), atol)
	require.NoError(t, err)
	require.True(t, ok, "not antisymmetric: %v", m)
}

// mixedGraph has one-way edges, equal and unequal reciprocal pairs, negative
// weights, a duplicate and a self-loop.
func mixedGraph(t *testing.T) edgelist.EdgeList {
	return graph(t, [][3]float32{
		{0, 1, 2}, {1, 0, 1},
		{1, 2, 1},
		{2, 3, 3}, {3, 2, 3},
		{3, 4, -1}, {4, 3, 2},
		{4, 5, 0.5}, {4, 5, 0.25},
		{5, 0, -2},
		{5, 5, 9},
		{6, 1, 1}, {1, 6, -1},
	})
}
