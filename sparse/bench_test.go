// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qlap/sparse"
)

func randomSparse(b *testing.B, n, nnz int, seed int64) *sparse.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	ri := make([]int, nnz)
	ci := make([]int, nnz)
	v := make([]float32, nnz)
	for k := 0; k < nnz; k++ {
		ri[k] = rng.Intn(n)
		ci[k] = rng.Intn(n)
		v[k] = float32(rng.NormFloat64())
	}
	m, err := sparse.FromCOO(n, n, ri, ci, v)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul_10k(b *testing.B) {
	a := randomSparse(b, 10_000, 50_000, 1)
	c := randomSparse(b, 10_000, 50_000, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Mul(a, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_10k(b *testing.B) {
	a := randomSparse(b, 10_000, 50_000, 3)
	c := a.Transpose()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.Add(a, c); err != nil {
			b.Fatal(err)
		}
	}
}
