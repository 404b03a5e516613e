// SPDX-License-Identifier: MIT

// Package sparse provides an immutable float32 CSR matrix and the small set of
// sparse kernels needed to assemble graph Laplacians.
//
// What & Why:
//
//	Graph operators are built from a handful of primitives: coordinate (COO)
//	ingestion with duplicate summation, transpose, element-wise add/sub,
//	Hadamard product, sparse×sparse product, |·| and sign maps, triangular
//	slices and column sums. Every kernel returns a fresh *Matrix; nothing is
//	mutated after construction, so intermediate results may be shared freely.
//
// Storage policy:
//
//   - Compressed sparse rows, column indices strictly ascending inside a row.
//   - Explicit zeros are never stored. A zero produced by arithmetic (for
//     example x - x) is dropped, so "weight 0" and "absent" are the same thing.
//   - Values are float32; accumulation happens in float32 as well.
//
// Complexity:
//
//	Element-wise kernels run in O(nnz(a)+nnz(b)). Transpose is O(nnz + rows + cols).
//	Mul uses Gustavson's row-by-row scheme with a dense accumulator,
//	O(flops + rows·log(row width)).
//
// Interop:
//
//	ToDense/FromDense bridge to gonum's mat package for spectral diagnostics
//	and dense cross-checks.
package sparse
