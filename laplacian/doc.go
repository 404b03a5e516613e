// SPDX-License-Identifier: MIT

// Package laplacian builds the quaternion (sign-)magnetic Laplacian of a
// directed, possibly signed graph and turns it into a Chebyshev-ready kernel.
//
// The operator is L = L_real + i·L_i + j·L_j + k·L_k, each part an N×N sparse
// matrix:
//
//	L_real  symmetric part over reciprocal same-weight pairs (and the diagonal)
//	L_i     antisymmetric direction term over one-way edges
//	L_j     antisymmetric term from the upper triangle of unequal reciprocal pairs
//	L_k     antisymmetric term from the lower triangle of unequal reciprocal pairs
//
// Pipeline:
//
//	EdgeList ─BuildComponents→ Components ─Linearize→ Kernel ─Normalize→ Kernel
//	                                    (Build = BuildComponents + Linearize)
//
// The linearized Kernel stores the four parts as consecutive coordinate
// blocks in the order real, i, j, k. Weight vector c is zero outside block c.
// Normalize rescales by 2/λmax and appends one self-loop per node carrying
// -1 on the real vector and 0 on the imaginary ones, i.e. the "- I" of
// 2L/λmax - I.
//
// Numeric policy: float32 throughout; reciprocal "same weight" uses exact
// float32 equality; explicit zeros are never stored, so zero-weight edges
// vanish. Each call builds everything from scratch, with no caching and no shared
// state.
package laplacian
