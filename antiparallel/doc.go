// SPDX-License-Identifier: MIT

// Package antiparallel splits a directed adjacency matrix by reciprocity.
//
// Two directed edges u→v and v→u form an antiparallel pair. The package offers
// the extractions the quaternion Laplacian is assembled from:
//
//	SameWeight(A)      - pairs whose two weights are exactly equal (float32 ==),
//	                     plus the stored diagonal; symmetric by construction.
//	DifferentWeight(A) - every off-diagonal pair with both directions stored,
//	                     equal or not; self-loops excluded.
//	Unequal(A)         - the pairs of DifferentWeight whose weights differ.
//
// Equality is exact float32 comparison with no tolerance.
// All extractions are pure; the input matrix is never modified.
package antiparallel
