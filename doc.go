// SPDX-License-Identifier: MIT

// Package qlap builds the quaternion (sign-)magnetic Laplacian of a directed,
// possibly signed, weighted graph and hands it out in the flat kernel form a
// Chebyshev spectral convolution consumes.
//
// The work is split across subpackages:
//
//	sparse/       - float32 CSR matrices and the element-wise kernels the builder needs
//	antiparallel/ - split an adjacency by reciprocity (equal, different, one-way pairs)
//	laplacian/    - the quaternion Laplacian: components, kernel layout, λmax rescale
//	service/      - Process: edges + features in, normalized kernel out
//	edgelist/     - edge-list model, text reader, structural node features
//	synth/        - deterministic directed/signed test graphs (paths, DSBM, ...)
//	cmd/qlap      - the build, inspect and generate commands
//
// Quick start:
//
//	el, _ := edgelist.New([]int{0, 1, 1}, []int{1, 0, 2}, nil)
//	svc, _ := service.New()
//	res, _ := svc.Process(ctx, el, mat.NewDense(3, 1, nil))
//	_ = res.Kernel.EdgeIndex() // [2][]int, block by block: real, i, j, k, self-loops
//
// A reciprocal pair with equal weights behaves like an undirected edge and only
// touches the real part. A one-way edge lands in the i part. Reciprocal pairs
// with different weights feed the j and k parts.
package qlap
