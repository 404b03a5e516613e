// SPDX-License-Identifier: MIT
// Package laplacian: sentinel errors. Match with errors.Is; shape and index
// failures from the sparse and edgelist packages pass through wrapped.

package laplacian

import "errors"

var (
	// ErrInvalidNormalization is returned before any matrix work when the
	// requested normalization is not NormSym or NormNone.
	ErrInvalidNormalization = errors.New("laplacian: invalid normalization")

	// ErrMissingNodeCount indicates that no node count could be determined.
	ErrMissingNodeCount = errors.New("laplacian: node count unavailable")

	// ErrInvalidLambdaMax indicates a NaN λmax.
	ErrInvalidLambdaMax = errors.New("laplacian: lambda_max is NaN")

	// ErrAlreadyNormalized indicates a second Normalize on the same kernel.
	ErrAlreadyNormalized = errors.New("laplacian: kernel already normalized")

	// ErrNilKernel indicates a nil *Kernel or *Components argument.
	ErrNilKernel = errors.New("laplacian: nil kernel")

	// ErrNotHermitian indicates a component that breaks the
	// symmetric/antisymmetric structure expected by spectral routines.
	ErrNotHermitian = errors.New("laplacian: operator is not hermitian")

	// ErrEigenFailed indicates that the dense eigensolver did not converge.
	ErrEigenFailed = errors.New("laplacian: eigen decomposition failed")

	// ErrTooLarge guards the dense O(N²) diagnostics.
	ErrTooLarge = errors.New("laplacian: graph too large for dense diagnostics")
)
