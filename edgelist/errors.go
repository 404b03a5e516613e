// SPDX-License-Identifier: MIT
// Package edgelist: sentinel errors. Match with errors.Is.

package edgelist

import "errors"

var (
	// ErrLengthMismatch indicates Src, Dst and Weight of different lengths.
	ErrLengthMismatch = errors.New("edgelist: slice length mismatch")

	// ErrNodeOutOfRange indicates an endpoint outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("edgelist: node index out of range")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("edgelist: invalid edge weight")

	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("edgelist: invalid node count")

	// ErrParse indicates a malformed line in a text edge list.
	ErrParse = errors.New("edgelist: parse error")
)
