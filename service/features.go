// SPDX-License-Identifier: MIT
// Package service: node feature helpers.

package service

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// QuaternionFeatures tiles an N×F real feature matrix into the N×4F layout
// [X | X | X | X] read by quaternion layers as X + Xi + Xj + Xk.
// Returns ErrMissingNodeCount for nil x.
func QuaternionFeatures(x mat.Matrix) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("QuaternionFeatures: %w", ErrMissingNodeCount)
	}
	n, f := x.Dims()
	out := mat.NewDense(n, 4*f, nil)
	for part := 0; part < 4; part++ {
		view := out.Slice(0, n, part*f, (part+1)*f).(*mat.Dense)
		view.Copy(x)
	}

	return out, nil
}
