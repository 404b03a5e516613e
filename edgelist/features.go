// SPDX-License-Identifier: MIT
// Package: qlap/edgelist
//
// features.go - structural node features for graphs that ship without any.

package edgelist

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// InOutDegree returns an numNodes×2 feature matrix built from |A|:
//
//	column 0: Σ_v |A[u,v]|  (row sums, weight leaving u)
//	column 1: Σ_v |A[v,u]|  (column sums, weight entering u)
//
// Unweighted lists count each edge as 1. numNodes must be positive because
// gonum matrices cannot be empty.
func InOutDegree(e EdgeList, numNodes int) (*mat.Dense, error) {
	n := e.NumNodes(numNodes)
	if n <= 0 {
		return nil, fmt.Errorf("InOutDegree: n=%d: %w", n, ErrBadNodeCount)
	}
	A, err := e.Adjacency(n)
	if err != nil {
		return nil, fmt.Errorf("InOutDegree: %w", err)
	}
	abs := A.Abs()
	rows, cols := abs.RowSums(), abs.ColSums()

	feat := mat.NewDense(n, 2, nil)
	for u := 0; u < n; u++ {
		feat.Set(u, 0, float64(rows[u]))
		feat.Set(u, 1, float64(cols[u]))
	}

	return feat, nil
}
