// SPDX-License-Identifier: MIT
// Package laplacian: flattening Components into a Kernel.

package laplacian

import (
	"fmt"

	"github.com/katalvlaran/qlap/sparse"
)

// Linearize concatenates the stored entries of the real, i, j and k parts,
// each in row-major order, into one coordinate list. Weight vector c carries
// the values of part c inside its own block and 0 everywhere else.
//
// Complexity: O(Σ nnz) time and memory.
func Linearize(q *Components) (*Kernel, error) {
	if q == nil {
		return nil, fmt.Errorf("Linearize: %w", ErrNilKernel)
	}
	total := 0
	for _, c := range AllComponents {
		m := q.Part(c)
		if err := sparse.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("Linearize(%v): %w", c, err)
		}
		if m.Rows() != q.NumNodes || m.Cols() != q.NumNodes {
			return nil, fmt.Errorf("Linearize(%v): %dx%d for n=%d: %w",
				c, m.Rows(), m.Cols(), q.NumNodes, sparse.ErrDimensionMismatch)
		}
		total += m.NNZ()
	}

	k := &Kernel{
		NumNodes: q.NumNodes,
		Src:      make([]int, 0, total),
		Dst:      make([]int, 0, total),
		Real:     make([]float32, total),
		ImagI:    make([]float32, total),
		ImagJ:    make([]float32, total),
		ImagK:    make([]float32, total),
	}
	for idx, c := range AllComponents {
		k.Offsets[idx] = len(k.Src)
		w := k.Weights(c)
		q.Part(c).Do(func(i, j int, v float32) {
			w[len(k.Src)] = v
			k.Src = append(k.Src, i)
			k.Dst = append(k.Dst, j)
		})
	}
	k.Offsets[NumComponents] = len(k.Src)
	k.LoopStart = len(k.Src)

	return k, nil
}

// Block returns the [lo, hi) range of component c within the coordinate list.
func (k *Kernel) Block(c Component) (lo, hi int) {
	if c < Real || c > ImagK {
		return 0, 0
	}

	return k.Offsets[c], k.Offsets[c+1]
}
