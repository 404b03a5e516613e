// SPDX-License-Identifier: MIT
// Package laplacian: component tags, the four-part operator and its
// linearized kernel form.

package laplacian

import (
	"fmt"

	"github.com/katalvlaran/qlap/sparse"
)

// Component tags one quaternion part.
type Component int

const (
	Real Component = iota
	ImagI
	ImagJ
	ImagK
)

// NumComponents is the number of quaternion parts.
const NumComponents = 4

// AllComponents lists every part in block order.
var AllComponents = [NumComponents]Component{Real, ImagI, ImagJ, ImagK}

func (c Component) String() string {
	switch c {
	case Real:
		return "real"
	case ImagI:
		return "i"
	case ImagJ:
		return "j"
	case ImagK:
		return "k"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

// Components holds the four N×N parts of the quaternion Laplacian as
// separate containers.
type Components struct {
	NumNodes int
	Norm     Normalization
	Real     *sparse.Matrix
	I        *sparse.Matrix
	J        *sparse.Matrix
	K        *sparse.Matrix
}

// Part returns the matrix of component c.
func (q *Components) Part(c Component) *sparse.Matrix {
	switch c {
	case Real:
		return q.Real
	case ImagI:
		return q.I
	case ImagJ:
		return q.J
	case ImagK:
		return q.K
	default:
		return nil
	}
}

// Kernel is the linearized operator: one shared coordinate list and four
// aligned weight vectors.
//
// Block c occupies positions [Offsets[c], Offsets[c+1]). Positions at or
// after LoopStart (when HasSelfLoops) are the self-loops appended by
// Normalize.
type Kernel struct {
	NumNodes int
	Src      []int
	Dst      []int
	Real     []float32
	ImagI    []float32
	ImagJ    []float32
	ImagK    []float32

	Offsets      [NumComponents + 1]int
	HasSelfLoops bool
	LoopStart    int
}

// Len returns the number of coordinates.
func (k *Kernel) Len() int { return len(k.Src) }

// Weights returns the weight vector of component c (shared, not copied).
func (k *Kernel) Weights(c Component) []float32 {
	switch c {
	case Real:
		return k.Real
	case ImagI:
		return k.ImagI
	case ImagJ:
		return k.ImagJ
	case ImagK:
		return k.ImagK
	default:
		return nil
	}
}

// EdgeIndex returns the coordinates in the 2×E layout used by message-passing
// layers: row 0 sources, row 1 targets.
func (k *Kernel) EdgeIndex() [2][]int { return [2][]int{k.Src, k.Dst} }

// Matrix folds component c back into an N×N sparse matrix, summing
// coordinates that occur more than once (e.g. a diagonal entry plus its
// appended self-loop).
func (k *Kernel) Matrix(c Component) (*sparse.Matrix, error) {
	if k == nil {
		return nil, fmt.Errorf("Matrix: %w", ErrNilKernel)
	}
	w := k.Weights(c)
	if w == nil {
		return nil, fmt.Errorf("Matrix(%v): %w", c, sparse.ErrOutOfRange)
	}
	m, err := sparse.FromCOO(k.NumNodes, k.NumNodes, k.Src, k.Dst, w)
	if err != nil {
		return nil, fmt.Errorf("Matrix(%v): %w", c, err)
	}

	return m, nil
}
