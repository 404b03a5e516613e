// SPDX-License-Identifier: MIT
// Package: qlap/edgelist

package edgelist

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlap/sparse"
)

// UnknownNodes asks NumNodes to infer the node count from the edges.
const UnknownNodes = -1

// EdgeList is a directed edge list in parallel-slice form.
type EdgeList struct {
	Src    []int
	Dst    []int
	Weight []float32 // nil ⇒ unit weights
}

// New validates slice lengths and returns the edge list (slices are not copied).
func New(src, dst []int, weight []float32) (EdgeList, error) {
	e := EdgeList{Src: src, Dst: dst, Weight: weight}
	if err := e.checkLengths(); err != nil {
		return EdgeList{}, fmt.Errorf("New: %w", err)
	}

	return e, nil
}

// Len returns the number of edges.
func (e EdgeList) Len() int { return len(e.Src) }

// Weighted reports whether explicit weights are attached.
func (e EdgeList) Weighted() bool { return e.Weight != nil }

// WeightAt returns the weight of edge k (1 for unweighted lists).
func (e EdgeList) WeightAt(k int) float32 {
	if e.Weight == nil {
		return 1
	}

	return e.Weight[k]
}

// Weights returns the weights as a fresh slice, materializing unit weights.
func (e EdgeList) Weights() []float32 {
	w := make([]float32, e.Len())
	for k := range w {
		w[k] = e.WeightAt(k)
	}

	return w
}

func (e EdgeList) checkLengths() error {
	if len(e.Src) != len(e.Dst) {
		return fmt.Errorf("src=%d dst=%d: %w", len(e.Src), len(e.Dst), ErrLengthMismatch)
	}
	if e.Weight != nil && len(e.Weight) != len(e.Src) {
		return fmt.Errorf("edges=%d weights=%d: %w", len(e.Src), len(e.Weight), ErrLengthMismatch)
	}

	return nil
}

// Validate checks slice lengths, finite weights and, when numNodes is not
// UnknownNodes, that every endpoint lies in [0, numNodes).
func (e EdgeList) Validate(numNodes int) error {
	if err := e.checkLengths(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if numNodes < UnknownNodes {
		return fmt.Errorf("Validate: numNodes=%d: %w", numNodes, ErrBadNodeCount)
	}
	for k := range e.Src {
		u, v := e.Src[k], e.Dst[k]
		if u < 0 || v < 0 || (numNodes != UnknownNodes && (u >= numNodes || v >= numNodes)) {
			return fmt.Errorf("Validate: edge %d (%d→%d), n=%d: %w", k, u, v, numNodes, ErrNodeOutOfRange)
		}
		if e.Weight != nil {
			w := float64(e.Weight[k])
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("Validate: edge %d: %w", k, ErrInvalidWeight)
			}
		}
	}

	return nil
}

// NumNodes returns hint when hint != UnknownNodes, otherwise max index + 1
// (0 for an empty list).
func (e EdgeList) NumNodes(hint int) int {
	if hint != UnknownNodes {
		return hint
	}
	n := 0
	for k := range e.Src {
		if e.Src[k]+1 > n {
			n = e.Src[k] + 1
		}
		if e.Dst[k]+1 > n {
			n = e.Dst[k] + 1
		}
	}

	return n
}

// RemoveSelfLoops drops every u→u edge together with its weight.
func (e EdgeList) RemoveSelfLoops() EdgeList {
	out := EdgeList{
		Src: make([]int, 0, e.Len()),
		Dst: make([]int, 0, e.Len()),
	}
	if e.Weight != nil {
		out.Weight = make([]float32, 0, e.Len())
	}
	for k := range e.Src {
		if e.Src[k] == e.Dst[k] {
			continue
		}
		out.Src = append(out.Src, e.Src[k])
		out.Dst = append(out.Dst, e.Dst[k])
		if e.Weight != nil {
			out.Weight = append(out.Weight, e.Weight[k])
		}
	}

	return out
}

// Adjacency returns the numNodes×numNodes adjacency with A[u,v] = Σ w(u→v).
// Zero-sum entries are not stored.
func (e EdgeList) Adjacency(numNodes int) (*sparse.Matrix, error) {
	if err := e.Validate(numNodes); err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	n := e.NumNodes(numNodes)
	A, err := sparse.FromCOO(n, n, e.Src, e.Dst, e.Weights())
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}

	return A, nil
}

// Coalesce merges duplicate (u,v) pairs by summing their weights and sorts
// the result row-major. Pairs whose weights sum to 0 disappear.
// The result always carries explicit weights.
func (e EdgeList) Coalesce(numNodes int) (EdgeList, error) {
	A, err := e.Adjacency(numNodes)
	if err != nil {
		return EdgeList{}, fmt.Errorf("Coalesce: %w", err)
	}

	return FromMatrix(A), nil
}

// ToUndirected appends every reversed edge with the same weight and
// coalesces, so a reciprocal pair u⇄v of weight w ends up as 2w both ways.
func (e EdgeList) ToUndirected(numNodes int) (EdgeList, error) {
	if err := e.checkLengths(); err != nil {
		return EdgeList{}, fmt.Errorf("ToUndirected: %w", err)
	}
	m := e.Len()
	both := EdgeList{
		Src:    make([]int, 0, 2*m),
		Dst:    make([]int, 0, 2*m),
		Weight: make([]float32, 0, 2*m),
	}
	both.Src = append(append(both.Src, e.Src...), e.Dst...)
	both.Dst = append(append(both.Dst, e.Dst...), e.Src...)
	w := e.Weights()
	both.Weight = append(append(both.Weight, w...), w...)

	out, err := both.Coalesce(numNodes)
	if err != nil {
		return EdgeList{}, fmt.Errorf("ToUndirected: %w", err)
	}

	return out, nil
}

// FromMatrix lists the stored entries of m as edges in row-major order.
func FromMatrix(m *sparse.Matrix) EdgeList {
	src, dst, w := m.Triplets()

	return EdgeList{Src: src, Dst: dst, Weight: w}
}
