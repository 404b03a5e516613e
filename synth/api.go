// SPDX-License-Identifier: MIT
// Package synth: Generate and the shared edge buffer.

package synth

import (
	"fmt"

	"github.com/katalvlaran/qlap/edgelist"
)

// Constructor appends edges to the buffer using the resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(b *Buffer, cfg config) error

// Graph is a generated edge list with its node count and, for block models,
// the cluster label of every node (nil otherwise).
type Graph struct {
	Edges    edgelist.EdgeList
	NumNodes int
	Labels   []int
}

// Buffer accumulates edges across constructors.
type Buffer struct {
	src, dst []int
	w        []float32
	n        int
	labels   []int
}

// grow records that nodes [0, n) exist.
func (b *Buffer) grow(n int) {
	if n > b.n {
		b.n = n
	}
}

// add appends u→v with a weight drawn from cfg.
func (b *Buffer) add(cfg config, u, v int) {
	b.src = append(b.src, u)
	b.dst = append(b.dst, v)
	b.w = append(b.w, cfg.weight())
}

// Len returns the number of edges emitted so far.
func (b *Buffer) Len() int { return len(b.src) }

// Generate resolves opts and applies cons in order.
// Constructor errors are wrapped with "Generate: %w".
func Generate(opts []Option, cons ...Constructor) (*Graph, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("Generate: %w", ErrNoConstructors)
	}
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("Generate: signed fraction %g: %w", cfg.signedFraction, err)
	}

	var b Buffer
	for _, c := range cons {
		if err := c(&b, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return &Graph{
		Edges:    edgelist.EdgeList{Src: b.src, Dst: b.dst, Weight: b.w},
		NumNodes: b.n,
		Labels:   b.labels,
	}, nil
}
