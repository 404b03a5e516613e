// SPDX-License-Identifier: MIT
// Package laplacian: functional options.
//
// Option constructors panic only on programmer errors (negative node counts).
// A bad normalization may come from user input, so it is carried through and
// rejected by Build with ErrInvalidNormalization.

package laplacian

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlap/edgelist"
)

// Normalization selects how the Laplacian is normalized.
type Normalization string

const (
	// NormNone keeps the unnormalized form L_real = D - A_sym ⊙ mask.
	NormNone Normalization = ""

	// NormSym is symmetric normalization, L_real = I - D^-1/2 A_sym D^-1/2 ⊙ mask.
	NormSym Normalization = "sym"
)

// DefaultNormalization is used when WithNormalization is not given.
const DefaultNormalization = NormSym

// Valid reports whether n is a supported normalization.
func (n Normalization) Valid() bool { return n == NormNone || n == NormSym }

// String implements fmt.Stringer; NormNone renders as "none".
func (n Normalization) String() string {
	if n == NormNone {
		return "none"
	}

	return string(n)
}

// ParseNormalization maps "sym" to NormSym and "", "none" or "null" to
// NormNone. Anything else returns ErrInvalidNormalization.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sym":
		return NormSym, nil
	case "", "none", "null":
		return NormNone, nil
	default:
		return NormNone, fmt.Errorf("ParseNormalization(%q): %w", s, ErrInvalidNormalization)
	}
}

// Option configures BuildComponents/Build.
type Option func(*Options)

// Options is the resolved build configuration.
type Options struct {
	norm     Normalization
	numNodes int // edgelist.UnknownNodes ⇒ infer
}

// WithNormalization selects the normalization scheme.
func WithNormalization(n Normalization) Option {
	return func(o *Options) { o.norm = n }
}

// WithNumNodes fixes the node count instead of inferring max index + 1.
// Panics on n < 0.
func WithNumNodes(n int) Option {
	if n < 0 {
		panic("laplacian: WithNumNodes(n<0)")
	}

	return func(o *Options) { o.numNodes = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{norm: DefaultNormalization, numNodes: edgelist.UnknownNodes}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
