// SPDX-License-Identifier: MIT
// Package laplacian: construction of the four operator parts.
//
// Stages (A' = A + I throughout):
//  1. validate options and edges; drop self-loops; coalesce into A.
//  2. A_sym = ½(A' + A'ᵀ); same = SameWeight(A'); diff = Unequal(A'), the
//     reciprocal pairs whose two weights differ.
//  3. direction = sign(|A'| - |A'ᵀ|); deg = column sums of |A_sym|.
//  4. assemble real, i, j, k with (NormSym) or without (NormNone) D = diag(deg^-½).

package laplacian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlap/antiparallel"
	"github.com/katalvlaran/qlap/edgelist"
	"github.com/katalvlaran/qlap/sparse"
)

// Build constructs the quaternion Laplacian of edges and linearizes it.
// It is BuildComponents followed by Linearize.
func Build(edges edgelist.EdgeList, opts ...Option) (*Kernel, error) {
	q, err := BuildComponents(edges, opts...)
	if err != nil {
		return nil, err
	}

	return Linearize(q)
}

// BuildComponents constructs the four N×N parts of the quaternion Laplacian.
//
// The node count is the WithNumNodes value when given, otherwise max index + 1.
// Self-loops in the input are ignored; each node receives exactly one unit
// self-loop through A' = A + I. Duplicate edges are summed.
//
// Errors:
//   - ErrInvalidNormalization before any matrix work.
//   - ErrMissingNodeCount when no edges and no node count are given.
//   - edgelist.ErrNodeOutOfRange, ErrInvalidWeight, ErrLengthMismatch (wrapped).
//
// Complexity: O(nnz·log nnz + N) time and memory.
func BuildComponents(edges edgelist.EdgeList, opts ...Option) (*Components, error) {
	const op = "BuildComponents"
	o := gatherOptions(opts...)

	if !o.norm.Valid() {
		return nil, fmt.Errorf("%s: %q: %w", op, string(o.norm), ErrInvalidNormalization)
	}
	if err := edges.Validate(o.numNodes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := edges.NumNodes(o.numNodes)
	if n == 0 && o.numNodes == edgelist.UnknownNodes {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingNodeCount)
	}

	// Stage 1: A' = A + I.
	A, err := edges.RemoveSelfLoops().Adjacency(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	I, err := sparse.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	Ap, err := sparse.Add(A, I)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Stage 2-3: structural pieces.
	p, err := decompose(Ap, I)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Stage 4: assemble.
	var sc scaler
	if o.norm == NormSym {
		sc = symScaler(InvSqrtDegree(p.deg))
	} else {
		sc = identityScaler
	}
	q := &Components{NumNodes: n, Norm: o.norm}
	if q.Real, err = realPart(o.norm, p, I, sc); err != nil {
		return nil, fmt.Errorf("%s: real: %w", op, err)
	}
	if q.I, err = iPart(p, sc); err != nil {
		return nil, fmt.Errorf("%s: i: %w", op, err)
	}
	if q.J, err = jPart(p, sc); err != nil {
		return nil, fmt.Errorf("%s: j: %w", op, err)
	}
	if q.K, err = kPart(p, sc); err != nil {
		return nil, fmt.Errorf("%s: k: %w", op, err)
	}

	return q, nil
}

// pieces are the intermediate matrices shared by the four parts.
type pieces struct {
	sym       *sparse.Matrix // ½(A' + A'ᵀ)
	undMask   *sparse.Matrix // I + SameWeight(A')
	direction *sparse.Matrix // sign(|A'| - |A'ᵀ|)
	diff      *sparse.Matrix // Unequal(A')
	diff2     *sparse.Matrix // Unequal(diff)
	oneWaySym *sparse.Matrix // ½((A' - diff) + (A' - diff)ᵀ)
	deg       []float32      // Σ_u |A_sym[u,v]|
}

func decompose(Ap, I *sparse.Matrix) (*pieces, error) {
	var (
		p   pieces
		err error
	)
	if p.sym, err = sparse.Symmetrize(Ap); err != nil {
		return nil, err
	}
	same, err := antiparallel.SameWeight(Ap)
	if err != nil {
		return nil, err
	}
	if p.undMask, err = sparse.Add(I, same); err != nil {
		return nil, err
	}
	if p.direction, err = DirectionMask(Ap); err != nil {
		return nil, err
	}
	// Reciprocal pairs with equal weights are undirected and belong to the
	// real part only, so j and k see the weight-asymmetric pairs alone.
	if p.diff, err = antiparallel.Unequal(Ap); err != nil {
		return nil, err
	}
	if p.diff2, err = antiparallel.Unequal(p.diff); err != nil {
		return nil, err
	}
	oneWay, err := sparse.Sub(Ap, p.diff)
	if err != nil {
		return nil, err
	}
	if p.oneWaySym, err = sparse.Symmetrize(oneWay); err != nil {
		return nil, err
	}
	p.deg = p.sym.Abs().ColSums()

	return &p, nil
}

// DirectionMask returns sign(|a| - |aᵀ|): +1 where the forward magnitude
// dominates, -1 where the reverse does, nothing where they tie.
// The result is antisymmetric.
func DirectionMask(a *sparse.Matrix) (*sparse.Matrix, error) {
	if err := sparse.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("DirectionMask: %w", err)
	}
	if err := sparse.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("DirectionMask: %w", err)
	}
	delta, err := sparse.Sub(a.Abs(), a.Transpose().Abs())
	if err != nil {
		return nil, fmt.Errorf("DirectionMask: %w", err)
	}

	return delta.Sign(), nil
}

// InvSqrtDegree maps each degree to deg^-½, treating a zero degree as 1 and
// replacing an infinite result with 0.
func InvSqrtDegree(deg []float32) []float32 {
	d := make([]float32, len(deg))
	for i, v := range deg {
		if v == 0 {
			v = 1
		}
		r := float32(math.Pow(float64(v), -0.5))
		if math.IsInf(float64(r), 0) {
			r = 0
		}
		d[i] = r
	}

	return d
}

// scaler applies D·M·D, or nothing for the unnormalized path.
type scaler func(m *sparse.Matrix) (*sparse.Matrix, error)

func identityScaler(m *sparse.Matrix) (*sparse.Matrix, error) { return m, nil }

func symScaler(d []float32) scaler {
	return func(m *sparse.Matrix) (*sparse.Matrix, error) { return sparse.DiagSandwich(d, m) }
}

// realPart: NormSym gives I - (D A_sym D) masked to I + same;
// NormNone gives diag(deg) - A_sym masked likewise.
func realPart(norm Normalization, p *pieces, I *sparse.Matrix, sc scaler) (*sparse.Matrix, error) {
	scaled, err := sc(p.sym)
	if err != nil {
		return nil, err
	}
	kept, err := sparse.Mask(scaled, p.undMask)
	if err != nil {
		return nil, err
	}
	base := I
	if norm == NormNone {
		base = sparse.Diag(p.deg)
	}

	return sparse.Sub(base, kept)
}

// iPart: -(D A_sym_2 D) ⊙ direction.
func iPart(p *pieces, sc scaler) (*sparse.Matrix, error) {
	scaled, err := sc(p.oneWaySym)
	if err != nil {
		return nil, err
	}
	h, err := sparse.Hadamard(scaled, p.direction)
	if err != nil {
		return nil, err
	}

	return h.Neg(), nil
}

// jPart: -D(½ triu(diff))D + D(½ triu(diff))ᵀD.
func jPart(p *pieces, sc scaler) (*sparse.Matrix, error) {
	upper := p.diff.Triu().Scale(0.5)

	return antisym(sc, upper, upper.Transpose())
}

// kPart: -D(½ tril(diff))D + D(½ tril(diff(diff)))ᵀD.
func kPart(p *pieces, sc scaler) (*sparse.Matrix, error) {
	lower := p.diff.Tril().Scale(0.5)
	lower2T := p.diff2.Tril().Scale(0.5).Transpose()

	return antisym(sc, lower, lower2T)
}

// antisym returns sc(pos) - sc(neg).
func antisym(sc scaler, neg, pos *sparse.Matrix) (*sparse.Matrix, error) {
	a, err := sc(neg)
	if err != nil {
		return nil, err
	}
	b, err := sc(pos)
	if err != nil {
		return nil, err
	}

	return sparse.Sub(b, a)
}
