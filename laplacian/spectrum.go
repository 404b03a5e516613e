// SPDX-License-Identifier: MIT
// Package laplacian: dense spectral diagnostics.
//
// None of this feeds the kernel: Normalize always rescales by the λmax it is
// given. These routines report how far the actual spectrum sits from the
// fixed bound and are meant for small graphs (see MaxDenseNodes).

package laplacian

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlap/sparse"
)

// MaxDenseNodes caps N for the dense routines. The quaternion spectrum
// factorizes a 4N×4N matrix.
const MaxDenseNodes = 512

// hermitianTol bounds |M - Mᵀ| accepted as symmetric. D·A·D is symmetric only
// up to float32 rounding.
const hermitianTol = 1e-5

// SpectrumReport summarizes the eigenvalues of a quaternion Laplacian.
type SpectrumReport struct {
	// RealMin and RealMax bound the spectrum of the real part alone.
	RealMin, RealMax float64
	// Quaternion lists the N right eigenvalues of the full operator, ascending.
	Quaternion []float64
}

// Max returns the largest eigenvalue of the full operator.
func (r SpectrumReport) Max() float64 {
	if len(r.Quaternion) == 0 {
		return 0
	}

	return r.Quaternion[len(r.Quaternion)-1]
}

// LargestEigenvalue returns the largest eigenvalue of a symmetric matrix.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrNonSquare, sparse.ErrBadShape (empty),
// ErrTooLarge, ErrNotHermitian, ErrEigenFailed.
func LargestEigenvalue(m *sparse.Matrix) (float64, error) {
	vals, err := symEigenvalues("LargestEigenvalue", m)
	if err != nil {
		return 0, err
	}

	return vals[len(vals)-1], nil
}

// Spectrum computes the real-part bounds and the quaternion eigenvalues of q.
//
// The quaternion operator Q = R + iI + jJ + kK is embedded as the real 4N×4N
// matrix of left multiplication
//
//	⎡ R -I -J -K ⎤
//	⎢ I  R -K  J ⎥
//	⎢ J  K  R -I ⎥
//	⎣ K -J  I  R ⎦
//
// which is symmetric exactly when Q is Hermitian (R symmetric, I, J and K
// antisymmetric). Every eigenvalue of Q appears four times in it.
func Spectrum(q *Components) (SpectrumReport, error) {
	const op = "Spectrum"
	var rep SpectrumReport
	if q == nil {
		return rep, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if q.NumNodes > MaxDenseNodes {
		return rep, fmt.Errorf("%s: n=%d > %d: %w", op, q.NumNodes, MaxDenseNodes, ErrTooLarge)
	}

	realVals, err := symEigenvalues(op, q.Real)
	if err != nil {
		return rep, err
	}
	rep.RealMin, rep.RealMax = realVals[0], realVals[len(realVals)-1]

	for _, c := range []Component{ImagI, ImagJ, ImagK} {
		m := q.Part(c)
		if err := sparse.ValidateNotNil(m); err != nil {
			return rep, fmt.Errorf("%s(%v): %w", op, c, err)
		}
		if !isAntisymmetric(m) {
			return rep, fmt.Errorf("%s(%v): %w", op, c, ErrNotHermitian)
		}
	}

	n := q.NumNodes
	emb := mat.NewDense(4*n, 4*n, nil)
	layout := [4][4]struct {
		c    Component
		sign float64
	}{
		{{Real, 1}, {ImagI, -1}, {ImagJ, -1}, {ImagK, -1}},
		{{ImagI, 1}, {Real, 1}, {ImagK, -1}, {ImagJ, 1}},
		{{ImagJ, 1}, {ImagK, 1}, {Real, 1}, {ImagI, -1}},
		{{ImagK, 1}, {ImagJ, -1}, {ImagI, 1}, {Real, 1}},
	}
	for bi := range layout {
		for bj, cell := range layout[bi] {
			q.Part(cell.c).Do(func(i, j int, v float32) {
				emb.Set(bi*n+i, bj*n+j, cell.sign*float64(v))
			})
		}
	}

	all, err := eigenSym(op, emb)
	if err != nil {
		return rep, err
	}
	rep.Quaternion = make([]float64, n)
	for i := range rep.Quaternion {
		// each value repeats four times; take the mean of its group
		g := all[4*i : 4*i+4]
		rep.Quaternion[i] = (g[0] + g[1] + g[2] + g[3]) / 4
	}

	return rep, nil
}

func symEigenvalues(op string, m *sparse.Matrix) ([]float64, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := sparse.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if m.Rows() > 4*MaxDenseNodes {
		return nil, fmt.Errorf("%s: n=%d: %w", op, m.Rows(), ErrTooLarge)
	}
	if !m.IsSymmetric(hermitianTol) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotHermitian)
	}
	d, err := m.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eigenSym(op, d)
}

// eigenSym factorizes the symmetric part of d and returns its eigenvalues
// in ascending order.
func eigenSym(op string, d *mat.Dense) ([]float64, error) {
	n, _ := d.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(d.At(i, j)+d.At(j, i)))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrEigenFailed)
	}
	vals := es.Values(nil)
	sort.Float64s(vals)

	return vals, nil
}

func isAntisymmetric(m *sparse.Matrix) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	ok, err := sparse.AllClose(m, m.Transpose().Neg(), hermitianTol)

	return err == nil && ok
}
