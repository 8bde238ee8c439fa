// SPDX-License-Identifier: MIT
// Package matrix - symmetric eigendecomposition by Jacobi rotations.
//
// Purpose:
//   - Diagonalize a symmetric A as Q·diag(λ)·Qᵀ with Q orthogonal.
//   - Return eigenvalues in descending order with Q's columns permuted to match;
//     SVD and every PCA-style consumer depend on that ordering.
//
// Notes:
//   - Each step annihilates the largest off-diagonal entry (classical Jacobi).
//   - The rotation budget is explicit (WithMaxRotations); running out of it is
//     reported as ErrNotConverged rather than returning a partial result.

package matrix

import (
	"math"
	"sort"
)

// SpectralResult is the immutable outcome of SpectralDecomposition.
type SpectralResult struct {
	n         int
	q         *Dense    // eigenvectors as columns, aligned with values
	values    []float64 // descending
	rotations int       // rotations applied before convergence
}

// SpectralDecomposition computes the eigen-decomposition of a symmetric matrix.
// Implementation:
//   - Stage 1: validate (nil → square → finite → symmetric within SymmetryTol)
//     and copy A, averaging mirrored entries so the working copy is exactly symmetric.
//   - Stage 2: loop: find (p,q), p<q, with the largest |A[p][q]| (i→j scan,
//     first maximum wins); stop when it drops below JacobiTol.
//   - Stage 3: θ = π/4 when A[p][p] == A[q][q], else ½·atan2(2A[p][q], A[p][p]−A[q][q]);
//     rotate rows/cols p,q of A and columns p,q of V.
//   - Stage 4: stable-sort eigenvalues descending and permute V's columns.
//
// Inputs:
//   - a: square symmetric matrix.
//   - opts: WithJacobiTol, WithSymmetryTol, WithMaxRotations, NaN/Inf policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry (ErrNotSymmetric).
//   - ErrNotConverged when the budget (default 200·n²) is exhausted.
//
// Determinism:
//   - Fixed scan order and stable sort; identical inputs give identical outputs.
//
// Complexity:
//   - Each rotation is O(n) plus an O(n²) pivot search.
//
// AI-Hints:
//   - Eigenvector signs are not normalized; compare vectors up to sign.
func SpectralDecomposition(a Matrix, opts ...Option) (*SpectralResult, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSpectral, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opSpectral, err)
		}
	}
	if err := ValidateSymmetric(a, o.symmetryTol); err != nil {
		return nil, matrixErrorf(opSpectral, err)
	}

	w, err := denseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opSpectral, err)
	}
	symmetrizeInPlace(w)

	res, err := jacobiEigen(w, o)
	if err != nil {
		return nil, matrixErrorf(opSpectral, err)
	}

	return res, nil
}

// symmetrizeInPlace replaces A[i][j] and A[j][i] with their mean.
func symmetrizeInPlace(w *Dense) {
	n := w.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (w.data[i*n+j] + w.data[j*n+i])
			w.data[i*n+j], w.data[j*n+i] = avg, avg
		}
	}
}

// jacobiEigen diagonalizes the exactly symmetric working matrix w in place.
// Shared by SpectralDecomposition and SVD (which feeds it AᵀA).
func jacobiEigen(w *Dense, o Options) (*SpectralResult, error) {
	n := w.r
	v, err := NewIdentity(n)
	if err != nil {
		return nil, err
	}
	budget := o.rotationBudget(n)

	var (
		i, j, k, p, q   int
		rotations       int
		maxOff, off     float64
		app, aqq, apq   float64
		akp, akq        float64
		vkp, vkq        float64
		theta, c, s, cs float64
		d               = w.data
		vd              = v.data
	)
	diagonal, err := IsZeroOffDiagonal(w, o.jacobiTol)
	if err != nil {
		return nil, err
	}
	for !diagonal {
		// Largest off-diagonal magnitude in the strict upper triangle.
		maxOff, p, q = 0, 0, 1
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(d[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if n < 2 || maxOff == 0 || maxOff < o.jacobiTol {
			break
		}
		if rotations >= budget {
			return nil, ErrNotConverged
		}

		app, aqq, apq = d[p*n+p], d[q*n+q], d[p*n+q]
		if app == aqq {
			theta = math.Pi / 4
		} else {
			theta = 0.5 * math.Atan2(2*apq, app-aqq)
		}
		c, s = math.Cos(theta), math.Sin(theta)
		cs = c * s

		for k = 0; k < n; k++ {
			if k == p || k == q {
				continue
			}
			akp, akq = d[k*n+p], d[k*n+q]
			d[k*n+p] = c*akp + s*akq
			d[k*n+q] = -s*akp + c*akq
			d[p*n+k] = d[k*n+p]
			d[q*n+k] = d[k*n+q]
		}
		d[p*n+p] = c*c*app + 2*cs*apq + s*s*aqq
		d[q*n+q] = s*s*app - 2*cs*apq + c*c*aqq
		d[p*n+q], d[q*n+p] = 0, 0

		for k = 0; k < n; k++ {
			vkp, vkq = vd[k*n+p], vd[k*n+q]
			vd[k*n+p] = c*vkp + s*vkq
			vd[k*n+q] = -s*vkp + c*vkq
		}
		rotations++
	}

	// Descending order, stable for equal eigenvalues.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return d[order[x]*n+order[x]] > d[order[y]*n+order[y]]
	})

	values := make([]float64, n)
	sorted, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j = 0; j < n; j++ {
		values[j] = d[order[j]*n+order[j]]
		for i = 0; i < n; i++ {
			sorted.data[i*n+j] = vd[i*n+order[j]]
		}
	}

	return &SpectralResult{n: n, q: sorted, values: values, rotations: rotations}, nil
}

// Q returns a copy of the orthogonal eigenvector matrix (columns match Values()).
func (f *SpectralResult) Q() *Dense { return f.q.Clone().(*Dense) }

// Values returns a copy of the eigenvalues, sorted descending.
func (f *SpectralResult) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// Vector returns a copy of the eigenvector paired with Values()[j].
func (f *SpectralResult) Vector(j int) ([]float64, error) {
	col, err := f.q.Col(j)
	if err != nil {
		return nil, matrixErrorf(opSpectral, err)
	}

	return col, nil
}

// Rotations reports how many Jacobi rotations were applied.
func (f *SpectralResult) Rotations() int { return f.rotations }
