// SPDX-License-Identifier: MIT
// Package matrix - Cholesky factorization of symmetric positive-definite matrices.
//
// Notes:
//   - Symmetry is NOT checked: only the lower triangle (and diagonal) of A is read.
//     Pre-validate with ValidateSymmetric when the input is untrusted.
//   - Failure is the positivity test itself: a non-positive term under the
//     square root, or a divisor L[j][j] below ZeroTol.

package matrix

import "math"

// CholeskyResult is the immutable outcome of Cholesky.
type CholeskyResult struct {
	n       int
	l       *Dense // lower-triangular, strictly positive diagonal
	zeroTol float64
}

// Cholesky factors a symmetric positive-definite A as L·Lᵀ.
// Implementation:
//   - Stage 1: validate (nil → square → finite) and read A once.
//   - Stage 2: column j: L[j][j] = sqrt(A[j][j] − Σ_{k<j} L[j][k]²).
//   - Stage 3: rows i>j: L[i][j] = (A[i][j] − Σ_{k<j} L[i][k]·L[j][k]) / L[j][j].
//
// Inputs:
//   - a: square matrix, assumed symmetric.
//   - opts: WithZeroTol, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//   - ErrNotPositiveDefinite at the first failing column.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(a Matrix, opts ...Option) (*CholeskyResult, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := da.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k int
		sum     float64
		ljj     float64
	)
	for j = 0; j < n; j++ {
		sum = da.data[j*n+j]
		for k = 0; k < j; k++ {
			sum -= l.data[j*n+k] * l.data[j*n+k]
		}
		if sum <= 0 {
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		ljj = math.Sqrt(sum)
		if ljj < o.zeroTol {
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		l.data[j*n+j] = ljj

		for i = j + 1; i < n; i++ {
			sum = da.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			l.data[i*n+j] = sum / ljj
		}
	}

	return &CholeskyResult{n: n, l: l, zeroTol: o.zeroTol}, nil
}

// L returns a copy of the lower-triangular factor.
func (f *CholeskyResult) L() *Dense { return f.l.Clone().(*Dense) }

// Determinant returns det(A) = ∏ L[i][i]²; 0 for a nil result.
func (f *CholeskyResult) Determinant() float64 {
	if f == nil {
		return 0
	}

	det := 1.0
	for i := 0; i < f.n; i++ {
		d := f.l.data[i*f.n+i]
		det *= d * d
	}

	return det
}

// SolveCholesky solves A·x = b as L·y = b followed by Lᵀ·x = y.
// Errors:
//   - ErrNilMatrix when f is nil.
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular when a diagonal entry of L is below ZeroTol (only reachable
//     for results built with a relaxed tolerance).
//
// Complexity: O(n²).
func SolveCholesky(f *CholeskyResult, b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolveCholesky, ErrNilMatrix)
	}
	n := f.n
	if len(b) != n {
		return nil, matrixErrorf(opSolveCholesky, ErrDimensionMismatch)
	}

	x := make([]float64, n)
	var (
		i, k int
		sum  float64
		d    float64
	)
	// L·y = b
	for i = 0; i < n; i++ {
		d = f.l.data[i*n+i]
		if d < f.zeroTol {
			return nil, matrixErrorf(opSolveCholesky, ErrSingular)
		}
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= f.l.data[i*n+k] * x[k]
		}
		x[i] = sum / d
	}
	// Lᵀ·x = y, reading L column-wise.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.l.data[k*n+i] * x[k]
		}
		x[i] = sum / f.l.data[i*n+i]
	}

	return x, nil
}
