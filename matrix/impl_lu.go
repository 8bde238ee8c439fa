// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting and the operations
// derived from it (determinant, inverse, linear solve).
//
// Purpose:
//   - Factor a square A into P·A = L·U with L unit lower-triangular and U upper.
//   - Keep the pivot permutation explicit so P can be rebuilt and its sign read.
//
// Notes:
//   - A column whose largest candidate pivot is below ZeroTol is skipped: its
//     sub-diagonal entries stay in U and its multipliers stay 0. P·A = L·U still
//     holds exactly; Determinant reports 0, Inverse reports false and SolveLU
//     returns ErrSingular.
//   - No complete pivoting, no scaling.

package matrix

import "math"

// LUResult is the immutable outcome of LU.
// Accessors return independent copies.
type LUResult struct {
	n       int
	p       *Dense // permutation matrix, P[i][piv[i]] = 1
	l       *Dense // unit lower-triangular multipliers
	u       *Dense // upper-triangular factor (skipped columns keep tiny sub-diagonal residue)
	piv     []int  // piv[i] = original row now at position i
	zeroTol float64
}

// LU computes P·A = L·U using partial pivoting.
// Implementation:
//   - Stage 1: validate (nil → square → finite) and take a private working copy U.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |U[p][k]|
//     (first occurrence wins ties). Below ZeroTol the column is skipped.
//   - Stage 3: swap rows k,p of U, of the pivot array and of the already
//     computed part of L (columns 0..k-1), then eliminate below the pivot.
//   - Stage 4: rebuild P from the pivot array.
//
// Behavior highlights:
//   - The input is never mutated and never aliased by the result.
//
// Inputs:
//   - a: square matrix (n ≥ 1).
//   - opts: WithZeroTol, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *LUResult with P, L, U and the pivot array.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf.
//
// Determinism:
//   - Fixed k→i→j loop order; ties broken by the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factor once and reuse the result for many right-hand sides via SolveLU.
func LU(a Matrix, opts ...Option) (*LUResult, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opLU, err)
		}
	}

	u, err := denseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := u.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var (
		i, j, k, p int
		maxAbs, v  float64
		pivot, f   float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Partial pivot search over rows k..n-1.
		p = k
		maxAbs = math.Abs(u.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(u.data[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < o.zeroTol {
			continue // zero pivot: leave the column as is
		}

		if p != k {
			u.swapRows(k, p)
			piv[k], piv[p] = piv[p], piv[k]
			for j = 0; j < k; j++ {
				l.data[k*n+j], l.data[p*n+j] = l.data[p*n+j], l.data[k*n+j]
			}
		}

		rowK = k * n
		pivot = u.data[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = u.data[rowI+k] / pivot
			l.data[rowI+k] = f
			u.data[rowI+k] = 0
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				u.data[rowI+j] -= f * u.data[rowK+j]
			}
		}
	}

	perm, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		perm.data[i*n+piv[i]] = 1
	}

	return &LUResult{n: n, p: perm, l: l, u: u, piv: piv, zeroTol: o.zeroTol}, nil
}

// P returns a copy of the permutation matrix.
func (f *LUResult) P() *Dense { return f.p.Clone().(*Dense) }

// L returns a copy of the unit lower-triangular factor.
func (f *LUResult) L() *Dense { return f.l.Clone().(*Dense) }

// U returns a copy of the upper-triangular factor.
func (f *LUResult) U() *Dense { return f.u.Clone().(*Dense) }

// Pivot returns a copy of the pivot array: Pivot()[i] is the row of A that
// ended up at position i.
func (f *LUResult) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// N reports the order of the factored matrix.
func (f *LUResult) N() int { return f.n }

// isSingular reports whether any diagonal entry of U is below the zero tolerance.
func (f *LUResult) isSingular() bool {
	for k := 0; k < f.n; k++ {
		if math.Abs(f.u.data[k*f.n+k]) < f.zeroTol {
			return true
		}
	}

	return false
}

// Determinant returns det(A) = (−1)^s · ∏ U[k][k], where s is the number of
// inversions in the pivot array. Returns 0 when any |U[k][k]| < ZeroTol.
// Complexity: O(n²) for the inversion count, fine at textbook sizes.
func (f *LUResult) Determinant() float64 {
	if f == nil || f.isSingular() {
		return 0
	}

	det := 1.0
	for k := 0; k < f.n; k++ {
		det *= f.u.data[k*f.n+k]
	}
	if permutationInversions(f.piv)%2 == 1 {
		det = -det
	}

	return det
}

// permutationInversions counts pairs i<j with piv[i] > piv[j].
func permutationInversions(piv []int) int {
	count := 0
	for i := 0; i < len(piv); i++ {
		for j := i + 1; j < len(piv); j++ {
			if piv[i] > piv[j] {
				count++
			}
		}
	}

	return count
}

// Inverse returns A⁻¹ built column by column from SolveLU(f, e_j).
// The second result is false (and the matrix nil) when A is singular.
// Complexity: O(n³).
func (f *LUResult) Inverse() (*Dense, bool) {
	if f == nil || f.isSingular() {
		return nil, false
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, false
	}
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = 0
		}
		e[j] = 1
		col, serr := SolveLU(f, e)
		if serr != nil {
			return nil, false
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv, true
}

// SolveLU solves A·x = b using a precomputed factorization.
// Implementation:
//   - Stage 1: permute b by the pivot array (pb[i] = b[piv[i]]).
//   - Stage 2: forward substitution through unit-lower L.
//   - Stage 3: back substitution through U; a pivot below ZeroTol is singular.
//
// Errors:
//   - ErrNilMatrix when f is nil.
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular on a zero pivot.
//
// Complexity:
//   - Time O(n²), Space O(n).
func SolveLU(f *LUResult, b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolveLU, ErrNilMatrix)
	}
	n := f.n
	if len(b) != n {
		return nil, matrixErrorf(opSolveLU, ErrDimensionMismatch)
	}

	x := make([]float64, n)
	var (
		i, j int
		sum  float64
	)
	// Forward: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for j = 0; j < i; j++ {
			sum -= f.l.data[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	var d float64
	for i = n - 1; i >= 0; i-- {
		d = f.u.data[i*n+i]
		if math.Abs(d) < f.zeroTol {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.u.data[i*n+j] * x[j]
		}
		x[i] = sum / d
	}

	return x, nil
}
