// SPDX-License-Identifier: MIT
// Package matrix - QR factorization via modified Gram–Schmidt.
//
// Purpose:
//   - Factor an m×n A into Q·R with Q (m×n) having orthonormal columns and
//     R (n×n) upper-triangular.
//   - Offer numerical rank and a least-squares solve on top of it.
//
// Notes:
//   - Projections are subtracted one at a time from the running residual
//     (modified, not classical, Gram–Schmidt).
//   - A residual with norm below ZeroTol is divided by 1 instead of its norm;
//     the corresponding Q column is then not unit length and R[j][j] < ZeroTol.
//   - Column arithmetic (dot, axpy, norm, scale) is delegated to gonum/floats.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// QRResult is the immutable outcome of QR.
type QRResult struct {
	m, n    int
	q       [][]float64 // q[j] is column j of Q (length m)
	r       *Dense      // n×n upper-triangular
	zeroTol float64
	rankTol float64
}

// QR factors a into Q·R using modified Gram–Schmidt.
// Implementation:
//   - Stage 1: validate (nil → finite) and copy the columns of a.
//   - Stage 2: for column j, subtract the projection onto each earlier q_i
//     from the running residual v (R[i][j] = q_i·v), then R[j][j] = ‖v‖₂.
//   - Stage 3: q_j = v / R[j][j], or v itself when R[j][j] < ZeroTol.
//
// Inputs:
//   - a: any m×n matrix (m ≥ n gives orthonormal Q).
//   - opts: WithZeroTol, WithRankTol, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func QR(a Matrix, opts ...Option) (*QRResult, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opQR, err)
		}
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	m, n := da.r, da.c
	r, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	q := make([][]float64, n)

	var (
		i, j      int
		rij, norm float64
		v         []float64
		divisor   float64
	)
	for j = 0; j < n; j++ {
		v, _ = da.Col(j) // fresh copy; j is in range
		for i = 0; i < j; i++ {
			rij = floats.Dot(q[i], v)
			r.data[i*n+j] = rij
			floats.AddScaled(v, -rij, q[i])
		}
		norm = floats.Norm(v, 2)
		r.data[j*n+j] = norm

		divisor = norm
		if norm < o.zeroTol {
			divisor = 1
		}
		floats.Scale(1/divisor, v)
		q[j] = v
	}

	return &QRResult{m: m, n: n, q: q, r: r, zeroTol: o.zeroTol, rankTol: o.rankTol}, nil
}

// Q returns a copy of the m×n orthonormal factor.
func (f *QRResult) Q() *Dense {
	out := &Dense{r: f.m, c: f.n, data: make([]float64, f.m*f.n), validateNaNInf: DefaultValidateNaNInf}
	for j, col := range f.q {
		for i, v := range col {
			out.data[i*f.n+j] = v
		}
	}

	return out
}

// R returns a copy of the n×n upper-triangular factor.
func (f *QRResult) R() *Dense { return f.r.Clone().(*Dense) }

// Rank counts the diagonal entries of R with |R[j][j]| > RankTol.
func (f *QRResult) Rank() int {
	rank := 0
	for j := 0; j < f.n; j++ {
		if math.Abs(f.r.data[j*f.n+j]) > f.rankTol {
			rank++
		}
	}

	return rank
}

// SolveQR returns the least-squares solution x minimizing ‖A·x − b‖₂.
// Implementation:
//   - Stage 1: c = Qᵀ·b (one dot product per column of Q).
//   - Stage 2: back substitution R·x = c.
//
// Errors:
//   - ErrNilMatrix when f is nil.
//   - ErrDimensionMismatch when len(b) != m.
//   - ErrSingular when some |R[j][j]| < ZeroTol (rank-deficient A).
//
// Complexity:
//   - Time O(m·n + n²), Space O(n).
func SolveQR(f *QRResult, b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolveQR, ErrNilMatrix)
	}
	if len(b) != f.m {
		return nil, matrixErrorf(opSolveQR, ErrDimensionMismatch)
	}

	n := f.n
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = floats.Dot(f.q[j], b)
	}

	var (
		i, j int
		d    float64
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		d = f.r.data[i*n+i]
		if math.Abs(d) < f.zeroTol {
			return nil, matrixErrorf(opSolveQR, ErrSingular)
		}
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.r.data[i*n+j] * x[j]
		}
		x[i] = sum / d
	}

	return x, nil
}
