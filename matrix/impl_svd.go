// SPDX-License-Identifier: MIT
// Package matrix - singular value decomposition via the Gram matrix AᵀA.
//
// Purpose:
//   - Decompose an m×n A as U·diag(S)·V_rᵀ, where r is the numerical rank.
//   - Derive rank, 2-norm condition number and the Moore–Penrose pseudo-inverse.
//
// Notes:
//   - AᵀA squares the condition number of A; singular values much smaller than
//     sqrt(eps)·S[0] lose relative accuracy. Fine at textbook scale.
//   - Eigenvalues of AᵀA are clamped at 0 before the square root.
//   - Only the first r left singular vectors are formed (U is m×r).

package matrix

import "math"

// SVDResult is the immutable outcome of SVD.
type SVDResult struct {
	m, n   int
	u      *Dense    // m×r, nil when r == 0
	s      []float64 // first r singular values, descending
	values []float64 // all n clamped singular values, descending
	v      *Dense    // n×n right singular vectors
	rank   int
}

// SVD computes the thin singular value decomposition of a.
// Implementation:
//   - Stage 1: validate (nil → finite) and build the Gram matrix G = AᵀA,
//     computing the upper triangle and mirroring it so G is exactly symmetric.
//   - Stage 2: eigendecompose G with the Jacobi kernel (descending order).
//   - Stage 3: S[j] = sqrt(max(λ_j, 0)); r = #{S[j] > RankTol}.
//   - Stage 4: U[:,j] = A·V[:,j] / S[j] for j < r.
//
// Inputs:
//   - a: any m×n matrix.
//   - opts: WithRankTol, WithJacobiTol, WithMaxRotations, NaN/Inf policy.
//   - For wide inputs (m < n) AᵀA has n−m zero eigenvalues that surface as
//     round-off near 1e-8; pass WithRankTol above that level or U picks up noise columns.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNotConverged.
//
// Complexity:
//   - Time O(m·n² + Jacobi(n)), Space O(m·n + n²).
func SVD(a Matrix, opts ...Option) (*SVDResult, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opSVD, err)
		}
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	m, n := da.r, da.c
	gram := gramDense(da)
	eig, err := jacobiEigen(gram, o)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	values := make([]float64, n)
	rank := 0
	for j, lambda := range eig.values {
		values[j] = math.Sqrt(math.Max(lambda, 0))
		if values[j] > o.rankTol {
			rank++
		}
	}

	res := &SVDResult{m: m, n: n, values: values, v: eig.q, rank: rank}
	res.s = make([]float64, rank)
	copy(res.s, values[:rank])
	if rank == 0 {
		return res, nil
	}

	u, err := NewDense(m, rank)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	var (
		i, j, k int
		sum     float64
	)
	for j = 0; j < rank; j++ {
		for i = 0; i < m; i++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				sum += da.data[i*n+k] * eig.q.data[k*n+j]
			}
			u.data[i*rank+j] = sum / values[j]
		}
	}
	res.u = u

	return res, nil
}

// gramDense returns AᵀA with the lower triangle mirrored from the upper.
func gramDense(a *Dense) *Dense {
	m, n := a.r, a.c
	g := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < m; k++ {
				sum += a.data[k*n+i] * a.data[k*n+j]
			}
			g.data[i*n+j] = sum
			g.data[j*n+i] = sum
		}
	}

	return g
}

// U returns a copy of the m×r left singular vectors, or nil when the rank is 0.
func (f *SVDResult) U() *Dense {
	if f.u == nil {
		return nil
	}

	return f.u.Clone().(*Dense)
}

// S returns a copy of the r singular values above RankTol, descending.
func (f *SVDResult) S() []float64 {
	out := make([]float64, len(f.s))
	copy(out, f.s)

	return out
}

// Values returns all n singular values (including those at or below RankTol).
func (f *SVDResult) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// V returns a copy of the n×n right singular vectors.
func (f *SVDResult) V() *Dense { return f.v.Clone().(*Dense) }

// Rank reports the numerical rank r.
func (f *SVDResult) Rank() int { return f.rank }

// Condition returns the 2-norm condition number S[0]/S[n-1].
// Returns +Inf when the matrix is column rank-deficient (r < n).
func (f *SVDResult) Condition() float64 {
	if f.rank == 0 || f.rank < f.n {
		return math.Inf(1)
	}

	return f.s[0] / f.s[f.rank-1]
}

// PseudoInverse returns A⁺ = V_r·diag(1/S)·U_rᵀ (n×m).
// A rank-0 input yields the n×m zero matrix.
// Complexity: O(n·m·r).
func (f *SVDResult) PseudoInverse() (*Dense, error) {
	pinv, err := NewDense(f.n, f.m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	var (
		i, j, k int
		sum     float64
		r       = f.rank
	)
	for i = 0; i < f.n; i++ {
		for k = 0; k < f.m; k++ {
			sum = ZeroSum
			for j = 0; j < r; j++ {
				sum += f.v.data[i*f.n+j] / f.s[j] * f.u.data[k*r+j]
			}
			pinv.data[i*f.m+k] = sum
		}
	}

	return pinv, nil
}
