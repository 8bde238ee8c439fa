// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Intention-revealing constructors (NewZeros, NewIdentity, ...).
//   - One-shot conveniences that factor and delegate in a single call
//     (Determinant, Inverse, Solve, EigenSym, SingularValues, Rank).
//
// Determinism & Policy:
//   - Facades add no semantics of their own; options pass straight through.
//   - Unlike the result-level methods, Inverse and Solve report a singular
//     input as ErrSingular, since a one-shot caller has no result to inspect.
//
// AI-Hints:
//   - Factor once (LU, Cholesky, QR) when solving for many right-hand sides.

package matrix

const (
	opIdentityLike   = "IdentityLike"
	opEigenSym       = "EigenSym"
	opSingularValues = "SingularValues"
	opRank           = "Rank"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the square matrix with d on its diagonal.
func NewDiagonal(d []float64) (*Dense, error) {
	D, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		D.data[i*len(d)+i] = v
	}

	return D, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity(m.Rows())
}

// ---------- One-shot conveniences ----------

// Determinant factors m with LU and returns its determinant.
// A singular m yields (0, nil); only invalid input is an error.
// Complexity: O(n³).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}

// Inverse factors m with LU and returns m⁻¹.
// Errors: LU's validation errors, or ErrSingular.
// Complexity: O(n³).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, ok := f.Inverse()
	if !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, nil
}

// Solve factors m with LU and solves m·x = b.
// Complexity: O(n³).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := SolveLU(f, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// EigenSym returns the eigenvalues (descending) and eigenvector columns of a
// symmetric m. Thin facade over SpectralDecomposition.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	f, err := SpectralDecomposition(m, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	return f.Values(), f.Q(), nil
}

// SingularValues returns all singular values of m, descending.
func SingularValues(m Matrix, opts ...Option) ([]float64, error) {
	f, err := SVD(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}

	return f.Values(), nil
}

// Rank returns the numerical rank of m (singular values above RankTol).
func Rank(m Matrix, opts ...Option) (int, error) {
	f, err := SVD(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return f.Rank(), nil
}
