// Package matrix offers dense row-major matrices and the classic
// factorizations built on them.
//
// The matrix package provides:
//
//   - Matrix / *Dense: a small interface and its flat row-major implementation.
//   - LU with partial pivoting, with Determinant, Inverse and SolveLU.
//   - QR via modified Gram–Schmidt, with Rank and least-squares SolveQR.
//   - Cholesky for symmetric positive-definite input, with SolveCholesky.
//   - SpectralDecomposition (Jacobi rotations) for symmetric input.
//   - SVD via the Gram matrix AᵀA, with rank, condition number and pseudo-inverse.
//   - Reconstruction-error diagnostics (Frobenius norm of the residual).
//
// Every factorization copies its input, never retains or mutates it, and
// returns a result whose accessors hand out copies. Errors are package
// sentinels (ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite,
// ErrSingular, ErrNotConverged, ...) matched with errors.Is.
//
// Tolerances are absolute and configurable per call:
//
//	f, err := matrix.SpectralDecomposition(A,
//		matrix.WithJacobiTol(1e-12),
//		matrix.WithMaxRotations(10_000),
//	)
//
// Matrices are best kept at textbook scale (a few hundred rows/columns).
package matrix
