// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every factorization, derived operation and validator returns one of
// these (possibly wrapped with an operation tag) and tests MUST match them via
// errors.Is. Panics are reserved for programmer errors (invalid options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps cleanly. Public
// entry points wrap with "<Op>: %w" (see matrixErrorf); callers still use
// errors.Is to match the sentinel underneath.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf -> dimension mismatch -> structural
// (asymmetry, definiteness) -> numerical (singular, non-convergence).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// non-square input to a square-only factorization, Mul with a.Cols != b.Rows,
	// ragged rows, or a right-hand side whose length differs from n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal term is
	// non-positive or a divisor falls below the zero tolerance.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrSingular is returned when a solve meets a pivot below the zero tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged indicates that the Jacobi sweep ran out of its rotation
	// budget before the largest off-diagonal entry dropped below tolerance.
	ErrNotConverged = errors.New("matrix: eigen decomposition did not converge")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrNotSymmetric names the same condition as ErrAsymmetry.
// errors.Is(err, ErrNotSymmetric) and errors.Is(err, ErrAsymmetry) agree.
var ErrNotSymmetric = ErrAsymmetry
