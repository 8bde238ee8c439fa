// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Errors and options live in dedicated files (errors.go, options.go);
// factorization result types live next to the algorithm that builds them.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Every factorization reads its input only through this interface (with a
// fast path for *Dense) and never retains it, so callers may pass their own
// implementations.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Vector is a dense column vector. Solvers accept and return plain slices;
// the alias only documents intent at API boundaries.
type Vector = []float64
