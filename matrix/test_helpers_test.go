// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for factorizations.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// Residual bound used for well-conditioned unit-scale fixtures.
const tolResidual = matrix.ResidualTol

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (At-based) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// RandSymmetric returns (B + Bᵀ)/2 for a random n×n B.
func RandSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	s, err := matrix.Add(b, bt)
	require.NoError(t, err)
	s, err = matrix.Scale(s, 0.5)
	require.NoError(t, err)

	return s
}

// RandSPD returns BᵀB + n·I, symmetric positive definite and well conditioned.
func RandSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	g, err := matrix.Mul(bt, b)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		v := MustAt(t, g, i, i)
		MustSet(t, g, i, i, v+float64(n))
	}

	return g
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// CompareClose asserts element-wise closeness |a-b| ≤ atol + rtol*|b|.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// mulAll multiplies a chain of matrices left to right.
func mulAll(t *testing.T, ms ...matrix.Matrix) *matrix.Dense {
	t.Helper()
	acc, err := matrix.Mul(ms[0], ms[1])
	require.NoError(t, err)
	for _, m := range ms[2:] {
		acc, err = matrix.Mul(acc, m)
		require.NoError(t, err)
	}

	return acc
}

// propOrthonormalColumns asserts ‖QᵀQ − I‖_F ≤ tol.
func propOrthonormalColumns(t *testing.T, q matrix.Matrix, tol float64) {
	t.Helper()
	e, err := matrix.OrthogonalityError(q)
	require.NoError(t, err)
	require.LessOrEqual(t, e, tol, "QᵀQ deviates from I")
}

// sameUpToSign reports whether x == y or x == -y within tol.
func sameUpToSign(x, y []float64, tol float64) bool {
	if len(x) != len(y) {
		return false
	}
	plus, minus := true, true
	for i := range x {
		if math.Abs(x[i]-y[i]) > tol {
			plus = false
		}
		if math.Abs(x[i]+y[i]) > tol {
			minus = false
		}
	}

	return plus || minus
}
