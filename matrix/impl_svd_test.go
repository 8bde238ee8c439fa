// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestSVD_KnownDiagonal(t *testing.T) {
	A := MustRows(t, [][]float64{{3, 0}, {0, -2}})

	f, err := matrix.SVD(A)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 2}, f.S())
	assert.Equal(t, 2, f.Rank())
	CompareClose(t, f.U(), MustRows(t, [][]float64{{1, 0}, {0, -1}}), 0, 0)

	e, err := matrix.SVDReconstructionError(A, f)
	require.NoError(t, err)
	assert.Zero(t, e, "diagonal input reconstructs exactly")
	assert.InDelta(t, 1.5, f.Condition(), 1e-15)
}

func TestSVD_RandomShapes(t *testing.T) {
	shapes := []struct{ m, n int }{{1, 1}, {2, 2}, {6, 3}, {10, 10}}
	for i, sh := range shapes {
		A := RandFilledDense(t, sh.m, sh.n, int64(300+i))
		f, err := matrix.SVD(A)
		require.NoError(t, err)

		s := f.S()
		for j := range s {
			assert.GreaterOrEqual(t, s[j], 0.0)
			if j > 0 {
				assert.GreaterOrEqual(t, s[j-1], s[j], "descending")
			}
		}
		wantRank := sh.m
		if sh.n < wantRank {
			wantRank = sh.n
		}
		assert.Equal(t, wantRank, f.Rank(), "shape %dx%d", sh.m, sh.n)
		assert.Len(t, f.Values(), sh.n)

		e, err := matrix.SVDReconstructionError(A, f)
		require.NoError(t, err)
		assert.Less(t, e, 1e-7, "shape %dx%d", sh.m, sh.n)

		U := f.U()
		require.Equal(t, sh.m, U.Rows())
		require.Equal(t, f.Rank(), U.Cols())
		propOrthonormalColumns(t, U, 1e-7)
		propOrthonormalColumns(t, f.V(), 1e-10)
	}
}

func TestSVD_WideMatrixNeedsRankTol(t *testing.T) {
	// AᵀA of a 3×6 matrix has three eigenvalues that are zero only up to
	// roundoff; their square roots land near 1e-8, so the rank threshold
	// must sit above that.
	A := RandFilledDense(t, 3, 6, 61)

	f, err := matrix.SVD(A, matrix.WithRankTol(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rank())
	assert.Len(t, f.Values(), 6)

	e, err := matrix.SVDReconstructionError(A, f)
	require.NoError(t, err)
	assert.Less(t, e, 1e-7)
}

func TestSVD_AgreesWithGonum(t *testing.T) {
	A := RandFilledDense(t, 7, 5, 99)

	f, err := matrix.SVD(A)
	require.NoError(t, err)

	g, err := matrix.ToGonum(A)
	require.NoError(t, err)
	var svd mat.SVD
	require.True(t, svd.Factorize(g, mat.SVDNone))
	assert.InDeltaSlice(t, svd.Values(nil), f.Values(), 1e-9)
}

func TestSVD_RankDeficient(t *testing.T) {
	// Rank one: every row is a multiple of (1,2,3).
	A := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {-1, -2, -3}})

	f, err := matrix.SVD(A, matrix.WithRankTol(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Rank())
	assert.Len(t, f.S(), 1)
	assert.Equal(t, 1, f.U().Cols())
	assert.True(t, math.IsInf(f.Condition(), 1))

	e, err := matrix.SVDReconstructionError(A, f)
	require.NoError(t, err)
	assert.Less(t, e, 1e-7)

	rank, err := matrix.Rank(A, matrix.WithRankTol(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestSVD_ZeroMatrix(t *testing.T) {
	Z := MustDense(t, 3, 2)

	f, err := matrix.SVD(Z)
	require.NoError(t, err)
	assert.Zero(t, f.Rank())
	assert.Nil(t, f.U())
	assert.Empty(t, f.S())
	assert.Equal(t, []float64{0, 0}, f.Values())

	e, err := matrix.SVDReconstructionError(Z, f)
	require.NoError(t, err)
	assert.Zero(t, e)

	pinv, err := f.PseudoInverse()
	require.NoError(t, err)
	CompareClose(t, pinv, MustDense(t, 2, 3), 0, 0)
}

func TestSVD_PseudoInverse(t *testing.T) {
	// Full column rank: A⁺A = I.
	A := RandFilledDense(t, 6, 3, 17)
	f, err := matrix.SVD(A)
	require.NoError(t, err)

	pinv, err := f.PseudoInverse()
	require.NoError(t, err)
	require.Equal(t, 3, pinv.Rows())
	require.Equal(t, 6, pinv.Cols())

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, mulAll(t, pinv, A), I, 0, 1e-8)

	// Square invertible: pseudo-inverse equals the inverse.
	B := MustRows(t, [][]float64{{4, 3}, {6, 3}})
	fb, err := matrix.SVD(B)
	require.NoError(t, err)
	pb, err := fb.PseudoInverse()
	require.NoError(t, err)
	inv, err := matrix.Inverse(B)
	require.NoError(t, err)
	CompareClose(t, pb, inv, 0, 1e-10)
}

func TestSVD_Errors(t *testing.T) {
	_, err := matrix.SVD(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	A := RandFilledDense(t, 4, 4, 1)
	_, err = matrix.SVD(A, matrix.WithMaxRotations(1))
	require.ErrorIs(t, err, matrix.ErrNotConverged)

	sv, err := matrix.SingularValues(A)
	require.NoError(t, err)
	assert.Len(t, sv, 4)
}
