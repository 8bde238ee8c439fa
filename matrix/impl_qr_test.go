// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestQR_ReconstructionAndOrthonormality(t *testing.T) {
	shapes := []struct{ m, n int }{{1, 1}, {3, 3}, {5, 3}, {8, 8}, {12, 4}}
	for i, sh := range shapes {
		A := RandFilledDense(t, sh.m, sh.n, int64(40+i))

		f, err := matrix.QR(A)
		require.NoError(t, err)

		e, err := matrix.QRReconstructionError(A, f)
		require.NoError(t, err)
		assert.Less(t, e, tolResidual, "shape %dx%d", sh.m, sh.n)

		Q, R := f.Q(), f.R()
		require.Equal(t, sh.m, Q.Rows())
		require.Equal(t, sh.n, Q.Cols())
		propOrthonormalColumns(t, Q, 1e-10)

		for r := 0; r < sh.n; r++ {
			for c := 0; c < r; c++ {
				assert.Zero(t, MustAt(t, R, r, c), "R must be upper triangular")
			}
		}
		assert.Equal(t, sh.n, f.Rank())
	}
}

func TestQR_KnownFactor(t *testing.T) {
	// Columns (3,4) and (1,0): q0 = (0.6,0.8), r01 = 0.6, residual (0.64,-0.48).
	A := MustRows(t, [][]float64{{3, 1}, {4, 0}})
	f, err := matrix.QR(A)
	require.NoError(t, err)

	CompareClose(t, f.R(), MustRows(t, [][]float64{{5, 0.6}, {0, 0.8}}), 0, 1e-12)
	CompareClose(t, f.Q(), MustRows(t, [][]float64{{0.6, 0.8}, {0.8, -0.6}}), 0, 1e-12)
}

func TestQR_RankDeficientColumnDoesNotCrash(t *testing.T) {
	// Third column = first + second.
	A := MustRows(t, [][]float64{
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 2},
		{2, 0, 2},
	})
	f, err := matrix.QR(A)
	require.NoError(t, err)

	R := f.R()
	assert.Less(t, math.Abs(MustAt(t, R, 2, 2)), 1e-12)
	assert.Equal(t, 2, f.Rank())

	for _, v := range f.Q().RawData() {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	e, err := matrix.QRReconstructionError(A, f)
	require.NoError(t, err)
	assert.Less(t, e, tolResidual)

	_, err = matrix.SolveQR(f, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveQR_LeastSquares(t *testing.T) {
	// Fit y = c0 + c1·x through (0,1), (1,3), (2,5), (3,7): exact line 1 + 2x.
	A := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	f, err := matrix.QR(A)
	require.NoError(t, err)

	x, err := matrix.SolveQR(f, []float64{1, 3, 5, 7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-12)

	// Noisy points: normal equations give c = (AᵀA)⁻¹Aᵀb.
	x, err = matrix.SolveQR(f, []float64{1, 2, 2, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.9, 0.9}, x, 1e-12)

	_, err = matrix.SolveQR(f, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveQR(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQR_RankTolOption(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 0}, {0, 1e-6}})
	f, err := matrix.QR(A)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rank())

	f, err = matrix.QR(A, matrix.WithRankTol(1e-3))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Rank())
}

func TestQR_Errors(t *testing.T) {
	_, err := matrix.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	A := RandFilledDense(t, 3, 2, 1)
	f, err := matrix.QR(A)
	require.NoError(t, err)
	_, err = matrix.QRReconstructionError(MustDense(t, 2, 2), f)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
