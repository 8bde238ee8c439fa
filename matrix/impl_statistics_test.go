// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestCenterColumns(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 10}, {3, 20}, {5, 30}})

	xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 20}, means, 1e-12)
	CompareClose(t, xc, MustRows(t, [][]float64{{-2, -10}, {0, 0}, {2, 10}}), 0, 1e-12)

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovarianceAndCorrelation(t *testing.T) {
	// Second column = 2·first, third is constant.
	X := MustRows(t, [][]float64{{1, 2, 5}, {2, 4, 5}, {3, 6, 5}})

	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	CompareClose(t, cov, MustRows(t, [][]float64{
		{1, 2, 0},
		{2, 4, 0},
		{0, 0, 0},
	}), 0, 1e-12)
	assert.True(t, matrix.IsSymmetric(cov, 0))

	corr, _, stds, err := matrix.Correlation(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 0}, stds, 1e-12)
	CompareClose(t, corr, MustRows(t, [][]float64{
		{1, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}), 0, 1e-12)

	_, _, err = matrix.Covariance(MustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
