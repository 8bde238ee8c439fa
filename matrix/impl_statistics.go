// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics that turn a data matrix (rows = observations,
//     columns = features) into the symmetric input of SpectralDecomposition.
//
// Exposed API:
//   - CenterColumns, Covariance, Correlation.
//
// Determinism & Performance:
//   - Built on the shared kernels (ewBroadcastSubCols, Transpose, Mul, Scale).
//   - Results are exactly symmetric: Gram products are mirrored.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: column sums via floats.Add over the rows, divided by r.
//   - Stage 2: broadcast-subtract the means into a fresh matrix.
//
// Returns:
//   - the centered copy and the column means.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	means := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		floats.Add(means, d.data[i*d.c:(i+1)*d.c])
	}
	floats.Scale(1/float64(d.r), means)

	xc, err := ewBroadcastSubCols(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// Covariance returns the sample covariance (XcᵀXc)/(r−1) and the column means.
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when fewer than two observations are given.
//
// Complexity:
//   - Time O(r*c²), Space O(c² + r*c).
func Covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(gramDense(xc), 1/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns, with means and
// sample standard deviations. A constant column (std == 0) correlates as
// all zeros, including its diagonal entry.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) {
	cov, means, err := Covariance(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	c := cov.c
	stds := make([]float64, c)
	inv := make([]float64, c)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(cov.data[j*c+j])
		if stds[j] > 0 {
			inv[j] = 1 / stds[j]
		}
	}

	// D⁻¹·Cov·D⁻¹: scale columns, transpose (symmetric), scale columns again.
	half, err := ewScaleCols(cov, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := ewScaleCols(transposeDense(half), inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}
