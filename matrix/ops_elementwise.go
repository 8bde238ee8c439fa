// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) shared
//     by the statistics helpers, plus the public AllClose comparison.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over the row-major buffer.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

const (
	opBroadcastSubCols = "broadcastSubCols"
	opScaleCols        = "scaleCols"
	opAllClose         = "AllClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if len(colMeans) != d.c {
		return nil, matrixErrorf(opBroadcastSubCols, ErrDimensionMismatch)
	}

	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data)), validateNaNInf: d.validateNaNInf}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] - colMeans[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(scale) != d.c {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}

	return scaleColumns(d, scale), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, bv := range db.data {
		if !(math.Abs(da.data[idx]-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
