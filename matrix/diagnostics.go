// SPDX-License-Identifier: MIT
// Package matrix - reconstruction-error diagnostics.
//
// Purpose:
//   - Recompute the product implied by each factorization and report the
//     Frobenius norm of its difference from the original matrix.
//   - Give tests and callers a numerical-quality signal (compare with ResidualTol).
//
// Notes:
//   - Every function is pure: results are read through their private fields
//     and never modified, so repeated calls return identical values.

package matrix

import "gonum.org/v1/gonum/floats"

// FrobeniusNorm returns sqrt(Σ m[i][j]²).
// Errors: ErrNilMatrix.
func FrobeniusNorm(m Matrix) (float64, error) {
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	return floats.Norm(dm.data, 2), nil
}

// residualNorm returns ‖x − y‖_F for equally shaped x and y.
func residualNorm(x, y *Dense) float64 {
	diff := make([]float64, len(x.data))
	floats.SubTo(diff, x.data, y.data)

	return floats.Norm(diff, 2)
}

// reconstructionInput validates a against the expected factor shape.
func reconstructionInput(a Matrix, rows, cols int) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	if da.r != rows || da.c != cols {
		return nil, matrixErrorf(opReconstruct, ErrDimensionMismatch)
	}

	return da, nil
}

// LUReconstructionError returns ‖P·A − L·U‖_F.
// Errors: ErrNilMatrix (a or f), ErrDimensionMismatch when a is not n×n.
func LUReconstructionError(a Matrix, f *LUResult) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opReconstruct, ErrNilMatrix)
	}
	da, err := reconstructionInput(a, f.n, f.n)
	if err != nil {
		return 0, err
	}

	return residualNorm(mulDense(f.p, da), mulDense(f.l, f.u)), nil
}

// QRReconstructionError returns ‖Q·R − A‖_F.
func QRReconstructionError(a Matrix, f *QRResult) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opReconstruct, ErrNilMatrix)
	}
	da, err := reconstructionInput(a, f.m, f.n)
	if err != nil {
		return 0, err
	}

	return residualNorm(mulDense(f.Q(), f.r), da), nil
}

// CholeskyReconstructionError returns ‖L·Lᵀ − A‖_F.
func CholeskyReconstructionError(a Matrix, f *CholeskyResult) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opReconstruct, ErrNilMatrix)
	}
	da, err := reconstructionInput(a, f.n, f.n)
	if err != nil {
		return 0, err
	}

	return residualNorm(mulDense(f.l, transposeDense(f.l)), da), nil
}

// SpectralReconstructionError returns ‖Q·diag(λ)·Qᵀ − A‖_F.
func SpectralReconstructionError(a Matrix, f *SpectralResult) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opReconstruct, ErrNilMatrix)
	}
	da, err := reconstructionInput(a, f.n, f.n)
	if err != nil {
		return 0, err
	}

	return residualNorm(mulDense(scaleColumns(f.q, f.values), transposeDense(f.q)), da), nil
}

// SVDReconstructionError returns ‖U·diag(S)·V[:,0:r]ᵀ − A‖_F.
// A rank-0 result reconstructs the zero matrix, so the error is ‖A‖_F.
func SVDReconstructionError(a Matrix, f *SVDResult) (float64, error) {
	if f == nil {
		return 0, matrixErrorf(opReconstruct, ErrNilMatrix)
	}
	da, err := reconstructionInput(a, f.m, f.n)
	if err != nil {
		return 0, err
	}
	if f.rank == 0 {
		return floats.Norm(da.data, 2), nil
	}

	rows := make([]int, f.n)
	for i := range rows {
		rows[i] = i
	}
	leading := rows[:f.rank]
	vr, err := f.v.Induced(rows, leading)
	if err != nil {
		return 0, matrixErrorf(opReconstruct, err)
	}

	return residualNorm(mulDense(scaleColumns(f.u, f.s), transposeDense(vr)), da), nil
}

// OrthogonalityError returns ‖QᵀQ − I‖_F for any m×n q.
func OrthogonalityError(q Matrix) (float64, error) {
	dq, err := asDense(q)
	if err != nil {
		return 0, matrixErrorf(opOrthogonality, err)
	}
	qtq := mulDense(transposeDense(dq), dq)
	for i := 0; i < qtq.r; i++ {
		qtq.data[i*qtq.c+i] -= 1
	}

	return floats.Norm(qtq.data, 2), nil
}

// scaleColumns returns m·diag(d) for len(d) == m.Cols().
func scaleColumns(m *Dense, d []float64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.data[i*m.c+j] * d[j]
		}
	}

	return out
}
