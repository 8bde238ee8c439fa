// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector products. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical building blocks shared by the factorizations and diagnostics.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel reads its operands through asDense: *Dense operands are
//     used in place (read only), any other Matrix is materialized once.
//   - Results are always freshly allocated *Dense values.

package matrix

import "fmt"

// ZeroSum is the initial sum value for substitution loops and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "Scale"
	opMatVec        = "MatVec"
	opLU            = "LU"
	opSolveLU       = "SolveLU"
	opInverse       = "Inverse"
	opDeterminant   = "Determinant"
	opSolve         = "Solve"
	opQR            = "QR"
	opSolveQR       = "SolveQR"
	opCholesky      = "Cholesky"
	opSolveCholesky = "SolveCholesky"
	opSpectral      = "SpectralDecomposition"
	opSVD           = "SVD"
	opPseudoInverse = "PseudoInverse"
	opReconstruct   = "ReconstructionError"
	opOrthogonality = "OrthogonalityError"
	opFrobenius     = "FrobeniusNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// The result MUST be treated as read-only by callers.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return denseCopyOf(m)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: read both through asDense and walk the flat buffers 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd/opSub).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := newDenseZeroOK(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add returns a + b.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j loop over the flat buffers, skipping zero a[i,k].
//
// Behavior highlights:
//   - The i-k-j order streams rows of b, which is cache-friendly for row-major data.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense is the unchecked product kernel (shapes pre-validated).
func mulDense(a, b *Dense) *Dense {
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c), validateNaNInf: DefaultValidateNaNInf}

	var (
		i, j, k    int
		av         float64
		rowA, rowR int
		rowB       int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res
}

// Transpose returns mᵀ.
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm), nil
}

// transposeDense is the unchecked transpose kernel.
func transposeDense(m *Dense) *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is not finite.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: dm.r, c: dm.c, data: make([]float64, len(dm.data)), validateNaNInf: dm.validateNaNInf}
	for idx, v := range dm.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors:
//   - ErrNilMatrix for nil m or nil x.
//   - ErrDimensionMismatch when len(x) != m.Cols().
//
// Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, dm.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return matVecDense(dm, x), nil
}

// matVecDense is the unchecked matrix-vector kernel.
func matVecDense(m *Dense, x []float64) []float64 {
	y := make([]float64, m.r)

	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = ZeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y
}
