// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and small LU helpers to matrix_test ONLY.
//   - Enable white-box verification of the *Dense fast path vs the generic
//     fallback without widening the production API.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here.
//   - If a private helper changes signature, mirror the change here once.

var (
	// PermutationInversions_TestOnly exposes the LU sign helper.
	PermutationInversions_TestOnly = permutationInversions
	// IsNonFinite_TestOnly exposes the NaN/Inf predicate used by validators.
	IsNonFinite_TestOnly = isNonFinite
)

// Panic message exports to avoid magic strings in tests.
const (
	PanicZeroTolInvalid_TestOnly      = panicZeroTolInvalid
	PanicMaxRotationsInvalid_TestOnly = panicMaxRotationsInvalid
)

// EwBroadcastSubCols_TestOnly forwards to the private ewBroadcastSubCols kernel.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Matrix, scale []float64) (Matrix, error) {
	return ewScaleCols(X, scale)
}
