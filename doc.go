// Package linalg is a small dense linear-algebra kernel library: the
// factorizations every numeric feature upstream leans on, plus the derived
// operations and diagnostics built on top of them.
//
// What is inside?
//
//	A pure-Go, dependency-light toolkit that brings together:
//		• Storage: row-major Dense matrices behind a small Matrix interface
//		• LU with partial pivoting: determinant, inverse, linear solve
//		• QR via modified Gram–Schmidt: orthonormal bases, least squares
//		• Cholesky: SPD factorization and solve
//		• Jacobi rotations: symmetric eigendecomposition, eigenvalues descending
//		• SVD on top of Jacobi: numerical rank, pseudo-inverse, conditioning
//		• Diagnostics: Frobenius reconstruction and orthogonality residuals
//
// Every factorization copies its input, returns an immutable result and
// never shares storage with the caller, so calls are safe to run from many
// goroutines at once.
//
// Layout:
//
//	matrix/            Matrix/Dense, kernels, factorizations, diagnostics
//	internal/textio/   text matrix parsing and formatting for the CLI
//	internal/spectrum/ scree plots of eigen/singular values
//	internal/cli/      cobra + viper command tree
//	cmd/linalg/        the linalg command
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{4, 3}, {6, 3}})
//	f, _ := matrix.LU(A)
//	fmt.Println(f.Determinant()) // -6
//
//	go get github.com/katalvlaran/linalg
package linalg
