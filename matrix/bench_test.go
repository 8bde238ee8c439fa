// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the factorizations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix sizes to benchmark (textbook scale).
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
	sinkF float64
	sinkA any
)

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func fillDenseRand(b *testing.B, m *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// spdBench returns AᵀA + n·I for a random A.
func spdBench(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	a := mustDense(b, n, n)
	fillDenseRand(b, a, seed)
	at, err := matrix.Transpose(a)
	if err != nil {
		b.Fatal(err)
	}
	g, err := matrix.Mul(at, a)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		v, _ := g.At(i, i)
		_ = g.Set(i, i, v+float64(n))
	}

	return g
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLUSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 11)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, 2*n, n)
			fillDenseRand(b, A, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.QR(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = f
			}
		})
	}
}

func BenchmarkCholesky(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := spdBench(b, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.Cholesky(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f.Determinant()
			}
		})
	}
}

func BenchmarkSpectral(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := spdBench(b, n, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.SpectralDecomposition(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = f.Values()
			}
		})
	}
}

func BenchmarkSVD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, 2*n, n)
			fillDenseRand(b, A, 21)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.SVD(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = f.S()
			}
		})
	}
}
