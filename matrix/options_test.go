// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultZeroTol, o.ZeroTol())
	assert.Equal(t, matrix.DefaultJacobiTol, o.JacobiTol())
	assert.Equal(t, matrix.DefaultSymmetryTol, o.SymmetryTol())
	assert.Equal(t, matrix.DefaultRankTol, o.RankTol())
	assert.Equal(t, 200*4*4, o.MaxRotations(4))
	assert.Equal(t, 200, o.MaxRotations(0), "degenerate sizes still get a positive budget")
}

func TestOptions_Overrides(t *testing.T) {
	o := matrix.NewOptions(
		matrix.WithZeroTol(1e-9),
		matrix.WithJacobiTol(1e-10),
		matrix.WithSymmetryTol(1e-6),
		matrix.WithRankTol(1e-4),
		matrix.WithMaxRotations(50),
		matrix.WithZeroTol(1e-8), // last writer wins
	)
	assert.Equal(t, 1e-8, o.ZeroTol())
	assert.Equal(t, 1e-10, o.JacobiTol())
	assert.Equal(t, 1e-6, o.SymmetryTol())
	assert.Equal(t, 1e-4, o.RankTol())
	assert.Equal(t, 50, o.MaxRotations(100))
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	cases := map[string]func(){
		"zero-neg":      func() { matrix.WithZeroTol(-1) },
		"zero-nan":      func() { matrix.WithZeroTol(math.NaN()) },
		"jacobi-inf":    func() { matrix.WithJacobiTol(math.Inf(1)) },
		"symmetry-neg":  func() { matrix.WithSymmetryTol(-1e-3) },
		"rank-nan":      func() { matrix.WithRankTol(math.NaN()) },
		"rotations-0":   func() { matrix.WithMaxRotations(0) },
		"rotations-neg": func() { matrix.WithMaxRotations(-5) },
	}
	for name, fn := range cases {
		require.Panics(t, fn, name)
	}
	require.NotPanics(t, func() { matrix.WithZeroTol(0) })
}
