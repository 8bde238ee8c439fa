// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, hide{b})
	require.NoError(t, err)
	CompareClose(t, sum, MustRows(t, [][]float64{{11, 22}, {33, 44}}), 0, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareClose(t, diff, MustRows(t, [][]float64{{9, 18}, {27, 36}}), 0, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, p, MustRows(t, [][]float64{{58, 64}, {139, 154}}), 0, 0)

	fallback, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, p.RawData(), fallback.RawData())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScaleMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareClose(t, at, MustRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), 0, 0)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareClose(t, s, MustRows(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}), 0, 0)
	_, err = matrix.Scale(a, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)
	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestConstructors(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.RawData())

	D, err := matrix.NewDiagonal([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0, 3}, D.RawData())

	Z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	like, err := matrix.ZerosLike(Z)
	require.NoError(t, err)
	assert.Equal(t, 3, like.Cols())

	_, err = matrix.IdentityLike(Z)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	id, err := matrix.IdentityLike(I)
	require.NoError(t, err)
	assert.Equal(t, I.RawData(), id.RawData())
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-10, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
