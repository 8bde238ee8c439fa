// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Collaborators built on gonum exchange data through these two functions;
// values are always copied, never shared.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix.
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if d.r == 0 || d.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Errors: ErrNilMatrix for nil, ErrInvalidDimensions for an empty matrix,
// ErrNaNInf for non-finite entries.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
