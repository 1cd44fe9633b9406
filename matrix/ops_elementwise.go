// SPDX-License-Identifier: MIT
// Package: matrix
//
// Column kernels behind FillNaNColumns and ShiftScaleColumns. Each one pairs
// column j of the input with the j-th entry of a parameter vector and writes
// a fresh Dense; the input is never modified.
//
// A *Dense input passes its numeric policy to the result. Any other input
// (typically a one-hot Sparse block) gets a relaxed result.

package matrix

import (
	"math"
)

// colFunc combines one element with the parameter of its column.
type colFunc func(v, p float64) float64

// newOutputLike allocates the result buffer for a column kernel over X.
func newOutputLike(X Matrix) (*Dense, error) {
	out, err := NewDense(X.Rows(), X.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
	}

	return out, nil
}

// ewColumns writes out[i,j] = f(X[i,j], params[j]) for every element.
// Time O(r*c); loops run i then j.
func ewColumns(tag string, X Matrix, params []float64, f colFunc) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(params, X.Cols()); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := newOutputLike(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if d, ok := X.(*Dense); ok {
		for k, v := range d.data {
			out.data[k] = f(v, params[k%d.c])
		}

		return out, nil
	}

	r, c := out.r, out.c
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*c+j] = f(v, params[j])
		}
	}

	return out, nil
}

// ewBroadcastSubCols: out[i,j] = X[i,j] - shift[j].
func ewBroadcastSubCols(X Matrix, shift []float64) (*Dense, error) {
	return ewColumns("broadcastSubCols", X, shift, func(v, p float64) float64 { return v - p })
}

// ewScaleCols: out[i,j] = X[i,j] * scale[j].
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	return ewColumns("scaleCols", X, scale, func(v, p float64) float64 { return v * p })
}

// ewFillNaNCols replaces NaN in column j with fill[j]. Infinities stay.
func ewFillNaNCols(X Matrix, fill []float64) (*Dense, error) {
	return ewColumns("fillNaNCols", X, fill, func(v, p float64) float64 {
		if math.IsNaN(v) {
			return p
		}

		return v
	})
}
