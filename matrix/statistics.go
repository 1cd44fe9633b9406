// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-column statistics and transforms that feature
//     preprocessing needs: NaN-aware means, population standard deviations
//     and medians, NaN filling and affine (shift, scale) column transforms.
//   - Compose the public helpers from the ew* micro-kernels; statistics are
//     computed with gonum/stat over extracted column slices.
//
// Exposed API:
//   - ColumnMeanStd(X)             -> (means, stds)   // NaN ignored; population std (ddof=0)
//   - ColumnMedians(X)             -> medians         // NaN ignored
//   - FillNaNColumns(X, fill)      -> Y               // Y[i,j] = fill[j] where X[i,j] is NaN
//   - ShiftScaleColumns(X, sh, sc) -> Y               // Y[i,j] = (X[i,j] - sh[j]) * sc[j]
//   - NNZ(X), Density(X)
//
// Determinism:
//   - Fixed j-outer extraction order; sorting for medians is on a private copy.
//   - Columns without any finite observation report mean 0, std 0 and median 0.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeanStd     = "ColumnMeanStd"
	opColumnMedians     = "ColumnMedians"
	opFillNaNColumns    = "FillNaNColumns"
	opShiftScaleColumns = "ShiftScaleColumns"
	opNNZ               = "NNZ"
)

// observedColumn returns the non-NaN values of column j.
func observedColumn(X Matrix, j int) ([]float64, error) {
	r := X.Rows()
	out := make([]float64, 0, r)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		if d, ok := X.(*Dense); ok {
			v = d.data[i*d.c+j]
		} else if v, err = X.At(i, j); err != nil {
			return nil, err
		}
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// ColumnMeanStd returns the per-column mean and population standard deviation,
// skipping NaN entries.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r) scratch per column.
func ColumnMeanStd(X Matrix) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMeanStd, err)
	}
	c := X.Cols()
	means := make([]float64, c)
	stds := make([]float64, c)
	for j := 0; j < c; j++ {
		col, err := observedColumn(X, j)
		if err != nil {
			return nil, nil, matrixErrorf(opColumnMeanStd, err)
		}
		if len(col) == 0 {
			continue
		}
		mean, variance := stat.PopMeanVariance(col, nil)
		means[j] = mean
		stds[j] = math.Sqrt(variance)
	}

	return means, stds, nil
}

// ColumnMedians returns the per-column median, skipping NaN entries.
// Even counts average the two middle values.
//
// Complexity:
//   - Time O(c * r log r), Space O(r) scratch per column.
func ColumnMedians(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMedians, err)
	}
	c := X.Cols()
	medians := make([]float64, c)
	for j := 0; j < c; j++ {
		col, err := observedColumn(X, j)
		if err != nil {
			return nil, matrixErrorf(opColumnMedians, err)
		}
		medians[j] = median(col)
	}

	return medians, nil
}

// median sorts xs in place and returns its middle value (0 when empty).
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sort.Float64s(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}

// FillNaNColumns returns a copy of X with NaN entries of column j replaced by fill[j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(fill) != Cols).
func FillNaNColumns(X Matrix, fill []float64) (Matrix, error) {
	out, err := ewFillNaNCols(X, fill)
	if err != nil {
		return nil, matrixErrorf(opFillNaNColumns, err)
	}

	return out, nil
}

// ShiftScaleColumns returns Y with Y[i,j] = (X[i,j] - shift[j]) * scale[j].
// With shift = means and scale = 1/std this is column standardization.
// NaN entries stay NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (vector lengths != Cols).
func ShiftScaleColumns(X Matrix, shift, scale []float64) (Matrix, error) {
	centered, err := ewBroadcastSubCols(X, shift)
	if err != nil {
		return nil, matrixErrorf(opShiftScaleColumns, err)
	}
	out, err := ewScaleCols(centered, scale)
	if err != nil {
		return nil, matrixErrorf(opShiftScaleColumns, err)
	}

	return out, nil
}

// nonZero reports whether v counts as a stored entry (NaN counts).
func nonZero(v float64) bool { return v != 0 }

// NNZ counts non-zero entries of X. Sparse reports its stored count.
// Complexity: O(r*c) for Dense and generic inputs, O(1) for Sparse.
func NNZ(X Matrix) (int, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opNNZ, err)
	}
	switch m := X.(type) {
	case *Sparse:
		return m.NNZ(), nil
	case *Dense:
		return floats.Count(nonZero, m.data), nil
	}

	n := 0
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			v, err := X.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNNZ, err)
			}
			if nonZero(v) {
				n++
			}
		}
	}

	return n, nil
}

// Density returns NNZ(X) / (Rows*Cols).
func Density(X Matrix) (float64, error) {
	n, err := NNZ(X)
	if err != nil {
		return 0, err
	}

	return float64(n) / float64(X.Rows()*X.Cols()), nil
}
