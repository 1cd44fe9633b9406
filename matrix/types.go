// SPDX-License-Identifier: MIT

package matrix

// Matrix is a samples × features table of float64 values.
//
// The preprocessing pipeline returns Dense or Sparse depending on output
// density; callers read the result through this interface either way.
type Matrix interface {
	// Rows is the sample count.
	Rows() int

	// Cols is the feature count.
	Cols() int

	// At reads element (i, j); bad indices yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes element (i, j); bad indices yield ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
