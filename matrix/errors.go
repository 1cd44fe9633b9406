// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels returned by the matrix package. Call sites add context with
// fmt.Errorf("Op: %w", ErrX); match with errors.Is.
var (
	// ErrInvalidDimensions: a requested row or column count is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row or column index falls outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes disagree, e.g. a per-column vector
	// of the wrong length or stacked blocks with different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value hit a matrix with the strict policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix or nil parameter vector was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds is the older name of ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
