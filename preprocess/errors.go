// SPDX-License-Identifier: MIT
// Package preprocess: sentinel error set.
// Non-tabular input reuses detect.ErrUnsupportedInput and empty input reuses
// detect.ErrEmptyDataset so callers match one sentinel per condition.

package preprocess

import "errors"

var (
	// ErrNoUsableColumns is returned by Fit when detection leaves neither
	// continuous nor categorical columns. Fatal: fix the data upstream or
	// relax the detection thresholds.
	ErrNoUsableColumns = errors.New("preprocess: no usable feature columns")

	// ErrNotFitted is returned by Transform on a Pipeline that did not come
	// out of a successful Fit.
	ErrNotFitted = errors.New("preprocess: pipeline is not fitted")

	// ErrSchemaMismatch indicates a frame (or supplied report) whose columns
	// differ from the ones the pipeline expects.
	ErrSchemaMismatch = errors.New("preprocess: column schema mismatch")

	// ErrUnknownCategory indicates a categorical value not seen during Fit.
	ErrUnknownCategory = errors.New("preprocess: unknown category")

	// ErrCastFloat indicates a continuous column value that cannot be cast to float64.
	ErrCastFloat = errors.New("preprocess: cannot cast value to float")
)
