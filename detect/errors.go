// SPDX-License-Identifier: MIT
// Package detect: sentinel error set.
// Callers match with errors.Is; call sites wrap once with the operation name.

package detect

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks an input kind detection deliberately does not
	// handle (array-like data without column names or storage kinds).
	ErrNotImplemented = errors.New("detect: not implemented")

	// ErrUnsupportedInput is returned for non-tabular inputs such as a bare
	// matrix. It is not recoverable locally; errors.Is also matches
	// ErrNotImplemented.
	ErrUnsupportedInput = fmt.Errorf("detect: unsupported input kind: %w", ErrNotImplemented)

	// ErrEmptyDataset is returned for a frame with zero columns or zero rows.
	ErrEmptyDataset = errors.New("detect: empty dataset")
)
