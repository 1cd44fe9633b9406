// Package matrix provides the numeric containers and column kernels used by
// feature preprocessing.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 storage.
//   - Dense, a row-major implementation with a configurable numeric policy
//     (reject NaN/Inf on Set by default).
//   - Sparse, a compressed-sparse-row implementation for one-hot heavy outputs.
//   - Column statistics (NaN-aware mean, population std, median) and
//     column transforms (FillNaNColumns, ShiftScaleColumns).
//   - HStackDense / HStackSparse for assembling per-group blocks.
//
// All public entry points return sentinel errors (see errors.go) instead of
// panicking on user input.
package matrix
