// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed sparse rows).
//
// Purpose:
//   - Hold wide, mostly-zero feature matrices (one-hot blocks) without paying r*c memory.
//   - Implement the same Matrix surface as Dense so callers stay layout-agnostic.
//
// Layout:
//   - indptr has r+1 entries; row i owns indices[indptr[i]:indptr[i+1]].
//   - Column indices inside a row are strictly increasing.
//   - Explicit zeros are never stored: Set(i, j, 0) removes the entry.
//
// Complexity quicksheet:
//   - At: O(log k) for k entries in the row; Set: O(nnz) worst case (insertion shifts);
//     appending in row-major order via Set is amortized O(1) per entry at the tail.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Sparse is a compressed-sparse-row matrix of float64 values.
type Sparse struct {
	r, c           int
	indptr         []int     // len r+1
	indices        []int     // column index per stored value
	data           []float64 // stored values (never 0)
	validateNaNInf bool
}

var _ Matrix = (*Sparse)(nil)

// sparseErrorf mirrors denseErrorf for the CSR layout.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// NewSparse creates an empty r×c sparse matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		indptr:         make([]int, rows+1),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored (non-zero) entries.
func (s *Sparse) NNZ() int { return len(s.data) }

// find locates column col inside row row.
// Returns the absolute position and whether the entry exists.
func (s *Sparse) find(row, col int) (int, bool) {
	lo, hi := s.indptr[row], s.indptr[row+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], col)

	return k, k < hi && s.indices[k] == col
}

func (s *Sparse) checkBounds(row, col int) error {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col); absent entries read as 0.
func (s *Sparse) At(row, col int) (float64, error) {
	if err := s.checkBounds(row, col); err != nil {
		return 0, sparseErrorf(ctxAt, row, col, err)
	}
	if k, ok := s.find(row, col); ok {
		return s.data[k], nil
	}

	return 0, nil
}

// Set stores v at (row, col). Writing 0 deletes the entry.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf under the strict numeric policy.
func (s *Sparse) Set(row, col int, v float64) error {
	if err := s.checkBounds(row, col); err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if s.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}

	k, ok := s.find(row, col)
	switch {
	case ok && v == 0:
		s.indices = append(s.indices[:k], s.indices[k+1:]...)
		s.data = append(s.data[:k], s.data[k+1:]...)
		s.shiftRowPointers(row, -1)
	case ok:
		s.data[k] = v
	case v != 0:
		s.indices = append(s.indices, 0)
		s.data = append(s.data, 0)
		copy(s.indices[k+1:], s.indices[k:])
		copy(s.data[k+1:], s.data[k:])
		s.indices[k] = col
		s.data[k] = v
		s.shiftRowPointers(row, 1)
	}

	return nil
}

// shiftRowPointers moves the end pointer of row and every later row by delta.
func (s *Sparse) shiftRowPointers(row, delta int) {
	for i := row + 1; i <= s.r; i++ {
		s.indptr[i] += delta
	}
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(nnz + r).
func (s *Sparse) Clone() Matrix {
	return &Sparse{
		r:              s.r,
		c:              s.c,
		indptr:         append([]int(nil), s.indptr...),
		indices:        append([]int(nil), s.indices...),
		data:           append([]float64(nil), s.data...),
		validateNaNInf: s.validateNaNInf,
	}
}

// Do visits stored entries in row-major order until f returns false.
// Zeros are not visited.
func (s *Sparse) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			if !f(i, s.indices[k], s.data[k]) {
				return
			}
		}
	}
}

// ToDense materializes the matrix in row-major layout.
// Complexity: O(r*c).
func (s *Sparse) ToDense() *Dense {
	d := &Dense{r: s.r, c: s.c, data: make([]float64, s.r*s.c), validateNaNInf: s.validateNaNInf}
	s.Do(func(i, j int, v float64) bool {
		d.data[i*s.c+j] = v
		return true
	})

	return d
}
