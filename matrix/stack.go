// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Concatenate column blocks horizontally ([A | B | ...]) into a single
//     Dense or Sparse result. Feature pipelines produce one block per column
//     group and stack them at the end.
//
// Determinism:
//   - Blocks are laid out left to right in argument order; rows in order.
//   - Results use the relaxed numeric policy so NaN placeholders survive.

package matrix

const (
	opHStackDense  = "HStackDense"
	opHStackSparse = "HStackSparse"
)

// blockValue reads (i,j) from a block, using the Dense buffer when possible.
func blockValue(m Matrix, i, j int) (float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j], nil
	}

	return m.At(i, j)
}

// stackWidth validates blocks and returns the total column count.
func stackWidth(op string, ms []Matrix) (int, error) {
	if len(ms) == 0 {
		return 0, matrixErrorf(op, ErrInvalidDimensions)
	}
	if err := ValidateSameRows(ms...); err != nil {
		return 0, matrixErrorf(op, err)
	}
	width := 0
	for _, m := range ms {
		width += m.Cols()
	}

	return width, nil
}

// HStackDense returns [ms[0] | ms[1] | ...] as a row-major Dense.
//
// Errors:
//   - ErrInvalidDimensions when no blocks are given.
//   - ErrNilMatrix / ErrDimensionMismatch from ValidateSameRows.
//
// Complexity:
//   - Time O(r*C), Space O(r*C) with C the total column count.
func HStackDense(ms ...Matrix) (*Dense, error) {
	width, err := stackWidth(opHStackDense, ms)
	if err != nil {
		return nil, err
	}
	r := ms[0].Rows()
	out, err := NewDense(r, width, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opHStackDense, err)
	}

	offset := 0
	for _, m := range ms {
		c := m.Cols()
		if s, ok := m.(*Sparse); ok {
			s.Do(func(i, j int, v float64) bool {
				out.data[i*width+offset+j] = v
				return true
			})
			offset += c
			continue
		}
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, err := blockValue(m, i, j)
				if err != nil {
					return nil, matrixErrorf(opHStackDense, err)
				}
				out.data[i*width+offset+j] = v
			}
		}
		offset += c
	}

	return out, nil
}

// HStackSparse returns [ms[0] | ms[1] | ...] in CSR layout.
// Entries are appended in row-major order, so construction is O(r*C) without
// insertion shifts.
func HStackSparse(ms ...Matrix) (*Sparse, error) {
	width, err := stackWidth(opHStackSparse, ms)
	if err != nil {
		return nil, err
	}
	r := ms[0].Rows()
	out, err := NewSparse(r, width, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opHStackSparse, err)
	}

	for i := 0; i < r; i++ {
		offset := 0
		for _, m := range ms {
			if s, ok := m.(*Sparse); ok {
				for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
					out.indices = append(out.indices, offset+s.indices[k])
					out.data = append(out.data, s.data[k])
				}
				offset += s.c
				continue
			}
			for j := 0; j < m.Cols(); j++ {
				v, err := blockValue(m, i, j)
				if err != nil {
					return nil, matrixErrorf(opHStackSparse, err)
				}
				if nonZero(v) {
					out.indices = append(out.indices, offset+j)
					out.data = append(out.data, v)
				}
			}
			offset += m.Cols()
		}
		out.indptr[i+1] = len(out.data)
	}

	return out, nil
}
