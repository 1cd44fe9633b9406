// SPDX-License-Identifier: MIT

package preprocess

import (
	"fmt"

	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
)

// block is a fitted transform bound to a column subset.
type block interface {
	fit(f *frame.Frame) error
	transform(f *frame.Frame) (matrix.Matrix, error)
	columns() []string
	featureNames() []string
}

var (
	_ block = (*continuousBlock)(nil)
	_ block = (*categoricalBlock)(nil)
)

// columnTransformer applies each block to its columns and concatenates the
// outputs left to right.
type columnTransformer struct {
	blocks         []block
	denseThreshold float64
}

// transform runs every block and stacks the results. The output is Sparse
// only when some block is sparse and the overall density does not exceed
// denseThreshold.
func (ct *columnTransformer) transform(f *frame.Frame) (matrix.Matrix, error) {
	outs := make([]matrix.Matrix, len(ct.blocks))
	var nnz, width int
	sparse := false
	for k, b := range ct.blocks {
		out, err := b.transform(f)
		if err != nil {
			return nil, err
		}
		n, err := matrix.NNZ(out)
		if err != nil {
			return nil, fmt.Errorf("columnTransformer: %w", err)
		}
		if _, ok := out.(*matrix.Sparse); ok {
			sparse = true
		}
		nnz += n
		width += out.Cols()
		outs[k] = out
	}

	density := float64(nnz) / float64(f.Rows()*width)
	if sparse && density <= ct.denseThreshold {
		out, err := matrix.HStackSparse(outs...)
		if err != nil {
			return nil, fmt.Errorf("columnTransformer: %w", err)
		}
		return out, nil
	}

	out, err := matrix.HStackDense(outs...)
	if err != nil {
		return nil, fmt.Errorf("columnTransformer: %w", err)
	}

	return out, nil
}

func (ct *columnTransformer) featureNames() []string {
	var names []string
	for _, b := range ct.blocks {
		names = append(names, b.featureNames()...)
	}

	return names
}
