// SPDX-License-Identifier: MIT

package preprocess

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
)

// numericStep is one stage of the continuous block. fit sees the output of
// the previous stage on the training frame.
type numericStep interface {
	fit(X matrix.Matrix) error
	transform(X matrix.Matrix) (matrix.Matrix, error)
}

// medianImputer replaces NaN with the fit-time column median.
type medianImputer struct {
	medians []float64
}

func (m *medianImputer) fit(X matrix.Matrix) error {
	medians, err := matrix.ColumnMedians(X)
	if err != nil {
		return fmt.Errorf("medianImputer.fit: %w", err)
	}
	m.medians = medians

	return nil
}

func (m *medianImputer) transform(X matrix.Matrix) (matrix.Matrix, error) {
	out, err := matrix.FillNaNColumns(X, m.medians)
	if err != nil {
		return nil, fmt.Errorf("medianImputer.transform: %w", err)
	}

	return out, nil
}

// standardScaler centers columns on the fit-time mean and divides by the
// population standard deviation. Constant columns keep scale 1.
type standardScaler struct {
	means  []float64
	scales []float64 // 1/std
}

func (s *standardScaler) fit(X matrix.Matrix) error {
	means, stds, err := matrix.ColumnMeanStd(X)
	if err != nil {
		return fmt.Errorf("standardScaler.fit: %w", err)
	}
	s.means = means
	s.scales = make([]float64, len(stds))
	for j, sd := range stds {
		if sd == 0 {
			s.scales[j] = 1
			continue
		}
		s.scales[j] = 1 / sd
	}

	return nil
}

func (s *standardScaler) transform(X matrix.Matrix) (matrix.Matrix, error) {
	out, err := matrix.ShiftScaleColumns(X, s.means, s.scales)
	if err != nil {
		return nil, fmt.Errorf("standardScaler.transform: %w", err)
	}

	return out, nil
}

// continuousBlock casts the selected columns to float64 and runs the
// numeric steps: [medianImputer] → standardScaler.
type continuousBlock struct {
	cols  []string
	steps []numericStep
}

func newContinuousBlock(cols []string) *continuousBlock {
	return &continuousBlock{cols: cols}
}

// fit casts the training columns, decides whether imputation is needed and
// fits every step in order.
func (b *continuousBlock) fit(f *frame.Frame) error {
	X, err := castFloats(f, b.cols)
	if err != nil {
		return err
	}

	b.steps = b.steps[:0]
	if hasMissing(X) {
		b.steps = append(b.steps, &medianImputer{})
	}
	b.steps = append(b.steps, &standardScaler{})

	var cur matrix.Matrix = X
	for _, step := range b.steps {
		if err = step.fit(cur); err != nil {
			return err
		}
		if cur, err = step.transform(cur); err != nil {
			return err
		}
	}

	return nil
}

func (b *continuousBlock) transform(f *frame.Frame) (matrix.Matrix, error) {
	X, err := castFloats(f, b.cols)
	if err != nil {
		return nil, err
	}
	var cur matrix.Matrix = X
	for _, step := range b.steps {
		if cur, err = step.transform(cur); err != nil {
			return nil, err
		}
	}

	return cur, nil
}

func (b *continuousBlock) columns() []string { return b.cols }

func (b *continuousBlock) featureNames() []string {
	return append([]string(nil), b.cols...)
}

func (b *continuousBlock) imputes() bool {
	for _, step := range b.steps {
		if _, ok := step.(*medianImputer); ok {
			return true
		}
	}

	return false
}

// hasMissing reports whether any column of X holds a NaN.
func hasMissing(X *matrix.Dense) bool {
	for j := 0; j < X.Cols(); j++ {
		col, _ := X.Column(j)
		if floats.HasNaN(col) {
			return true
		}
	}

	return false
}

// castFloats builds a rows×len(cols) Dense from the named columns.
// Missing values become NaN.
func castFloats(f *frame.Frame, cols []string) (*matrix.Dense, error) {
	X, err := matrix.NewDense(f.Rows(), len(cols), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("castFloats: %w", err)
	}
	for j, name := range cols {
		c, ok := f.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("castFloats: %q: %w", name, ErrSchemaMismatch)
		}
		for i := 0; i < c.Len(); i++ {
			v, err := castValue(c, i)
			if err != nil {
				return nil, fmt.Errorf("castFloats: %q row %d: %w", name, i, err)
			}
			_ = X.Set(i, j, v) // bounds are fixed by construction
		}
	}

	return X, nil
}

// castValue converts value i of c to float64 (NaN when missing).
// String values that match detect.NumericPattern without any digit ("",
// ".", "+") are treated as missing.
func castValue(c *frame.Column, i int) (float64, error) {
	if c.IsNull(i) {
		return math.NaN(), nil
	}
	switch c.Kind() {
	case frame.KindFloat:
		return c.Float(i), nil
	case frame.KindInteger:
		return float64(c.Int(i)), nil
	case frame.KindString:
		s := strings.TrimSpace(c.Str(i))
		if !strings.ContainsAny(s, "0123456789") && detect.IsNumericLiteral(s) {
			return math.NaN(), nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrCastFloat)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%s column: %w", c.Kind(), ErrCastFloat)
	}
}
