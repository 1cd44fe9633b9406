// SPDX-License-Identifier: MIT

package preprocess

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
)

// Pipeline is a fitted preprocessor. It is read-only after Fit and safe for
// concurrent Transform calls.
type Pipeline struct {
	columns []string
	kinds   []frame.StorageKind
	rows    int
	cols    int
	types   *detect.Report
	ct      *columnTransformer
}

// Transform applies the fitted steps to in. The input must carry the fit-time
// columns (same names, order and storage kinds); the row count may differ.
//
// Errors:
//   - ErrNotFitted for a nil or zero Pipeline.
//   - detect.ErrUnsupportedInput for non-frame input.
//   - detect.ErrEmptyDataset for a frame without rows.
//   - ErrSchemaMismatch when the columns differ from fit time.
//   - ErrUnknownCategory for categories unseen at fit time (unless ignored).
//   - ErrCastFloat when a continuous column holds a non-numeric value.
func (p *Pipeline) Transform(in frame.Shaped) (matrix.Matrix, error) {
	if p == nil || p.ct == nil {
		return nil, fmt.Errorf("Transform: %w", ErrNotFitted)
	}
	f, ok := in.(*frame.Frame)
	if !ok || f == nil {
		return nil, fmt.Errorf("Transform(%T): %w", in, detect.ErrUnsupportedInput)
	}
	if err := p.checkSchema(f); err != nil {
		return nil, fmt.Errorf("Transform: %w", err)
	}
	if f.Rows() == 0 {
		return nil, fmt.Errorf("Transform: %w", detect.ErrEmptyDataset)
	}

	out, err := p.ct.transform(f)
	if err != nil {
		return nil, fmt.Errorf("Transform: %w", err)
	}

	return out, nil
}

func (p *Pipeline) checkSchema(f *frame.Frame) error {
	if f.Cols() != p.cols {
		return fmt.Errorf("%d columns, fitted on %d: %w", f.Cols(), p.cols, ErrSchemaMismatch)
	}
	for i := 0; i < f.Cols(); i++ {
		c := f.Column(i)
		if c.Name() != p.columns[i] {
			return fmt.Errorf("column %d is %q, fitted on %q: %w", i, c.Name(), p.columns[i], ErrSchemaMismatch)
		}
		if c.Kind() != p.kinds[i] {
			return fmt.Errorf("column %q is %s, fitted on %s: %w", c.Name(), c.Kind(), p.kinds[i], ErrSchemaMismatch)
		}
	}

	return nil
}

// FeatureNames returns the output column names: continuous columns by name,
// then one "<column>_<category>" per one-hot output.
func (p *Pipeline) FeatureNames() []string {
	if p == nil || p.ct == nil {
		return nil
	}

	return p.ct.featureNames()
}

// InputShape returns the fit-time rows and columns.
func (p *Pipeline) InputShape() (rows, cols int) {
	if p == nil {
		return 0, 0
	}

	return p.rows, p.cols
}

// Columns returns the fit-time input column names.
func (p *Pipeline) Columns() []string {
	if p == nil {
		return nil
	}

	return append([]string(nil), p.columns...)
}

// Types returns the detection report the pipeline was fitted with.
func (p *Pipeline) Types() *detect.Report {
	if p == nil {
		return nil
	}

	return p.types
}

// Dropped returns the input columns that contribute no output.
func (p *Pipeline) Dropped() []string {
	if p == nil || p.ct == nil {
		return nil
	}
	used := make(map[string]bool)
	for _, b := range p.ct.blocks {
		for _, name := range b.columns() {
			used[name] = true
		}
	}
	var out []string
	for _, name := range p.columns {
		if !used[name] {
			out = append(out, name)
		}
	}

	return out
}

// Imputes reports whether the continuous block fills missing values.
func (p *Pipeline) Imputes() bool {
	if p == nil || p.ct == nil {
		return false
	}
	for _, b := range p.ct.blocks {
		if cb, ok := b.(*continuousBlock); ok {
			return cb.imputes()
		}
	}

	return false
}

func (p *Pipeline) logFit(log *zap.SugaredLogger) {
	log.Infof("Fitted pipeline: %d input columns, %d output features", p.cols, len(p.FeatureNames()))
	if p.Imputes() {
		log.Info("Imputing missing continuous values with column medians")
	}
	if dropped := p.Dropped(); len(dropped) > 0 {
		log.Infof("Dropped columns: %v", dropped)
	}
	_ = log.Sync()
}
