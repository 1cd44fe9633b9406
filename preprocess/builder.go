// SPDX-License-Identifier: MIT

// Package preprocess turns a typed frame into a numeric feature matrix.
//
// A Builder holds configuration only. Fit consumes a frame and its
// detect.Report and returns a Pipeline bound to the columns selected at fit
// time:
//
//	continuous  → cast to float64 → [median imputation] → standardization
//	categorical → one-hot encoding
//
// The continuous block comes first in the output, the one-hot block second.
// Date, dirty-float-string and useless columns are dropped.
package preprocess

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
)

// Builder is the unfitted preprocessor configuration.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: gatherOptions(opts...)}
}

// Fit detects (when report is nil) or validates column types, then fits the
// continuous and categorical blocks on in.
//
// Errors:
//   - detect.ErrUnsupportedInput for non-frame input.
//   - detect.ErrEmptyDataset for a frame without rows or columns.
//   - ErrSchemaMismatch when report does not describe the frame's columns.
//   - ErrNoUsableColumns when nothing is continuous or categorical.
//   - ErrCastFloat when a continuous column holds a non-numeric value.
//
// in is never mutated; the returned Pipeline owns all fitted state.
func (b *Builder) Fit(in frame.Shaped, report *detect.Report) (*Pipeline, error) {
	f, ok := in.(*frame.Frame)
	if !ok || f == nil {
		return nil, fmt.Errorf("Fit(%T): %w", in, detect.ErrUnsupportedInput)
	}
	if f.Cols() == 0 || f.Rows() == 0 {
		return nil, fmt.Errorf("Fit: %w", detect.ErrEmptyDataset)
	}

	var err error
	if report == nil {
		if report, err = detect.Detect(f, b.opts.detectOpts...); err != nil {
			return nil, fmt.Errorf("Fit: %w", err)
		}
	} else if err = checkReport(f, report); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	var blocks []block
	if cols := report.Continuous(); len(cols) > 0 {
		cb := newContinuousBlock(cols)
		if err = cb.fit(f); err != nil {
			return nil, fmt.Errorf("Fit: continuous: %w", err)
		}
		blocks = append(blocks, cb)
	}
	if cols := report.Categorical(); len(cols) > 0 {
		cb := newCategoricalBlock(cols, b.opts.ignoreUnknown)
		if err = cb.fit(f); err != nil {
			return nil, fmt.Errorf("Fit: categorical: %w", err)
		}
		// Categorical columns without any observed value add no output.
		if cb.width() > 0 {
			blocks = append(blocks, cb)
		}
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("Fit: %d columns, none continuous or categorical: %w", f.Cols(), ErrNoUsableColumns)
	}

	p := &Pipeline{
		columns: f.Names(),
		kinds:   f.Kinds(),
		rows:    f.Rows(),
		cols:    f.Cols(),
		types:   report,
		ct:      &columnTransformer{blocks: blocks, denseThreshold: b.opts.denseThreshold},
	}
	if b.opts.verbosity > 0 {
		p.logFit(b.logger())
	}

	return p, nil
}

// FitTransform fits on in and transforms the same frame.
func (b *Builder) FitTransform(in frame.Shaped, report *detect.Report) (*Pipeline, matrix.Matrix, error) {
	p, err := b.Fit(in, report)
	if err != nil {
		return nil, nil, err
	}
	out, err := p.Transform(in)
	if err != nil {
		return nil, nil, err
	}

	return p, out, nil
}

func (b *Builder) logger() *zap.SugaredLogger {
	if b.opts.logger != nil {
		return b.opts.logger
	}

	return detect.NewConsoleLogger(os.Stdout)
}

// checkReport verifies that report names exactly the frame's columns with
// matching storage kinds.
func checkReport(f *frame.Frame, report *detect.Report) error {
	if report.Len() != f.Cols() {
		return fmt.Errorf("report has %d columns, frame has %d: %w", report.Len(), f.Cols(), ErrSchemaMismatch)
	}
	for _, t := range report.Columns() {
		c, ok := f.Lookup(t.Name)
		if !ok {
			return fmt.Errorf("report column %q not in frame: %w", t.Name, ErrSchemaMismatch)
		}
		if c.Kind() != t.Kind {
			return fmt.Errorf("column %q is %s, report says %s: %w", t.Name, c.Kind(), t.Kind, ErrSchemaMismatch)
		}
	}

	return nil
}
