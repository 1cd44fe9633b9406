// SPDX-License-Identifier: MIT

// Package detect infers the semantic type of every column of a frame.
//
// Detection is a flat set of predicates over per-column statistics:
//
//	continuous         = float ∨ integer ∨ cleanFloatString
//	categorical        = (integer ∨ string) ∧ fewEntries
//	date               = date
//	dirty_float_string = string ∧ threshold < floatFrequency < 1
//	useless            = none of the above
//
// where fewEntries compares the number of distinct non-missing values with
// max(MinCategoricalDistinct, rows*CategoricalFraction) and floatFrequency is
// the share of non-missing string values matching NumericPattern.
// A column's flags depend only on its own values and the row count.
package detect

import (
	"fmt"
	"regexp"

	"github.com/katalvlaran/fml/frame"
)

// NumericPattern is the numeric-literal pattern used for string columns.
// It matches the empty string and lone signs or dots as well.
const NumericPattern = `^[+-]?[0-9]*\.?[0-9]*$`

var numericRe = regexp.MustCompile(NumericPattern)

// IsNumericLiteral reports whether s fully matches NumericPattern.
func IsNumericLiteral(s string) bool { return numericRe.MatchString(s) }

// columnStats are the observations the detection rules run on.
type columnStats struct {
	kind     frame.StorageKind
	distinct int
	// floatFrequency is defined only for string columns with at least one
	// non-missing value.
	floatFrequency    float64
	hasFloatFrequency bool
}

// Detect classifies every column of in.
//
// Errors:
//   - ErrUnsupportedInput when in is not a *frame.Frame (array-like input).
//   - ErrEmptyDataset when the frame has no columns or no rows.
//
// Determinism:
//   - Identical input always yields an identical Report; in is not mutated.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows) per column for distinct counting.
func Detect(in frame.Shaped, opts ...Option) (*Report, error) {
	f, ok := in.(*frame.Frame)
	if !ok || f == nil {
		return nil, fmt.Errorf("Detect(%T): %w", in, ErrUnsupportedInput)
	}
	if f.Cols() == 0 || f.Rows() == 0 {
		return nil, fmt.Errorf("Detect: %d rows × %d columns: %w", f.Rows(), f.Cols(), ErrEmptyDataset)
	}
	o := gatherOptions(opts...)

	threshold := o.cardinalityThreshold(f.Rows())
	columns := make([]ColumnTypes, f.Cols())
	for i := 0; i < f.Cols(); i++ {
		c := f.Column(i)
		columns[i] = classify(c.Name(), observe(c), threshold, o.dirtyThreshold)
	}

	report, err := NewReport(columns)
	if err != nil {
		return nil, fmt.Errorf("Detect: %w", err)
	}
	if o.verbosity > 0 {
		logDiagnostics(o.diagnosticsLogger(), report, o.verbosity)
	}

	return report, nil
}

// observe gathers the statistics of a single column.
func observe(c *frame.Column) columnStats {
	s := columnStats{kind: c.Kind(), distinct: c.Distinct()}
	if s.kind == frame.KindString {
		s.floatFrequency, s.hasFloatFrequency = floatFrequency(c)
	}

	return s
}

// floatFrequency returns the share of non-missing values matching
// NumericPattern; ok is false when the column has no non-missing value.
func floatFrequency(c *frame.Column) (freq float64, ok bool) {
	var matched, observed int
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		observed++
		if IsNumericLiteral(c.Str(i)) {
			matched++
		}
	}
	if observed == 0 {
		return 0, false
	}

	return float64(matched) / float64(observed), true
}

// classify applies the detection rules to one column's statistics.
func classify(name string, s columnStats, cardinality, dirtyThreshold float64) ColumnTypes {
	floats := s.kind == frame.KindFloat
	integers := s.kind == frame.KindInteger
	strings := s.kind == frame.KindString
	dates := s.kind == frame.KindDate

	cleanFloatString := s.hasFloatFrequency && s.floatFrequency == 1.0
	dirtyFloatString := s.hasFloatFrequency && s.floatFrequency > dirtyThreshold && !cleanFloatString
	fewEntries := float64(s.distinct) < cardinality

	t := ColumnTypes{
		Name:             name,
		Kind:             s.kind,
		Continuous:       floats || integers || cleanFloatString,
		Categorical:      (integers && fewEntries) || (strings && fewEntries),
		Date:             dates,
		DirtyFloatString: dirtyFloatString,
	}
	t.Useless = !(t.Continuous || t.Categorical || t.Date || t.DirtyFloatString)

	return t
}
