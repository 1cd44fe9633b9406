// SPDX-License-Identifier: MIT

package detect

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fml/frame"
)

// ColumnTypes holds the detection flags of a single column.
// Continuous, Categorical, Date and DirtyFloatString are independent;
// Useless is true exactly when all four are false.
type ColumnTypes struct {
	Name             string
	Kind             frame.StorageKind
	Continuous       bool
	Categorical      bool
	Date             bool
	DirtyFloatString bool
	Useless          bool
}

// Report maps every input column to its ColumnTypes, in input order.
// A Report is immutable: accessors return copies.
type Report struct {
	columns []ColumnTypes
	index   map[string]int
}

// Summary aggregates a Report: columns per storage kind and per semantic type.
type Summary struct {
	Floats, Integers, Strings, Dates, Others int

	Continuous, Categorical, Date, DirtyFloatString, Useless int
}

// NewReport builds a Report from per-column flags, recomputing Useless so the
// invariant holds regardless of the input.
// Repeated names yield frame.ErrDuplicateColumn.
func NewReport(columns []ColumnTypes) (*Report, error) {
	r := &Report{
		columns: make([]ColumnTypes, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := r.index[c.Name]; dup {
			return nil, fmt.Errorf("NewReport: %q: %w", c.Name, frame.ErrDuplicateColumn)
		}
		c.Useless = !(c.Continuous || c.Categorical || c.Date || c.DirtyFloatString)
		r.columns[i] = c
		r.index[c.Name] = i
	}

	return r, nil
}

// Len returns the number of columns in the report.
func (r *Report) Len() int { return len(r.columns) }

// Columns returns a copy of all column entries in input order.
func (r *Report) Columns() []ColumnTypes {
	return append([]ColumnTypes(nil), r.columns...)
}

// Lookup returns the entry for name.
func (r *Report) Lookup(name string) (ColumnTypes, bool) {
	i, ok := r.index[name]
	if !ok {
		return ColumnTypes{}, false
	}

	return r.columns[i], true
}

// Names returns the column names in input order.
func (r *Report) Names() []string {
	return r.filter(func(ColumnTypes) bool { return true })
}

// Continuous returns the names of continuous columns in input order.
func (r *Report) Continuous() []string {
	return r.filter(func(c ColumnTypes) bool { return c.Continuous })
}

// Categorical returns the names of categorical columns in input order.
func (r *Report) Categorical() []string {
	return r.filter(func(c ColumnTypes) bool { return c.Categorical })
}

// DirtyFloatStrings returns the names of dirty float string columns.
func (r *Report) DirtyFloatStrings() []string {
	return r.filter(func(c ColumnTypes) bool { return c.DirtyFloatString })
}

// Dropped returns the names of useless columns.
func (r *Report) Dropped() []string {
	return r.filter(func(c ColumnTypes) bool { return c.Useless })
}

func (r *Report) filter(keep func(ColumnTypes) bool) []string {
	var out []string
	for _, c := range r.columns {
		if keep(c) {
			out = append(out, c.Name)
		}
	}

	return out
}

// Summary counts columns per storage kind and per semantic flag.
func (r *Report) Summary() Summary {
	var s Summary
	for _, c := range r.columns {
		switch c.Kind {
		case frame.KindFloat:
			s.Floats++
		case frame.KindInteger:
			s.Integers++
		case frame.KindString:
			s.Strings++
		case frame.KindDate:
			s.Dates++
		default:
			s.Others++
		}
		s.Continuous += b2i(c.Continuous)
		s.Categorical += b2i(c.Categorical)
		s.Date += b2i(c.Date)
		s.DirtyFloatString += b2i(c.DirtyFloatString)
		s.Useless += b2i(c.Useless)
	}

	return s
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

// String renders the report as a fixed-width table, one row per column.
func (r *Report) String() string {
	width := len("column")
	for _, c := range r.columns {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-7s  %-10s  %-11s  %-5s  %-18s  %s\n",
		width, "column", "kind", "continuous", "categorical", "date", "dirty_float_string", "useless")
	for _, c := range r.columns {
		fmt.Fprintf(&b, "%-*s  %-7s  %-10t  %-11t  %-5t  %-18t  %t\n",
			width, c.Name, c.Kind, c.Continuous, c.Categorical, c.Date, c.DirtyFloatString, c.Useless)
	}

	return b.String()
}
