// SPDX-License-Identifier: MIT

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is the time layout used for columns named in WithDateColumns.
const DefaultDateLayout = "2006-01-02"

// DefaultNullValues are the cell values read as missing.
var DefaultNullValues = []string{"", "NA", "NaN", "nan", "null", "NULL", "N/A"}

// CSVOption configures ReadCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	dateColumns map[string]bool
	dateLayout  string
	nullValues  map[string]bool
	comma       rune
}

// WithDateColumns parses the named columns as dates instead of inferring a kind.
func WithDateColumns(names ...string) CSVOption {
	return func(o *csvOptions) {
		for _, n := range names {
			o.dateColumns[n] = true
		}
	}
}

// WithDateLayout sets the time.Parse layout for date columns.
// Panics on an empty layout.
func WithDateLayout(layout string) CSVOption {
	if layout == "" {
		panic("frame: WithDateLayout: layout must not be empty")
	}

	return func(o *csvOptions) { o.dateLayout = layout }
}

// WithNullValues replaces the set of cell values read as missing.
func WithNullValues(values ...string) CSVOption {
	return func(o *csvOptions) {
		o.nullValues = make(map[string]bool, len(values))
		for _, v := range values {
			o.nullValues[v] = true
		}
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) { o.comma = r }
}

func gatherCSVOptions(opts ...CSVOption) csvOptions {
	o := csvOptions{
		dateColumns: map[string]bool{},
		dateLayout:  DefaultDateLayout,
		comma:       ',',
	}
	WithNullValues(DefaultNullValues...)(&o)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ReadCSV reads a header row followed by records and infers one storage kind
// per column:
//   - integer: every cell parses as int64 and none is missing;
//   - float:   every non-missing cell parses as float64 (missing → NaN);
//     a column with only missing cells is float;
//   - other:   every cell is true/false (case-insensitive) and none is missing;
//     values are stored as bool;
//   - date:    the column was named in WithDateColumns;
//   - string:  anything else, missing cells masked as null.
//
// Errors:
//   - ErrNoHeader on empty input; ErrParseDate for bad date cells;
//     csv parse errors and frame construction errors are wrapped.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	o := gatherCSVOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.comma

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadCSV: %w", ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	cells := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: read row: %w", err)
		}
		for j := range header {
			cells[j] = append(cells[j], rec[j])
		}
	}

	cols := make([]*Column, len(header))
	for j, name := range header {
		if o.dateColumns[name] {
			cols[j], err = parseDates(name, cells[j], o)
		} else {
			cols[j], err = inferColumn(name, cells[j], o)
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
	}

	return New(cols...)
}

// inferColumn tries integer, float, bool and finally string storage.
func inferColumn(name string, cells []string, o csvOptions) (*Column, error) {
	if ints, ok := parseInts(cells, o); ok {
		return Integers(name, ints), nil
	}
	if floats, ok := parseFloats(cells, o); ok {
		return Floats(name, floats), nil
	}
	if bools, ok := parseBools(cells, o); ok {
		return Others(name, bools), nil
	}

	null := make([]bool, len(cells))
	for i, cell := range cells {
		null[i] = o.nullValues[cell]
	}

	return NullableStrings(name, cells, null)
}

func parseInts(cells []string, o csvOptions) ([]int64, bool) {
	out := make([]int64, len(cells))
	for i, cell := range cells {
		if o.nullValues[cell] {
			return nil, false
		}
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

func parseFloats(cells []string, o csvOptions) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, cell := range cells {
		if o.nullValues[cell] {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

func parseBools(cells []string, o csvOptions) ([]any, bool) {
	out := make([]any, len(cells))
	for i, cell := range cells {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "true":
			out[i] = true
		case "false":
			out[i] = false
		default:
			return nil, false
		}
	}

	return out, true
}

func parseDates(name string, cells []string, o csvOptions) (*Column, error) {
	out := make([]time.Time, len(cells))
	for i, cell := range cells {
		if o.nullValues[cell] {
			continue
		}
		t, err := time.Parse(o.dateLayout, strings.TrimSpace(cell))
		if err != nil {
			return nil, fmt.Errorf("%q row %d: %w", name, i, ErrParseDate)
		}
		out[i] = t
	}

	return Dates(name, out), nil
}
