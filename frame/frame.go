// SPDX-License-Identifier: MIT

// Package frame defines the tabular input of the feature pipeline: an ordered
// set of named, equally long, typed columns.
//
// Errors:
//
//	ErrEmptyName       - a column has an empty name.
//	ErrDuplicateColumn - two columns share a name.
//	ErrLengthMismatch  - columns (or masks) of different lengths.
//	ErrNoHeader        - CSV input without a header row.
//	ErrParseDate       - a declared date column holds an unparsable value.
package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors for frame construction and ingestion.
var (
	// ErrEmptyName indicates a column with an empty name.
	ErrEmptyName = errors.New("frame: column name is empty")

	// ErrDuplicateColumn indicates two columns with the same name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrLengthMismatch indicates columns of different lengths.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrNoHeader indicates CSV input that does not start with a header row.
	ErrNoHeader = errors.New("frame: missing header row")

	// ErrParseDate indicates an unparsable value in a declared date column.
	ErrParseDate = errors.New("frame: cannot parse date")
)

// Shaped is anything with a two-dimensional shape. *Frame and every
// matrix.Matrix satisfy it; only *Frame carries column names and kinds.
type Shaped interface {
	Rows() int
	Cols() int
}

// Frame is an immutable ordered collection of named columns.
type Frame struct {
	cols  []*Column
	index map[string]int
	rows  int
}

var _ Shaped = (*Frame)(nil)

// New builds a Frame from columns, keeping their order.
// A frame without columns is legal and has zero rows.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateColumn, ErrLengthMismatch.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c == nil || c.name == "" {
			return nil, fmt.Errorf("New: column %d: %w", i, ErrEmptyName)
		}
		if _, dup := f.index[c.name]; dup {
			return nil, fmt.Errorf("New: %q: %w", c.name, ErrDuplicateColumn)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, fmt.Errorf("New: %q has %d rows, want %d: %w", c.name, c.Len(), f.rows, ErrLengthMismatch)
		}
		f.index[c.name] = i
		f.cols = append(f.cols, c)
	}

	return f, nil
}

// MustNew is New that panics on error. Intended for tests and fixtures.
func MustNew(cols ...*Column) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}

	return f
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return len(f.cols) }

// Column returns column i in frame order.
func (f *Frame) Column(i int) *Column { return f.cols[i] }

// Lookup returns the column named name.
func (f *Frame) Lookup(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}

	return f.cols[i], true
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}

	return names
}

// Kinds returns the storage kinds in frame order.
func (f *Frame) Kinds() []StorageKind {
	kinds := make([]StorageKind, len(f.cols))
	for i, c := range f.cols {
		kinds[i] = c.kind
	}

	return kinds
}
