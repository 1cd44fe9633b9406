// SPDX-License-Identifier: MIT

// Package frame: typed, immutable columns.
//
// A Column holds exactly one storage slice, selected by its StorageKind.
// Missing values are encoded per kind:
//   - KindFloat:   NaN
//   - KindInteger: none (integer columns cannot be missing)
//   - KindString:  null mask
//   - KindDate:    zero time.Time
//   - KindOther:   nil
//
// Constructors copy their inputs; no accessor exposes internal slices.
package frame

import (
	"fmt"
	"math"
	"time"
)

// StorageKind is the physical representation of a column.
type StorageKind int

// Storage kinds. Exactly one applies per column.
const (
	KindFloat StorageKind = iota
	KindInteger
	KindString
	KindDate
	KindOther
)

var kindNames = [...]string{
	KindFloat:   "float",
	KindInteger: "integer",
	KindString:  "string",
	KindDate:    "date",
	KindOther:   "other",
}

// String returns the lowercase kind name.
func (k StorageKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("StorageKind(%d)", int(k))
	}

	return kindNames[k]
}

// Column is a named, typed sequence of scalar values.
type Column struct {
	name   string
	kind   StorageKind
	floats []float64
	ints   []int64
	strs   []string
	null   []bool // KindString only; nil when nothing is missing
	times  []time.Time
	others []any
}

// Floats builds a float column. NaN marks a missing value.
func Floats(name string, values []float64) *Column {
	return &Column{name: name, kind: KindFloat, floats: append([]float64(nil), values...)}
}

// Integers builds an integer column.
func Integers(name string, values []int64) *Column {
	return &Column{name: name, kind: KindInteger, ints: append([]int64(nil), values...)}
}

// Strings builds a string column without missing values.
func Strings(name string, values []string) *Column {
	return &Column{name: name, kind: KindString, strs: append([]string(nil), values...)}
}

// NullableStrings builds a string column where null[i] marks values[i] as missing.
//
// Errors:
//   - ErrLengthMismatch when len(null) != len(values).
func NullableStrings(name string, values []string, null []bool) (*Column, error) {
	if len(null) != len(values) {
		return nil, fmt.Errorf("NullableStrings(%q): %w", name, ErrLengthMismatch)
	}
	c := Strings(name, values)
	for _, isNull := range null {
		if isNull {
			c.null = append([]bool(nil), null...)
			break
		}
	}

	return c, nil
}

// Dates builds a date column. The zero time.Time marks a missing value.
func Dates(name string, values []time.Time) *Column {
	return &Column{name: name, kind: KindDate, times: append([]time.Time(nil), values...)}
}

// Others builds a column of any other scalar type (booleans, complex, ...).
// A nil element marks a missing value. Elements must be comparable.
func Others(name string, values []any) *Column {
	return &Column{name: name, kind: KindOther, others: append([]any(nil), values...)}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the storage kind.
func (c *Column) Kind() StorageKind { return c.kind }

// Len returns the number of values.
func (c *Column) Len() int {
	switch c.kind {
	case KindFloat:
		return len(c.floats)
	case KindInteger:
		return len(c.ints)
	case KindString:
		return len(c.strs)
	case KindDate:
		return len(c.times)
	default:
		return len(c.others)
	}
}

// IsNull reports whether value i is missing.
func (c *Column) IsNull(i int) bool {
	switch c.kind {
	case KindFloat:
		return math.IsNaN(c.floats[i])
	case KindString:
		return c.null != nil && c.null[i]
	case KindDate:
		return c.times[i].IsZero()
	case KindOther:
		return c.others[i] == nil
	default:
		return false
	}
}

// NullCount returns the number of missing values.
func (c *Column) NullCount() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			n++
		}
	}

	return n
}

// Float returns value i of a float column.
func (c *Column) Float(i int) float64 { return c.floats[i] }

// Int returns value i of an integer column.
func (c *Column) Int(i int) int64 { return c.ints[i] }

// Str returns value i of a string column ("" when missing).
func (c *Column) Str(i int) string {
	if c.IsNull(i) {
		return ""
	}

	return c.strs[i]
}

// Time returns value i of a date column.
func (c *Column) Time(i int) time.Time { return c.times[i] }

// Value returns value i boxed as any; missing values return nil.
func (c *Column) Value(i int) any {
	if c.IsNull(i) {
		return nil
	}
	switch c.kind {
	case KindFloat:
		return c.floats[i]
	case KindInteger:
		return c.ints[i]
	case KindString:
		return c.strs[i]
	case KindDate:
		return c.times[i]
	default:
		return c.others[i]
	}
}

// Distinct returns the number of distinct non-missing values.
// Complexity: O(n) time and space.
func (c *Column) Distinct() int {
	switch c.kind {
	case KindFloat:
		return countDistinct(c, func(i int) float64 { return c.floats[i] })
	case KindInteger:
		return countDistinct(c, func(i int) int64 { return c.ints[i] })
	case KindString:
		return countDistinct(c, func(i int) string { return c.strs[i] })
	case KindDate:
		return countDistinct(c, func(i int) int64 { return c.times[i].UnixNano() })
	default:
		return countDistinct(c, func(i int) any { return c.others[i] })
	}
}

func countDistinct[K comparable](c *Column, key func(int) K) int {
	seen := make(map[K]struct{})
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		seen[key(i)] = struct{}{}
	}

	return len(seen)
}
