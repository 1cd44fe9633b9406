// SPDX-License-Identifier: MIT

package preprocess

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
)

// oneHotEncoder maps each distinct non-missing value of one column to an
// output column. Categories are sorted; missing values encode as all zeros.
type oneHotEncoder struct {
	column     string
	kind       frame.StorageKind
	categories []any
	index      map[any]int
}

func (e *oneHotEncoder) fit(c *frame.Column) {
	seen := make(map[any]struct{})
	for i := 0; i < c.Len(); i++ {
		if v := c.Value(i); v != nil {
			seen[v] = struct{}{}
		}
	}

	e.column = c.Name()
	e.kind = c.Kind()
	e.categories = make([]any, 0, len(seen))
	for v := range seen {
		e.categories = append(e.categories, v)
	}
	sort.Slice(e.categories, func(a, b int) bool {
		return lessValue(e.categories[a], e.categories[b])
	})
	e.index = make(map[any]int, len(e.categories))
	for k, v := range e.categories {
		e.index[v] = k
	}
}

// width is the number of output columns.
func (e *oneHotEncoder) width() int { return len(e.categories) }

// lookup returns the output offset of value i of c; ok is false for missing
// values and for unknown categories (err set unless ignoreUnknown).
func (e *oneHotEncoder) lookup(c *frame.Column, i int, ignoreUnknown bool) (int, bool, error) {
	v := c.Value(i)
	if v == nil {
		return 0, false, nil
	}
	k, ok := e.index[v]
	if !ok {
		if ignoreUnknown {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%q row %d value %s: %w", e.column, i, formatValue(v), ErrUnknownCategory)
	}

	return k, true, nil
}

func (e *oneHotEncoder) featureNames() []string {
	names := make([]string, len(e.categories))
	for k, v := range e.categories {
		names[k] = e.column + "_" + formatValue(v)
	}

	return names
}

// categoricalBlock one-hot encodes the selected columns side by side.
type categoricalBlock struct {
	cols          []string
	encoders      []*oneHotEncoder
	ignoreUnknown bool
}

func newCategoricalBlock(cols []string, ignoreUnknown bool) *categoricalBlock {
	return &categoricalBlock{cols: cols, ignoreUnknown: ignoreUnknown}
}

func (b *categoricalBlock) fit(f *frame.Frame) error {
	b.encoders = make([]*oneHotEncoder, len(b.cols))
	for k, name := range b.cols {
		c, ok := f.Lookup(name)
		if !ok {
			return fmt.Errorf("categoricalBlock.fit: %q: %w", name, ErrSchemaMismatch)
		}
		b.encoders[k] = &oneHotEncoder{}
		b.encoders[k].fit(c)
	}

	return nil
}

func (b *categoricalBlock) width() int {
	w := 0
	for _, e := range b.encoders {
		w += e.width()
	}

	return w
}

// transform writes the one-hot block as a Sparse matrix. Entries are set in
// row-major order, so every Set appends at the tail.
func (b *categoricalBlock) transform(f *frame.Frame) (matrix.Matrix, error) {
	width := b.width()
	if width == 0 {
		// Every categorical column was entirely missing at fit time.
		return nil, fmt.Errorf("categoricalBlock.transform: %w", ErrNoUsableColumns)
	}
	out, err := matrix.NewSparse(f.Rows(), width)
	if err != nil {
		return nil, fmt.Errorf("categoricalBlock.transform: %w", err)
	}

	cols := make([]*frame.Column, len(b.encoders))
	for k, e := range b.encoders {
		c, ok := f.Lookup(e.column)
		if !ok {
			return nil, fmt.Errorf("categoricalBlock.transform: %q: %w", e.column, ErrSchemaMismatch)
		}
		cols[k] = c
	}

	for i := 0; i < f.Rows(); i++ {
		offset := 0
		for k, e := range b.encoders {
			pos, hit, err := e.lookup(cols[k], i, b.ignoreUnknown)
			if err != nil {
				return nil, fmt.Errorf("categoricalBlock.transform: %w", err)
			}
			if hit {
				_ = out.Set(i, offset+pos, 1) // bounds are fixed by construction
			}
			offset += e.width()
		}
	}

	return out, nil
}

func (b *categoricalBlock) columns() []string { return b.cols }

func (b *categoricalBlock) featureNames() []string {
	var names []string
	for _, e := range b.encoders {
		names = append(names, e.featureNames()...)
	}

	return names
}

// lessValue orders category values of one column. All values of a column
// share a dynamic type; mixed types (KindOther) fall back to their text form.
func lessValue(a, b any) bool {
	switch x := a.(type) {
	case int64:
		if y, ok := b.(int64); ok {
			return x < y
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x < y
		}
	case string:
		if y, ok := b.(string); ok {
			return x < y
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Before(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return !x && y
		}
	}

	return fmt.Sprintf("%T:%v", a, a) < fmt.Sprintf("%T:%v", b, b)
}

// formatValue renders a category for feature names and error messages.
func formatValue(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
