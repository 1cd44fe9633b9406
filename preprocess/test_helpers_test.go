// SPDX-License-Identifier: MIT

package preprocess_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
	"github.com/katalvlaran/fml/preprocess"
)

// mixedFrame has two continuous columns (one also categorical), one
// categorical string column and one date column.
func mixedFrame() *frame.Frame {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	return frame.MustNew(
		frame.Floats("x", []float64{1, 2, 3, 4}),
		frame.Integers("n", []int64{1, 1, 2, 2}),
		frame.Strings("city", []string{"a", "b", "a", "c"}),
		frame.Dates("d", []time.Time{day, day, day, day}),
	)
}

// mixedFrameWith returns mixedFrame with the city column replaced.
func mixedFrameWith(t *testing.T, city *frame.Column) *frame.Frame {
	t.Helper()
	base := mixedFrame()
	f, err := frame.New(base.Column(0), base.Column(1), city, base.Column(3))
	require.NoError(t, err)

	return f
}

// mustFit fits a default-configured Builder on f and fails the test on error.
func mustFit(t *testing.T, f *frame.Frame, opts ...preprocess.Option) *preprocess.Pipeline {
	t.Helper()
	p, err := preprocess.NewBuilder(opts...).Fit(f, nil)
	require.NoError(t, err)

	return p
}

// rowsOf reads m element by element.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
