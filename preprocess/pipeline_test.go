// SPDX-License-Identifier: MIT

package preprocess_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
	"github.com/katalvlaran/fml/matrix"
	"github.com/katalvlaran/fml/preprocess"
)

// TestRoundTripShape: rows are preserved; columns are the continuous count
// plus the number of categories of every categorical column.
func TestRoundTripShape(t *testing.T) {
	t.Parallel()
	f := mixedFrame()
	p := mustFit(t, f)

	X, err := p.Transform(f)
	require.NoError(t, err)
	require.Equal(t, 4, X.Rows())
	require.Equal(t, 2+2+3, X.Cols())
	require.Equal(t, []string{"x", "n", "n_1", "n_2", "city_a", "city_b", "city_c"}, p.FeatureNames())
	require.Equal(t, []string{"d"}, p.Dropped())
	require.False(t, p.Imputes())

	rows, cols := p.InputShape()
	require.Equal(t, [2]int{4, 4}, [2]int{rows, cols})
	require.Equal(t, []string{"x", "n", "city", "d"}, p.Columns())
	require.Equal(t, []string{"x", "n"}, p.Types().Continuous())
}

func TestTransformValues(t *testing.T) {
	t.Parallel()
	f := mixedFrame()
	p := mustFit(t, f)
	X, err := p.Transform(f)
	require.NoError(t, err)
	_, sparse := X.(*matrix.Sparse)
	require.True(t, sparse, "16 of 28 entries are non-zero")

	sd := math.Sqrt(1.25)
	want := [][]float64{
		{-1.5 / sd, -1, 1, 0, 1, 0, 0},
		{-0.5 / sd, -1, 1, 0, 0, 1, 0},
		{0.5 / sd, 1, 0, 1, 1, 0, 0},
		{1.5 / sd, 1, 0, 1, 0, 0, 1},
	}
	got := rowsOf(t, X)
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], 1e-12, "row %d", i)
	}
}

func TestDenseThreshold(t *testing.T) {
	t.Parallel()
	f := mixedFrame()

	X, err := mustFit(t, f, preprocess.WithDenseThreshold(0.5)).Transform(f)
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense{}, X)

	X, err = mustFit(t, f, preprocess.WithDenseThreshold(1)).Transform(f)
	require.NoError(t, err)
	require.IsType(t, &matrix.Sparse{}, X)

	// No one-hot block: always Dense.
	cont := frame.MustNew(frame.Floats("x", []float64{1, 2, 3}))
	X, err = mustFit(t, cont, preprocess.WithDenseThreshold(1)).Transform(cont)
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense{}, X)

	require.Panics(t, func() { preprocess.WithDenseThreshold(-0.1) })
	require.Panics(t, func() { preprocess.WithDenseThreshold(math.NaN()) })
}

func TestMedianImputation(t *testing.T) {
	t.Parallel()
	f := frame.MustNew(frame.Floats("x", []float64{1, math.NaN(), 3, 10}))
	p := mustFit(t, f)
	require.True(t, p.Imputes())

	X, err := p.Transform(f)
	require.NoError(t, err)

	// Imputed column is {1, 3, 3, 10}.
	mean := 17.0 / 4
	sd := math.Sqrt((3.25*3.25 + 1.25*1.25 + 1.25*1.25 + 5.75*5.75) / 4)
	got := rowsOf(t, X)
	require.InDelta(t, (3-mean)/sd, got[1][0], 1e-12)
	require.InDelta(t, (10-mean)/sd, got[3][0], 1e-12)

	// New data: missing values take the fit-time median.
	g := frame.MustNew(frame.Floats("x", []float64{math.NaN()}))
	X, err = p.Transform(g)
	require.NoError(t, err)
	v, err := X.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, (3-mean)/sd, v, 1e-12)
}

// TestMissingWithoutImputer: a column complete at fit time has no imputer,
// so later missing values flow through as NaN.
func TestMissingWithoutImputer(t *testing.T) {
	t.Parallel()
	f := frame.MustNew(frame.Floats("x", []float64{1, 3}))
	p := mustFit(t, f)
	require.False(t, p.Imputes())

	X, err := p.Transform(frame.MustNew(frame.Floats("x", []float64{math.NaN(), 3})))
	require.NoError(t, err)
	got := rowsOf(t, X)
	require.True(t, math.IsNaN(got[0][0]))
	require.Equal(t, 1.0, got[1][0])
}

func TestConstantColumnKeepsScale(t *testing.T) {
	t.Parallel()
	f := frame.MustNew(frame.Floats("x", []float64{5, 5, 5}))
	X, err := mustFit(t, f).Transform(f)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}, {0}, {0}}, rowsOf(t, X))
}

// TestDigitlessStringsAreMissing: "" and "." match the numeric pattern and
// are cast as missing values.
func TestDigitlessStringsAreMissing(t *testing.T) {
	t.Parallel()
	f := frame.MustNew(frame.Strings("price", []string{"1.5", "", "2.5", "."}))
	p := mustFit(t, f)
	require.True(t, p.Imputes())
	require.Equal(t, []string{"price", "price_", "price_.", "price_1.5", "price_2.5"}, p.FeatureNames())

	X, err := p.Transform(f)
	require.NoError(t, err)
	got := rowsOf(t, X)
	// Imputed {1.5, 2, 2.5, 2}: mean 2, std sqrt(0.125).
	require.InDelta(t, -0.5/math.Sqrt(0.125), got[0][0], 1e-12)
	require.Zero(t, got[1][0])
}

func TestCategoricalMissingAndUnknown(t *testing.T) {
	t.Parallel()
	city, err := frame.NullableStrings("city", []string{"a", "", "b", "a"}, []bool{false, true, false, false})
	require.NoError(t, err)
	f := mixedFrameWith(t, city)
	p := mustFit(t, f)
	require.Equal(t, []string{"x", "n", "n_1", "n_2", "city_a", "city_b"}, p.FeatureNames())

	X, err := p.Transform(f)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, rowsOf(t, X)[1][4:])

	unknown := mixedFrameWith(t, frame.Strings("city", []string{"a", "z", "b", "a"}))
	_, err = p.Transform(unknown)
	require.ErrorIs(t, err, preprocess.ErrUnknownCategory)

	lenient := mustFit(t, f, preprocess.WithIgnoreUnknown())
	X, err = lenient.Transform(unknown)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, rowsOf(t, X)[1][4:])
}

func TestTransformNotFitted(t *testing.T) {
	t.Parallel()
	f := mixedFrame()

	_, err := (&preprocess.Pipeline{}).Transform(f)
	require.ErrorIs(t, err, preprocess.ErrNotFitted)

	var p *preprocess.Pipeline
	_, err = p.Transform(f)
	require.ErrorIs(t, err, preprocess.ErrNotFitted)
	require.Nil(t, p.FeatureNames())
	require.Nil(t, p.Types())

	// A failed Fit yields no pipeline to call.
	dates := frame.MustNew(frame.Dates("d", []time.Time{time.Now()}))
	p, err = preprocess.NewBuilder().Fit(dates, nil)
	require.ErrorIs(t, err, preprocess.ErrNoUsableColumns)
	_, err = p.Transform(dates)
	require.ErrorIs(t, err, preprocess.ErrNotFitted)
}

func TestTransformSchemaMismatch(t *testing.T) {
	t.Parallel()
	p := mustFit(t, mixedFrame())
	base := mixedFrame()

	cases := map[string]*frame.Frame{
		"fewer columns": frame.MustNew(base.Column(0), base.Column(1), base.Column(2)),
		"renamed":       frame.MustNew(base.Column(0), base.Column(1), frame.Strings("town", []string{"a", "b", "a", "c"}), base.Column(3)),
		"reordered":     frame.MustNew(base.Column(1), base.Column(0), base.Column(2), base.Column(3)),
		"retyped":       frame.MustNew(frame.Integers("x", []int64{1, 2, 3, 4}), base.Column(1), base.Column(2), base.Column(3)),
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.Transform(f)
			require.ErrorIs(t, err, preprocess.ErrSchemaMismatch)
		})
	}
}

func TestTransformInputErrors(t *testing.T) {
	t.Parallel()
	p := mustFit(t, mixedFrame())

	X, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	_, err = p.Transform(X)
	require.ErrorIs(t, err, detect.ErrUnsupportedInput)

	empty := frame.MustNew(
		frame.Floats("x", nil),
		frame.Integers("n", nil),
		frame.Strings("city", nil),
		frame.Dates("d", nil),
	)
	_, err = p.Transform(empty)
	require.ErrorIs(t, err, detect.ErrEmptyDataset)
}

func TestConcurrentTransform(t *testing.T) {
	t.Parallel()
	f := mixedFrame()
	p := mustFit(t, f)
	want, err := p.Transform(f)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]matrix.Matrix, 8)
	errs := make([]error, 8)
	for k := range results {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			results[k], errs[k] = p.Transform(f)
		}(k)
	}
	wg.Wait()
	for k := range results {
		require.NoError(t, errs[k])
		require.Equal(t, rowsOf(t, want), rowsOf(t, results[k]))
	}
}

func TestFitLogging(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	mustFit(t, mixedFrame(), preprocess.WithLogger(log), preprocess.WithVerbosity(1))
	require.Equal(t, 1, logs.FilterMessage("Interpreted as:").Len())
	require.Equal(t, 1, logs.FilterMessage("Fitted pipeline: 4 input columns, 7 output features").Len())
	require.Equal(t, 1, logs.FilterMessage("Dropped columns: [d]").Len())

	quiet, quietLogs := observer.New(zapcore.DebugLevel)
	mustFit(t, mixedFrame(), preprocess.WithLogger(zap.New(quiet).Sugar()))
	require.Zero(t, quietLogs.Len())
}
