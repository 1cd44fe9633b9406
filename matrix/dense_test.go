// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fml/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestDenseRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestDenseAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestDenseAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias of ErrOutOfRange
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestDenseNumericPolicy checks the NaN/Inf guard in both modes.
func TestDenseNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.NaN()))
	v, err := relaxed.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	// Last option wins.
	back, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, back.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers the copy constructor and its shape checks.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, toRows(t, m))

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDenseCloneIndependence ensures Clone() returns a deep copy.
func TestDenseCloneIndependence(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestDenseRowColumn verifies that Row/Column return copies.
func TestDenseRowColumn(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)
	col[0] = 100
	v, _ := m.At(0, 1)
	require.Equal(t, 2.0, v)

	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 6}, row)

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDenseDoApply checks iteration order, early exit and the Apply policy.
func TestDenseDoApply(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, [][]float64{{10, 20}, {30, 40}}, toRows(t, m))

	strict, err := matrix.NewDenseFromRows([][]float64{{1}})
	require.NoError(t, err)
	err = strict.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDenseString renders a small matrix.
func TestDenseString(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2.5}, {0, -1}})
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
