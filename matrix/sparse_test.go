// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fml/matrix"
)

func TestNewSparseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewSparse(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewSparse(1, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSparseSetAt exercises out-of-order inserts, overwrites and deletes.
func TestSparseSetAt(t *testing.T) {
	s, err := matrix.NewSparse(3, 4)
	require.NoError(t, err)
	require.Zero(t, s.NNZ())

	require.NoError(t, s.Set(2, 3, 7))
	require.NoError(t, s.Set(0, 1, 1))
	require.NoError(t, s.Set(0, 0, 2)) // insert before an existing entry
	require.NoError(t, s.Set(1, 2, 5))
	require.Equal(t, 4, s.NNZ())
	require.Equal(t, [][]float64{
		{2, 1, 0, 0},
		{0, 0, 5, 0},
		{0, 0, 0, 7},
	}, toRows(t, s))

	require.NoError(t, s.Set(1, 2, 6)) // overwrite
	require.NoError(t, s.Set(0, 0, 0)) // delete
	require.NoError(t, s.Set(2, 0, 0)) // delete of absent entry is a no-op
	require.Equal(t, 3, s.NNZ())
	require.Equal(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 6, 0},
		{0, 0, 0, 7},
	}, toRows(t, s))
}

func TestSparseBoundsAndPolicy(t *testing.T) {
	s, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)

	_, err = s.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, s.Set(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, s.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	relaxed, err := matrix.NewSparse(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.NaN()))
	require.Equal(t, 1, relaxed.NNZ())
}

func TestSparseCloneDoToDense(t *testing.T) {
	s, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 2, 1))
	require.NoError(t, s.Set(1, 0, 1))

	clone := s.Clone()
	require.NoError(t, clone.Set(1, 1, 9))
	v, err := s.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	type entry struct{ i, j int }
	var seen []entry
	s.Do(func(i, j int, _ float64) bool {
		seen = append(seen, entry{i, j})
		return true
	})
	require.Equal(t, []entry{{0, 2}, {1, 0}}, seen)

	require.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}}, toRows(t, s.ToDense()))
}
