// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fml/matrix"
)

// hide wraps any Matrix to hide its concrete type from type switches, forcing
// the generic At-based paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense builds a relaxed-policy Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return m
}

// toRows reads every element of m through At.
func toRows(t *testing.T, m matrix.Matrix) [][]float64 {
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

var nan = math.NaN()
