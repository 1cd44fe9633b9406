// SPDX-License-Identifier: MIT

package detect_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fml/detect"
	"github.com/katalvlaran/fml/frame"
)

// cyclingInts returns n integers cycling through `distinct` values starting at base.
func cyclingInts(n, distinct int, base int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i%distinct)
	}

	return out
}

// numericStrings returns n distinct-ish decimal strings ("12.50", "13.50", ...).
func numericStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d.50", 12+i%50)
	}

	return out
}

// mustDetect runs Detect and fails the test on error.
func mustDetect(t *testing.T, f *frame.Frame, opts ...detect.Option) *detect.Report {
	t.Helper()
	r, err := detect.Detect(f, opts...)
	require.NoError(t, err)

	return r
}

// typesOf looks a column up in r and fails the test if it is absent.
func typesOf(t *testing.T, r *detect.Report, name string) detect.ColumnTypes {
	t.Helper()
	ct, ok := r.Lookup(name)
	require.True(t, ok, "column %q missing from report", name)

	return ct
}
