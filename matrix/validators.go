// SPDX-License-Identifier: MIT
//
// Shared argument checks. Each returns a sentinel tagged with the validator
// name and allocates nothing on success.

package matrix

import (
	"fmt"
	"reflect"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func validatorErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil interface or a typed nil
// pointer such as (*Dense)(nil).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen checks that x is non-nil with exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRows ensures every matrix is non-nil and shares one row count.
// Used by HStack before any allocation.
func ValidateSameRows(ms ...Matrix) error {
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateSameRows[%d]", k), err)
		}
		if m.Rows() != ms[0].Rows() {
			return validatorErrorf(fmt.Sprintf("ValidateSameRows[%d]", k), ErrDimensionMismatch)
		}
	}

	return nil
}
