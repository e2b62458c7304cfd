// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for common validation checks.
//  - Return sentinels wrapped with the validator tag so call sites can branch via errors.Is.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil pointer stored in the interface (e.g. (*Dense)(nil)).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMinCols ensures m has at least n columns. Assumes m is not nil.
func ValidateMinCols(m Matrix, n int) error {
	if m.Cols() < n {
		return validatorErrorf("ValidateMinCols", fmt.Errorf("%d < %d: %w", m.Cols(), n, ErrDimensionMismatch))
	}

	return nil
}
