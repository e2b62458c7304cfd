// SPDX-License-Identifier: MIT
// Package plane: sentinel errors. Match with errors.Is.

package plane

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNormal is returned when the normal vector has no coordinates
	// (the zero value of vector.Vector).
	ErrInvalidNormal = errors.New("plane: normal vector must have dimension > 0")

	// ErrNaNInf is returned when a normal coefficient or the constant term
	// is NaN or ±Inf.
	ErrNaNInf = errors.New("plane: NaN or Inf coefficient or constant term")

	// ErrDimensionMismatch indicates two planes of different dimension.
	ErrDimensionMismatch = errors.New("plane: dimension mismatch")
)

// planeErrorf wraps err with an operation tag. Use only when err != nil.
func planeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
