// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..."; callers branch with errors.Is.
// Context (operation tag, dimensions) is attached with %w wrapping at the
// detection site, never baked into the sentinel itself.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a vector would have no coordinates.
	ErrEmpty = errors.New("vector: coordinates must be nonempty")

	// ErrNaNInf is returned when a coordinate is NaN or ±Inf.
	ErrNaNInf = errors.New("vector: NaN or Inf coordinate")

	// ErrOutOfRange indicates a coordinate index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two operands of different dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector is returned by Normalized (and propagated by AngleWith)
	// when the magnitude is zero within DefaultEpsilon.
	ErrZeroVector = errors.New("vector: cannot normalize the zero vector")

	// ErrNoUniqueParallelComponent is returned when projecting onto a zero basis.
	ErrNoUniqueParallelComponent = errors.New("vector: no unique parallel component")

	// ErrNoUniqueOrthogonalComponent is returned when the orthogonal complement
	// of a zero basis is requested.
	ErrNoUniqueOrthogonalComponent = errors.New("vector: no unique orthogonal component")

	// ErrCrossDimension is returned by Cross for vectors that are neither 2D nor 3D.
	ErrCrossDimension = errors.New("vector: cross product only defined in two or three dimensions")
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatchErrorf reports the two offending dimensions under ErrDimensionMismatch.
func mismatchErrorf(tag string, a, b int) error {
	return fmt.Errorf("%s: %d vs %d: %w", tag, a, b, ErrDimensionMismatch)
}
