// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// Callers branch with errors.Is; context is attached with %w at detection
// sites via linsysErrorf. The "no pivot in this column" branch of
// TriangularForm is ordinary control flow and never surfaces as an error.

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem is returned when a system would have no equations.
	ErrEmptySystem = errors.New("linsys: system must contain at least one plane")

	// ErrDimensionMismatch is returned when a plane's dimension differs from
	// the system's (construction, SetRow, FromAugmented).
	ErrDimensionMismatch = errors.New("linsys: all planes in the system should live in the same dimension")

	// ErrOutOfRange indicates a row index outside [0, Len()).
	ErrOutOfRange = errors.New("linsys: row index out of range")

	// ErrNilSystem is returned by row access, row operations, TriangularForm
	// and Augmented on a nil receiver.
	ErrNilSystem = errors.New("linsys: nil system")
)

// linsysErrorf wraps err with an operation tag. Use only when err != nil.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowErrorf reports an invalid row index under ErrOutOfRange.
func rowErrorf(tag string, row, n int) error {
	return fmt.Errorf("%s: row %d of %d: %w", tag, row, n, ErrOutOfRange)
}
