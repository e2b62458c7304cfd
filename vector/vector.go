// SPDX-License-Identifier: MIT

// Package vector - construction, accessors and formatting.
//
// Purpose:
//   - Validate coordinates once at construction (nonempty, finite).
//   - Keep storage private; accessors hand out copies.

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtPrefix = "Vector: ("
	_fmtClose  = ")"
	_fmtSep    = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New builds a Vector from the given coordinates.
// Implementation:
//   - Stage 1: reject an empty coordinate list (ErrEmpty).
//   - Stage 2: reject NaN/±Inf (ErrNaNInf), reporting the offending index.
//   - Stage 3: copy the input so later caller writes cannot leak in.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(coords ...float64) (Vector, error) {
	if len(coords) == 0 {
		return Vector{}, vectorErrorf(opNew, ErrEmpty)
	}
	var i int
	for i = range coords {
		if math.IsNaN(coords[i]) || math.IsInf(coords[i], 0) {
			return Vector{}, fmt.Errorf("%s: coordinate %d: %w", opNew, i, ErrNaNInf)
		}
	}
	out := make([]float64, len(coords))
	copy(out, coords)

	return Vector{coords: out}, nil
}

// Zero returns the n-dimensional zero vector, or ErrEmpty for n <= 0.
func Zero(n int) (Vector, error) {
	if n <= 0 {
		return Vector{}, vectorErrorf(opZero, ErrEmpty)
	}

	return Vector{coords: make([]float64, n)}, nil
}

// fromOwned wraps a freshly allocated slice without copying.
// Callers MUST NOT retain the slice.
func fromOwned(coords []float64) Vector {
	return Vector{coords: coords}
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int {
	return len(v.coords)
}

// At returns coordinate i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.coords) {
		return 0, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.coords[i], nil
}

// Coords returns a copy of the coordinates.
func (v Vector) Coords() []float64 {
	out := make([]float64, len(v.coords))
	copy(out, v.coords)

	return out
}

// Equal reports exact coordinate-wise equality (same dimension, same values).
// Use ApproxEqual after arithmetic.
func (v Vector) Equal(w Vector) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if v.coords[i] != w.coords[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether v and w share a dimension and every coordinate
// differs by less than eps.
func (v Vector) ApproxEqual(w Vector, eps float64) bool {
	if len(v.coords) != len(w.coords) {
		return false
	}
	for i := range v.coords {
		if math.Abs(v.coords[i]-w.coords[i]) >= eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, e.g. "Vector: (1, 2.5, -3)".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtPrefix)
	for i, x := range v.coords {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
