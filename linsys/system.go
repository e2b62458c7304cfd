// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperplane/plane"
)

// NoLeadingIndex marks a row whose normal vector is entirely near zero.
const NoLeadingIndex = plane.NoNonzeroIndex

// Operation tags for error wrapping.
const (
	opNew           = "New"
	opRow           = "Row"
	opSetRow        = "SetRow"
	opSwap          = "SwapRows"
	opMultiply      = "MultiplyCoefficientAndRow"
	opAddMultiple   = "AddMultipleTimesRowToRow"
	opTriangular    = "TriangularForm"
	opAugmented     = "Augmented"
	opFromAugmented = "FromAugmented"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader   = "Linear System:"
	_fmtEquation = "Equation "
	_fmtColon    = ": "
	_fmtNewline  = "\n"
)

// System is an ordered sequence of planes sharing one dimension.
// The dimension is fixed at construction.
type System struct {
	planes    []plane.Plane
	dimension int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*System)(nil)

// New builds a system from the given planes (copied).
// Errors:
//   - ErrEmptySystem for no planes.
//   - plane.ErrInvalidNormal when the first plane is the zero value.
//   - ErrDimensionMismatch when a plane's dimension differs from the first.
func New(planes ...plane.Plane) (*System, error) {
	if len(planes) == 0 {
		return nil, linsysErrorf(opNew, ErrEmptySystem)
	}
	d := planes[0].Dimension()
	if d == 0 {
		return nil, linsysErrorf(opNew, plane.ErrInvalidNormal)
	}
	for i, p := range planes {
		if p.Dimension() != d {
			return nil, fmt.Errorf("%s: plane %d has dimension %d, want %d: %w", opNew, i, p.Dimension(), d, ErrDimensionMismatch)
		}
	}
	cp := make([]plane.Plane, len(planes))
	copy(cp, planes)

	return &System{planes: cp, dimension: d}, nil
}

// Len returns the number of equations; 0 for a nil system.
func (s *System) Len() int {
	if s == nil {
		return 0
	}

	return len(s.planes)
}

// Dimension returns the shared dimension of every plane; 0 for a nil system.
func (s *System) Dimension() int {
	if s == nil {
		return 0
	}

	return s.dimension
}

// Row returns plane i.
func (s *System) Row(i int) (plane.Plane, error) {
	if err := s.checkRow(opRow, i); err != nil {
		return plane.Plane{}, err
	}

	return s.planes[i], nil
}

// SetRow replaces plane i.
// Errors:
//   - ErrOutOfRange for a bad index.
//   - ErrDimensionMismatch when p.Dimension() != s.Dimension(); the row is left unchanged.
func (s *System) SetRow(i int, p plane.Plane) error {
	if err := s.checkRow(opSetRow, i); err != nil {
		return err
	}
	if p.Dimension() != s.dimension {
		return fmt.Errorf("%s: dimension %d, want %d: %w", opSetRow, p.Dimension(), s.dimension, ErrDimensionMismatch)
	}
	s.planes[i] = p

	return nil
}

// Rows returns a copy of the row sequence; nil for a nil system.
func (s *System) Rows() []plane.Plane {
	if s == nil {
		return nil
	}
	out := make([]plane.Plane, len(s.planes))
	copy(out, s.planes)

	return out
}

// Clone returns an independent system. Planes are immutable, so copying the
// row slice is a deep copy. Cloning nil yields nil.
func (s *System) Clone() *System {
	if s == nil {
		return nil
	}
	return &System{planes: s.Rows(), dimension: s.dimension}
}

// Equal reports whether both systems have the same rows under plane.Equal.
func (s *System) Equal(o *System) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.dimension != o.dimension || len(s.planes) != len(o.planes) {
		return false
	}
	for i := range s.planes {
		if !s.planes[i].Equal(o.planes[i]) {
			return false
		}
	}

	return true
}

// LeadingIndices returns, per row, the index of the first coefficient that is
// not near zero, or NoLeadingIndex for a zero normal. Nil for a nil system.
func (s *System) LeadingIndices() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.planes))
	for i, p := range s.planes {
		out[i], _ = p.FirstNonzeroIndex()
	}

	return out
}

// String renders the system one equation per line:
//
//	Linear System:
//	Equation 1: 1x_1 + 1x_2 = 1
func (s *System) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtHeader)
	for i, p := range s.Rows() {
		sb.WriteString(_fmtNewline)
		sb.WriteString(_fmtEquation)
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(_fmtColon)
		sb.WriteString(p.String())
	}

	return sb.String()
}

// checkRow validates the receiver and a row index.
func (s *System) checkRow(tag string, i int) error {
	if s == nil {
		return linsysErrorf(tag, ErrNilSystem)
	}
	if i < 0 || i >= len(s.planes) {
		return rowErrorf(tag, i, len(s.planes))
	}

	return nil
}

// coefficient returns row i's normal coordinate j. Callers guarantee bounds.
func (s *System) coefficient(i, j int) float64 {
	c, _ := s.planes[i].Normal().At(j)

	return c
}
