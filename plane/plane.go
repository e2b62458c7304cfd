// SPDX-License-Identifier: MIT

package plane

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperplane/vector"
)

// DefaultDimension is the dimension of the planeless default (see Default).
const DefaultDimension = 3

// NoNonzeroIndex is what FirstNonzeroIndex reports alongside ok=false.
const NoNonzeroIndex = -1

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opZero      = "Zero"
	opParallel  = "IsParallelTo"
	opCoincides = "Coincides"
)

// ---------- Formatting literals ----------
const (
	_fmtVar      = "x_"
	_fmtEquals   = " = "
	_fmtZeroLHS  = "0"
	_fmtPlus     = " + "
	_fmtMinus    = " - "
	_fmtNegFirst = "-"
)

// Plane is the hyperplane normal·x = constant.
// Immutable; the zero value has dimension 0 and is not a valid plane.
type Plane struct {
	normal   vector.Vector
	constant float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Plane{}

// New builds a plane from a normal vector and a constant term.
// Errors:
//   - ErrInvalidNormal when normal has no coordinates.
//   - ErrNaNInf when a normal coordinate or the constant is not finite
//     (arithmetic such as Scale can overflow past what vector.New admits).
func New(normal vector.Vector, constant float64) (Plane, error) {
	if normal.Dim() == 0 {
		return Plane{}, planeErrorf(opNew, ErrInvalidNormal)
	}
	for i, x := range normal.Coords() {
		if !isFinite(x) {
			return Plane{}, fmt.Errorf("%s: coefficient %d: %w", opNew, i, ErrNaNInf)
		}
	}
	if !isFinite(constant) {
		return Plane{}, planeErrorf(opNew, ErrNaNInf)
	}

	return Plane{normal: normal, constant: constant}, nil
}

// Zero builds the plane 0·x = constant in dim dimensions.
// With a nonzero constant it is the signature of an inconsistent equation.
func Zero(dim int, constant float64) (Plane, error) {
	n, err := vector.Zero(dim)
	if err != nil {
		return Plane{}, planeErrorf(opZero, ErrInvalidNormal)
	}

	return New(n, constant)
}

// Default returns the planeless default: the zero plane 0·x = 0 in
// DefaultDimension dimensions.
func Default() Plane {
	p, _ := Zero(DefaultDimension, 0) // DefaultDimension > 0

	return p
}

// Dimension returns the dimension of the normal vector.
func (p Plane) Dimension() int { return p.normal.Dim() }

// Normal returns the normal vector.
func (p Plane) Normal() vector.Vector { return p.normal }

// Constant returns the constant term.
func (p Plane) Constant() float64 { return p.constant }

// FirstNonzeroIndex returns the index of the first normal coordinate whose
// magnitude is at least vector.DefaultEpsilon. ok is false (and the index
// NoNonzeroIndex) when every coordinate is near zero.
func (p Plane) FirstNonzeroIndex() (int, bool) {
	return p.FirstNonzeroIndexWithin(vector.DefaultEpsilon)
}

// FirstNonzeroIndexWithin is FirstNonzeroIndex with an explicit tolerance.
func (p Plane) FirstNonzeroIndexWithin(eps float64) (int, bool) {
	for i, x := range p.normal.Coords() {
		if math.Abs(x) >= eps {
			return i, true
		}
	}

	return NoNonzeroIndex, false
}

// Equal reports structural equality: same dimension, and every coefficient
// and the constant term equal within vector.DefaultEpsilon.
func (p Plane) Equal(q Plane) bool {
	return p.normal.ApproxEqual(q.normal, vector.DefaultEpsilon) &&
		math.Abs(p.constant-q.constant) < vector.DefaultEpsilon
}

// IsParallelTo reports whether the two normal vectors are parallel.
func (p Plane) IsParallelTo(q Plane) (bool, error) {
	if p.Dimension() != q.Dimension() {
		return false, fmt.Errorf("%s: %d vs %d: %w", opParallel, p.Dimension(), q.Dimension(), ErrDimensionMismatch)
	}
	ok, err := p.normal.IsParallelTo(q.normal)
	if err != nil {
		return false, planeErrorf(opParallel, err)
	}

	return ok, nil
}

// Coincides reports geometric equality: both planes describe the same point
// set, even if one equation is a nonzero multiple of the other.
// Implementation:
//   - Stage 1: zero normals coincide only with each other and only when the
//     constants agree.
//   - Stage 2: the unit normals must agree up to sign within
//     vector.DefaultEpsilon. IsParallelTo rounds the cosine and is too
//     coarse for identity.
//   - Stage 3: the segment between the two base points must be orthogonal
//     to the unit normal.
func (p Plane) Coincides(q Plane) (bool, error) {
	if p.Dimension() != q.Dimension() {
		return false, fmt.Errorf("%s: %d vs %d: %w", opCoincides, p.Dimension(), q.Dimension(), ErrDimensionMismatch)
	}
	pz, qz := p.normal.IsZero(), q.normal.IsZero()
	if pz || qz {
		return pz && qz && math.Abs(p.constant-q.constant) < vector.DefaultEpsilon, nil
	}
	up, err := p.normal.Normalized()
	if err != nil {
		return false, planeErrorf(opCoincides, err)
	}
	uq, err := q.normal.Normalized()
	if err != nil {
		return false, planeErrorf(opCoincides, err)
	}
	if !up.ApproxEqual(uq, vector.DefaultEpsilon) && !up.ApproxEqual(uq.Scale(-1), vector.DefaultEpsilon) {
		return false, nil
	}
	bp, _ := p.BasePoint() // nonzero normal ⇒ ok
	bq, _ := q.BasePoint()
	diff, err := bp.Minus(bq)
	if err != nil {
		return false, planeErrorf(opCoincides, err)
	}

	return diff.IsOrthogonalTo(up)
}

// BasePoint returns a point on the plane: all coordinates zero except the
// first nonzero column i, set to constant/normal[i]. ok is false for a zero
// normal, where no such point is determined.
func (p Plane) BasePoint() (vector.Vector, bool) {
	i, ok := p.FirstNonzeroIndex()
	if !ok {
		return vector.Vector{}, false
	}
	coords := make([]float64, p.Dimension())
	ni, _ := p.normal.At(i)
	coords[i] = p.constant / ni
	v, err := vector.New(coords...)
	if err != nil {
		return vector.Vector{}, false
	}

	return v, true
}

// String renders the equation, e.g. "1x_1 + 1x_2 - 2x_3 = 2".
// Near-zero coefficients are omitted; an all-zero normal renders as "0 = k".
func (p Plane) String() string {
	var (
		sb    strings.Builder
		first = true
	)
	for i, c := range p.normal.Coords() {
		if math.Abs(c) < vector.DefaultEpsilon {
			continue
		}
		switch {
		case first && c < 0:
			sb.WriteString(_fmtNegFirst)
		case !first && c < 0:
			sb.WriteString(_fmtMinus)
		case !first:
			sb.WriteString(_fmtPlus)
		}
		sb.WriteString(formatFloat(math.Abs(c)))
		sb.WriteString(_fmtVar)
		sb.WriteString(strconv.Itoa(i + 1))
		first = false
	}
	if first {
		sb.WriteString(_fmtZeroLHS)
	}
	sb.WriteString(_fmtEquals)
	sb.WriteString(formatFloat(p.constant))

	return sb.String()
}

// isFinite reports x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// formatFloat prints x in the shortest round-trip form, folding -0 into 0.
func formatFloat(x float64) string {
	if x == 0 {
		x = 0
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}
