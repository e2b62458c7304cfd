// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// ComponentParallelTo returns the projection of v onto basis.
// Implementation:
//   - Stage 1: u = basis.Normalized(); a zero basis maps to ErrNoUniqueParallelComponent.
//   - Stage 2: return u scaled by v·u.
//
// Errors:
//   - ErrDimensionMismatch, ErrNoUniqueParallelComponent.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	if len(v.coords) != len(basis.coords) {
		return Vector{}, mismatchErrorf(opCompParallel, len(v.coords), len(basis.coords))
	}
	u, err := basis.Normalized()
	if errors.Is(err, ErrZeroVector) {
		return Vector{}, vectorErrorf(opCompParallel, ErrNoUniqueParallelComponent)
	}
	if err != nil {
		return Vector{}, vectorErrorf(opCompParallel, err)
	}
	weight, _ := v.Dot(u)

	return u.Scale(weight), nil
}

// ComponentOrthogonalTo returns v minus its projection onto basis.
// Errors:
//   - ErrDimensionMismatch, ErrNoUniqueOrthogonalComponent.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	p, err := v.ComponentParallelTo(basis)
	if errors.Is(err, ErrNoUniqueParallelComponent) {
		return Vector{}, vectorErrorf(opCompOrthogonal, ErrNoUniqueOrthogonalComponent)
	}
	if err != nil {
		return Vector{}, vectorErrorf(opCompOrthogonal, err)
	}

	return v.Minus(p)
}

// Cross returns v × w.
// Behavior highlights:
//   - 3D inputs: the usual cross product.
//   - 2D inputs: both operands are embedded as (x, y, 0) first, so the result
//     is always 3D with only a z-component.
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//   - ErrCrossDimension for any dimension other than 2 or 3.
func (v Vector) Cross(w Vector) (Vector, error) {
	if len(v.coords) != len(w.coords) {
		return Vector{}, mismatchErrorf(opCross, len(v.coords), len(w.coords))
	}
	switch len(v.coords) {
	case 3:
		x1, y1, z1 := v.coords[0], v.coords[1], v.coords[2]
		x2, y2, z2 := w.coords[0], w.coords[1], w.coords[2]

		return fromOwned([]float64{
			y1*z2 - y2*z1,
			x2*z1 - x1*z2,
			x1*y2 - x2*y1,
		}), nil
	case 2:
		return v.embed3().Cross(w.embed3())
	default:
		return Vector{}, fmt.Errorf("%s: dimension %d: %w", opCross, len(v.coords), ErrCrossDimension)
	}
}

// embed3 appends a zero z-coordinate to a 2D vector.
func (v Vector) embed3() Vector {
	return fromOwned([]float64{v.coords[0], v.coords[1], 0})
}

// AreaOfParallelogramWith returns |v × w|.
func (v Vector) AreaOfParallelogramWith(w Vector) (float64, error) {
	c, err := v.Cross(w)
	if err != nil {
		return 0, err
	}

	return c.Magnitude(), nil
}

// AreaOfTriangleWith returns |v × w| / 2.
func (v Vector) AreaOfTriangleWith(w Vector) (float64, error) {
	area, err := v.AreaOfParallelogramWith(w)
	if err != nil {
		return 0, err
	}

	return area / 2, nil
}
