// SPDX-License-Identifier: MIT

// Package linsys - augmented-matrix bridge.
//
// Row i of the augmented matrix [A | b] holds the normal coordinates of plane i
// followed by its constant term, so an m-equation system in n dimensions maps
// to an m×(n+1) matrix.Dense.

package linsys

import (
	"github.com/katalvlaran/hyperplane/matrix"
	"github.com/katalvlaran/hyperplane/plane"
	"github.com/katalvlaran/hyperplane/vector"
)

// Augmented returns the Len()×(Dimension()+1) matrix [A | b].
// A nil receiver yields ErrNilSystem.
func (s *System) Augmented() (*matrix.Dense, error) {
	if s == nil {
		return nil, linsysErrorf(opAugmented, ErrNilSystem)
	}
	rows := make([][]float64, len(s.planes))
	for i, p := range s.planes {
		rows[i] = append(p.Normal().Coords(), p.Constant())
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, linsysErrorf(opAugmented, err)
	}

	return m, nil
}

// FromAugmented rebuilds a system from an augmented matrix [A | b].
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrDimensionMismatch when m has fewer than 2 columns (no coefficient column).
//   - vector/plane construction errors for non-finite entries.
func FromAugmented(m matrix.Matrix) (*System, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, linsysErrorf(opFromAugmented, err)
	}
	if err := matrix.ValidateMinCols(m, 2); err != nil {
		return nil, linsysErrorf(opFromAugmented, ErrDimensionMismatch)
	}
	n := m.Cols() - 1
	planes := make([]plane.Plane, m.Rows())
	var (
		row    []float64
		normal vector.Vector
		err    error
	)
	for i := range planes {
		if row, err = m.Row(i); err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
		if normal, err = vector.New(row[:n]...); err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
		if planes[i], err = plane.New(normal, row[n]); err != nil {
			return nil, linsysErrorf(opFromAugmented, err)
		}
	}

	return New(planes...)
}
