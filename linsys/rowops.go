// SPDX-License-Identifier: MIT

// Package linsys - elementary row operations.
//
// Every operation validates indices first, then replaces whole rows with
// freshly built planes. A failed operation leaves the system unchanged.

package linsys

import (
	"github.com/katalvlaran/hyperplane/plane"
)

// SwapRows exchanges rows i and j in place. i == j is a no-op.
func (s *System) SwapRows(i, j int) error {
	if err := s.checkRow(opSwap, i); err != nil {
		return err
	}
	if err := s.checkRow(opSwap, j); err != nil {
		return err
	}
	s.planes[i], s.planes[j] = s.planes[j], s.planes[i]

	return nil
}

// MultiplyCoefficientAndRow replaces row with c·row: the normal vector is
// scaled by c and the constant term multiplied by c.
// c = 0 is accepted and degenerates the row to 0·x = 0.
func (s *System) MultiplyCoefficientAndRow(c float64, row int) error {
	if err := s.checkRow(opMultiply, row); err != nil {
		return err
	}
	p := s.planes[row]
	np, err := plane.New(p.Normal().Scale(c), p.Constant()*c)
	if err != nil {
		return linsysErrorf(opMultiply, err)
	}
	s.planes[row] = np

	return nil
}

// AddMultipleTimesRowToRow replaces dst with dst + c·src:
//
//	normal_dst   ← normal_dst + c·normal_src
//	constant_dst ← constant_dst + c·constant_src
//
// src is never modified. This is the elimination primitive of TriangularForm.
func (s *System) AddMultipleTimesRowToRow(c float64, src, dst int) error {
	if err := s.checkRow(opAddMultiple, src); err != nil {
		return err
	}
	if err := s.checkRow(opAddMultiple, dst); err != nil {
		return err
	}
	from, to := s.planes[src], s.planes[dst]
	n, err := to.Normal().Plus(from.Normal().Scale(c))
	if err != nil {
		return linsysErrorf(opAddMultiple, err)
	}
	np, err := plane.New(n, to.Constant()+c*from.Constant())
	if err != nil {
		return linsysErrorf(opAddMultiple, err)
	}
	s.planes[dst] = np

	return nil
}
