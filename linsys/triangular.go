// SPDX-License-Identifier: MIT

package linsys

import (
	"math"
)

// TriangularForm returns a new system in row-echelon (triangular) form; s is
// not modified.
// Implementation:
//   - Stage 1: resolve options; clone s into a private working system.
//   - Stage 2: walk rows i = 0..m-1 with one column cursor j shared across rows.
//     For row i, while j < n:
//   - if |row_i[j]| < eps, try to swap in the first row below with a
//     non-near-zero coefficient at j; if there is none, j++ and retry row i.
//   - otherwise clear column j in every row below i, then j++ and move on.
//   - Stage 3: return the working system.
//
// Behavior highlights:
//   - Pivot columns strictly increase with row index.
//   - Rows left without a pivot (column cursor exhausted) are returned as-is;
//     they are typically near-zero rows, 0 = 0 (redundant) or 0 = k (inconsistent).
//   - Pivots are not scaled to 1 and entries above pivots are not cleared.
//
// Errors:
//   - ErrNilSystem for a nil receiver.
//   - Row-operation failures (NaN/Inf produced by extreme coefficients).
//
// Determinism:
//   - Fixed row/column order; the first eligible row below wins a swap.
//
// Complexity:
//   - Time O(m·m·n), Space O(m·n) for the clone.
func (s *System) TriangularForm(opts ...Option) (*System, error) {
	if s == nil {
		return nil, linsysErrorf(opTriangular, ErrNilSystem)
	}
	o := gatherOptions(opts...)
	sys := s.Clone()

	var (
		m, n = sys.Len(), sys.Dimension()
		i, j int
	)
	for i = 0; i < m; i++ {
		for j < n {
			if isNearZero(sys.coefficient(i, j), o.Epsilon) {
				if !sys.swapWithRowBelowForNonzeroCoefficient(i, j, &o) {
					j++ // no usable pivot in this column; same row, next column
					continue
				}
			}
			o.Logger.Debug("pivot", "row", i, "col", j, "value", sys.coefficient(i, j))
			if err := sys.clearCoefficientsBelow(i, j, &o); err != nil {
				return nil, linsysErrorf(opTriangular, err)
			}
			j++
			break
		}
	}

	return sys, nil
}

// swapWithRowBelowForNonzeroCoefficient swaps row with the first row k > row
// whose coefficient at col is not near zero. Reports whether a swap happened.
func (s *System) swapWithRowBelowForNonzeroCoefficient(row, col int, o *Options) bool {
	for k := row + 1; k < len(s.planes); k++ {
		if isNearZero(s.coefficient(k, col), o.Epsilon) {
			continue
		}
		s.planes[row], s.planes[k] = s.planes[k], s.planes[row]
		o.Logger.Debug("swap", "row", row, "with", k, "col", col)
		o.OnSwap(row, k)

		return true
	}

	return false
}

// clearCoefficientsBelow eliminates column col from every row below row,
// using row's coefficient beta = row[col] as the pivot:
//
//	alpha = -gamma / beta,  row_k ← row_k + alpha·row
//
// where gamma = row_k[col].
func (s *System) clearCoefficientsBelow(row, col int, o *Options) error {
	beta := s.coefficient(row, col)
	for k := row + 1; k < len(s.planes); k++ {
		gamma := s.coefficient(k, col)
		alpha := -gamma / beta
		if err := s.AddMultipleTimesRowToRow(alpha, row, k); err != nil {
			return err
		}
		o.Logger.Debug("eliminate", "src", row, "dst", k, "alpha", alpha)
		o.OnEliminate(alpha, row, k)
	}

	return nil
}

// isNearZero reports |x| < eps.
func isNearZero(x, eps float64) bool {
	return math.Abs(x) < eps
}
