// Package linsys reduces systems of hyperplanes to triangular form.
//
// 🚀 What is a linear system here?
//
//	An ordered list of plane.Plane rows n_i·x = k_i sharing one dimension.
//	Row index is equation index. Rows are replaced wholesale by row
//	operations; a Plane is never edited in place.
//
// ✨ Key features:
//   - Row operations: SwapRows, MultiplyCoefficientAndRow,
//     AddMultipleTimesRowToRow (dst ← dst + c·src)
//   - TriangularForm: Gaussian elimination with near-zero pivot detection,
//     row swaps and elimination below each pivot; the receiver is never mutated
//   - LeadingIndices: per-row pivot column (or NoLeadingIndex)
//   - Augmented / FromAugmented: bridge to matrix.Dense as [A | b]
//
// ⚙️ Usage:
//
//	s, err := linsys.New(p1, p2, p3)
//	t, err := s.TriangularForm(linsys.WithEpsilon(1e-12))
//
// Algorithm outline (TriangularForm):
//  1. j = 0 (column cursor shared across rows).
//  2. For each row i, while j < dimension:
//     a. if |row_i[j]| < eps, swap with the first row below whose column j is
//     not near zero; when none exists, j++ and retry the same row.
//     b. for every row k > i: row_k += (-row_k[j]/row_i[j]) · row_i.
//     c. j++, next row.
//
// Pivots are not normalized to 1 and nothing above a pivot is eliminated:
// the result is row-echelon, not reduced row-echelon form. Solution-set
// classification is left to callers (a row 0 = k with k ≠ 0 signals an
// inconsistent system).
//
// Concurrency:
//
//	TriangularForm only reads the receiver and works on a private clone.
//	Row operations mutate the receiver and must be serialized by the caller.
//
// Complexity:
//
//   - TriangularForm: O(m·m·n) for m equations in n dimensions.
package linsys
