// Package matrix provides Dense, a row-major float64 matrix used as the
// augmented-matrix view [A | b] of a linear system.
//
// The package provides:
//
//   - Dense with bounds-checked At/Set (errors, never panics) and deep Clone.
//   - NewDenseFromRows for building a matrix from a rectangular [][]float64.
//   - A finite-only numeric policy: Set rejects NaN and ±Inf.
//
// See linsys.System.Augmented and linsys.FromAugmented for the bridge between
// planes and matrices.
package matrix
