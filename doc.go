// Package hyperplane is a small in-memory toolkit for geometric vectors,
// hyperplanes and linear systems built from them.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• Vectors: arithmetic, magnitude, normalization, dot/cross products,
//		  projections, parallel/orthogonal/zero tests
//		• Planes: normal vector + constant term, first-nonzero lookup, equality
//		• Linear systems: row operations and Gaussian elimination to
//		  triangular (row-echelon) form
//		• Augmented matrices: [A | b] views of a system on a row-major Dense
//
// Under the hood, everything is organized under four subpackages:
//
//	vector/ immutable N-dimensional float64 vectors
//	plane/  hyperplanes n·x = k over vector.Vector
//	linsys/ LinearSystem, row operations, TriangularForm
//	matrix/ Dense storage used for augmented-matrix export/import
//
// Quick example:
//
//	x + y + z = 1
//	    y + z = 2
//
// is already triangular: the pivot column strictly increases row by row.
//
// Numeric policy: every "is this zero" question is answered against an
// absolute tolerance (vector.DefaultEpsilon = 1e-10), never by exact comparison.
//
//	go get github.com/katalvlaran/hyperplane
package hyperplane
