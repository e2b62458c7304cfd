// Package plane models affine hyperplanes n·x = k in N-dimensional space.
//
// A Plane pairs a normal vector.Vector with a constant term. Like vectors,
// planes are immutable: row operations on a linear system build new planes
// rather than editing coefficients in place.
//
// The package exposes exactly what Gaussian elimination needs (dimension,
// structural equality, first non-near-zero coefficient) plus a few geometric
// helpers: IsParallelTo, Coincides and BasePoint.
package plane
