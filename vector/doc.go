// Package vector implements immutable N-dimensional float64 vectors.
//
// What & Why:
//
//	A Vector is a fixed-dimension tuple of finite coordinates. Every
//	operation returns a fresh value (or scalar); nothing is mutated in place,
//	so vectors may be shared freely between goroutines and between planes
//	of a linear system.
//
// ✨ Key features:
//   - arithmetic: Plus, Minus, Scale
//   - metric: Magnitude, Normalized, Dot, AngleWith
//   - relations: IsZero, IsOrthogonalTo, IsParallelTo
//   - projections: ComponentParallelTo, ComponentOrthogonalTo
//   - 3D geometry: Cross, AreaOfParallelogramWith, AreaOfTriangleWith
//     (2D inputs are embedded into 3D with a zero z-coordinate)
//
// Numeric policy:
//
//	All near-zero checks use DefaultEpsilon (1e-10) unless a *Within variant
//	is called with an explicit tolerance. Operations that need equal
//	dimensions return ErrDimensionMismatch instead of panicking.
//
// Usage:
//
//	v, _ := vector.New(3, 4)
//	u, err := v.Normalized() // Vector: (0.6, 0.8)
//	if errors.Is(err, vector.ErrZeroVector) {
//		// handle degenerate input
//	}
package vector
