// SPDX-License-Identifier: MIT

// Package vector - arithmetic and metric kernels.
//
// Determinism:
//   - Fixed loop order 0..n-1 for every accumulation; identical inputs
//     produce bit-identical outputs.
//
// Complexity quicksheet:
//   - Plus/Minus/Scale/Dot/Magnitude: O(n); Normalized/AngleWith: O(n).

package vector

import "math"

// Plus returns v + w. Dimensions must match.
func (v Vector) Plus(w Vector) (Vector, error) {
	return v.combine(w, 1, opPlus)
}

// Minus returns v - w. Dimensions must match.
func (v Vector) Minus(w Vector) (Vector, error) {
	return v.combine(w, -1, opMinus)
}

// combine computes v + sign*w into a fresh vector.
// Shared by Plus/Minus so both validate and allocate identically.
func (v Vector) combine(w Vector, sign float64, tag string) (Vector, error) {
	if len(v.coords) != len(w.coords) {
		return Vector{}, mismatchErrorf(tag, len(v.coords), len(w.coords))
	}
	out := make([]float64, len(v.coords))
	for i := range v.coords {
		out[i] = v.coords[i] + sign*w.coords[i]
	}

	return fromOwned(out), nil
}

// Scale returns c*v.
func (v Vector) Scale(c float64) Vector {
	out := make([]float64, len(v.coords))
	for i, x := range v.coords {
		out[i] = c * x
	}

	return fromOwned(out)
}

// Magnitude returns the Euclidean norm √(Σ xᵢ²).
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v.coords {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// IsZero reports Magnitude() < DefaultEpsilon.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(DefaultEpsilon)
}

// IsZeroWithin reports Magnitude() < eps.
func (v Vector) IsZeroWithin(eps float64) bool {
	return v.Magnitude() < eps
}

// Normalized returns the unit vector v/|v|.
// Errors:
//   - ErrZeroVector when v.IsZero().
func (v Vector) Normalized() (Vector, error) {
	if v.IsZero() {
		return Vector{}, vectorErrorf(opNormalized, ErrZeroVector)
	}

	m := v.Magnitude()
	out := make([]float64, len(v.coords))
	for i, x := range v.coords {
		out[i] = x / m
	}

	return fromOwned(out), nil
}

// Dot returns Σ vᵢ·wᵢ. Dimensions must match.
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v.coords) != len(w.coords) {
		return 0, mismatchErrorf(opDot, len(v.coords), len(w.coords))
	}
	var sum float64
	for i := range v.coords {
		sum += v.coords[i] * w.coords[i]
	}

	return sum, nil
}

// AngleWith returns the angle between v and w in radians, or in degrees when
// inDegrees is true.
// Implementation:
//   - Stage 1: normalize both operands (ErrZeroVector propagates).
//   - Stage 2: round the cosine to AngleRoundDigits decimals, then acos.
//
// Notes:
//   - Without the rounding, parallel inputs can yield cos = 1+ulp and acos = NaN.
func (v Vector) AngleWith(w Vector, inDegrees bool) (float64, error) {
	if len(v.coords) != len(w.coords) {
		return 0, mismatchErrorf(opAngleWith, len(v.coords), len(w.coords))
	}
	u1, err := v.Normalized()
	if err != nil {
		return 0, vectorErrorf(opAngleWith, err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, vectorErrorf(opAngleWith, err)
	}
	cos, _ := u1.Dot(u2) // dimensions checked above
	rad := math.Acos(roundTo(cos, AngleRoundDigits))
	if inDegrees {
		return rad * 180 / math.Pi, nil
	}

	return rad, nil
}

// IsOrthogonalTo reports |v·w| < DefaultEpsilon.
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	return v.IsOrthogonalToWithin(w, DefaultEpsilon)
}

// IsOrthogonalToWithin reports |v·w| < eps.
func (v Vector) IsOrthogonalToWithin(w Vector, eps float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, vectorErrorf(opOrthogonal, err)
	}

	return math.Abs(d) < eps, nil
}

// IsParallelTo reports whether v and w point along the same line.
// The zero vector is parallel to everything; otherwise the angle between the
// two must be within DefaultEpsilon of 0 or π.
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	if len(v.coords) != len(w.coords) {
		return false, mismatchErrorf(opParallel, len(v.coords), len(w.coords))
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	angle, err := v.AngleWith(w, false)
	if err != nil {
		return false, vectorErrorf(opParallel, err)
	}

	return angle < DefaultEpsilon || math.Abs(angle-math.Pi) < DefaultEpsilon, nil
}

// roundTo rounds x to the given number of decimals (half away from zero).
func roundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))

	return math.Round(x*p) / p
}
