// SPDX-License-Identifier: MIT

package vector

// Numeric policy (single source of truth).
const (
	// DefaultEpsilon is the absolute tolerance below which a magnitude,
	// dot product or coordinate is treated as zero.
	DefaultEpsilon = 1e-10

	// AngleRoundDigits is the number of decimals the cosine is rounded to
	// before acos, keeping values like 1.0000000000000002 inside [-1, 1].
	AngleRoundDigits = 4
)

// Operation tags for error wrapping (no magic strings at call sites).
const (
	opNew            = "New"
	opZero           = "Zero"
	opAt             = "At"
	opPlus           = "Plus"
	opMinus          = "Minus"
	opDot            = "Dot"
	opNormalized     = "Normalized"
	opAngleWith      = "AngleWith"
	opOrthogonal     = "IsOrthogonalTo"
	opParallel       = "IsParallelTo"
	opCompParallel   = "ComponentParallelTo"
	opCompOrthogonal = "ComponentOrthogonalTo"
	opCross          = "Cross"
)

// Vector is an immutable, fixed-dimension tuple of float64 coordinates.
// The zero value has dimension 0 and is only useful as a "missing" marker;
// build real vectors with New or Zero.
type Vector struct {
	coords []float64 // never shared with callers; len == dimension
}
