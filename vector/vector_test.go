// Package vector_test contains unit tests for the immutable Vector type.
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperplane/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// mustVector builds a vector or fails the test.
func mustVector(t *testing.T, coords ...float64) vector.Vector {
	t.Helper()
	v, err := vector.New(coords...)
	require.NoError(t, err)

	return v
}

// TestNew_Validation checks empty and non-finite inputs are rejected.
func TestNew_Validation(t *testing.T) {
	_, err := vector.New()
	require.ErrorIs(t, err, vector.ErrEmpty)

	_, err = vector.New(1, math.NaN())
	require.ErrorIs(t, err, vector.ErrNaNInf)

	_, err = vector.New(math.Inf(-1))
	require.ErrorIs(t, err, vector.ErrNaNInf)

	_, err = vector.Zero(0)
	require.ErrorIs(t, err, vector.ErrEmpty)

	z, err := vector.Zero(3)
	require.NoError(t, err)
	require.Equal(t, 3, z.Dim())
	require.True(t, z.IsZero())
}

// TestNew_CopiesInput ensures caller writes never leak into a built vector.
func TestNew_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	v := mustVector(t, in...)
	in[0] = 99

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	out := v.Coords()
	out[1] = 99
	x, _ = v.At(1)
	require.Equal(t, 2.0, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestArithmetic covers Plus, Minus, Scale and dimension checks.
func TestArithmetic(t *testing.T) {
	v := mustVector(t, 8.218, -9.341)
	w := mustVector(t, -1.129, 2.111)

	sum, err := v.Plus(w)
	require.NoError(t, err)
	require.True(t, sum.ApproxEqual(mustVector(t, 7.089, -7.23), tol), sum.String())

	diff, err := v.Minus(w)
	require.NoError(t, err)
	require.True(t, diff.ApproxEqual(mustVector(t, 9.347, -11.452), tol), diff.String())

	scaled := mustVector(t, 1.671, -1.012, -0.318).Scale(7.41)
	require.True(t, scaled.ApproxEqual(mustVector(t, 12.38211, -7.49892, -2.35638), tol), scaled.String())

	_, err = v.Plus(mustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.Minus(mustVector(t, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.Dot(mustVector(t, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestMagnitudeNormalized checks the Euclidean norm and unit vectors.
func TestMagnitudeNormalized(t *testing.T) {
	v := mustVector(t, 3, 4)
	require.InDelta(t, 5.0, v.Magnitude(), tol)

	u, err := v.Normalized()
	require.NoError(t, err)
	require.True(t, u.ApproxEqual(mustVector(t, 0.6, 0.8), tol))
	require.InDelta(t, 1.0, u.Magnitude(), tol)

	_, err = mustVector(t, 0, 0, 0).Normalized()
	require.ErrorIs(t, err, vector.ErrZeroVector)

	// Below tolerance counts as zero.
	_, err = mustVector(t, 1e-12, 0).Normalized()
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

// TestIsZero_MatchesNormalizeFailure: IsZero ⇔ Normalized fails with ErrZeroVector.
func TestIsZero_MatchesNormalizeFailure(t *testing.T) {
	cases := [][]float64{
		{0}, {0, 0}, {1e-11, -1e-11}, {1e-9}, {1, 0}, {-3, 4, 12},
	}
	for _, c := range cases {
		v := mustVector(t, c...)
		_, err := v.Normalized()
		if v.IsZero() {
			assert.Less(t, v.Magnitude(), vector.DefaultEpsilon)
			assert.ErrorIs(t, err, vector.ErrZeroVector, v.String())
		} else {
			assert.NoError(t, err, v.String())
		}
	}
	require.True(t, mustVector(t, 0.001).IsZeroWithin(0.01))
}

// TestAngleWith checks radians, degrees and zero-vector propagation.
func TestAngleWith(t *testing.T) {
	x := mustVector(t, 1, 0)
	y := mustVector(t, 0, 1)

	rad, err := x.AngleWith(y, false)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, rad, tol)

	deg, err := x.AngleWith(y, true)
	require.NoError(t, err)
	require.InDelta(t, 90.0, deg, tol)

	// Rounding keeps acos defined for exactly parallel inputs.
	rad, err = mustVector(t, 1, 2).AngleWith(mustVector(t, -2, -4), false)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, rad, tol)
	require.False(t, math.IsNaN(rad))

	_, err = x.AngleWith(mustVector(t, 0, 0), false)
	require.ErrorIs(t, err, vector.ErrZeroVector)

	_, err = x.AngleWith(mustVector(t, 1, 2, 3), false)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestParallelOrthogonal checks the relation predicates.
func TestParallelOrthogonal(t *testing.T) {
	tests := []struct {
		name       string
		v, w       []float64
		parallel   bool
		orthogonal bool
	}{
		{"axes", []float64{1, 0}, []float64{0, 1}, false, true},
		{"opposite", []float64{1, 2}, []float64{-2, -4}, true, false},
		{"same direction", []float64{0.5, 0.5, 0.5}, []float64{3, 3, 3}, true, false},
		{"zero is both", []float64{0, 0, 0}, []float64{1, 2, 3}, true, true},
		{"generic", []float64{-7.579, -7.88}, []float64{22.737, 23.64}, true, false},
		{"skew", []float64{-2.328, -7.284, -1.214}, []float64{-1.821, 1.072, -2.94}, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, w := mustVector(t, tc.v...), mustVector(t, tc.w...)
			p, err := v.IsParallelTo(w)
			require.NoError(t, err)
			assert.Equal(t, tc.parallel, p, "parallel")

			o, err := v.IsOrthogonalToWithin(w, 1e-3)
			require.NoError(t, err)
			assert.Equal(t, tc.orthogonal, o, "orthogonal")
		})
	}

	o, err := mustVector(t, 1, 0).IsOrthogonalTo(mustVector(t, 0, 5))
	require.NoError(t, err)
	require.True(t, o)

	_, err = mustVector(t, 1).IsParallelTo(mustVector(t, 1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = mustVector(t, 1).IsOrthogonalTo(mustVector(t, 1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestComponents checks projection and its orthogonal complement.
func TestComponents(t *testing.T) {
	v := mustVector(t, 3, 4)
	basis := mustVector(t, 2, 0)

	par, err := v.ComponentParallelTo(basis)
	require.NoError(t, err)
	require.True(t, par.ApproxEqual(mustVector(t, 3, 0), tol), par.String())

	orth, err := v.ComponentOrthogonalTo(basis)
	require.NoError(t, err)
	require.True(t, orth.ApproxEqual(mustVector(t, 0, 4), tol), orth.String())

	// par + orth reconstructs v, and orth ⟂ basis.
	back, err := par.Plus(orth)
	require.NoError(t, err)
	require.True(t, back.ApproxEqual(v, tol))
	ok, err := orth.IsOrthogonalTo(basis)
	require.NoError(t, err)
	require.True(t, ok)

	zero := mustVector(t, 0, 0)
	_, err = v.ComponentParallelTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueParallelComponent)
	_, err = v.ComponentOrthogonalTo(zero)
	require.ErrorIs(t, err, vector.ErrNoUniqueOrthogonalComponent)
	require.NotErrorIs(t, err, vector.ErrNoUniqueParallelComponent)

	_, err = v.ComponentParallelTo(mustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestCross covers 3D, 2D embedding, anti-commutativity and unsupported dims.
func TestCross(t *testing.T) {
	v := mustVector(t, 8.462, 7.893, -8.187)
	w := mustVector(t, 6.984, -5.975, 4.778)

	c, err := v.Cross(w)
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(mustVector(t, -11.204571, -97.609444, -105.685162), 1e-6), c.String())

	rev, err := w.Cross(v)
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(rev.Scale(-1), tol))

	// 2D operands are embedded into 3D.
	c2, err := mustVector(t, 1, 0).Cross(mustVector(t, 0, 1))
	require.NoError(t, err)
	require.True(t, c2.Equal(mustVector(t, 0, 0, 1)), c2.String())

	_, err = mustVector(t, 1, 2, 3, 4).Cross(mustVector(t, 1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrCrossDimension)
	_, err = mustVector(t, 1).Cross(mustVector(t, 2))
	require.ErrorIs(t, err, vector.ErrCrossDimension)
	_, err = mustVector(t, 1, 2).Cross(mustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestAreas checks parallelogram and triangle areas.
func TestAreas(t *testing.T) {
	a, err := mustVector(t, 1, 0, 0).AreaOfParallelogramWith(mustVector(t, 0, 1, 0))
	require.NoError(t, err)
	require.InDelta(t, 1.0, a, tol)

	a, err = mustVector(t, -8.987, -9.838, 5.031).AreaOfParallelogramWith(mustVector(t, -4.268, -1.861, -8.866))
	require.NoError(t, err)
	require.InDelta(t, 142.122221402, a, 1e-6)

	a, err = mustVector(t, 1.5, 9.547, 3.691).AreaOfTriangleWith(mustVector(t, -6.007, 0.124, 5.772))
	require.NoError(t, err)
	require.InDelta(t, 42.564937399, a, 1e-6)

	a, err = mustVector(t, 2, 0).AreaOfTriangleWith(mustVector(t, 0, 3))
	require.NoError(t, err)
	require.InDelta(t, 3.0, a, tol)

	_, err = mustVector(t, 1, 2, 3, 4).AreaOfTriangleWith(mustVector(t, 1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrCrossDimension)
}

// TestAlgebraicProperties checks dot commutativity and (v+w)-w == v on random data.
func TestAlgebraicProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 6; n++ {
		for k := 0; k < 20; k++ {
			a, b := make([]float64, n), make([]float64, n)
			for i := 0; i < n; i++ {
				a[i] = rng.Float64()*200 - 100
				b[i] = rng.Float64()*200 - 100
			}
			v, w := mustVector(t, a...), mustVector(t, b...)

			vw, err := v.Dot(w)
			require.NoError(t, err)
			wv, err := w.Dot(v)
			require.NoError(t, err)
			require.Equal(t, vw, wv)

			sum, err := v.Plus(w)
			require.NoError(t, err)
			back, err := sum.Minus(w)
			require.NoError(t, err)
			require.True(t, back.ApproxEqual(v, 1e-9), "%v vs %v", back, v)
		}
	}
}

// TestEqualAndString checks exact equality and formatting.
func TestEqualAndString(t *testing.T) {
	v := mustVector(t, 1, 2.5, -3)
	require.True(t, v.Equal(mustVector(t, 1, 2.5, -3)))
	require.False(t, v.Equal(mustVector(t, 1, 2.5)))
	require.False(t, v.ApproxEqual(mustVector(t, 1, 2.5), 1))
	require.Equal(t, "Vector: (1, 2.5, -3)", v.String())
}
