package lookupcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"
)

// Cross-checks against gonum's interpolators, which share the math but none
// of the code with this package.

// TestLinearCurve_MatchesGonum compares a multi-segment linear curve with
// gonum's piecewise linear predictor across the whole domain.
func TestLinearCurve_MatchesGonum(t *testing.T) {
	xs := []float64{0, 0.5, 1.25, 2, 3.5}
	ys := []float64{0, 2, -1, 4, 4}

	knots := make([]Knot, len(xs))
	for i := range xs {
		knots[i] = Knot{X: xs[i], Y: ys[i], Interpolation: InterpolationLinear}
	}
	c := New(knots...)

	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(xs, ys))

	const n = 300
	for i := 0; i <= n; i++ {
		x := 3.5 * float64(i) / n
		assert.InDelta(t, pl.Predict(x), c.Lookup(x), 1e-12, "x=%v", x)
	}
}

// TestEaseInOut_MatchesClampedCubic compares the flat-tangent cubic segment
// with gonum's clamped cubic spline, which also pins zero end derivatives.
func TestEaseInOut_MatchesClampedCubic(t *testing.T) {
	c := NewEaseInOut(0, 0, 1, 1)

	var cc interp.ClampedCubic
	require.NoError(t, cc.Fit([]float64{0, 1}, []float64{0, 1}))

	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		assert.InDelta(t, cc.Predict(x), c.Lookup(x), 1e-10, "x=%v", x)
	}
}

// TestScaledEaseInOut_MatchesClampedCubic repeats the comparison on an
// offset, non-unit segment to catch hidden unit-interval assumptions.
func TestScaledEaseInOut_MatchesClampedCubic(t *testing.T) {
	c := NewEaseInOut(10, -3, 14, 5)

	var cc interp.ClampedCubic
	require.NoError(t, cc.Fit([]float64{10, 14}, []float64{-3, 5}))

	for i := 0; i <= 100; i++ {
		x := 10 + 4*float64(i)/100
		assert.InDelta(t, cc.Predict(x), c.Lookup(x), 1e-9, "x=%v", x)
	}
}
