package lookupcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-lookup-curve/internal/testutil"
)

// TestNewConstant verifies the flat curve ignores the query position.
func TestNewConstant(t *testing.T) {
	c := NewConstant(0.75)
	for _, x := range []float64{-100, 0, 3.7, 1e9} {
		assert.Equal(t, 0.75, c.Lookup(x), "x=%v", x)
	}
}

// TestNewStep verifies the hold-then-jump shape, with the jump landing
// exactly on the second knot.
func TestNewStep(t *testing.T) {
	c := NewStep(0, -6, 1, 0)

	assert.Equal(t, -6.0, c.Lookup(-1))
	assert.Equal(t, -6.0, c.Lookup(0))
	assert.Equal(t, -6.0, c.Lookup(0.999))
	assert.Equal(t, 0.0, c.Lookup(1))
	assert.Equal(t, 0.0, c.Lookup(5))
}

// TestNewLinear verifies the ramp and its clamped ends.
func TestNewLinear(t *testing.T) {
	c := NewLinear(0, 0, 2, 10)

	assert.InDelta(t, 2.5, c.Lookup(0.5), 1e-12)
	assert.InDelta(t, 5.0, c.Lookup(1), 1e-12)
	assert.InDelta(t, 7.5, c.Lookup(1.5), 1e-12)
	assert.Equal(t, 0.0, c.Lookup(-3))
	assert.Equal(t, 10.0, c.Lookup(99))
}

// TestNewEaseInOut verifies endpoints, the exact halfway crossing and the
// flat approach at both ends.
func TestNewEaseInOut(t *testing.T) {
	c := NewEaseInOut(0, 2, 1, 6)

	assert.Equal(t, 2.0, c.Lookup(0))
	assert.Equal(t, 6.0, c.Lookup(1))
	assert.InDelta(t, 4.0, c.Lookup(0.5), 1e-15)

	// Flat tangents keep the first percent of travel tiny: the shape moves
	// about 3*t^2 of the span there, where a straight ramp would move t.
	assert.InDelta(t, 2.0, c.Lookup(0.01), 2e-3)
	assert.InDelta(t, 6.0, c.Lookup(0.99), 2e-3)

	samples := c.Sample(0, 1, 101)
	testutil.AssertMonotonic(t, samples)
	testutil.AssertAllInRange(t, samples, 2, 6)
}

// TestNewEaseIn verifies the accelerate-from-rest shape is exactly
// quadratic in the position ratio.
func TestNewEaseIn(t *testing.T) {
	c := NewEaseIn(1, 0, 3, 8)

	for i := range 21 {
		ratio := float64(i) / 20
		x := 1 + 2*ratio
		want := 8 * ratio * ratio
		assert.InDelta(t, want, c.Lookup(x), 1e-12, "x=%v", x)
	}
	testutil.AssertMonotonic(t, c.SampleDomain(64))
}

// TestNewEaseOut verifies the decelerate-into-rest shape.
func TestNewEaseOut(t *testing.T) {
	c := NewEaseOut(0, 0, 1, 1)

	for i := range 21 {
		ratio := float64(i) / 20
		want := 2*ratio - ratio*ratio
		assert.InDelta(t, want, c.Lookup(ratio), 1e-12, "x=%v", ratio)
	}
	testutil.AssertMonotonic(t, c.SampleDomain(64))
}

// TestSample verifies count handling and agreement with plain Lookup.
func TestSample(t *testing.T) {
	c := NewEaseInOut(0, 0, 2, 1)

	assert.Nil(t, c.Sample(0, 2, 0))
	assert.Nil(t, c.Sample(0, 2, -5))

	one := c.Sample(0.5, 2, 1)
	require.Len(t, one, 1)
	assert.Equal(t, c.Lookup(0.5), one[0])

	n := 33
	forward := c.Sample(0, 2, n)
	require.Len(t, forward, n)
	step := 2.0 / float64(n-1)
	for i, got := range forward {
		assert.Equal(t, c.Lookup(float64(i)*step), got, "sample %d", i)
	}

	// Backward sweeps exercise the cache's reverse probe and must agree too.
	backward := c.Sample(2, 0, n)
	for i, got := range backward {
		assert.Equal(t, c.Lookup(2-float64(i)*step), got, "reverse sample %d", i)
	}
}

// TestSampleDomain verifies sampling across the curve's own knot range.
func TestSampleDomain(t *testing.T) {
	c := NewLinear(2, 0, 4, 10)

	got := c.SampleDomain(5)
	require.Len(t, got, 5)
	testutil.AssertMatchesWithin(t, []float64{0, 2.5, 5, 7.5, 10}, got, 1e-12)
}
