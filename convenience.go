package lookupcurve

// NewConstant creates a curve that evaluates to y everywhere.
func NewConstant(y float64) *LookupCurve {
	return New(Knot{Y: y, Interpolation: InterpolationConstant})
}

// NewStep creates a curve that holds y0 until x1 and y1 from there on.
func NewStep(x0, y0, x1, y1 float64) *LookupCurve {
	return New(
		Knot{X: x0, Y: y0, Interpolation: InterpolationConstant},
		Knot{X: x1, Y: y1, Interpolation: InterpolationConstant},
	)
}

// NewLinear creates a straight ramp from (x0, y0) to (x1, y1). Queries
// outside the ramp clamp to the endpoint values.
func NewLinear(x0, y0, x1, y1 float64) *LookupCurve {
	return New(
		Knot{X: x0, Y: y0, Interpolation: InterpolationLinear},
		Knot{X: x1, Y: y1, Interpolation: InterpolationLinear},
	)
}

// NewEaseInOut creates a smooth S-shaped ramp from (x0, y0) to (x1, y1)
// with flat tangents at both ends. The midpoint evaluates exactly halfway
// between y0 and y1. x0 must be less than x1.
func NewEaseInOut(x0, y0, x1, y1 float64) *LookupCurve {
	return New(
		NewKnot(x0, y0),
		NewKnot(x1, y1),
	)
}

// NewEaseIn creates a ramp from (x0, y0) to (x1, y1) that starts flat and
// accelerates, following y0 + (y1-y0)*t^2. x0 must be less than x1.
func NewEaseIn(x0, y0, x1, y1 float64) *LookupCurve {
	endSlope := 2 * (y1 - y0) / (x1 - x0)
	return New(
		NewKnot(x0, y0),
		NewKnot(x1, y1).WithTangentSlope(TangentSideLeft, endSlope),
	)
}

// NewEaseOut creates a ramp from (x0, y0) to (x1, y1) that starts fast and
// levels off, following y0 + (y1-y0)*(2t - t^2). x0 must be less than x1.
func NewEaseOut(x0, y0, x1, y1 float64) *LookupCurve {
	startSlope := 2 * (y1 - y0) / (x1 - x0)
	return New(
		NewKnot(x0, y0).WithTangentSlope(TangentSideRight, startSlope),
		NewKnot(x1, y1),
	)
}

// Sample evaluates the curve at n evenly spaced points from lo to hi
// inclusive. A monotonic sweep is the lookup cache's best case, so this is
// considerably cheaper than n independent Lookup calls on larger curves.
func (c *LookupCurve) Sample(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = c.Lookup(lo)
		return out
	}

	var cache LookupCache
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = c.LookupCached(lo+float64(i)*step, &cache)
	}
	return out
}

// SampleDomain evaluates the curve at n evenly spaced points across its own
// knot range. Handy for previews and plotting.
func (c *LookupCurve) SampleDomain(n int) []float64 {
	lo, hi, _ := c.Domain()
	return c.Sample(lo, hi, n)
}
