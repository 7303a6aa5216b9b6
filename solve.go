package lookupcurve

import "math"

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps t to [0, 1].
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// evalSegment evaluates the segment from knot a to knot b at x.
// The segment mode comes from a; unknown modes evaluate as constant.
func evalSegment(a, b *Knot, x, maxError float64, maxIters int) float64 {
	switch a.Interpolation {
	case InterpolationLinear:
		dx := b.X - a.X
		if dx <= 0 {
			return a.Y
		}
		return lerp(a.Y, b.Y, clamp01((x-a.X)/dx))

	case InterpolationCubic:
		return evalCubic(a, b, x, maxError, maxIters)

	default:
		return a.Y
	}
}

// evalCubic evaluates a cubic segment at x.
//
// Unweighted tangents on both sides keep the Bezier X polynomial linear in
// t, so the curve collapses to the Hermite form and t is just the position
// ratio. A weight on either side bends X(t), and t must be recovered by
// inverting X(t) = x numerically.
func evalCubic(a, b *Knot, x, maxError float64, maxIters int) float64 {
	dx := b.X - a.X
	if dx <= 0 {
		return a.Y
	}

	t := clamp01((x - a.X) / dx)
	if !a.RightTangent.Weighted && !b.LeftTangent.Weighted {
		return hermite(a, b, dx, t)
	}

	px, py := bezierControls(a, b, dx)
	t = invertBezierX(px, x, t, maxError, maxIters)
	return bezierEval(py, t)
}

// hermite evaluates the cubic Hermite form at parameter t in [0, 1].
func hermite(a, b *Knot, dx, t float64) float64 {
	t2 := t * t
	t3 := t2 * t

	// Hermite basis functions
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*a.Y + h10*dx*a.RightTangent.Slope + h01*b.Y + h11*dx*b.LeftTangent.Slope
}

// bezierControls builds the cubic Bezier control points for the segment
// from a to b. Tangent slopes fix the control point directions and weights
// fix their distance along x as a fraction of the segment width.
func bezierControls(a, b *Knot, dx float64) (px, py [4]float64) {
	wr := a.RightTangent.weightOr(defaultTangentWeight)
	wl := b.LeftTangent.weightOr(defaultTangentWeight)

	px[0], py[0] = a.X, a.Y
	px[1], py[1] = a.X+dx*wr, a.Y+a.RightTangent.Slope*dx*wr
	px[2], py[2] = b.X-dx*wl, b.Y-b.LeftTangent.Slope*dx*wl
	px[3], py[3] = b.X, b.Y
	return px, py
}

// bezierEval evaluates one coordinate of a cubic Bezier at t.
func bezierEval(p [4]float64, t float64) float64 {
	u := 1 - t
	return u*u*u*p[0] + 3*u*u*t*p[1] + 3*u*t*t*p[2] + t*t*t*p[3]
}

// bezierDeriv evaluates the derivative of one Bezier coordinate at t.
func bezierDeriv(p [4]float64, t float64) float64 {
	u := 1 - t
	return 3*u*u*(p[1]-p[0]) + 6*u*t*(p[2]-p[1]) + 3*t*t*(p[3]-p[2])
}

// invertBezierX solves X(t) = x by Newton-Raphson, seeded with the linear
// estimate t0 and clamped to [0, 1] after every step. The iteration stops
// once the horizontal error is within maxError, on a flat derivative, or
// after maxIters steps; the current estimate is returned rather than an
// error, so a hard segment degrades to a slightly off t instead of failing.
func invertBezierX(px [4]float64, x, t0, maxError float64, maxIters int) float64 {
	t := t0
	for range maxIters {
		diff := bezierEval(px, t) - x
		if math.Abs(diff) <= maxError {
			break
		}

		d := bezierDeriv(px, t)
		if d == 0 {
			break
		}

		t = clamp01(t - diff/d)
	}
	return t
}
