package lookupcurve

import "fmt"

// Interpolation selects how the segment to a knot's right is evaluated.
type Interpolation int

const (
	// InterpolationConstant holds the knot's Y value across the whole segment.
	// Useful for stepped parameters and state-machine style curves.
	InterpolationConstant Interpolation = iota

	// InterpolationLinear interpolates linearly between the knot and its
	// right neighbor.
	InterpolationLinear

	// InterpolationCubic interpolates with a cubic curve shaped by the
	// knot's right tangent and the neighbor's left tangent.
	InterpolationCubic
)

// String returns the lowercase name of the interpolation mode.
// The same names are used by the persistence format.
func (i Interpolation) String() string {
	switch i {
	case InterpolationConstant:
		return "constant"
	case InterpolationLinear:
		return "linear"
	case InterpolationCubic:
		return "cubic"
	default:
		return fmt.Sprintf("interpolation(%d)", int(i))
	}
}

// parseInterpolation maps a persisted mode name back to its value.
func parseInterpolation(s string) (Interpolation, bool) {
	switch s {
	case "constant":
		return InterpolationConstant, true
	case "linear":
		return InterpolationLinear, true
	case "cubic":
		return InterpolationCubic, true
	default:
		return 0, false
	}
}

// TangentMode controls how edits to one tangent affect the opposite tangent
// of the same knot.
type TangentMode int

const (
	// TangentFree lets the two tangents of a knot move independently.
	TangentFree TangentMode = iota

	// TangentAligned mirrors slope edits to the opposite tangent, keeping
	// the curve C1-continuous through the knot.
	TangentAligned
)

// String returns the lowercase name of the tangent mode.
func (m TangentMode) String() string {
	switch m {
	case TangentFree:
		return "free"
	case TangentAligned:
		return "aligned"
	default:
		return fmt.Sprintf("tangentmode(%d)", int(m))
	}
}

// parseTangentMode maps a persisted mode name back to its value.
func parseTangentMode(s string) (TangentMode, bool) {
	switch s {
	case "free":
		return TangentFree, true
	case "aligned":
		return TangentAligned, true
	default:
		return 0, false
	}
}

// TangentSide identifies one of a knot's two tangents.
type TangentSide int

const (
	// TangentSideLeft is the tangent shaping the segment arriving from the left.
	TangentSideLeft TangentSide = iota

	// TangentSideRight is the tangent shaping the segment leaving to the right.
	TangentSideRight
)

// Tangent describes one side of a knot for cubic interpolation.
type Tangent struct {
	// Slope is the tangent direction as dy/dx.
	Slope float64

	// Weight is the distance of the Bezier control point from the knot,
	// expressed as a fraction of the segment width. Only meaningful when
	// Weighted is true; an unweighted tangent behaves like weight 1/3,
	// which keeps the curve in plain Hermite form.
	Weight float64

	// Weighted reports whether Weight is in effect. Segments where neither
	// side is weighted evaluate without root finding.
	Weighted bool

	// Mode controls slope mirroring between the knot's two tangents.
	Mode TangentMode
}

// WeightedTangent returns a tangent with an explicit control-point weight.
// Negative weights are clamped to zero.
func WeightedTangent(slope, weight float64) Tangent {
	return Tangent{Slope: slope, Weight: max(weight, 0), Weighted: true}
}

// weightOr returns the tangent's weight, or def when unweighted.
func (t Tangent) weightOr(def float64) float64 {
	if t.Weighted {
		return t.Weight
	}
	return def
}

// Knot is a single control point of a LookupCurve.
//
// The zero value is a valid knot at the origin with constant interpolation.
// Knots are plain values; the curve-owned identity in ID is assigned when a
// knot is added to a curve and is zero before that.
type Knot struct {
	// ID is the stable identity assigned by the owning curve. It survives
	// re-sorting and position changes and is never reused while the curve
	// exists. Zero means the knot is not owned by a curve.
	ID uint64

	// X is the domain coordinate the knot is sorted by.
	X float64

	// Y is the range value at X.
	Y float64

	// Interpolation selects how the segment between this knot and its
	// right neighbor is evaluated. Ignored on the last knot.
	Interpolation Interpolation

	// LeftTangent shapes the incoming cubic segment, if any.
	LeftTangent Tangent

	// RightTangent shapes the outgoing cubic segment, if any.
	RightTangent Tangent
}

// NewKnot returns a cubic knot at (x, y) with flat, unweighted tangents.
func NewKnot(x, y float64) Knot {
	return Knot{X: x, Y: y, Interpolation: InterpolationCubic}
}

// Tangent returns the knot's tangent on the given side.
func (k Knot) Tangent(side TangentSide) Tangent {
	if side == TangentSideLeft {
		return k.LeftTangent
	}
	return k.RightTangent
}

// WithInterpolation returns a copy of the knot with the given segment mode.
func (k Knot) WithInterpolation(interp Interpolation) Knot {
	k.Interpolation = interp
	return k
}

// WithTangentSlope returns a copy of the knot with the slope of one tangent
// replaced. When the edited tangent is aligned, the opposite tangent's slope
// follows.
func (k Knot) WithTangentSlope(side TangentSide, slope float64) Knot {
	if side == TangentSideLeft {
		k.LeftTangent.Slope = slope
		if k.LeftTangent.Mode == TangentAligned {
			k.RightTangent.Slope = slope
		}
	} else {
		k.RightTangent.Slope = slope
		if k.RightTangent.Mode == TangentAligned {
			k.LeftTangent.Slope = slope
		}
	}
	return k
}

// WithTangentWeight returns a copy of the knot with an explicit weight on one
// tangent. Negative weights are clamped to zero.
func (k Knot) WithTangentWeight(side TangentSide, weight float64) Knot {
	weight = max(weight, 0)
	if side == TangentSideLeft {
		k.LeftTangent.Weight = weight
		k.LeftTangent.Weighted = true
	} else {
		k.RightTangent.Weight = weight
		k.RightTangent.Weighted = true
	}
	return k
}

// ClearTangentWeight returns a copy of the knot with one tangent back in
// unweighted form.
func (k Knot) ClearTangentWeight(side TangentSide) Knot {
	if side == TangentSideLeft {
		k.LeftTangent.Weight = 0
		k.LeftTangent.Weighted = false
	} else {
		k.RightTangent.Weight = 0
		k.RightTangent.Weighted = false
	}
	return k
}

// WithTangentMode returns a copy of the knot with the mode of one tangent
// replaced. Switching a tangent to TangentAligned copies its slope to the
// opposite tangent.
func (k Knot) WithTangentMode(side TangentSide, mode TangentMode) Knot {
	if side == TangentSideLeft {
		k.LeftTangent.Mode = mode
		if mode == TangentAligned {
			k.RightTangent.Slope = k.LeftTangent.Slope
		}
	} else {
		k.RightTangent.Mode = mode
		if mode == TangentAligned {
			k.LeftTangent.Slope = k.RightTangent.Slope
		}
	}
	return k
}
