package lookupcurve

import (
	"errors"
	"math"
	"sort"
)

// LookupCurve is a piecewise curve mapping scalar x to scalar y, defined by
// a sorted sequence of knots. Each knot carries the interpolation mode of
// the segment to its right, so constant, linear and cubic pieces can be
// mixed freely in one curve.
//
// Queries outside the knot range clamp to the boundary knot's value, an
// empty curve evaluates to 0 everywhere (detectable via Len), and a NaN
// query returns NaN without touching any cache.
//
// A LookupCurve performs no internal locking. Any number of goroutines may
// query it concurrently as long as each uses its own LookupCache and nobody
// mutates it; mutations require exclusive access.
type LookupCurve struct {
	knots []Knot

	// Newton-Raphson tuning for weighted cubic segments
	maxIters int
	maxError float64

	name string

	// generation tags cache hints and advances on every structural change
	generation uint64
	nextID     uint64
}

// New creates a curve from the given knots. The knots are copied, stably
// sorted by X (equal-X knots keep their argument order) and assigned fresh
// identities. Solver tuning starts at the standard precision.
func New(knots ...Knot) *LookupCurve {
	c := &LookupCurve{
		knots:      make([]Knot, len(knots)),
		maxIters:   defaultMaxIters,
		maxError:   defaultMaxError,
		generation: 1,
	}
	copy(c.knots, knots)
	sort.SliceStable(c.knots, func(i, j int) bool { return c.knots[i].X < c.knots[j].X })

	for i := range c.knots {
		c.nextID++
		c.knots[i].ID = c.nextID
	}
	return c
}

// WithName sets the curve name and returns the curve for chaining.
func (c *LookupCurve) WithName(name string) *LookupCurve {
	c.name = name
	return c
}

// WithPrecision applies a solver tuning preset and returns the curve for
// chaining. Unknown presets fall back to PrecisionStandard.
func (c *LookupCurve) WithPrecision(p Precision) *LookupCurve {
	switch p {
	case PrecisionDraft:
		c.maxIters, c.maxError = draftMaxIters, draftMaxError
	case PrecisionFine:
		c.maxIters, c.maxError = fineMaxIters, fineMaxError
	default:
		c.maxIters, c.maxError = defaultMaxIters, defaultMaxError
	}
	return c
}

// Precision enumerates solver tuning presets for weighted cubic segments.
// Presets only trade accuracy of the X(t) inversion against iteration cost;
// unweighted segments are exact regardless of preset.
type Precision int

const (
	// PrecisionStandard suits interactive and real-time use (8 iterations,
	// 1e-5 tolerance). This is the default for new curves.
	PrecisionStandard Precision = iota

	// PrecisionDraft favors speed for previews and coarse sweeps.
	PrecisionDraft

	// PrecisionFine favors accuracy for offline evaluation.
	PrecisionFine
)

// Common errors returned by the library.
var (
	// ErrMalformedCurve indicates persisted curve data that is syntactically
	// or semantically invalid.
	ErrMalformedCurve = errors.New("malformed curve data")

	// ErrUnsupportedVersion indicates persisted curve data written by a
	// newer format version than this library understands.
	ErrUnsupportedVersion = errors.New("unsupported curve format version")
)

// Lookup evaluates the curve at x.
func (c *LookupCurve) Lookup(x float64) float64 {
	if y, done := c.lookupEdge(x); done {
		return y
	}
	return c.evalAt(searchKnots(c.knots, x), x)
}

// LookupCached evaluates the curve at x, using cache to resolve the segment
// from the previous query's position when possible. The result is always
// identical to Lookup(x); the cache only affects speed. Each goroutine must
// use its own cache.
func (c *LookupCurve) LookupCached(x float64, cache *LookupCache) float64 {
	if y, done := c.lookupEdge(x); done {
		return y
	}

	i := searchKnotsCached(c.knots, x, cache.hint(c.generation))
	cache.store(i, c.generation)
	return c.evalAt(i, x)
}

// lookupEdge resolves NaN, empty, single-knot and out-of-range queries.
// done reports whether y is final; interior queries fall through to the
// segment search.
func (c *LookupCurve) lookupEdge(x float64) (y float64, done bool) {
	if math.IsNaN(x) {
		return math.NaN(), true
	}

	switch len(c.knots) {
	case 0:
		return 0, true
	case 1:
		return c.knots[0].Y, true
	}

	if x <= c.knots[0].X {
		return c.knots[0].Y, true
	}
	if x >= c.knots[len(c.knots)-1].X {
		return c.knots[len(c.knots)-1].Y, true
	}
	return 0, false
}

// evalAt evaluates segment i at x with the curve's solver tuning.
func (c *LookupCurve) evalAt(i int, x float64) float64 {
	return evalSegment(&c.knots[i], &c.knots[i+1], x, c.maxError, c.maxIters)
}

// Len returns the number of knots.
func (c *LookupCurve) Len() int {
	return len(c.knots)
}

// KnotAt returns a copy of the knot at index i (in X order).
// Panics if i is out of range.
func (c *LookupCurve) KnotAt(i int) Knot {
	return c.knots[i]
}

// Knots returns a copy of the knot sequence in X order.
func (c *LookupCurve) Knots() []Knot {
	out := make([]Knot, len(c.knots))
	copy(out, c.knots)
	return out
}

// KnotByID returns a copy of the knot with the given identity.
func (c *LookupCurve) KnotByID(id uint64) (Knot, bool) {
	if i := c.KnotIndex(id); i >= 0 {
		return c.knots[i], true
	}
	return Knot{}, false
}

// KnotIndex returns the current index of the knot with the given identity,
// or -1 when no such knot exists.
func (c *LookupCurve) KnotIndex(id uint64) int {
	for i := range c.knots {
		if c.knots[i].ID == id {
			return i
		}
	}
	return -1
}

// PrevKnot returns a copy of the knot left of index i.
func (c *LookupCurve) PrevKnot(i int) (Knot, bool) {
	if i <= 0 || i >= len(c.knots) {
		return Knot{}, false
	}
	return c.knots[i-1], true
}

// NextKnot returns a copy of the knot right of index i.
func (c *LookupCurve) NextKnot(i int) (Knot, bool) {
	if i < 0 || i >= len(c.knots)-1 {
		return Knot{}, false
	}
	return c.knots[i+1], true
}

// Domain returns the X range covered by the knots. ok is false for an empty
// curve; a single-knot curve has lo == hi.
func (c *LookupCurve) Domain() (lo, hi float64, ok bool) {
	if len(c.knots) == 0 {
		return 0, 0, false
	}
	return c.knots[0].X, c.knots[len(c.knots)-1].X, true
}

// Name returns the curve name, which may be empty.
func (c *LookupCurve) Name() string {
	return c.name
}

// NameOrDefault returns the curve name, or a placeholder for unnamed curves.
func (c *LookupCurve) NameOrDefault() string {
	if c.name == "" {
		return defaultCurveName
	}
	return c.name
}

// SetName sets the curve name.
func (c *LookupCurve) SetName(name string) {
	c.name = name
}

// MaxIters returns the Newton-Raphson iteration cap.
func (c *LookupCurve) MaxIters() int {
	return c.maxIters
}

// MaxError returns the horizontal tolerance for the X(t) inversion.
func (c *LookupCurve) MaxError() float64 {
	return c.maxError
}

// SetMaxIters sets the Newton-Raphson iteration cap. Values below 1 are
// clamped to 1.
func (c *LookupCurve) SetMaxIters(n int) {
	c.maxIters = max(n, 1)
}

// SetMaxError sets the horizontal tolerance for the X(t) inversion.
// Non-positive and NaN values are ignored.
func (c *LookupCurve) SetMaxError(e float64) {
	if e > 0 {
		c.maxError = e
	}
}

// Generation returns the curve's structural generation. It advances on
// every mutation that adds, removes or modifies a knot, which is what
// invalidates outstanding LookupCache hints.
func (c *LookupCurve) Generation() uint64 {
	return c.generation
}

// AddKnot inserts a knot in X order and returns its index. The knot is
// assigned a fresh identity; equal-X knots keep insertion order, with the
// new knot placed after existing ones. Tangent weights are sanitized to be
// non-negative.
func (c *LookupCurve) AddKnot(k Knot) int {
	i := sort.Search(len(c.knots), func(j int) bool { return c.knots[j].X > k.X })

	c.nextID++
	k.ID = c.nextID
	sanitizeKnot(&k)

	c.knots = append(c.knots, Knot{})
	copy(c.knots[i+1:], c.knots[i:])
	c.knots[i] = k
	c.generation++
	return i
}

// DeleteKnot removes the knot at index i.
// Panics if i is out of range.
func (c *LookupCurve) DeleteKnot(i int) {
	c.knots = append(c.knots[:i], c.knots[i+1:]...)
	c.generation++
}

// RemoveKnot removes the knot with the given identity. It reports whether
// a knot was removed.
func (c *LookupCurve) RemoveKnot(id uint64) bool {
	i := c.KnotIndex(id)
	if i < 0 {
		return false
	}
	c.DeleteKnot(i)
	return true
}

// ModifyKnot replaces the knot at index i, keeping the slot's identity, and
// restores X ordering. Returns the knot's new index.
// Panics if i is out of range.
func (c *LookupCurve) ModifyKnot(i int, k Knot) int {
	k.ID = c.knots[i].ID
	sanitizeKnot(&k)
	c.knots[i] = k
	c.generation++
	return c.restoreOrder(i)
}

// MoveKnot repositions the knot with the given identity and restores X
// ordering. Returns the knot's new index, or -1 when the identity is
// unknown.
func (c *LookupCurve) MoveKnot(id uint64, x, y float64) (int, bool) {
	i := c.KnotIndex(id)
	if i < 0 {
		return -1, false
	}

	c.knots[i].X = x
	c.knots[i].Y = y
	c.generation++
	return c.restoreOrder(i), true
}

// SetTangent replaces one tangent of the knot with the given identity. The
// tangent is taken verbatim apart from weight sanitation; use the Knot
// builders for aligned-aware slope edits.
func (c *LookupCurve) SetTangent(id uint64, side TangentSide, t Tangent) bool {
	i := c.KnotIndex(id)
	if i < 0 {
		return false
	}

	t.Weight = max(t.Weight, 0)
	if side == TangentSideLeft {
		c.knots[i].LeftTangent = t
	} else {
		c.knots[i].RightTangent = t
	}
	c.generation++
	return true
}

// SetInterpolation sets the outgoing segment mode of the knot with the
// given identity.
func (c *LookupCurve) SetInterpolation(id uint64, interp Interpolation) bool {
	i := c.KnotIndex(id)
	if i < 0 {
		return false
	}

	c.knots[i].Interpolation = interp
	c.generation++
	return true
}

// restoreOrder bubbles the knot at index i toward its sorted position after
// an X change. Strict comparisons keep equal-X neighbors in place, so ties
// stay stable. Returns the knot's final index.
func (c *LookupCurve) restoreOrder(i int) int {
	for i > 0 && c.knots[i].X < c.knots[i-1].X {
		c.knots[i], c.knots[i-1] = c.knots[i-1], c.knots[i]
		i--
	}
	for i < len(c.knots)-1 && c.knots[i].X > c.knots[i+1].X {
		c.knots[i], c.knots[i+1] = c.knots[i+1], c.knots[i]
		i++
	}
	return i
}

// sanitizeKnot clamps tangent weights to be non-negative.
func sanitizeKnot(k *Knot) {
	k.LeftTangent.Weight = max(k.LeftTangent.Weight, 0)
	k.RightTangent.Weight = max(k.RightTangent.Weight, 0)
}
