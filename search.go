package lookupcurve

import "sort"

// searchKnots finds the segment covering x with a binary search.
//
// Callers must guarantee len(knots) >= 2 and knots[0].X <= x < knots[len-1].X.
// The result i satisfies knots[i].X <= x < knots[i+1].X; at a knot's exact X
// the knot's own outgoing segment is chosen, and the rightmost of any
// equal-X knots wins.
func searchKnots(knots []Knot, x float64) int {
	i := sort.Search(len(knots), func(j int) bool { return knots[j].X > x }) - 1
	return min(max(i, 0), len(knots)-2)
}

// searchKnotsCached resolves the segment for x starting from a previous
// segment index. Queries that stay in or near the hinted segment resolve in
// a few comparisons; anything farther than searchProbeLimit knots away falls
// back to binary search. Same preconditions and result as searchKnots.
func searchKnotsCached(knots []Knot, x float64, hint int) int {
	last := len(knots) - 2
	if hint < 0 || hint > last {
		return searchKnots(knots, x)
	}

	if x >= knots[hint].X {
		// Probe forward. The final probed segment's right edge check is
		// enough: x < knots[i+1].X closes the half-open interval.
		for i := hint; i <= min(hint+searchProbeLimit, last); i++ {
			if x < knots[i+1].X {
				return i
			}
		}
		return searchKnots(knots, x)
	}

	// Probe backward. Each step already knows x < knots[i+1].X from the
	// previous failed comparison.
	for i := hint - 1; i >= max(hint-searchProbeLimit, 0); i-- {
		if x >= knots[i].X {
			return i
		}
	}
	return searchKnots(knots, x)
}
