package lookupcurve

// Solver defaults
const (
	defaultMaxIters = 8    // Default Newton-Raphson iteration cap per lookup
	defaultMaxError = 1e-5 // Default horizontal tolerance for X(t) inversion
)

// Tangent constants
const (
	// defaultTangentWeight is the control-point weight of an unweighted
	// tangent. At 1/3 the Bezier X polynomial degenerates to a straight
	// line in t, so unweighted segments need no root finding.
	defaultTangentWeight = 1.0 / 3.0
)

// Knot search constants
const (
	// searchProbeLimit is the maximum number of knots inspected around a
	// cache hint before the search falls back to binary search.
	searchProbeLimit = 4
)

// Precision preset parameters
const (
	// Draft precision (previews, coarse parameter sweeps)
	draftMaxIters = 4
	draftMaxError = 1e-3

	// Fine precision (offline evaluation, authoring tools)
	fineMaxIters = 16
	fineMaxError = 1e-8
)

// Persistence constants
const (
	curveFileVersion = 1             // Current persistence format version
	curveFileExt     = ".curve.yaml" // File extension used by Store
)

// defaultCurveName is returned by NameOrDefault for unnamed curves.
const defaultCurveName = "Untitled curve"
