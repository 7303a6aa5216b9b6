package lookupcurve

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// curveDoc is the on-disk curve document. Knot identities and cache state
// are runtime-only and never serialized.
type curveDoc struct {
	Version  int       `yaml:"version"`
	Name     string    `yaml:"name,omitempty"`
	MaxIters int       `yaml:"max_iters,omitempty"`
	MaxError float64   `yaml:"max_error,omitempty"`
	Knots    []knotDoc `yaml:"knots"`
}

// knotDoc is one serialized knot. X and Y are pointers so a missing field
// can be told apart from a legitimate zero.
type knotDoc struct {
	X             *float64    `yaml:"x"`
	Y             *float64    `yaml:"y"`
	Interpolation string      `yaml:"interpolation"`
	LeftTangent   *tangentDoc `yaml:"left_tangent,omitempty"`
	RightTangent  *tangentDoc `yaml:"right_tangent,omitempty"`
}

// tangentDoc is one serialized tangent. Weight is absent for unweighted
// tangents and mode is absent for the free default.
type tangentDoc struct {
	Slope  float64  `yaml:"slope"`
	Weight *float64 `yaml:"weight,omitempty"`
	Mode   string   `yaml:"mode,omitempty"`
}

// Save writes the curve to w in the versioned YAML curve format. Loading
// the output with Load reproduces the curve's knots, tangents, modes,
// tuning and name.
func (c *LookupCurve) Save(w io.Writer) error {
	doc := curveDoc{
		Version:  curveFileVersion,
		Name:     c.name,
		MaxIters: c.maxIters,
		MaxError: c.maxError,
		Knots:    make([]knotDoc, len(c.knots)),
	}
	for i := range c.knots {
		doc.Knots[i] = encodeKnot(&c.knots[i])
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding curve: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing curve: %w", err)
	}
	return nil
}

// SaveFile writes the curve to path, creating or truncating the file.
func (c *LookupCurve) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating curve file: %w", err)
	}
	if err := c.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a curve from r and validates it. On any error the returned
// curve is nil; a load never produces a partially constructed curve.
//
// Validation failures are reported as wrapped ErrMalformedCurve or, for
// files written by a newer format, ErrUnsupportedVersion.
func Load(r io.Reader) (*LookupCurve, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading curve: %w", err)
	}

	var doc curveDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCurve, err)
	}
	return decodeCurve(&doc)
}

// LoadFile reads a curve from path.
func LoadFile(path string) (*LookupCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening curve file: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// encodeKnot serializes one knot.
func encodeKnot(k *Knot) knotDoc {
	x, y := k.X, k.Y
	return knotDoc{
		X:             &x,
		Y:             &y,
		Interpolation: k.Interpolation.String(),
		LeftTangent:   encodeTangent(k.LeftTangent),
		RightTangent:  encodeTangent(k.RightTangent),
	}
}

// encodeTangent serializes one tangent, or returns nil for the zero
// tangent so plain knots stay terse on disk.
func encodeTangent(t Tangent) *tangentDoc {
	if t == (Tangent{}) {
		return nil
	}

	d := &tangentDoc{Slope: t.Slope}
	if t.Weighted {
		w := t.Weight
		d.Weight = &w
	}
	if t.Mode != TangentFree {
		d.Mode = t.Mode.String()
	}
	return d
}

// decodeCurve validates a parsed document and builds the curve.
func decodeCurve(doc *curveDoc) (*LookupCurve, error) {
	if doc.Version <= 0 {
		return nil, fmt.Errorf("%w: missing version", ErrMalformedCurve)
	}
	if doc.Version > curveFileVersion {
		return nil, fmt.Errorf("%w: version %d (newest supported is %d)",
			ErrUnsupportedVersion, doc.Version, curveFileVersion)
	}
	if doc.MaxIters < 0 {
		return nil, fmt.Errorf("%w: max_iters must not be negative", ErrMalformedCurve)
	}
	if doc.MaxError < 0 || math.IsNaN(doc.MaxError) {
		return nil, fmt.Errorf("%w: max_error must not be negative", ErrMalformedCurve)
	}

	knots := make([]Knot, len(doc.Knots))
	for i := range doc.Knots {
		k, err := decodeKnot(&doc.Knots[i], i)
		if err != nil {
			return nil, err
		}
		// Files claim sorted order; equal X is tolerated, decreasing X is not.
		if i > 0 && k.X < knots[i-1].X {
			return nil, fmt.Errorf("%w: knot %d out of order (x=%v after x=%v)",
				ErrMalformedCurve, i, k.X, knots[i-1].X)
		}
		knots[i] = k
	}

	c := New(knots...)
	c.name = doc.Name
	if doc.MaxIters > 0 {
		c.maxIters = doc.MaxIters
	}
	if doc.MaxError > 0 {
		c.maxError = doc.MaxError
	}
	return c, nil
}

// decodeKnot validates and deserializes one knot.
func decodeKnot(d *knotDoc, i int) (Knot, error) {
	var k Knot
	if d.X == nil || d.Y == nil {
		return k, fmt.Errorf("%w: knot %d missing x or y", ErrMalformedCurve, i)
	}
	if !finite(*d.X) || !finite(*d.Y) {
		return k, fmt.Errorf("%w: knot %d has non-finite position", ErrMalformedCurve, i)
	}
	k.X, k.Y = *d.X, *d.Y

	if d.Interpolation == "" {
		return k, fmt.Errorf("%w: knot %d missing interpolation", ErrMalformedCurve, i)
	}
	interp, ok := parseInterpolation(d.Interpolation)
	if !ok {
		return k, fmt.Errorf("%w: knot %d has unknown interpolation %q",
			ErrMalformedCurve, i, d.Interpolation)
	}
	k.Interpolation = interp

	var err error
	if k.LeftTangent, err = decodeTangent(d.LeftTangent, i, "left"); err != nil {
		return k, err
	}
	if k.RightTangent, err = decodeTangent(d.RightTangent, i, "right"); err != nil {
		return k, err
	}
	return k, nil
}

// decodeTangent validates and deserializes one tangent. A nil document
// yields the free, flat, unweighted default.
func decodeTangent(d *tangentDoc, i int, side string) (Tangent, error) {
	var t Tangent
	if d == nil {
		return t, nil
	}

	if !finite(d.Slope) {
		return t, fmt.Errorf("%w: knot %d %s tangent has non-finite slope",
			ErrMalformedCurve, i, side)
	}
	t.Slope = d.Slope

	if d.Weight != nil {
		if !finite(*d.Weight) || *d.Weight < 0 {
			return t, fmt.Errorf("%w: knot %d %s tangent weight must be non-negative",
				ErrMalformedCurve, i, side)
		}
		t.Weight, t.Weighted = *d.Weight, true
	}

	if d.Mode != "" {
		m, ok := parseTangentMode(d.Mode)
		if !ok {
			return t, fmt.Errorf("%w: knot %d %s tangent has unknown mode %q",
				ErrMalformedCurve, i, side, d.Mode)
		}
		t.Mode = m
	}
	return t, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
