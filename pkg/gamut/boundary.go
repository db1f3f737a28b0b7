package gamut

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucentlab/lucent/pkg/colour"
)

// ErrInvalidSteps rejects sampling configurations too coarse to describe a
// boundary curve.
var ErrInvalidSteps = errors.New("invalid step count")

const (
	defaultTolerance     = 1e-4
	defaultMaxIterations = 30
	defaultMaxChroma     = 0.4
)

// Options bounds boundary resolution: which gamut to probe and the numeric
// limits of the chroma search. The zero value means sRGB with the defaults
// (tolerance 1e-4, 30 iterations, ceiling 0.4, opaque).
type Options struct {
	Gamut         Target  `json:"gamut,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	MaxIterations int     `json:"maxIterations,omitempty"`
	MaxChroma     float64 `json:"maxChroma,omitempty"`
	Alpha         float64 `json:"alpha,omitempty"`
}

// normalized fills zero fields with defaults. The iteration count is
// clamped so the search always takes at least one step; a negative ceiling
// is left alone for MaxChromaAt to resolve as the degenerate zero result.
func (o Options) normalized() Options {
	if o.Gamut == "" {
		o.Gamut = SRGB
	}
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = defaultMaxIterations
	}
	if o.MaxIterations < 1 {
		o.MaxIterations = 1
	}
	if o.MaxChroma == 0 {
		o.MaxChroma = defaultMaxChroma
	}
	if o.Alpha == 0 {
		o.Alpha = 1
	}
	return o
}

// BoundaryPoint is one sample of the fixed-hue gamut boundary curve.
type BoundaryPoint struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
}

// MaxChromaAt resolves the highest representable chroma at the given
// lightness and hue. Lightness clamps to [0, 1] and the extremes pin chroma
// to 0. When the configured ceiling is itself in gamut it is returned
// unchanged: the ceiling is authoritative, not merely a search bound.
// Otherwise the boundary is bisected down to opts.Tolerance or
// opts.MaxIterations, whichever stops first, and the in-gamut lower bound
// is returned. Identical inputs yield bit-identical results.
func MaxChromaAt(lightness, hue float64, opts Options) float64 {
	o := opts.normalized()

	l := math.Max(0, math.Min(1, lightness))
	if l <= 0 || l >= 1 {
		return 0
	}
	if o.MaxChroma <= 0 {
		return 0
	}

	if In(colour.Color{L: l, C: o.MaxChroma, H: hue, A: o.Alpha}, o.Gamut) {
		return o.MaxChroma
	}
	return searchChroma(l, hue, o.Alpha, o.MaxChroma, o.Gamut, o.Tolerance, o.MaxIterations)
}

// BoundaryPath samples the fixed-hue gamut boundary at steps+1 evenly
// spaced lightness values over [0, 1] inclusive, in ascending order.
// Fewer than 2 steps cannot describe a curve and fail.
func BoundaryPath(hue float64, steps int, opts Options) ([]BoundaryPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: boundary sampling needs at least 2 steps, got %d", ErrInvalidSteps, steps)
	}

	path := make([]BoundaryPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		l := float64(i) / float64(steps)
		path = append(path, BoundaryPoint{L: l, C: MaxChromaAt(l, hue, opts)})
	}
	return path, nil
}
