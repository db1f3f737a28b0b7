// Package region traces contrast boundaries across a fixed-hue slice of the
// colour solid. For a reference colour and a threshold it samples the
// lightness/chroma plane on a gamut-clipped grid, classifies every sample
// against the threshold and extracts the curves separating "meets" from
// "does not". A picker shades its plane control with exactly these curves to
// show where a swatch stays readable against the reference.
package region

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/contrast"
	"github.com/lucentlab/lucent/pkg/gamut"
)

// ErrInvalidSteps rejects sampling grids too coarse to contain a cell.
var ErrInvalidSteps = errors.New("invalid step count")

// ErrUnknownInterp means an edge interpolation mode did not resolve.
var ErrUnknownInterp = errors.New("unknown edge interpolation")

// Point is one vertex of a traced boundary in the lightness/chroma plane.
type Point struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
}

// Path is a connected boundary polyline. A closed loop repeats its first
// point at the end.
type Path []Point

// Threshold is a contrast-ratio threshold. It reads from either a JSON
// number or a named WCAG level, so wire callers can send 4.5 and "aa"
// interchangeably.
type Threshold float64

// ParseThreshold resolves a named WCAG level ("aa", "aaa", "aa-large",
// "aaa-large") or a numeric ratio.
func ParseThreshold(s string) (Threshold, error) {
	v, err := contrast.ParseLevel(s)
	if err != nil {
		return 0, err
	}
	return Threshold(v), nil
}

// UnmarshalJSON accepts a bare number or a quoted level name.
func (t *Threshold) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Threshold(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: threshold must be a ratio or a level name, got %s", contrast.ErrUnknownLevel, data)
	}
	parsed, err := ParseThreshold(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Interp selects where a boundary crossing lands on a sign-change edge.
type Interp string

const (
	// InterpLinear interpolates the contrast value between the edge's
	// endpoints and places the crossing where it meets the threshold.
	InterpLinear Interp = "linear"
	// InterpMidpoint places the crossing halfway along the edge.
	InterpMidpoint Interp = "midpoint"
)

// ParseInterp resolves an edge interpolation name. The empty string reads
// as the linear default.
func ParseInterp(s string) (Interp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(InterpLinear):
		return InterpLinear, nil
	case string(InterpMidpoint):
		return InterpMidpoint, nil
	}
	return "", fmt.Errorf("%w: %q (supported: linear, midpoint)", ErrUnknownInterp, s)
}

// Options configures the sampling grid and the per-row gamut clipping. Both
// step counts are required and must be at least 2; the remaining fields
// default like the gamut package's options (sRGB, tolerance 1e-4, 30
// iterations, ceiling 0.4, opaque) with linear edge interpolation.
type Options struct {
	LightnessSteps    int          `json:"lightnessSteps,omitempty"`
	ChromaSteps       int          `json:"chromaSteps,omitempty"`
	EdgeInterpolation Interp       `json:"edgeInterpolation,omitempty"`
	Gamut             gamut.Target `json:"gamut,omitempty"`
	Tolerance         float64      `json:"tolerance,omitempty"`
	MaxChroma         float64      `json:"maxChroma,omitempty"`
	MaxIterations     int          `json:"maxIterations,omitempty"`
	Alpha             float64      `json:"alpha,omitempty"`
}

// Trace computes the boundary curves separating grid samples whose contrast
// ratio against the reference meets the threshold from those whose does not.
// The grid spans lightness 0..1 in LightnessSteps rows and, per row, chroma
// from 0 to the gamut boundary at that lightness in ChromaSteps columns.
// Paths come back in row-major scan order of first encounter; there is no
// ordering guarantee across paths beyond that. A threshold unreachable
// within the gamut returns an empty slice, not an error.
func Trace(reference colour.Color, hue float64, threshold Threshold, opts Options) ([]Path, error) {
	if opts.LightnessSteps < 2 || opts.ChromaSteps < 2 {
		return nil, fmt.Errorf("%w: region sampling needs at least 2 steps per axis, got %dx%d",
			ErrInvalidSteps, opts.LightnessSteps, opts.ChromaSteps)
	}
	interp, err := ParseInterp(string(opts.EdgeInterpolation))
	if err != nil {
		return nil, err
	}

	g := buildGrid(reference, hue, float64(threshold), opts)
	return stitch(g.march(interp)), nil
}

// TracePath returns the first boundary path in scan order, or an empty path
// when the threshold is unreachable. Trace returns every disjoint segment.
func TracePath(reference colour.Color, hue float64, threshold Threshold, opts Options) (Path, error) {
	paths, err := Trace(reference, hue, threshold, opts)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return Path{}, nil
	}
	return paths[0], nil
}
