// Package gamut decides whether colours are representable on a display
// gamut and maps the ones that are not back into range.
//
// Mapping holds lightness and hue fixed and reduces chroma by binary search
// until the colour sits on the gamut boundary. That strategy is chosen over
// perceptual clippers because interactive feedback downstream depends on the
// lightness and hue axes staying exactly where the caller put them, and
// because the search is deterministic and cheap enough to run mid-gesture.
package gamut

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucentlab/lucent/pkg/colour"
)

// Target identifies a display gamut.
type Target string

const (
	// SRGB is the standard dynamic-range gamut every display covers.
	SRGB Target = "srgb"
	// DisplayP3 is the wide gamut of modern phone and laptop panels.
	DisplayP3 Target = "display-p3"
)

// ErrUnknownTarget means a gamut name did not resolve.
var ErrUnknownTarget = errors.New("unknown gamut target")

// ParseTarget resolves a gamut name, case-insensitive. "p3" is accepted as
// shorthand for display-p3.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srgb":
		return SRGB, nil
	case "display-p3", "p3":
		return DisplayP3, nil
	}
	return "", fmt.Errorf("%w: %q (supported: srgb, display-p3)", ErrUnknownTarget, s)
}

// epsilon absorbs floating-point rounding in the membership test without
// accepting perceptibly out-of-range channels.
const epsilon = 7.5e-5

// In reports whether the colour is representable in the target gamut. The
// test runs on linear-light unclamped channels: a clamped 8-bit round trip
// would pull every colour into range and report false positives.
func In(c colour.Color, t Target) bool {
	lin := t.linear(c)
	return inRange(lin.R) && inRange(lin.G) && inRange(lin.B)
}

// Map returns the colour unchanged when it is already inside the target
// gamut. Otherwise it holds lightness and hue fixed and binary-searches
// chroma down to the boundary, converging within 1e-4 and returning the
// highest in-gamut chroma found, which makes mapping idempotent.
func Map(c colour.Color, t Target) colour.Color {
	if In(c, t) {
		return c
	}
	if c.L <= 0 || c.L >= 1 {
		return colour.Color{L: c.L, C: 0, H: c.H, A: c.A}
	}
	chroma := searchChroma(c.L, c.H, c.A, c.C, t, defaultTolerance, defaultMaxIterations)
	return colour.Color{L: c.L, C: chroma, H: c.H, A: c.A}
}

// linear converts to the target's linear-light channels. Unknown targets
// read as sRGB; construct a Target through the constants or ParseTarget.
func (t Target) linear(c colour.Color) colour.LinearRGB {
	if t == DisplayP3 {
		return c.LinearP3()
	}
	return c.LinearRGB()
}

func inRange(v float64) bool {
	return v >= -epsilon && v <= 1+epsilon
}

// searchChroma bisects [0, hi] for the highest in-gamut chroma at fixed
// lightness and hue. hi must be out of gamut on entry; the returned lower
// bound is always in gamut. Pure float arithmetic over fixed bounds, so
// identical inputs converge identically.
func searchChroma(l, h, alpha, hi float64, t Target, tolerance float64, maxIterations int) float64 {
	lo := 0.0
	for i := 0; i < maxIterations && hi-lo > tolerance; i++ {
		mid := (lo + hi) / 2
		if In(colour.Color{L: l, C: mid, H: h, A: alpha}, t) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
