// Package colour implements the canonical perceptual colour model and the
// conversion pipeline between it and device or text representations.
//
// The canonical form is OKLCH: perceptual lightness, chroma and hue plus
// alpha. Every conversion routes through a fixed chain
//
//	canonical <-> OKLab <-> linear-light RGB <-> gamma RGB/P3 <-> 8-bit/text
//
// so that gamut information is never destroyed mid-pipeline: linear-light
// channels are deliberately left unclamped and may fall outside [0, 1] for
// colours the target space cannot represent.
package colour

import "math"

// achromaticChroma is the chroma below which hue is considered undefined.
// Conversions from rectangular coordinates normalize hue to 0 under it.
const achromaticChroma = 1e-4

// Color is the canonical perceptual colour. Values are immutable; every
// operation returns a new value.
type Color struct {
	// L is perceptual lightness, 0 (black) to 1 (white).
	L float64 `json:"l"`
	// C is chroma. 0 is achromatic; the practical ceiling for colours
	// representable on common displays sits near 0.4. It is a soft ceiling,
	// not a hard clamp.
	C float64 `json:"c"`
	// H is the hue angle in degrees, normalized to [0, 360). Hue is
	// undefined near achromatic colours and callers must not rely on its
	// stability when C is close to 0.
	H float64 `json:"h"`
	// A is alpha, 0 (transparent) to 1 (opaque).
	A float64 `json:"alpha"`
}

// New returns a canonical colour with lightness and alpha clamped to [0, 1],
// chroma floored at 0 and hue normalized to [0, 360).
func New(l, c, h, a float64) Color {
	return Color{
		L: clamp01(l),
		C: math.Max(0, c),
		H: normalizeHue(h),
		A: clamp01(a),
	}
}

// WithL returns a copy with lightness replaced, clamped to [0, 1].
func (c Color) WithL(l float64) Color {
	c.L = clamp01(l)
	return c
}

// WithC returns a copy with chroma replaced, floored at 0.
func (c Color) WithC(chroma float64) Color {
	c.C = math.Max(0, chroma)
	return c
}

// WithH returns a copy with hue replaced, normalized to [0, 360).
func (c Color) WithH(h float64) Color {
	c.H = normalizeHue(h)
	return c
}

// WithA returns a copy with alpha replaced, clamped to [0, 1].
func (c Color) WithA(a float64) Color {
	c.A = clamp01(a)
	return c
}

// IsAchromatic reports whether the colour has no meaningful hue.
func (c Color) IsAchromatic() bool {
	return c.C < achromaticChroma
}

// String renders the colour in its oklch() text form.
func (c Color) String() string {
	s, _ := ToCSS(c, FormatOKLCH)
	return s
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// normalizeHue wraps a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
