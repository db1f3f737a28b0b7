package colour

import "math"

// HSL is the hue/saturation/lightness cylinder over gamma-encoded sRGB.
// H is degrees [0, 360); S and L are fractions in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSV is the hue/saturation/value cylinder over gamma-encoded sRGB.
// H is degrees [0, 360); S and V are fractions in [0, 1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL returns the HSL form. The cylinder is only defined over displayable
// sRGB, so channels are clamped to [0, 1] first; out-of-gamut colours
// should be gamut-mapped before conversion if that matters to the caller.
func (c Color) HSL() HSL {
	r, g, b := c.SRGB()
	r, g, b = clamp01(snapChannel(r)), clamp01(snapChannel(g)), clamp01(snapChannel(b))

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2 - maxVal - minVal)
	}

	return HSL{H: hueSector(r, g, b, maxVal, delta), S: s, L: l}
}

// FromHSL constructs a canonical colour from HSL.
func FromHSL(hsl HSL, alpha float64) Color {
	h := normalizeHue(hsl.H)
	s := clamp01(hsl.S)
	l := clamp01(hsl.L)

	if s == 0 {
		// Achromatic (grey).
		return FromSRGB(l, l, l, alpha)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+120)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-120)

	return FromSRGB(r, g, b, alpha)
}

// HSV returns the HSV form, clamped to displayable sRGB like HSL.
func (c Color) HSV() HSV {
	r, g, b := c.SRGB()
	r, g, b = clamp01(snapChannel(r)), clamp01(snapChannel(g)), clamp01(snapChannel(b))

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	if delta == 0 {
		return HSV{H: 0, S: 0, V: maxVal}
	}

	return HSV{H: hueSector(r, g, b, maxVal, delta), S: delta / maxVal, V: maxVal}
}

// FromHSV constructs a canonical colour from HSV.
func FromHSV(hsv HSV, alpha float64) Color {
	h := normalizeHue(hsv.H)
	s := clamp01(hsv.S)
	v := clamp01(hsv.V)

	if s == 0 {
		return FromSRGB(v, v, v, alpha)
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return FromSRGB(r, g, b, alpha)
}

// snapChannel rounds off sub-visual float noise left by the perceptual
// round trip; without it, primaries land a hair off their exact sector
// boundaries and hue wraps to 359.999....
func snapChannel(v float64) float64 {
	return math.Round(v*1e7) / 1e7
}

// hueSector derives the hue angle from which channel dominates, shared by
// the HSL and HSV directions.
func hueSector(r, g, b, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	return h * 60
}

// hueToChannel resolves one sRGB channel from HSL's piecewise ramp.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
