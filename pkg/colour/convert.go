package colour

import "math"

// Lab is a rectangular OKLab coordinate: perceptual lightness with
// green-red (A) and blue-yellow (B) opponent axes.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// LinearRGB holds linear-light RGB channels. Channels are unclamped: values
// outside [0, 1] mean the colour lies outside the gamut of whichever space
// the value was produced for, and that information is what the gamut tests
// depend on.
type LinearRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGBA8 is an 8-bit device colour with alpha, gamma-encoded sRGB.
type RGBA8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Lab returns the rectangular OKLab form of the colour.
func (c Color) Lab() Lab {
	h := c.H * math.Pi / 180
	return Lab{L: c.L, A: c.C * math.Cos(h), B: c.C * math.Sin(h)}
}

// FromLab constructs a canonical colour from rectangular OKLab. Chroma below
// the achromatic threshold normalizes hue to 0, since the angle carries no
// information there.
func FromLab(lab Lab, alpha float64) Color {
	chroma := math.Hypot(lab.A, lab.B)
	h := 0.0
	if chroma >= achromaticChroma {
		h = math.Atan2(lab.B, lab.A) * 180 / math.Pi
		if h < 0 {
			h += 360
		}
	}
	return Color{L: clamp01(lab.L), C: chroma, H: h, A: clamp01(alpha)}
}

// LinearRGB returns the linear-light sRGB form, unclamped.
func (c Color) LinearRGB() LinearRGB {
	return labToLinearSRGB(c.Lab())
}

// FromLinearRGB constructs a canonical colour from linear-light sRGB.
func FromLinearRGB(rgb LinearRGB, alpha float64) Color {
	return FromLab(linearSRGBToLab(rgb), alpha)
}

// SRGB returns the gamma-encoded sRGB channels. Out-of-gamut colours produce
// values outside [0, 1]; the transfer function is sign-preserving so nothing
// is lost before an explicit quantization step.
func (c Color) SRGB() (r, g, b float64) {
	lin := c.LinearRGB()
	return srgbEncode(lin.R), srgbEncode(lin.G), srgbEncode(lin.B)
}

// FromSRGB constructs a canonical colour from gamma-encoded sRGB channels
// in [0, 1].
func FromSRGB(r, g, b, alpha float64) Color {
	return FromLinearRGB(LinearRGB{R: srgbDecode(r), G: srgbDecode(g), B: srgbDecode(b)}, alpha)
}

// LinearP3 returns the linear-light Display-P3 form, unclamped.
func (c Color) LinearP3() LinearRGB {
	lin := c.LinearRGB()
	v := srgbToP3.mulVec([3]float64{lin.R, lin.G, lin.B})
	return LinearRGB{R: v[0], G: v[1], B: v[2]}
}

// FromLinearP3 constructs a canonical colour from linear-light Display-P3.
func FromLinearP3(rgb LinearRGB, alpha float64) Color {
	v := p3ToSRGB.mulVec([3]float64{rgb.R, rgb.G, rgb.B})
	return FromLinearRGB(LinearRGB{R: v[0], G: v[1], B: v[2]}, alpha)
}

// P3 returns the gamma-encoded Display-P3 channels. Display-P3 shares the
// sRGB transfer function over wider primaries.
func (c Color) P3() (r, g, b float64) {
	lin := c.LinearP3()
	return srgbEncode(lin.R), srgbEncode(lin.G), srgbEncode(lin.B)
}

// FromP3 constructs a canonical colour from gamma-encoded Display-P3
// channels in [0, 1].
func FromP3(r, g, b, alpha float64) Color {
	return FromLinearP3(LinearRGB{R: srgbDecode(r), G: srgbDecode(g), B: srgbDecode(b)}, alpha)
}

// RGBA8 returns the 8-bit sRGB device form, clamped and rounded.
func (c Color) RGBA8() RGBA8 {
	r, g, b := c.SRGB()
	return RGBA8{
		R: quantize8(r),
		G: quantize8(g),
		B: quantize8(b),
		A: quantize8(c.A),
	}
}

// FromRGBA8 constructs a canonical colour from an 8-bit sRGB device colour.
func FromRGBA8(rgba RGBA8) Color {
	return FromSRGB(
		float64(rgba.R)/255,
		float64(rgba.G)/255,
		float64(rgba.B)/255,
		float64(rgba.A)/255,
	)
}

// quantize8 clamps a gamma channel to [0, 1] and rounds to 8 bits.
func quantize8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// srgbEncode applies the sRGB transfer function to one linear channel:
// a linear segment near zero and a power law above the knee. It preserves
// the sign of out-of-range inputs so out-of-gamut values survive encoding.
func srgbEncode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	if v <= 0.0031308 {
		return sign * v * 12.92
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

// srgbDecode inverts srgbEncode, again sign-preserving.
func srgbDecode(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

// linearSRGBToLab converts linear-light sRGB to OKLab using Ottosson's
// reference coefficients: cone-response matrix, cube-root non-linearity,
// then the opponent-axis matrix.
func linearSRGBToLab(rgb LinearRGB) Lab {
	l := 0.4122214708*rgb.R + 0.5363325363*rgb.G + 0.0514459929*rgb.B
	m := 0.2119034982*rgb.R + 0.6806995451*rgb.G + 0.1073969566*rgb.B
	s := 0.0883024619*rgb.R + 0.2817188376*rgb.G + 0.6299787005*rgb.B

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	return Lab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// labToLinearSRGB inverts linearSRGBToLab: opponent axes back to cone
// responses, cubing, then the inverse cone matrix. Round-trip error stays
// under 1e-4 per channel for representable colours.
func labToLinearSRGB(lab Lab) LinearRGB {
	l := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	m := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	s := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return LinearRGB{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

// mat3 is a row-major 3x3 matrix over float64.
type mat3 [3][3]float64

// mulVec multiplies the matrix with a column vector.
func (m mat3) mulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// mul returns m*n.
func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Primaries-to-XYZ matrices for the D65 white point, CSS Color 4 reference
// values. The direct sRGB<->P3 bridges are composed once at init so the
// conversion hot path is a single multiply.
var (
	srgbToXYZD65 = mat3{
		{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
		{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
		{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
	}
	xyzD65ToSRGB = mat3{
		{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
		{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
		{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
	}
	p3ToXYZD65 = mat3{
		{0.4865709486482162, 0.26566769316909306, 0.19821728523436247},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0, 0.04511338185890264, 1.043944368900976},
	}
	xyzD65ToP3 = mat3{
		{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
		{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
		{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
	}

	srgbToP3 mat3
	p3ToSRGB mat3
)

func init() {
	srgbToP3 = xyzD65ToP3.mul(srgbToXYZD65)
	p3ToSRGB = xyzD65ToSRGB.mul(p3ToXYZD65)
}
