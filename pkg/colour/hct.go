package colour

import "github.com/goki/cam/hct"

// HCT is the auxiliary hue/chroma/tone model: CAM16 hue and chroma paired
// with a CIE L* tone axis, the appearance model used by Material design
// tooling. Hue is degrees [0, 360), chroma is open-ended (roughly 0-150)
// and tone runs 0-100. The model itself is externally defined; this package
// only bridges to it through the colour's 8-bit sRGB form.
type HCT struct {
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
	Tone   float64 `json:"tone"`
}

// HCT returns the hue/chroma/tone form of the colour.
func (c Color) HCT() HCT {
	rgba := c.RGBA8()
	h := hct.SRGBToHCT(
		float32(rgba.R)/255,
		float32(rgba.G)/255,
		float32(rgba.B)/255,
	)
	return HCT{Hue: float64(h.Hue), Chroma: float64(h.Chroma), Tone: float64(h.Tone)}
}

// FromHCT constructs a canonical colour from hue/chroma/tone. Chroma is
// reduced by the model itself when the requested value is not representable
// in sRGB at that hue and tone.
func FromHCT(h HCT, alpha float64) Color {
	v := hct.New(float32(h.Hue), float32(h.Chroma), float32(h.Tone))
	return FromSRGB(float64(v.R), float64(v.G), float64(v.B), alpha)
}
