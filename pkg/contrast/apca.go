package contrast

import (
	"math"

	"github.com/lucentlab/lucent/pkg/colour"
)

// APCA-W3 constants, revision 0.0.98G-4g.
const (
	apcaExponent       = 2.4
	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414
	apcaDeltaYMin      = 0.0005
	apcaScale          = 1.14
	apcaOffset         = 0.027
	apcaClip           = 0.1
)

// APCA scores the pair with the polarity-aware perceptual contrast model.
// The result is a signed Lc value: positive for dark text on a light
// background, negative for light text on a dark one, with |Lc| around 60
// marking comfortably readable body text and near-zero pairs collapsing to
// exactly 0. Same contract as Ratio otherwise (alpha is ignored), but the
// argument order carries meaning here. The region tracer does not use this
// scorer; it is the alternative metric, not the default.
func APCA(text, background colour.Color) float64 {
	ytxt := apcaLuminance(text)
	ybg := apcaLuminance(background)

	if math.Abs(ybg-ytxt) < apcaDeltaYMin {
		return 0
	}

	var sapc float64
	if ybg > ytxt {
		// Dark text on a light background.
		sapc = (math.Pow(ybg, 0.56) - math.Pow(ytxt, 0.57)) * apcaScale
		if sapc < apcaClip {
			return 0
		}
		sapc -= apcaOffset
	} else {
		// Light text on a dark background.
		sapc = (math.Pow(ybg, 0.65) - math.Pow(ytxt, 0.62)) * apcaScale
		if sapc > -apcaClip {
			return 0
		}
		sapc += apcaOffset
	}

	return sapc * 100
}

// apcaLuminance estimates screen luminance from the 8-bit sRGB form, with
// the model's soft clamp lifting very dark colours to account for flare.
func apcaLuminance(c colour.Color) float64 {
	rgba := c.RGBA8()
	y := 0.2126729*math.Pow(float64(rgba.R)/255, apcaExponent) +
		0.7151522*math.Pow(float64(rgba.G)/255, apcaExponent) +
		0.0721750*math.Pow(float64(rgba.B)/255, apcaExponent)

	if y < apcaBlackThreshold {
		y += math.Pow(apcaBlackThreshold-y, apcaBlackClamp)
	}
	return y
}
