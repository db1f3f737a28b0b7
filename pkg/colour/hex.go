package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns the colour as lowercase CSS hex notation, appending the alpha
// digit pair only when alpha is below 1.
func (c Color) Hex() string {
	rgba := c.RGBA8()
	if rgba.A < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// FromHex parses hex notation in 3, 4, 6 or 8 digit forms, case-insensitive,
// with or without the leading '#'. Shorthand digits double up (f -> ff).
func FromHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: hex notation needs 3, 4, 6 or 8 digits, got %q", ErrMalformedColor, s)
	}

	var channels [4]uint8
	channels[3] = 255
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: invalid hex digits in %q", ErrMalformedColor, s)
		}
		channels[i] = uint8(v)
	}

	return FromRGBA8(RGBA8{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}), nil
}
