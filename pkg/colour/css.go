package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownFormat means ToCSS was asked for a serialization it does not
// support.
var ErrUnknownFormat = errors.New("unknown colour format")

// Format selects a text serialization for ToCSS.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatOKLCH Format = "oklch"
	FormatOKLab Format = "oklab"
	FormatP3    Format = "p3"
)

// ValidFormats returns every serialization ToCSS understands.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL, FormatOKLCH, FormatOKLab, FormatP3}
}

// ParseFormat resolves a serialization name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidFormats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: hex, rgb, hsl, oklch, oklab, p3)", ErrUnknownFormat, s)
}

// ToCSS serializes the colour in the requested CSS syntax. Functional forms
// use the space-separated modern syntax and append "/ alpha" only when alpha
// is below 1.
func ToCSS(c Color, f Format) (string, error) {
	switch f {
	case FormatHex:
		return c.Hex(), nil
	case FormatRGB:
		rgba := c.RGBA8()
		return withAlpha(fmt.Sprintf("rgb(%d %d %d", rgba.R, rgba.G, rgba.B), c.A), nil
	case FormatHSL:
		hsl := c.HSL()
		return withAlpha(fmt.Sprintf("hsl(%s %s%% %s%%",
			fmtNum(hsl.H, 1), fmtNum(hsl.S*100, 1), fmtNum(hsl.L*100, 1)), c.A), nil
	case FormatOKLCH:
		return withAlpha(fmt.Sprintf("oklch(%s %s %s",
			fmtNum(c.L, 4), fmtNum(c.C, 4), fmtNum(c.H, 2)), c.A), nil
	case FormatOKLab:
		lab := c.Lab()
		return withAlpha(fmt.Sprintf("oklab(%s %s %s",
			fmtNum(lab.L, 4), fmtNum(lab.A, 4), fmtNum(lab.B, 4)), c.A), nil
	case FormatP3:
		r, g, b := c.P3()
		return withAlpha(fmt.Sprintf("color(display-p3 %s %s %s",
			fmtNum(clamp01(r), 4), fmtNum(clamp01(g), 4), fmtNum(clamp01(b), 4)), c.A), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: hex, rgb, hsl, oklch, oklab, p3)", ErrUnknownFormat, string(f))
	}
}

// withAlpha closes a functional serialization, appending the alpha component
// when it is not fully opaque.
func withAlpha(open string, alpha float64) string {
	if alpha < 1 {
		return fmt.Sprintf("%s / %s)", open, fmtNum(clamp01(alpha), 4))
	}
	return open + ")"
}

// fmtNum renders a float with at most prec decimals, trimming trailing
// zeros so serializations stay compact.
func fmtNum(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
