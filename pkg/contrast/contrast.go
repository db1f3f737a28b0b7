// Package contrast measures the readability of one colour against another:
// WCAG 2.x relative luminance and contrast ratio with AA/AAA verdicts, plus
// the polarity-aware APCA scorer as a drop-in alternative.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucentlab/lucent/pkg/colour"
)

// WCAG ratio thresholds. Large-text is a property of the rendered glyphs,
// so whether it applies is the caller's call, not computed here.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

// ErrUnknownLevel means a contrast level name or number did not resolve.
var ErrUnknownLevel = errors.New("unknown contrast level")

// Luminance returns the relative luminance of the colour according to
// WCAG 2.0: linearized sRGB channels weighted 0.2126/0.7152/0.0722.
// Alpha is ignored; composite translucent colours before measuring.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c colour.Color) float64 {
	r, g, b := c.SRGB()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize applies gamma correction to one colour component, clamped to
// the displayable range first.
func linearize(v float64) float64 {
	v = math.Max(0, math.Min(1, v))
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the WCAG contrast ratio between two colours: a value
// between 1 (identical) and 21 (black against white), symmetric in its
// arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func Ratio(a, b colour.Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)

	// Ensure la is the lighter colour.
	if la < lb {
		la, lb = lb, la
	}

	return (la + 0.05) / (lb + 0.05)
}

// MeetsAA reports whether the pair satisfies WCAG AA: 4.5:1 for normal
// text, 3:1 when the caller flags large text.
func MeetsAA(a, b colour.Color, largeText bool) bool {
	if largeText {
		return Ratio(a, b) >= AALarge
	}
	return Ratio(a, b) >= AANormal
}

// MeetsAAA reports whether the pair satisfies WCAG AAA: 7:1 for normal
// text, 4.5:1 when the caller flags large text.
func MeetsAAA(a, b colour.Color, largeText bool) bool {
	if largeText {
		return Ratio(a, b) >= AAALarge
	}
	return Ratio(a, b) >= AAANormal
}

// ParseLevel resolves a threshold: the named WCAG levels or a numeric ratio.
func ParseLevel(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aa":
		return AANormal, nil
	case "aaa":
		return AAANormal, nil
	case "aa-large":
		return AALarge, nil
	case "aaa-large":
		return AAALarge, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v < 1 || v > 21 {
		return 0, fmt.Errorf("%w: %q (named: aa, aaa, aa-large, aaa-large; or a ratio between 1 and 21)", ErrUnknownLevel, s)
	}
	return v, nil
}
