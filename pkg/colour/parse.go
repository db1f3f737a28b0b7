package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrUnknownSyntax means the text matched none of the recognized colour
	// syntaxes.
	ErrUnknownSyntax = errors.New("unrecognized colour syntax")
	// ErrMalformedColor means the syntax was recognized but a component of
	// it was invalid.
	ErrMalformedColor = errors.New("malformed colour")
)

// Parse reads a colour from any supported text syntax: hex notation, CSS
// named colours, rgb()/rgba(), hsl()/hsla(), oklch(), oklab() and
// color(display-p3 ...). Functional components may be comma- or
// space-separated, alpha may be a percentage or a bare number, and hue may
// carry a deg suffix. Unrecognized or malformed text fails; a default colour
// is never substituted.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty input", ErrUnknownSyntax)
	}

	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}

	if name, body, ok := splitFunction(s); ok {
		switch name {
		case "rgb", "rgba":
			return parseRGBBody(text, body)
		case "hsl", "hsla":
			return parseHSLBody(text, body)
		case "oklch":
			return parseOKLCHBody(text, body)
		case "oklab":
			return parseOKLabBody(text, body)
		case "color":
			return parseColorBody(text, body)
		default:
			return Color{}, fmt.Errorf("%w: unknown function %q in %q", ErrUnknownSyntax, name, text)
		}
	}

	if c, ok := namedColour(s); ok {
		return c, nil
	}

	if isHexDigits(s) {
		return FromHex(s)
	}

	return Color{}, fmt.Errorf("%w: %q", ErrUnknownSyntax, text)
}

// component is one scanned argument of a functional syntax: the numeric
// value plus whichever unit marker was attached to it.
type component struct {
	value   float64
	percent bool
	deg     bool
	raw     string
}

// splitFunction recognizes "name(body)" and returns the lowercase function
// name with the raw body between the parentheses.
func splitFunction(s string) (name, body string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(s[:open]))
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return "", "", false
		}
	}
	return name, s[open+1 : len(s)-1], true
}

// scanComponents tokenizes a functional syntax body. Components are
// separated by commas or by whitespace; alpha arrives either as a fourth
// comma-separated component or after a "/" in the space-separated form.
func scanComponents(body string) ([]component, *component, error) {
	if strings.ContainsRune(body, ',') {
		parts := strings.Split(body, ",")
		comps := make([]component, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, nil, fmt.Errorf("%w: empty component", ErrMalformedColor)
			}
			c, err := parseComponent(p)
			if err != nil {
				return nil, nil, err
			}
			comps = append(comps, c)
		}
		if len(comps) == 4 {
			alpha := comps[3]
			return comps[:3], &alpha, nil
		}
		return comps, nil, nil
	}

	main := body
	var alpha *component
	if i := strings.IndexByte(main, '/'); i >= 0 {
		tail := strings.TrimSpace(main[i+1:])
		if tail == "" || strings.ContainsAny(tail, "/ \t") {
			return nil, nil, fmt.Errorf("%w: bad alpha component %q", ErrMalformedColor, tail)
		}
		a, err := parseComponent(tail)
		if err != nil {
			return nil, nil, err
		}
		alpha = &a
		main = main[:i]
	}

	var comps []component
	for _, tok := range strings.Fields(main) {
		c, err := parseComponent(tok)
		if err != nil {
			return nil, nil, err
		}
		comps = append(comps, c)
	}
	if len(comps) == 0 {
		return nil, nil, fmt.Errorf("%w: no components", ErrMalformedColor)
	}
	return comps, alpha, nil
}

// parseComponent reads one component token, peeling a trailing "%" or "deg"
// unit before the numeric part.
func parseComponent(tok string) (component, error) {
	c := component{raw: tok}
	t := tok
	switch {
	case strings.HasSuffix(t, "%"):
		c.percent = true
		t = strings.TrimSuffix(t, "%")
	case strings.HasSuffix(strings.ToLower(t), "deg"):
		c.deg = true
		t = t[:len(t)-3]
	}
	if strings.ContainsAny(t, "xX") {
		return component{}, fmt.Errorf("%w: bad component %q", ErrMalformedColor, tok)
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return component{}, fmt.Errorf("%w: bad component %q", ErrMalformedColor, tok)
	}
	c.value = v
	return c, nil
}

// alphaValue resolves an optional alpha component: absent means opaque,
// percentages scale to [0, 1] and the result is clamped.
func alphaValue(alpha *component) (float64, error) {
	if alpha == nil {
		return 1, nil
	}
	if alpha.deg {
		return 0, fmt.Errorf("%w: angle unit on alpha %q", ErrMalformedColor, alpha.raw)
	}
	v := alpha.value
	if alpha.percent {
		v /= 100
	}
	return clamp01(v), nil
}

func parseRGBBody(text, body string) (Color, error) {
	comps, alpha, err := scanComponents(body)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	if len(comps) != 3 {
		return Color{}, fmt.Errorf("%w: rgb() needs 3 components, got %d in %q", ErrMalformedColor, len(comps), text)
	}

	var ch [3]float64
	for i, comp := range comps {
		if comp.deg {
			return Color{}, fmt.Errorf("%w: angle unit on rgb component %q in %q", ErrMalformedColor, comp.raw, text)
		}
		v := comp.value
		if comp.percent {
			v = v * 255 / 100
		}
		ch[i] = clamp01(v / 255)
	}

	a, err := alphaValue(alpha)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	return FromSRGB(ch[0], ch[1], ch[2], a), nil
}

func parseHSLBody(text, body string) (Color, error) {
	comps, alpha, err := scanComponents(body)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	if len(comps) != 3 {
		return Color{}, fmt.Errorf("%w: hsl() needs 3 components, got %d in %q", ErrMalformedColor, len(comps), text)
	}

	h, err := hueValue(comps[0])
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	// Saturation and lightness are percentages; bare numbers carry percent
	// units per CSS, so 50 reads as 50%.
	var sl [2]float64
	for i, comp := range comps[1:] {
		if comp.deg {
			return Color{}, fmt.Errorf("%w: angle unit on hsl component %q in %q", ErrMalformedColor, comp.raw, text)
		}
		sl[i] = clamp01(comp.value / 100)
	}

	a, err := alphaValue(alpha)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	return FromHSL(HSL{H: h, S: sl[0], L: sl[1]}, a), nil
}

func parseOKLCHBody(text, body string) (Color, error) {
	comps, alpha, err := scanComponents(body)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	if len(comps) != 3 {
		return Color{}, fmt.Errorf("%w: oklch() needs 3 components, got %d in %q", ErrMalformedColor, len(comps), text)
	}

	l, err := lightnessValue(comps[0])
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	chroma, err := chromaAxisValue(comps[1])
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	h, err := hueValue(comps[2])
	if err != nil {
		return Color{}, parseErr(text, err)
	}

	a, err := alphaValue(alpha)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	return New(l, chroma, h, a), nil
}

func parseOKLabBody(text, body string) (Color, error) {
	comps, alpha, err := scanComponents(body)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	if len(comps) != 3 {
		return Color{}, fmt.Errorf("%w: oklab() needs 3 components, got %d in %q", ErrMalformedColor, len(comps), text)
	}

	l, err := lightnessValue(comps[0])
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	var ab [2]float64
	for i, comp := range comps[1:] {
		v, err := chromaAxisValue(comp)
		if err != nil {
			return Color{}, parseErr(text, err)
		}
		ab[i] = v
	}

	a, err := alphaValue(alpha)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	return FromLab(Lab{L: l, A: ab[0], B: ab[1]}, a), nil
}

func parseColorBody(text, body string) (Color, error) {
	trimmed := strings.TrimSpace(body)
	sp := strings.IndexAny(trimmed, " \t")
	if sp < 0 {
		return Color{}, fmt.Errorf("%w: color() needs a colour space and components in %q", ErrMalformedColor, text)
	}
	space := strings.ToLower(trimmed[:sp])
	if space != "display-p3" {
		return Color{}, fmt.Errorf("%w: unsupported colour space %q in %q", ErrUnknownSyntax, space, text)
	}

	comps, alpha, err := scanComponents(trimmed[sp+1:])
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	if len(comps) != 3 {
		return Color{}, fmt.Errorf("%w: color(display-p3) needs 3 components, got %d in %q", ErrMalformedColor, len(comps), text)
	}

	var ch [3]float64
	for i, comp := range comps {
		if comp.deg {
			return Color{}, fmt.Errorf("%w: angle unit on display-p3 component %q in %q", ErrMalformedColor, comp.raw, text)
		}
		v := comp.value
		if comp.percent {
			v /= 100
		}
		ch[i] = clamp01(v)
	}

	a, err := alphaValue(alpha)
	if err != nil {
		return Color{}, parseErr(text, err)
	}
	return FromP3(ch[0], ch[1], ch[2], a), nil
}

// lightnessValue reads an oklch/oklab lightness: bare in [0, 1] or a
// percentage of it.
func lightnessValue(comp component) (float64, error) {
	if comp.deg {
		return 0, fmt.Errorf("%w: angle unit on lightness %q", ErrMalformedColor, comp.raw)
	}
	v := comp.value
	if comp.percent {
		v /= 100
	}
	return v, nil
}

// chromaAxisValue reads an oklch chroma or oklab a/b axis: bare, or a
// percentage where 100% means 0.4, the canonical chroma ceiling.
func chromaAxisValue(comp component) (float64, error) {
	if comp.deg {
		return 0, fmt.Errorf("%w: angle unit on chroma axis %q", ErrMalformedColor, comp.raw)
	}
	v := comp.value
	if comp.percent {
		v *= 0.004
	}
	return v, nil
}

// hueValue reads a hue: bare degrees or deg-suffixed, never a percentage.
func hueValue(comp component) (float64, error) {
	if comp.percent {
		return 0, fmt.Errorf("%w: percentage on hue %q", ErrMalformedColor, comp.raw)
	}
	return comp.value, nil
}

// namedColour resolves CSS named colours plus the "transparent" keyword.
func namedColour(s string) (Color, bool) {
	name := strings.ToLower(s)
	if name == "transparent" {
		return Color{}, true
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromRGBA8(RGBA8{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}), true
}

// isHexDigits reports whether s looks like bare hex notation without the
// leading '#'.
func isHexDigits(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// parseErr attaches the full input to a component-level error.
func parseErr(text string, err error) error {
	return fmt.Errorf("%w (input %q)", err, text)
}
