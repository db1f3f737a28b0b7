package colour

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
	}{
		{"hex", "#ff0000", "#ff0000"},
		{"bare hex", "68b457", "#68b457"},
		{"rgb commas", "rgb(255, 0, 0)", "#ff0000"},
		{"rgb spaces", "rgb(255 0 0)", "#ff0000"},
		{"rgb percent", "rgb(100% 0% 0%)", "#ff0000"},
		{"rgba legacy alpha", "rgba(255, 0, 0, 0.5)", "#ff000080"},
		{"rgb slash alpha", "rgb(255 0 0 / 50%)", "#ff000080"},
		{"hsl", "hsl(120 100% 50%)", "#00ff00"},
		{"hsl commas with deg", "hsl(120deg, 100%, 50%)", "#00ff00"},
		{"hsl bare saturation", "hsl(120 100 50)", "#00ff00"},
		{"oklch", "oklch(0.7 0.15 140)", "#68b457"},
		{"oklch percent lightness", "oklch(70% 0.15 140deg)", "#68b457"},
		{"oklch percent chroma", "oklch(0.7 37.5% 140)", "#68b457"},
		{"display-p3 grey", "color(display-p3 0.25 0.25 0.25)", "#404040"},
		{"display-p3 percent", "color(display-p3 25% 25% 25%)", "#404040"},
		{"named", "rebeccapurple", "#663399"},
		{"named case-insensitive", "Tomato", "#ff6347"},
		{"whitespace", "  #68b457\n", "#68b457"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.wantHex)
			}
		})
	}
}

func TestParseTransparent(t *testing.T) {
	c, err := Parse("transparent")
	if err != nil {
		t.Fatalf("Parse(transparent) error: %v", err)
	}
	if c.A != 0 {
		t.Errorf("Parse(transparent).A = %v, want 0", c.A)
	}
}

func TestParseAlphaForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"bare", "oklch(0.7 0.15 140 / 0.25)", 0.25},
		{"percent", "oklch(0.7 0.15 140 / 25%)", 0.25},
		{"clamped high", "oklch(0.7 0.15 140 / 1.5)", 1},
		{"clamped low", "rgb(0 0 0 / -0.5)", 0},
		{"absent", "oklch(0.7 0.15 140)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if !within(c.A, tt.want, 1e-9) {
				t.Errorf("Parse(%q).A = %v, want %v", tt.in, c.A, tt.want)
			}
		})
	}
}

func TestParseOKLCHComponents(t *testing.T) {
	c, err := Parse("oklch(0.7 0.15 140)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !within(c.L, 0.7, 1e-9) || !within(c.C, 0.15, 1e-9) || !within(c.H, 140, 1e-9) {
		t.Errorf("Parse(oklch) = %+v, want exact components back", c)
	}
}

func TestParseOKLab(t *testing.T) {
	// Rectangular coordinates for oklch(0.7 0.15 140).
	c, err := Parse("oklab(0.7 -0.11491 0.09642)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !within(c.L, 0.7, 1e-9) || !within(c.C, 0.15, 1e-4) || !within(c.H, 140, 0.05) {
		t.Errorf("Parse(oklab) = %+v, want near oklch(0.7 0.15 140)", c)
	}

	// Percent a/b components scale against the 0.4 chroma ceiling.
	c2, err := Parse("oklab(0.5 50% -25%)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	lab := c2.Lab()
	if !within(lab.A, 0.2, 1e-9) || !within(lab.B, -0.1, 1e-9) {
		t.Errorf("Parse(oklab percent) = %+v, want a=0.2 b=-0.1", lab)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrUnknownSyntax},
		{"garbage", "blurple", ErrUnknownSyntax},
		{"unknown function", "notacolor(1 2 3)", ErrUnknownSyntax},
		{"unknown space", "color(rec2020 0 0 0)", ErrUnknownSyntax},
		{"rgb arity low", "rgb(255 0)", ErrMalformedColor},
		{"rgb arity high", "rgb(1, 2, 3, 4, 5)", ErrMalformedColor},
		{"rgb angle unit", "rgb(255deg 0 0)", ErrMalformedColor},
		{"hsl bad component", "hsl(a b c)", ErrMalformedColor},
		{"hue percent", "oklch(0.5 0.1 20%)", ErrMalformedColor},
		{"bad hex", "#12x", ErrMalformedColor},
		{"empty component", "rgb(255,,0)", ErrMalformedColor},
		{"double alpha", "oklch(0.7 0.15 140 / 0.5 / 0.5)", ErrMalformedColor},
		{"nan component", "rgb(NaN 0 0)", ErrMalformedColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParseNeverDefaults(t *testing.T) {
	// A failed parse must not look like a usable colour.
	c, err := Parse("definitely-not-a-colour")
	if err == nil {
		t.Fatal("Parse succeeded on junk input")
	}
	if c != (Color{}) {
		t.Errorf("failed Parse returned %+v, want zero value", c)
	}
}
