package colour

import (
	"math"
	"testing"
)

// within reports whether two floats agree inside eps.
func within(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name       string
		l, c, h, a float64
		want       Color
	}{
		{"in range", 0.5, 0.1, 120, 1, Color{L: 0.5, C: 0.1, H: 120, A: 1}},
		{"lightness clamped high", 1.5, 0.1, 120, 1, Color{L: 1, C: 0.1, H: 120, A: 1}},
		{"lightness clamped low", -0.25, 0.1, 120, 1, Color{L: 0, C: 0.1, H: 120, A: 1}},
		{"chroma floored", 0.5, -0.2, 120, 1, Color{L: 0.5, C: 0, H: 120, A: 1}},
		{"hue wraps positive", 0.5, 0.1, 540, 1, Color{L: 0.5, C: 0.1, H: 180, A: 1}},
		{"hue wraps negative", 0.5, 0.1, -90, 1, Color{L: 0.5, C: 0.1, H: 270, A: 1}},
		{"hue full turn", 0.5, 0.1, 360, 1, Color{L: 0.5, C: 0.1, H: 0, A: 1}},
		{"alpha clamped", 0.5, 0.1, 120, 2, Color{L: 0.5, C: 0.1, H: 120, A: 1}},
		{"alpha negative", 0.5, 0.1, 120, -1, Color{L: 0.5, C: 0.1, H: 120, A: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.l, tt.c, tt.h, tt.a)
			if got != tt.want {
				t.Errorf("New(%v, %v, %v, %v) = %+v, want %+v", tt.l, tt.c, tt.h, tt.a, got, tt.want)
			}
		})
	}
}

func TestWithBuilders(t *testing.T) {
	base := New(0.5, 0.1, 120, 1)

	if got := base.WithL(0.8); got.L != 0.8 || got.C != base.C || got.H != base.H || got.A != base.A {
		t.Errorf("WithL(0.8) = %+v, want only L changed from %+v", got, base)
	}
	if got := base.WithL(2); got.L != 1 {
		t.Errorf("WithL(2).L = %v, want 1", got.L)
	}
	if got := base.WithC(0.3); got.C != 0.3 {
		t.Errorf("WithC(0.3).C = %v, want 0.3", got.C)
	}
	if got := base.WithC(-1); got.C != 0 {
		t.Errorf("WithC(-1).C = %v, want 0", got.C)
	}
	if got := base.WithH(-30); got.H != 330 {
		t.Errorf("WithH(-30).H = %v, want 330", got.H)
	}
	if got := base.WithA(0.25); got.A != 0.25 {
		t.Errorf("WithA(0.25).A = %v, want 0.25", got.A)
	}

	// The receiver is a value; the original must be untouched.
	if base != New(0.5, 0.1, 120, 1) {
		t.Errorf("builders mutated the receiver: %+v", base)
	}
}

func TestIsAchromatic(t *testing.T) {
	if !New(0.5, 0, 0, 1).IsAchromatic() {
		t.Error("IsAchromatic() = false for zero chroma, want true")
	}
	if !New(0.5, 5e-5, 200, 1).IsAchromatic() {
		t.Error("IsAchromatic() = false just under the threshold, want true")
	}
	if New(0.5, 0.01, 200, 1).IsAchromatic() {
		t.Error("IsAchromatic() = true for visible chroma, want false")
	}
}

func TestStringIsOKLCH(t *testing.T) {
	got := New(0.7, 0.15, 140, 1).String()
	want := "oklch(0.7 0.15 140)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
