package colour

import "testing"

func TestHSLKnownValues(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want HSL
	}{
		{"red", FromSRGB(1, 0, 0, 1), HSL{H: 0, S: 1, L: 0.5}},
		{"lime", FromSRGB(0, 1, 0, 1), HSL{H: 120, S: 1, L: 0.5}},
		{"blue", FromSRGB(0, 0, 1, 1), HSL{H: 240, S: 1, L: 0.5}},
		{"grey", FromSRGB(0.5, 0.5, 0.5, 1), HSL{H: 0, S: 0, L: 0.5}},
		{"white", FromSRGB(1, 1, 1, 1), HSL{H: 0, S: 0, L: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.HSL()
			if !within(got.H, tt.want.H, 1e-4) || !within(got.S, tt.want.S, 1e-4) || !within(got.L, tt.want.L, 1e-4) {
				t.Errorf("HSL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	anchors := []HSL{
		{H: 0, S: 1, L: 0.5},
		{H: 37, S: 0.4, L: 0.3},
		{H: 200, S: 0.75, L: 0.66},
		{H: 320, S: 0.1, L: 0.9},
	}
	for _, hsl := range anchors {
		got := FromHSL(hsl, 1).HSL()
		if !within(got.H, hsl.H, 1e-4) || !within(got.S, hsl.S, 1e-4) || !within(got.L, hsl.L, 1e-4) {
			t.Errorf("HSL round trip %+v = %+v", hsl, got)
		}
	}
}

func TestHSVKnownValues(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want HSV
	}{
		{"red", FromSRGB(1, 0, 0, 1), HSV{H: 0, S: 1, V: 1}},
		{"lime", FromSRGB(0, 1, 0, 1), HSV{H: 120, S: 1, V: 1}},
		{"grey", FromSRGB(0.25, 0.25, 0.25, 1), HSV{H: 0, S: 0, V: 0.25}},
		{"black", FromSRGB(0, 0, 0, 1), HSV{H: 0, S: 0, V: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.HSV()
			if !within(got.H, tt.want.H, 1e-4) || !within(got.S, tt.want.S, 1e-4) || !within(got.V, tt.want.V, 1e-4) {
				t.Errorf("HSV() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	anchors := []HSV{
		{H: 0, S: 1, V: 1},
		{H: 90, S: 0.3, V: 0.8},
		{H: 255, S: 0.9, V: 0.4},
	}
	for _, hsv := range anchors {
		got := FromHSV(hsv, 1).HSV()
		if !within(got.H, hsv.H, 1e-4) || !within(got.S, hsv.S, 1e-4) || !within(got.V, hsv.V, 1e-4) {
			t.Errorf("HSV round trip %+v = %+v", hsv, got)
		}
	}
}

func TestHSLHSVAgree(t *testing.T) {
	// hsv(120, 1, 1) and hsl(120, 1, 0.5) are the same colour.
	a := FromHSV(HSV{H: 120, S: 1, V: 1}, 1)
	b := FromHSL(HSL{H: 120, S: 1, L: 0.5}, 1)
	if a.Hex() != b.Hex() {
		t.Errorf("FromHSV = %s, FromHSL = %s, want equal", a.Hex(), b.Hex())
	}
}
