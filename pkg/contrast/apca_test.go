package contrast

import (
	"math"
	"testing"
)

func TestAPCAReferenceValues(t *testing.T) {
	white := hex(t, "#ffffff")
	black := hex(t, "#000000")

	// Published reference scores for the 0.0.98G-4g constants.
	if got := APCA(black, white); math.Abs(got-106.04) > 0.5 {
		t.Errorf("APCA(black on white) = %v, want about 106", got)
	}
	if got := APCA(white, black); math.Abs(got-(-107.88)) > 0.5 {
		t.Errorf("APCA(white on black) = %v, want about -108", got)
	}
}

func TestAPCAPolarity(t *testing.T) {
	white := hex(t, "#ffffff")
	grey := hex(t, "#555555")

	dark := APCA(grey, white)
	light := APCA(white, grey)

	if dark <= 0 {
		t.Errorf("APCA(dark text, light bg) = %v, want positive", dark)
	}
	if light >= 0 {
		t.Errorf("APCA(light text, dark bg) = %v, want negative", light)
	}
	// Reverse polarity is not a mirror image; the exponent pairs differ.
	if dark == -light {
		t.Errorf("APCA polarity scores coincide at %v, expected asymmetry", dark)
	}
}

func TestAPCANearZeroCollapses(t *testing.T) {
	a := hex(t, "#888888")
	if got := APCA(a, a); got != 0 {
		t.Errorf("APCA(c, c) = %v, want 0", got)
	}

	b := hex(t, "#8a8a8a")
	if got := APCA(a, b); got != 0 {
		t.Errorf("APCA of near-identical greys = %v, want 0 inside the clip band", got)
	}
}

func TestAPCAIgnoresAlpha(t *testing.T) {
	white := hex(t, "#ffffff")
	grey := hex(t, "#555555")

	if APCA(grey, white) != APCA(grey.WithA(0.3), white) {
		t.Error("APCA changed with alpha; translucency must be composited by the caller")
	}
}
