package blit

import (
	"math"
	"testing"
)

func TestNormalizeModulationZeroIsNeutral(t *testing.T) {
	got := normalizeModulation(Color{})
	if got != neutralColor {
		t.Errorf("normalizeModulation(zero) = %+v, want %+v", got, neutralColor)
	}
}

func TestNormalizeModulationNaNSanitized(t *testing.T) {
	got := normalizeModulation(Color{R: math.NaN(), G: 0.5, B: 1, A: 1})
	if got.R != 0 {
		t.Errorf("R = %v, want 0 for NaN input", got.R)
	}
	if got.G != 0.5 {
		t.Errorf("G = %v, want 0.5", got.G)
	}
}

func TestColorKeyByteClamps(t *testing.T) {
	if got := colorKeyByte(Color{R: -1}); got != 0 {
		t.Errorf("colorKeyByte(-1) = %d, want 0", got)
	}
	if got := colorKeyByte(Color{R: 2}); got != 255 {
		t.Errorf("colorKeyByte(2) = %d, want 255", got)
	}
	if got := colorKeyByte(Color{R: 0.5}); got != 127 {
		t.Errorf("colorKeyByte(0.5) = %d, want 127", got)
	}
}

func TestAlphaTestThresholdRoundsUp(t *testing.T) {
	// 128/255 scales back to exactly 128, which stays 128; 127.5/255
	// scales to 127.5, which must round up to 128 rather than truncate to
	// 127, so a fractional threshold never silently admits values one
	// below what was requested.
	got := alphaTestThreshold(Color{R: 128.0 / 255.0})
	if got != 128 {
		t.Errorf("alphaTestThreshold(128/255) = %d, want 128", got)
	}
	if got := alphaTestThreshold(Color{R: 127.5 / 255.0}); got != 128 {
		t.Errorf("alphaTestThreshold(127.5/255) = %d, want 128", got)
	}
}

func TestColorKey16Clamps(t *testing.T) {
	if got := colorKey16(Color{R: -1}); got != 0 {
		t.Errorf("colorKey16(-1) = %d, want 0", got)
	}
	if got := colorKey16(Color{R: 2}); got != 65535 {
		t.Errorf("colorKey16(2) = %d, want 65535", got)
	}
}
