package blit

import "testing"

func TestModeStringAndValid(t *testing.T) {
	names := map[Mode]string{
		ModeCopy:       "COPY",
		ModeAlpha:      "ALPHA",
		ModePMA:        "PMA",
		ModeGamma:      "GAMMA",
		ModePMG:        "PMG",
		ModeColorKey8:  "COLORKEY8",
		ModeColorKey16: "COLORKEY16",
		ModeFive551:    "FIVE551",
		ModeMul:        "MUL",
		ModeMug:        "MUG",
		ModeAlphaTest:  "ALPHATEST",
		ModeCpyG:       "CPYG",
	}
	for m, name := range names {
		if !m.IsValid() {
			t.Errorf("%v should be valid", m)
		}
		if got := m.String(); got != name {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, name)
		}
	}

	invalid := Mode(200)
	if invalid.IsValid() {
		t.Error("Mode(200) should not be valid")
	}
	if invalid.String() != "INVALID" {
		t.Errorf("invalid mode String() = %q, want INVALID", invalid.String())
	}
}

func TestModeEnumValuesMatchWireOrder(t *testing.T) {
	// The numeric ordering is part of the external wire contract and
	// must never change.
	want := []Mode{
		ModeCopy, ModeAlpha, ModePMA, ModeGamma, ModePMG,
		ModeColorKey8, ModeColorKey16, ModeFive551,
		ModeMul, ModeMug, ModeAlphaTest, ModeCpyG,
	}
	for i, m := range want {
		if int(m) != i {
			t.Errorf("%v = %d, want %d", m, m, i)
		}
	}
}

func TestPixelSize(t *testing.T) {
	cases := map[Mode]int{
		ModeColorKey8:  1,
		ModeColorKey16: 2,
		ModeFive551:    2,
		ModeCopy:       4,
		ModeAlpha:      4,
		ModeGamma:      4,
		ModeAlphaTest:  4,
	}
	for m, want := range cases {
		if got := m.pixelSize(); got != want {
			t.Errorf("%v.pixelSize() = %d, want %d", m, got, want)
		}
	}
}

func TestBatchable(t *testing.T) {
	batchable := []Mode{ModeCopy, ModeAlpha, ModePMA, ModeMul, ModeAlphaTest}
	for _, m := range batchable {
		if !m.batchable() {
			t.Errorf("%v should be batchable", m)
		}
	}
	scalarOnly := []Mode{ModeGamma, ModePMG, ModeMug, ModeCpyG, ModeColorKey8, ModeColorKey16, ModeFive551}
	for _, m := range scalarOnly {
		if m.batchable() {
			t.Errorf("%v should not be batchable", m)
		}
	}
}
