package blit

// Mode selects the per-pixel equation Blit applies when compositing a
// source pixel onto a destination pixel. The numeric values match the
// wire-level enumeration used by callers that serialize a Mode (e.g. in a
// config file or network message), and must not be renumbered.
type Mode uint8

const (
	// ModeCopy overwrites the destination with the source scaled by the
	// modulation color (verbatim when the color is neutral), ignoring
	// the destination's alpha.
	ModeCopy Mode = iota
	// ModeAlpha composites a non-premultiplied source over the
	// destination using source-over alpha blending.
	ModeAlpha
	// ModePMA composites a premultiplied source over the destination.
	ModePMA
	// ModeGamma is ModeAlpha performed in linear light via the sRGB
	// conversion tables.
	ModeGamma
	// ModePMG is ModePMA performed in linear light.
	ModePMG
	// ModeColorKey8 copies the 1-byte source pixels verbatim except where
	// the byte equals the configured 8-bit color key.
	ModeColorKey8
	// ModeColorKey16 copies the source verbatim except where the packed
	// 16-bit pixel equals the configured color key.
	ModeColorKey16
	// ModeFive551 treats both surfaces as 5-5-5-1 packed pixels and
	// composites using the single alpha bit.
	ModeFive551
	// ModeMul multiplies source and destination channels (non-premultiplied).
	ModeMul
	// ModeMug is ModeMul performed in linear light.
	ModeMug
	// ModeAlphaTest copies the source verbatim where its alpha channel
	// is at or above the configured threshold, and leaves the
	// destination untouched elsewhere.
	ModeAlphaTest
	// ModeCpyG is ModeCopy with the copied pixel's color channels passed
	// through the sRGB<->linear round trip; it exists to exercise the
	// gamma tables without blending.
	ModeCpyG

	modeCount
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "COPY"
	case ModeAlpha:
		return "ALPHA"
	case ModePMA:
		return "PMA"
	case ModeGamma:
		return "GAMMA"
	case ModePMG:
		return "PMG"
	case ModeColorKey8:
		return "COLORKEY8"
	case ModeColorKey16:
		return "COLORKEY16"
	case ModeFive551:
		return "FIVE551"
	case ModeMul:
		return "MUL"
	case ModeMug:
		return "MUG"
	case ModeAlphaTest:
		return "ALPHATEST"
	case ModeCpyG:
		return "CPYG"
	default:
		return "INVALID"
	}
}

// IsValid reports whether m is one of the twelve defined modes.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// usesGammaTables reports whether the mode requires the sRGB<->linear
// conversion tables.
func (m Mode) usesGammaTables() bool {
	switch m {
	case ModeGamma, ModePMG, ModeMug, ModeCpyG:
		return true
	default:
		return false
	}
}

// pixelSize returns the number of bytes a single pixel occupies under m,
// per the fixed mode-to-layout mapping: FIVE551 and COLORKEY16 pack a
// pixel into 2 bytes, COLORKEY8 into 1 byte, and every other mode uses the
// 4-byte RGBA layout.
func (m Mode) pixelSize() int {
	switch m {
	case ModeColorKey8:
		return 1
	case ModeColorKey16, ModeFive551:
		return 2
	default:
		return 4
	}
}

// batchable reports whether the mode has a wide (SIMD-tier) kernel. Only
// modes whose per-pixel work is straight-line integer arithmetic benefit
// from lane-parallel processing. COLORKEY8/16 and FIVE551 need a
// per-pixel branch or bit-unpack that does not amortize across a batch;
// GAMMA, PMG, MUG and CPYG need a per-channel table probe into the sRGB
// tables, which a fixed-width lane array cannot do faster than the
// scalar loop. All four are left to the scalar tier at every dispatch
// level.
func (m Mode) batchable() bool {
	switch m {
	case ModeCopy, ModeAlpha, ModePMA, ModeMul, ModeAlphaTest:
		return true
	default:
		return false
	}
}
