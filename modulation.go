package blit

import "math"

// Color is a modulation color: a quadruple of finite-or-not floats. R, G
// and B (m_c) scale a composited mode's source color channels
// independently; A (m_a) scales source alpha. Every composition mode
// (COPY, ALPHA, PMA, GAMMA, PMG, MUL, MUG, CPYG) applies the quadruple
// per its own equation; COLORKEY8, COLORKEY16, FIVE551 and ALPHATEST
// ignore it entirely and instead read R as a key or threshold. The zero
// Color is neutral: it multiplies by 1.0 on every channel and is never
// treated as "key present" or "threshold set".
type Color struct {
	R, G, B, A float64
}

// neutralColor is the identity modulation color: a no-op in every composited
// mode.
var neutralColor = Color{R: 1, G: 1, B: 1, A: 1}

// isZero reports whether every component is exactly 0, the sentinel for
// "no color key configured" and "no explicit modulation requested".
func (c Color) isZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

// normalizeModulation resolves the effective multiplier threaded into
// every composition kernel: an all-zero Color is treated as neutral
// (1.0 on every channel) rather than as "multiply everything to black",
// matching the documented null/neutral convention. Components are
// accepted as-is, including values outside [0, 1]; only NaN is clamped,
// to 0, since a NaN channel has no sensible multiplicative meaning and
// must not propagate into every output pixel.
func normalizeModulation(c Color) Color {
	if c.isZero() {
		return neutralColor
	}
	return Color{
		R: sanitizeComponent(c.R),
		G: sanitizeComponent(c.G),
		B: sanitizeComponent(c.B),
		A: sanitizeComponent(c.A),
	}
}

func sanitizeComponent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// colorKeyByte resolves the 8-bit color key from a modulation color's
// first component for COLORKEY8. A zero Color means no key is active;
// blitRow checks for that case itself and writes every pixel, so the 0
// returned here is not used as a key. Out-of-range values clamp and
// in-range values round down, so a permissive caller still gets a
// deterministic key.
func colorKeyByte(c Color) uint8 {
	v := c.R * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// colorKey16 resolves the packed 16-bit color key from a modulation
// color's first component for COLORKEY16.
func colorKey16(c Color) uint16 {
	v := c.R * 65535
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v)
}

// alphaTestThreshold resolves the ALPHATEST threshold from a modulation
// color's first component, rounding up so a threshold requested as, e.g.,
// 0.5019 (128/255 inclusive) does not silently admit 127.
func alphaTestThreshold(c Color) uint8 {
	v := c.R * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Ceil(v))
}
