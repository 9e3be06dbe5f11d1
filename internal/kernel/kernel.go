// Package kernel implements the scalar per-pixel composition equations for
// every blit mode. Every blend that divides by 255 uses the exact,
// correctly-rounded bit trick rather than a fast approximation, since the
// dispatch tiers in internal/wide must agree with this package bit for
// bit: div255_round(n) = ((n+128) + ((n+128)>>8)) >> 8.
package kernel

import "github.com/gogpu/blit/internal/srgb"

// Pixel is the kernel's unpacked RGBA8 working representation. The codec
// package converts to and from this shape for every pixel format.
type Pixel struct {
	R, G, B, A uint8
}

// Modulation is the per-call multiplicative adjustment every composition
// kernel applies to its source pixel: m_c (R, G, B independently) scales
// source color, m_a (A) scales source alpha. Neutral is {1,1,1,1}; values
// outside [0,1] over- or under-modulate rather than being rejected.
type Modulation struct {
	R, G, B, A float64
}

// Neutral leaves every mode's output unchanged from its unmodulated form.
var Neutral = Modulation{R: 1, G: 1, B: 1, A: 1}

// Div255Round computes round(n / 255) for n in [0, 65535] without
// division, using Alvy Ray Smith's two-shift formula applied to an
// offset-by-128 numerator. This is the correctly-rounded form, not the
// faster (n+255)>>8 approximation: every composition kernel in this
// package, and every batch kernel in internal/wide, must use this exact
// function so the two tiers agree bit for bit.
func Div255Round(n uint32) uint8 {
	t := n + 128
	return uint8((t + (t >> 8)) >> 8)
}

// MulDiv255 computes round(a*b/255) for two byte channels.
func MulDiv255(a, b uint8) uint8 {
	return Div255Round(uint32(a) * uint32(b))
}

// InvAlpha returns 255 - a, the complement used as the destination weight
// in source-over compositing.
func InvAlpha(a uint8) uint8 { return 255 - a }

func clampAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func overChannel(premulSrcC, dstC, invSA uint8) uint8 {
	return clampAdd(premulSrcC, MulDiv255(dstC, invSA))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func byteFromUnit(v float64) uint8 {
	v = clamp01(v)*255 + 0.5
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// modByte scales a byte channel by m and saturates back to [0, 255]: the
// `m_c·Cs` / `m_a·As` term common to every mode's equation.
func modByte(c uint8, m float64) uint8 {
	return byteFromUnit(m * float64(c) / 255)
}

// modulate applies m_c to src's RGB and m_a to src's alpha, producing the
// pixel every non-colorkey, non-alphatest mode actually composites with.
func modulate(src Pixel, m Modulation) Pixel {
	return Pixel{
		R: modByte(src.R, m.R),
		G: modByte(src.G, m.G),
		B: modByte(src.B, m.B),
		A: modByte(src.A, m.A),
	}
}

// Copy returns src scaled by m; dst plays no part in the result.
func Copy(src Pixel, m Modulation) Pixel { return modulate(src, m) }

// Alpha composites a non-premultiplied, modulated source over dst using
// source-over alpha blending: Cf = m_c·Cs·(m_a·As) + Cd·(1 − m_a·As).
func Alpha(src, dst Pixel, m Modulation) Pixel {
	ms := modulate(src, m)
	invSA := InvAlpha(ms.A)
	return Pixel{
		R: overChannel(MulDiv255(ms.R, ms.A), dst.R, invSA),
		G: overChannel(MulDiv255(ms.G, ms.A), dst.G, invSA),
		B: overChannel(MulDiv255(ms.B, ms.A), dst.B, invSA),
		A: clampAdd(ms.A, MulDiv255(dst.A, invSA)),
	}
}

// PMA composites an already-premultiplied, modulated source over dst:
// Cf = m_c·Cs + Cd·(1 − m_a·As). Unlike Alpha, the color term is not
// multiplied a second time by m_a·As since src is already premultiplied.
func PMA(src, dst Pixel, m Modulation) Pixel {
	modR := modByte(src.R, m.R)
	modG := modByte(src.G, m.G)
	modB := modByte(src.B, m.B)
	modA := modByte(src.A, m.A)
	invSA := InvAlpha(modA)
	return Pixel{
		R: overChannel(modR, dst.R, invSA),
		G: overChannel(modG, dst.G, invSA),
		B: overChannel(modB, dst.B, invSA),
		A: clampAdd(modA, MulDiv255(dst.A, invSA)),
	}
}

// Mul is a direct product, not a composite: Cf = m_c·Cs·Cd,
// Af = m_a·As·Ad. Dst's own alpha plays no part beyond that product.
// Modulation is folded in as a rounded intermediate byte, then combined
// with dst via MulDiv255, so this agrees bit for bit with the
// internal/wide batch tier, which can only operate on byte-range lanes.
func Mul(src, dst Pixel, m Modulation) Pixel {
	ms := modulate(src, m)
	return Pixel{
		R: MulDiv255(ms.R, dst.R),
		G: MulDiv255(ms.G, dst.G),
		B: MulDiv255(ms.B, dst.B),
		A: MulDiv255(ms.A, dst.A),
	}
}

// Gamma is Alpha performed in linear light: RGB channels are decoded to
// linear, blended, and re-encoded to sRGB through the given tier. Alpha
// itself has no gamma curve and is always blended directly in [0,255].
func Gamma(src, dst Pixel, m Modulation, tier srgb.Tier) Pixel {
	return sourceOverLinear(src, dst, m, false, tier)
}

// PMG is PMA performed in linear light.
func PMG(src, dst Pixel, m Modulation, tier srgb.Tier) Pixel {
	return sourceOverLinear(src, dst, m, true, tier)
}

// Mug is Mul performed in linear light: a direct product of decoded RGB,
// re-encoded to sRGB, with no composite-over term.
func Mug(src, dst Pixel, m Modulation, tier srgb.Tier) Pixel {
	outR := m.R * srgb.ToLinearTier(src.R, tier) * srgb.ToLinearTier(dst.R, tier)
	outG := m.G * srgb.ToLinearTier(src.G, tier) * srgb.ToLinearTier(dst.G, tier)
	outB := m.B * srgb.ToLinearTier(src.B, tier) * srgb.ToLinearTier(dst.B, tier)
	outA := m.A * float64(src.A) / 255 * float64(dst.A) / 255
	return Pixel{
		R: srgb.FromLinearTier(clamp01(outR), tier),
		G: srgb.FromLinearTier(clamp01(outG), tier),
		B: srgb.FromLinearTier(clamp01(outB), tier),
		A: byteFromUnit(outA),
	}
}

// CpyG copies src except that its RGB channels are modulated by m_c and
// round-tripped through the sRGB<->linear tables in linear light; alpha
// is modulated by m_a directly in [0,255]. It exercises the gamma tables
// without blending against dst.
func CpyG(src Pixel, m Modulation, tier srgb.Tier) Pixel {
	return Pixel{
		R: srgb.FromLinearTier(clamp01(m.R*srgb.ToLinearTier(src.R, tier)), tier),
		G: srgb.FromLinearTier(clamp01(m.G*srgb.ToLinearTier(src.G, tier)), tier),
		B: srgb.FromLinearTier(clamp01(m.B*srgb.ToLinearTier(src.B, tier)), tier),
		A: modByte(src.A, m.A),
	}
}

// sourceOverLinear is the shared implementation behind Gamma and PMG: it
// decodes both pixels' RGB to linear light, applies m_c to the source
// term (additionally weighted by m_a·As unless premultiplied), composites
// over dst with source-over alpha blending, and re-encodes to sRGB.
func sourceOverLinear(src, dst Pixel, m Modulation, premultiplied bool, tier srgb.Tier) Pixel {
	sa := m.A * float64(src.A) / 255
	da := float64(dst.A) / 255
	invSA := 1 - sa

	sr := m.R * srgb.ToLinearTier(src.R, tier)
	sg := m.G * srgb.ToLinearTier(src.G, tier)
	sb := m.B * srgb.ToLinearTier(src.B, tier)
	dr := srgb.ToLinearTier(dst.R, tier)
	dg := srgb.ToLinearTier(dst.G, tier)
	db := srgb.ToLinearTier(dst.B, tier)

	if !premultiplied {
		sr *= sa
		sg *= sa
		sb *= sa
	}

	outR := sr + dr*invSA
	outG := sg + dg*invSA
	outB := sb + db*invSA
	outA := sa + da*invSA

	return Pixel{
		R: srgb.FromLinearTier(clamp01(outR), tier),
		G: srgb.FromLinearTier(clamp01(outG), tier),
		B: srgb.FromLinearTier(clamp01(outB), tier),
		A: byteFromUnit(outA),
	}
}

// ColorKeyWrite reports whether a COLORKEY8/COLORKEY16 pixel should be
// copied: every value except the configured key is written through.
// Modulation has no effect on colorkey modes.
func ColorKeyWrite(pixelValue, key uint64) bool { return pixelValue != key }

// AlphaTestWrite reports whether an ALPHATEST pixel should be copied: the
// source is written through where its alpha meets or exceeds threshold.
// Modulation has no effect on ALPHATEST.
func AlphaTestWrite(srcAlpha, threshold uint8) bool { return srcAlpha >= threshold }
