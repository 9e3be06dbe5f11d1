package blit

import (
	"log/slog"

	"github.com/gogpu/blit/internal/codec"
	"github.com/gogpu/blit/internal/cpufeature"
	"github.com/gogpu/blit/internal/driver"
	"github.com/gogpu/blit/internal/kernel"
	"github.com/gogpu/blit/internal/srgb"
	"github.com/gogpu/blit/internal/wide"
)

// Blit copies or composites src onto dst at (x, y), using mode to select
// the per-pixel equation and color as the mode's modulation/key/threshold
// parameter. Blit is total: it never panics and never returns an error.
// Invalid geometry (inconsistent stride/buffer length, an invalid mode,
// a rectangle that does not overlap dst) is a silent no-op.
//
// Blit is safe to call concurrently once the process-wide CPU feature
// flags and sRGB tables have been established, which happens
// automatically at package init time. A caller that wants to force that
// one-shot initialization explicitly, before spawning worker goroutines,
// may call Blit once with a zero-sized src during single-threaded
// startup; the call is a guaranteed no-op but still exercises the
// package-level init path.
func Blit(dst, src Surface, x, y int, color Color, mode Mode) {
	if !mode.IsValid() {
		return
	}

	pixelSize := mode.pixelSize()
	if !dst.valid(pixelSize) || !src.valid(pixelSize) {
		return
	}
	if src.Width == 0 || src.Height == 0 || dst.Width == 0 || dst.Height == 0 {
		return
	}

	srcX, srcY, dstX, dstY, w, h, ok := driver.Clip(dst.Width, dst.Height, src.Width, src.Height, x, y)
	if !ok {
		return
	}

	cfg := currentConfig()
	order := codecOrder(cfg.endianness)
	mod := normalizeModulation(color)
	switch mode {
	case ModeColorKey8, ModeColorKey16, ModeAlphaTest:
		// These modes read R as a key or threshold, not as a multiplier:
		// a zero Color stays zero (no key, threshold 0).
		if color.isZero() {
			mod = color
		}
		if mode == ModeAlphaTest && mod.R*255 > 255 {
			return // a threshold above 255 admits no pixel
		}
	}
	features := resolveFeatures(cfg)

	if cfg.simdEnabled && cfg.avx2Enabled && cfg.runtimeProbe && !features.avx2 {
		warnFallback("AVX2 requested but not available on this CPU")
	}

	for row := 0; row < h; row++ {
		dstRow := dst.rowAt(dstY+row, pixelSize)[dstX*pixelSize : dstX*pixelSize+w*pixelSize]
		srcRow := src.rowAt(srcY+row, pixelSize)[srcX*pixelSize : srcX*pixelSize+w*pixelSize]
		blitRow(dstRow, srcRow, w, mode, mod, cfg, order, features)
	}
}

func codecOrder(e Endianness) codec.Order {
	if e == BigEndian {
		return codec.BigEndian
	}
	return codec.LittleEndian
}

type tierFlags struct {
	sse2 bool
	avx2 bool
}

func resolveFeatures(cfg config) tierFlags {
	if !cfg.simdEnabled {
		return tierFlags{}
	}
	var f cpufeature.Features
	if cfg.runtimeProbe {
		f = cpufeature.Detect()
	} else {
		f = cpufeature.Static()
	}
	return tierFlags{
		sse2: f.SSE2,
		avx2: f.AVX2 && cfg.avx2Enabled,
	}
}

func gammaTier(t int) srgb.Tier {
	switch t {
	case 1:
		return srgb.TierFastTable
	case 2:
		return srgb.TierGamma2
	case 3:
		return srgb.TierLinearApprox
	default:
		return srgb.TierExact
	}
}

func blitRow(dstRow, srcRow []byte, width int, mode Mode, mod Color, cfg config, order codec.Order, features tierFlags) {
	switch mode {
	case ModeColorKey8:
		key := uint64(colorKeyByte(mod))
		if mod.isZero() {
			key = 1 << 8 // no key: every source byte is written
		}
		for x := 0; x < width; x++ {
			v := codec.LoadKey8(srcRow[x : x+1])
			if kernel.ColorKeyWrite(uint64(v), key) {
				codec.StoreKey8(dstRow[x:x+1], v)
			}
		}
		return
	case ModeColorKey16:
		key := uint64(colorKey16(mod))
		if mod.isZero() {
			key = 1 << 16 // no key: every source word is written
		}
		for x := 0; x < width; x++ {
			o := x * 2
			v := codec.LoadU16(srcRow[o:o+2], order)
			if kernel.ColorKeyWrite(uint64(v), key) {
				codec.StoreU16(dstRow[o:o+2], v, order)
			}
		}
		return
	case ModeFive551:
		for x := 0; x < width; x++ {
			o := x * 2
			v := codec.LoadU16(srcRow[o:o+2], order)
			_, _, _, opaque := codec.UnpackFive551(v)
			if opaque {
				codec.StoreU16(dstRow[o:o+2], v, order)
			}
		}
		return
	}

	tier := gammaTier(cfg.gammaTier)

	composeScalar := scalarComposer(mode, mod, tier)

	if !mode.batchable() {
		if driver.UseUnroll(width, cfg.unroll) {
			driver.RowScalarUnrolled(dstRow, srcRow, width, 4, composeScalar)
		} else {
			driver.RowScalar(dstRow, srcRow, width, 4, composeScalar)
		}
		return
	}

	switch {
	case features.avx2 && !driver.UseUnroll(width, cfg.unroll):
		driver.RowBatch16(dstRow, srcRow, width, batchApplier16(mode, mod), composeScalar)
	case features.sse2 && !driver.UseUnroll(width, cfg.unroll):
		driver.RowBatch8(dstRow, srcRow, width, batchApplier8(mode, mod), composeScalar)
	case driver.UseUnroll(width, cfg.unroll):
		driver.RowScalarUnrolled(dstRow, srcRow, width, 4, composeScalar)
	default:
		driver.RowScalar(dstRow, srcRow, width, 4, composeScalar)
	}
}

func loadPixel(b []byte) kernel.Pixel {
	r, g, bl, a := codec.LoadRGBA8(b)
	return kernel.Pixel{R: r, G: g, B: bl, A: a}
}

func storePixel(b []byte, p kernel.Pixel) {
	codec.StoreRGBA8(b, p.R, p.G, p.B, p.A)
}

func kernelModulation(c Color) kernel.Modulation {
	return kernel.Modulation{R: c.R, G: c.G, B: c.B, A: c.A}
}

func wideModulation(c Color) wide.Modulation {
	return wide.Modulation{R: c.R, G: c.G, B: c.B, A: c.A}
}

func scalarComposer(mode Mode, mod Color, tier srgb.Tier) func(dst, src []byte) {
	km := kernelModulation(mod)
	switch mode {
	case ModeCopy:
		return func(dst, src []byte) { storePixel(dst, kernel.Copy(loadPixel(src), km)) }
	case ModeAlpha:
		return func(dst, src []byte) { storePixel(dst, kernel.Alpha(loadPixel(src), loadPixel(dst), km)) }
	case ModePMA:
		return func(dst, src []byte) { storePixel(dst, kernel.PMA(loadPixel(src), loadPixel(dst), km)) }
	case ModeGamma:
		return func(dst, src []byte) { storePixel(dst, kernel.Gamma(loadPixel(src), loadPixel(dst), km, tier)) }
	case ModePMG:
		return func(dst, src []byte) { storePixel(dst, kernel.PMG(loadPixel(src), loadPixel(dst), km, tier)) }
	case ModeMul:
		return func(dst, src []byte) { storePixel(dst, kernel.Mul(loadPixel(src), loadPixel(dst), km)) }
	case ModeMug:
		return func(dst, src []byte) { storePixel(dst, kernel.Mug(loadPixel(src), loadPixel(dst), km, tier)) }
	case ModeAlphaTest:
		threshold := alphaTestThreshold(mod)
		return alphaTestComposer(threshold)
	case ModeCpyG:
		return func(dst, src []byte) { storePixel(dst, kernel.CpyG(loadPixel(src), km, tier)) }
	default:
		return func(dst, src []byte) {}
	}
}

func alphaTestComposer(threshold uint8) func(dst, src []byte) {
	return func(dst, src []byte) {
		p := loadPixel(src)
		if kernel.AlphaTestWrite(p.A, threshold) {
			storePixel(dst, p)
		}
	}
}

func batchApplier16(mode Mode, mod Color) func(*wide.Batch16) {
	wm := wideModulation(mod)
	switch mode {
	case ModeCopy:
		return func(b *wide.Batch16) { wide.CopyBatch16(b, wm) }
	case ModeAlpha:
		return func(b *wide.Batch16) { wide.AlphaBatch16(b, wm) }
	case ModePMA:
		return func(b *wide.Batch16) { wide.PMABatch16(b, wm) }
	case ModeMul:
		return func(b *wide.Batch16) { wide.MulBatch16(b, wm) }
	case ModeAlphaTest:
		threshold := uint16(alphaTestThreshold(mod))
		return func(b *wide.Batch16) {
			mask := wide.AlphaTestWriteMask16(b, threshold)
			for i, write := range mask {
				if write {
					b.DR[i], b.DG[i], b.DB[i], b.DA[i] = b.SR[i], b.SG[i], b.SB[i], b.SA[i]
				}
			}
		}
	default:
		return func(*wide.Batch16) {}
	}
}

func batchApplier8(mode Mode, mod Color) func(*wide.Batch8) {
	wm := wideModulation(mod)
	switch mode {
	case ModeCopy:
		return func(b *wide.Batch8) { wide.CopyBatch8(b, wm) }
	case ModeAlpha:
		return func(b *wide.Batch8) { wide.AlphaBatch8(b, wm) }
	case ModePMA:
		return func(b *wide.Batch8) { wide.PMABatch8(b, wm) }
	case ModeMul:
		return func(b *wide.Batch8) { wide.MulBatch8(b, wm) }
	case ModeAlphaTest:
		threshold := uint16(alphaTestThreshold(mod))
		return func(b *wide.Batch8) {
			mask := wide.AlphaTestWriteMask8(b, threshold)
			for i, write := range mask {
				if write {
					b.DR[i], b.DG[i], b.DB[i], b.DA[i] = b.SR[i], b.SG[i], b.SB[i], b.SA[i]
				}
			}
		}
	default:
		return func(*wide.Batch8) {}
	}
}

func warnFallback(reason string) {
	Logger().Warn("blit: dispatch tier fell back to a lower tier", slog.String("reason", reason))
}
