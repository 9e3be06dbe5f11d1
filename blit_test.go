package blit

import "testing"

func newRGBASurface(w, h int, fill func(x, y int) (r, g, b, a uint8)) Surface {
	stride := w * 4
	px := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := fill(x, y)
			o := y*stride + x*4
			px[o], px[o+1], px[o+2], px[o+3] = r, g, b, a
		}
	}
	return Surface{Width: w, Height: h, Stride: stride, Pixels: px}
}

func pixelAt(s Surface, x, y int) (r, g, b, a uint8) {
	o := y*s.Stride + x*4
	return s.Pixels[o], s.Pixels[o+1], s.Pixels[o+2], s.Pixels[o+3]
}

func TestBlitAlphaSinglePixel(t *testing.T) {
	src := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 0xAA, 0xBB, 0xCC, 0x80
	})
	dst := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 0x11, 0x22, 0x33, 0x7F
	})

	Blit(dst, src, 0, 0, Color{}, ModeAlpha)

	r, g, b, a := pixelAt(dst, 0, 0)
	invSA := uint16(255 - 0x80)
	wantR := clampAddU16(mulDiv255U16(0xAA, 0x80), mulDiv255U16(0x11, invSA))
	wantG := clampAddU16(mulDiv255U16(0xBB, 0x80), mulDiv255U16(0x22, invSA))
	wantB := clampAddU16(mulDiv255U16(0xCC, 0x80), mulDiv255U16(0x33, invSA))
	wantA := clampAddU16(0x80, mulDiv255U16(0x7F, invSA))

	if r != wantR || g != wantG || b != wantB || a != wantA {
		t.Errorf("ALPHA single pixel = (%02X,%02X,%02X,%02X), want (%02X,%02X,%02X,%02X)",
			r, g, b, a, wantR, wantG, wantB, wantA)
	}
}

func mulDiv255U16(a, b uint16) uint16 {
	n := uint32(a)*uint32(b) + 128
	return uint16((n + (n >> 8)) >> 8)
}

func clampAddU16(a, b uint16) uint8 {
	sum := uint32(a) + uint32(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func TestBlitCopyClippedNegativeOrigin(t *testing.T) {
	src := newRGBASurface(2, 2, func(x, y int) (uint8, uint8, uint8, uint8) {
		return uint8(10 + x), uint8(20 + y), 0, 255
	})
	dst := newRGBASurface(4, 4, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 0, 0, 0, 0
	})

	Blit(dst, src, -1, -1, Color{}, ModeCopy)

	// Only src's bottom-right pixel (x=1,y=1) should land at dst(0,0).
	r, g, b, a := pixelAt(dst, 0, 0)
	if r != 11 || g != 21 || b != 0 || a != 255 {
		t.Errorf("clipped COPY dst(0,0) = (%d,%d,%d,%d), want (11,21,0,255)", r, g, b, a)
	}
	// Every other destination pixel must be untouched.
	if r, g, b, a := pixelAt(dst, 1, 0); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("dst(1,0) should be untouched, got (%d,%d,%d,%d)", r, g, b, a)
	}
	if r, g, b, a := pixelAt(dst, 0, 1); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("dst(0,1) should be untouched, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestBlitColorKey8RunOfEight(t *testing.T) {
	const key = 0x42
	src := Surface{Width: 8, Height: 1, Stride: 8, Pixels: []byte{key, 1, key, 2, key, 3, key, 4}}
	dst := Surface{Width: 8, Height: 1, Stride: 8, Pixels: make([]byte, 8)}
	for i := range dst.Pixels {
		dst.Pixels[i] = 0xFF
	}

	Blit(dst, src, 0, 0, Color{R: float64(key) / 255}, ModeColorKey8)

	want := []byte{0xFF, 1, 0xFF, 2, 0xFF, 3, 0xFF, 4}
	for i, w := range want {
		if dst.Pixels[i] != w {
			t.Errorf("byte %d = %#x, want %#x", i, dst.Pixels[i], w)
		}
	}
}

func TestBlitFive551TwoPixels(t *testing.T) {
	// Pixel 0: opaque red-ish; pixel 1: transparent. Bit 15 is alpha.
	opaque := uint16(0x8000 | 0x1F<<10 | 0<<5 | 0)
	transparent := uint16(0<<10 | 0x1F<<5 | 0x1F)

	src := Surface{Width: 2, Height: 1, Stride: 4, Pixels: make([]byte, 4)}
	src.Pixels[0], src.Pixels[1] = byte(opaque), byte(opaque>>8)
	src.Pixels[2], src.Pixels[3] = byte(transparent), byte(transparent>>8)

	dst := Surface{Width: 2, Height: 1, Stride: 4, Pixels: []byte{0xAA, 0xBB, 0xCC, 0xDD}}

	Blit(dst, src, 0, 0, Color{}, ModeFive551)

	if dst.Pixels[0] != byte(opaque) || dst.Pixels[1] != byte(opaque>>8) {
		t.Errorf("opaque FIVE551 pixel not copied: got %02x%02x", dst.Pixels[1], dst.Pixels[0])
	}
	if dst.Pixels[2] != 0xCC || dst.Pixels[3] != 0xDD {
		t.Errorf("transparent FIVE551 pixel should leave dst untouched: got %02x%02x", dst.Pixels[3], dst.Pixels[2])
	}
}

func TestBlitAlphaTestThreshold128(t *testing.T) {
	src := newRGBASurface(3, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		switch x {
		case 0:
			return 1, 1, 1, 127
		case 1:
			return 2, 2, 2, 128
		default:
			return 3, 3, 3, 255
		}
	})
	dst := newRGBASurface(3, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 9, 9, 9, 9
	})

	Blit(dst, src, 0, 0, Color{R: 128.0 / 255.0}, ModeAlphaTest)

	if r, _, _, _ := pixelAt(dst, 0, 0); r != 9 {
		t.Errorf("below-threshold pixel should be untouched, got r=%d", r)
	}
	if r, _, _, _ := pixelAt(dst, 1, 0); r != 2 {
		t.Errorf("at-threshold pixel should be copied, got r=%d", r)
	}
	if r, _, _, _ := pixelAt(dst, 2, 0); r != 3 {
		t.Errorf("above-threshold pixel should be copied, got r=%d", r)
	}
}

func TestBlitInvalidModeIsNoOp(t *testing.T) {
	src := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) { return 1, 2, 3, 4 })
	dst := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) { return 9, 9, 9, 9 })

	Blit(dst, src, 0, 0, Color{}, Mode(250))

	if r, g, b, a := pixelAt(dst, 0, 0); r != 9 || g != 9 || b != 9 || a != 9 {
		t.Errorf("invalid mode should leave dst untouched, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestBlitEntirelyOffscreenIsNoOp(t *testing.T) {
	src := newRGBASurface(2, 2, func(x, y int) (uint8, uint8, uint8, uint8) { return 1, 2, 3, 4 })
	dst := newRGBASurface(2, 2, func(x, y int) (uint8, uint8, uint8, uint8) { return 9, 9, 9, 9 })

	Blit(dst, src, 100, 100, Color{}, ModeCopy)

	if r, g, b, a := pixelAt(dst, 0, 0); r != 9 || g != 9 || b != 9 || a != 9 {
		t.Errorf("offscreen blit should leave dst untouched, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestBlitLargeWidthExercisesBatchTiers(t *testing.T) {
	const w = 100
	src := newRGBASurface(w, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return uint8(x), uint8(255 - x), 128, uint8(x * 2)
	})
	dst := newRGBASurface(w, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 10, 20, 30, 255
	})

	Blit(dst, src, 0, 0, Color{}, ModeAlpha)

	for x := 0; x < w; x++ {
		sr, sg, sb, sa := pixelAt(src, x, 0)
		wantR := clampAddU16(mulDiv255U16(uint16(sr), uint16(sa)), mulDiv255U16(10, uint16(255-sa)))
		wantG := clampAddU16(mulDiv255U16(uint16(sg), uint16(sa)), mulDiv255U16(20, uint16(255-sa)))
		wantB := clampAddU16(mulDiv255U16(uint16(sb), uint16(sa)), mulDiv255U16(30, uint16(255-sa)))
		r, g, b, _ := pixelAt(dst, x, 0)
		if r != wantR || g != wantG || b != wantB {
			t.Fatalf("pixel %d = (%d,%d,%d), want (%d,%d,%d)", x, r, g, b, wantR, wantG, wantB)
		}
	}
}

func TestBlitGammaModeOpaqueIsIdentity(t *testing.T) {
	src := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 128, 64, 200, 255
	})
	dst := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 1, 2, 3, 255
	})

	Blit(dst, src, 0, 0, Color{}, ModeGamma)

	r, g, b, a := pixelAt(dst, 0, 0)
	if r != 128 || g != 64 || b != 200 || a != 255 {
		t.Errorf("GAMMA with opaque src = (%d,%d,%d,%d), want (128,64,200,255)", r, g, b, a)
	}
}

func TestWarmUpDoesNotPanic(t *testing.T) {
	WarmUp()
}

func TestBlitAlphaZeroModulationAlphaIsIdentityOnDst(t *testing.T) {
	src := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 0xAA, 0xBB, 0xCC, 0x80
	})
	dst := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 0x11, 0x22, 0x33, 0x7F
	})

	Blit(dst, src, 0, 0, Color{R: 2, G: 0.5, B: 3, A: 0}, ModeAlpha)

	r, g, b, a := pixelAt(dst, 0, 0)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x7F {
		t.Errorf("ALPHA with m.A=0 = (%02X,%02X,%02X,%02X), want dst unchanged (11,22,33,7F)", r, g, b, a)
	}
}

func TestBlitMulModulationScalesResult(t *testing.T) {
	src := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 255, 255, 255, 255
	})
	dst := newRGBASurface(1, 1, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 200, 200, 200, 255
	})

	Blit(dst, src, 0, 0, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, ModeMul)

	r, _, _, _ := pixelAt(dst, 0, 0)
	if r == 200 {
		t.Error("MUL with m.R=0.5 should scale the product down from the unmodulated result")
	}
}
