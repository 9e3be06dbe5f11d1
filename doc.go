// Package blit provides a single-function 2D software blitter: a
// rectangular copy or composite of a source pixel surface onto a
// destination surface, under one of twelve compositing modes.
//
// # Overview
//
// blit is a Pure Go software rasterizer core with no dependency on
// image/draw or any windowing system. Callers own their own pixel
// buffers; blit reads and writes raw bytes according to a configurable
// pixel format and byte order.
//
//	import "github.com/gogpu/blit"
//
//	dst := blit.Surface{Width: 64, Height: 64, Stride: 64 * 4, Pixels: dstBuf}
//	src := blit.Surface{Width: 16, Height: 16, Stride: 16 * 4, Pixels: srcBuf}
//	blit.Blit(dst, src, 8, 8, blit.Color{}, blit.ModeAlpha)
//
// # Modes
//
// Twelve modes are supported: COPY, ALPHA, PMA, GAMMA, PMG, COLORKEY8,
// COLORKEY16, FIVE551, MUL, MUG, ALPHATEST and CPYG. See Mode for the
// exact per-pixel equation each one implements.
//
// # Dispatch tiers
//
// Blit resolves, for each call, a row driver chosen from three
// implementation tiers: scalar, 128-bit (SSE2-class) and 256-bit
// (AVX2-class), gated by a one-shot runtime CPU feature probe. The tier
// selection is transparent: every tier produces bit-identical output.
//
// # Concurrency
//
// Blit is safe to call concurrently from multiple goroutines once the
// process-wide gamma tables and CPU feature flags have been established.
// Call Blit once with zero-sized surfaces during single-threaded startup
// to force that one-shot initialization before spawning worker
// goroutines; see the warm-up note on Blit.
//
// # Configuration
//
// Configure applies functional options (WithGammaApproximation, WithSIMD,
// WithAVX2, WithEndianness, WithUnroll, ...) that steer dispatch. Call it
// once at startup, before the first Blit.
//
// # Logging
//
// blit is silent by default. Call SetLogger with a [log/slog.Logger] to
// observe tier fallback warnings.
package blit
