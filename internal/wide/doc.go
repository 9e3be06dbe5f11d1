// Package wide implements the SIMD-style composition kernels used by the
// 128-bit and 256-bit dispatch tiers. Rather than hand-written assembly
// or compiler intrinsics, it follows a fixed-size-array idiom: batch
// types are plain Go arrays processed with simple, branch-free loops that
// the compiler can auto-vectorize on amd64/arm64.
//
// # Lane widths
//
// Lane8 holds 8 uint16 channel values, matching the 128-bit (SSE2-class)
// tier (8 lanes * 16 bits = 128 bits). Lane16 holds 16, matching the
// 256-bit (AVX2-class) tier. Both share the same operations; only the
// array length differs.
//
// # BatchState
//
// Batch8 and Batch16 hold one tier's worth of pixels in Structure-of-
// Arrays layout: one Lane per channel, rather than interleaved per-pixel
// RGBA. This lets every operation below work on a whole channel across
// all pixels in the batch with one loop, instead of loop-per-pixel.
//
// # Scope
//
// Only the modes whose composition is pure integer arithmetic on RGBA8
// channels (COPY, ALPHA, PMA, MUL, ALPHATEST) have batch kernels here;
// see Mode.batchable in the root package for why COLORKEY8/16, FIVE551
// and the gamma-table modes stay on the scalar tier at every dispatch
// level.
package wide
