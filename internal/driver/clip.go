// Package driver implements the row-walking logic shared by every
// dispatch tier: rectangle clipping against the destination bounds,
// per-row scalar and batch iteration, and the small-width unroll
// specialization. It knows nothing about modes; the root package
// supplies per-pixel or per-batch composition closures.
package driver

// Clip computes the overlap between a srcW x srcH source rectangle
// placed at (x, y) in a dstW x dstH destination, clamping away any part
// that falls outside the destination or before the source's own origin.
// ok is false when the clipped rectangle is empty on either axis, in
// which case the caller should treat the blit as a no-op.
func Clip(dstW, dstH, srcW, srcH, x, y int) (srcX, srcY, dstX, dstY, w, h int, ok bool) {
	w, h = srcW, srcH
	dstX, dstY = x, y

	if dstX < 0 {
		w += dstX
		srcX -= dstX
		dstX = 0
	}
	if dstY < 0 {
		h += dstY
		srcY -= dstY
		dstY = 0
	}
	if dstX+w > dstW {
		w = dstW - dstX
	}
	if dstY+h > dstH {
		h = dstH - dstY
	}
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, 0, 0, false
	}
	return srcX, srcY, dstX, dstY, w, h, true
}
