package driver

// RowScalarUnrolled is RowScalar specialized for small widths: the inner
// loop is unrolled by 4 so narrow blits (glyphs, cursor icons, small UI
// sprites) do not pay per-iteration loop overhead proportional to a
// width that is, for a large share of real calls, only a few pixels.
func RowScalarUnrolled(dstRow, srcRow []byte, width, pixelSize int, compose func(dst, src []byte)) {
	x := 0
	for ; x+4 <= width; x += 4 {
		for k := 0; k < 4; k++ {
			o := (x + k) * pixelSize
			compose(dstRow[o:o+pixelSize], srcRow[o:o+pixelSize])
		}
	}
	for ; x < width; x++ {
		o := x * pixelSize
		compose(dstRow[o:o+pixelSize], srcRow[o:o+pixelSize])
	}
}

// UseUnroll reports whether width falls at or under the configured
// unroll threshold, in which case the row driver should call
// RowScalarUnrolled directly instead of paying a batch tier's per-row
// setup cost for a row too narrow to fill even one lane.
func UseUnroll(width, unrollLimit int) bool {
	return unrollLimit > 0 && width <= unrollLimit
}
