package driver

import "github.com/gogpu/blit/internal/wide"

// RowScalar walks width pixels of pixelSize bytes each, calling compose
// once per pixel with that pixel's destination and source byte slices.
func RowScalar(dstRow, srcRow []byte, width, pixelSize int, compose func(dst, src []byte)) {
	for x := 0; x < width; x++ {
		o := x * pixelSize
		compose(dstRow[o:o+pixelSize], srcRow[o:o+pixelSize])
	}
}

// RowBatch16 processes width RGBA8 pixels in lanes of wide.BatchWidth16,
// applying apply to every full lane and scalarFallback to the remaining
// pixels once fewer than a full lane's worth are left.
func RowBatch16(dstRow, srcRow []byte, width int, apply func(*wide.Batch16), scalarFallback func(dst, src []byte)) {
	x := 0
	for ; x+wide.BatchWidth16 <= width; x += wide.BatchWidth16 {
		o := x * 4
		end := o + wide.BatchWidth16*4
		var b wide.Batch16
		b.LoadSrc(srcRow[o:end])
		b.LoadDst(dstRow[o:end])
		apply(&b)
		b.StoreDst(dstRow[o:end])
	}
	for ; x < width; x++ {
		o := x * 4
		scalarFallback(dstRow[o:o+4], srcRow[o:o+4])
	}
}

// RowBatch8 is RowBatch16's 128-bit-tier counterpart.
func RowBatch8(dstRow, srcRow []byte, width int, apply func(*wide.Batch8), scalarFallback func(dst, src []byte)) {
	x := 0
	for ; x+wide.BatchWidth8 <= width; x += wide.BatchWidth8 {
		o := x * 4
		end := o + wide.BatchWidth8*4
		var b wide.Batch8
		b.LoadSrc(srcRow[o:end])
		b.LoadDst(dstRow[o:end])
		apply(&b)
		b.StoreDst(dstRow[o:end])
	}
	for ; x < width; x++ {
		o := x * 4
		scalarFallback(dstRow[o:o+4], srcRow[o:o+4])
	}
}
