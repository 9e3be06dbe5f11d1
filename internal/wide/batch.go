package wide

// Batch16 holds one 256-bit tier's worth of RGBA8 pixels (16 of them) in
// Structure-of-Arrays layout: one Lane16 per channel rather than
// interleaved per-pixel RGBA. This lets every batch operation work on a
// whole channel across all 16 pixels with one loop.
//
//	Array-of-Structures: [R0,G0,B0,A0, R1,G1,B1,A1, ...]
//	Structure-of-Arrays:  SR:[R0..R15] SG:[G0..G15] SB:[B0..B15] SA:[A0..A15]
type Batch16 struct {
	SR, SG, SB, SA Lane16
	DR, DG, DB, DA Lane16
}

// BatchWidth16 is the number of pixels Batch16 processes per call.
const BatchWidth16 = 16

// LoadSrc reads BatchWidth16 RGBA8 pixels from src into the source
// channels. src must hold at least BatchWidth16*4 bytes.
func (b *Batch16) LoadSrc(src []byte) {
	for i := 0; i < BatchWidth16; i++ {
		o := i * 4
		b.SR[i] = uint16(src[o+0])
		b.SG[i] = uint16(src[o+1])
		b.SB[i] = uint16(src[o+2])
		b.SA[i] = uint16(src[o+3])
	}
}

// LoadDst reads BatchWidth16 RGBA8 pixels from dst into the destination
// channels.
func (b *Batch16) LoadDst(dst []byte) {
	for i := 0; i < BatchWidth16; i++ {
		o := i * 4
		b.DR[i] = uint16(dst[o+0])
		b.DG[i] = uint16(dst[o+1])
		b.DB[i] = uint16(dst[o+2])
		b.DA[i] = uint16(dst[o+3])
	}
}

// StoreDst writes the destination channels back to dst as RGBA8 pixels.
func (b *Batch16) StoreDst(dst []byte) {
	for i := 0; i < BatchWidth16; i++ {
		o := i * 4
		dst[o+0] = uint8(b.DR[i])
		dst[o+1] = uint8(b.DG[i])
		dst[o+2] = uint8(b.DB[i])
		dst[o+3] = uint8(b.DA[i])
	}
}

// Batch8 is Batch16's 128-bit-tier counterpart: 8 pixels per batch.
type Batch8 struct {
	SR, SG, SB, SA Lane8
	DR, DG, DB, DA Lane8
}

// BatchWidth8 is the number of pixels Batch8 processes per call.
const BatchWidth8 = 8

// LoadSrc reads BatchWidth8 RGBA8 pixels from src into the source
// channels.
func (b *Batch8) LoadSrc(src []byte) {
	for i := 0; i < BatchWidth8; i++ {
		o := i * 4
		b.SR[i] = uint16(src[o+0])
		b.SG[i] = uint16(src[o+1])
		b.SB[i] = uint16(src[o+2])
		b.SA[i] = uint16(src[o+3])
	}
}

// LoadDst reads BatchWidth8 RGBA8 pixels from dst into the destination
// channels.
func (b *Batch8) LoadDst(dst []byte) {
	for i := 0; i < BatchWidth8; i++ {
		o := i * 4
		b.DR[i] = uint16(dst[o+0])
		b.DG[i] = uint16(dst[o+1])
		b.DB[i] = uint16(dst[o+2])
		b.DA[i] = uint16(dst[o+3])
	}
}

// StoreDst writes the destination channels back to dst as RGBA8 pixels.
func (b *Batch8) StoreDst(dst []byte) {
	for i := 0; i < BatchWidth8; i++ {
		o := i * 4
		dst[o+0] = uint8(b.DR[i])
		dst[o+1] = uint8(b.DG[i])
		dst[o+2] = uint8(b.DB[i])
		dst[o+3] = uint8(b.DA[i])
	}
}
