package wide

// Modulation is the batch-tier counterpart of kernel.Modulation: m_c
// (R, G, B independently) scales source color, m_a (A) scales source
// alpha, broadcast across every lane in the batch.
type Modulation struct {
	R, G, B, A float64
}

// NeutralModulation leaves every batch mode's output unchanged.
var NeutralModulation = Modulation{R: 1, G: 1, B: 1, A: 1}

// CopyBatch16 overwrites the destination channels with the modulated
// source channels, matching kernel.Copy lane for lane.
func CopyBatch16(b *Batch16, m Modulation) {
	b.DR = b.SR.ModulateUnit(m.R)
	b.DG = b.SG.ModulateUnit(m.G)
	b.DB = b.SB.ModulateUnit(m.B)
	b.DA = b.SA.ModulateUnit(m.A)
}

// AlphaBatch16 composites a non-premultiplied, modulated source over the
// destination using source-over alpha blending, matching kernel.Alpha
// lane for lane.
func AlphaBatch16(b *Batch16, m Modulation) {
	modR := b.SR.ModulateUnit(m.R)
	modG := b.SG.ModulateUnit(m.G)
	modB := b.SB.ModulateUnit(m.B)
	modA := b.SA.ModulateUnit(m.A)
	invSA := modA.Inv()
	psr := modR.MulDiv255(modA)
	psg := modG.MulDiv255(modA)
	psb := modB.MulDiv255(modA)
	b.DR = psr.Add(b.DR.MulDiv255(invSA)).Clamp(255)
	b.DG = psg.Add(b.DG.MulDiv255(invSA)).Clamp(255)
	b.DB = psb.Add(b.DB.MulDiv255(invSA)).Clamp(255)
	b.DA = modA.Add(b.DA.MulDiv255(invSA)).Clamp(255)
}

// PMABatch16 composites an already-premultiplied, modulated source over
// the destination, matching kernel.PMA lane for lane.
func PMABatch16(b *Batch16, m Modulation) {
	modR := b.SR.ModulateUnit(m.R)
	modG := b.SG.ModulateUnit(m.G)
	modB := b.SB.ModulateUnit(m.B)
	modA := b.SA.ModulateUnit(m.A)
	invSA := modA.Inv()
	b.DR = modR.Add(b.DR.MulDiv255(invSA)).Clamp(255)
	b.DG = modG.Add(b.DG.MulDiv255(invSA)).Clamp(255)
	b.DB = modB.Add(b.DB.MulDiv255(invSA)).Clamp(255)
	b.DA = modA.Add(b.DA.MulDiv255(invSA)).Clamp(255)
}

// MulBatch16 is a direct modulated product, not a composite, matching
// kernel.Mul lane for lane: no destination weighting term at all.
func MulBatch16(b *Batch16, m Modulation) {
	b.DR = b.SR.ModulateUnit(m.R).MulDiv255(b.DR)
	b.DG = b.SG.ModulateUnit(m.G).MulDiv255(b.DG)
	b.DB = b.SB.ModulateUnit(m.B).MulDiv255(b.DB)
	b.DA = b.SA.ModulateUnit(m.A).MulDiv255(b.DA)
}

// AlphaTestWriteMask16 returns, per lane, 0xFFFF where the source alpha
// meets or exceeds threshold and 0 elsewhere. The row driver uses this
// mask to decide which lanes of an ALPHATEST batch to store. ALPHATEST
// ignores modulation entirely, matching kernel.AlphaTestWrite.
func AlphaTestWriteMask16(b *Batch16, threshold uint16) [16]bool {
	var mask [16]bool
	for i := range b.SA {
		mask[i] = b.SA[i] >= threshold
	}
	return mask
}

// CopyBatch8 is CopyBatch16's 128-bit-tier counterpart.
func CopyBatch8(b *Batch8, m Modulation) {
	b.DR = b.SR.ModulateUnit(m.R)
	b.DG = b.SG.ModulateUnit(m.G)
	b.DB = b.SB.ModulateUnit(m.B)
	b.DA = b.SA.ModulateUnit(m.A)
}

// AlphaBatch8 is AlphaBatch16's 128-bit-tier counterpart.
func AlphaBatch8(b *Batch8, m Modulation) {
	modR := b.SR.ModulateUnit(m.R)
	modG := b.SG.ModulateUnit(m.G)
	modB := b.SB.ModulateUnit(m.B)
	modA := b.SA.ModulateUnit(m.A)
	invSA := modA.Inv()
	psr := modR.MulDiv255(modA)
	psg := modG.MulDiv255(modA)
	psb := modB.MulDiv255(modA)
	b.DR = psr.Add(b.DR.MulDiv255(invSA)).Clamp(255)
	b.DG = psg.Add(b.DG.MulDiv255(invSA)).Clamp(255)
	b.DB = psb.Add(b.DB.MulDiv255(invSA)).Clamp(255)
	b.DA = modA.Add(b.DA.MulDiv255(invSA)).Clamp(255)
}

// PMABatch8 is PMABatch16's 128-bit-tier counterpart.
func PMABatch8(b *Batch8, m Modulation) {
	modR := b.SR.ModulateUnit(m.R)
	modG := b.SG.ModulateUnit(m.G)
	modB := b.SB.ModulateUnit(m.B)
	modA := b.SA.ModulateUnit(m.A)
	invSA := modA.Inv()
	b.DR = modR.Add(b.DR.MulDiv255(invSA)).Clamp(255)
	b.DG = modG.Add(b.DG.MulDiv255(invSA)).Clamp(255)
	b.DB = modB.Add(b.DB.MulDiv255(invSA)).Clamp(255)
	b.DA = modA.Add(b.DA.MulDiv255(invSA)).Clamp(255)
}

// MulBatch8 is MulBatch16's 128-bit-tier counterpart.
func MulBatch8(b *Batch8, m Modulation) {
	b.DR = b.SR.ModulateUnit(m.R).MulDiv255(b.DR)
	b.DG = b.SG.ModulateUnit(m.G).MulDiv255(b.DG)
	b.DB = b.SB.ModulateUnit(m.B).MulDiv255(b.DB)
	b.DA = b.SA.ModulateUnit(m.A).MulDiv255(b.DA)
}

// AlphaTestWriteMask8 is AlphaTestWriteMask16's 128-bit-tier counterpart.
func AlphaTestWriteMask8(b *Batch8, threshold uint16) [8]bool {
	var mask [8]bool
	for i := range b.SA {
		mask[i] = b.SA[i] >= threshold
	}
	return mask
}
