package wide

// Lane8 holds 8 uint16 channel values: one 128-bit (SSE2-class) lane. Its
// operations mirror Lane16's exactly; only the width differs, matching
// the two lane widths the two SIMD dispatch tiers process.
type Lane8 [8]uint16

// SplatLane8 returns a Lane8 with every element set to n.
func SplatLane8(n uint16) Lane8 {
	var r Lane8
	for i := range r {
		r[i] = n
	}
	return r
}

// Add performs element-wise addition, saturating at 65535.
func (v Lane8) Add(other Lane8) Lane8 {
	var r Lane8
	for i := range v {
		sum := uint32(v[i]) + uint32(other[i])
		if sum > 65535 {
			sum = 65535
		}
		r[i] = uint16(sum)
	}
	return r
}

// Inv computes 255 - v for each element (inverse alpha).
func (v Lane8) Inv() Lane8 {
	var r Lane8
	for i := range v {
		r[i] = 255 - v[i]
	}
	return r
}

// Clamp clamps each element to [0, maxVal].
func (v Lane8) Clamp(maxVal uint16) Lane8 {
	var r Lane8
	for i := range v {
		if v[i] > maxVal {
			r[i] = maxVal
		} else {
			r[i] = v[i]
		}
	}
	return r
}

// MulDiv255 computes round(v[i]*other[i]/255) for each element.
func (v Lane8) MulDiv255(other Lane8) Lane8 {
	var r Lane8
	for i := range v {
		n := uint32(v[i])*uint32(other[i]) + 128
		r[i] = uint16((n + (n >> 8)) >> 8)
	}
	return r
}

// ModulateUnit scales each element by m (a float multiplier, not
// necessarily in [0,1]) and saturates back to [0, 255], matching
// kernel.modByte lane for lane.
func (v Lane8) ModulateUnit(m float64) Lane8 {
	var r Lane8
	for i := range v {
		r[i] = modulateByte(v[i], m)
	}
	return r
}
