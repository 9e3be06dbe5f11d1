package wide

// Lane16 holds 16 uint16 channel values: one 256-bit (AVX2-class) lane.
// Designed for Go compiler auto-vectorization via fixed-size arrays and
// simple element-wise loops rather than explicit SIMD intrinsics.
type Lane16 [16]uint16

// SplatLane16 returns a Lane16 with every element set to n.
func SplatLane16(n uint16) Lane16 {
	var r Lane16
	for i := range r {
		r[i] = n
	}
	return r
}

// Add performs element-wise addition, saturating at 65535.
func (v Lane16) Add(other Lane16) Lane16 {
	var r Lane16
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
func (v Lane16) Inv() Lane16 {
	var r Lane16
	for i := range v {
		r[i] = 255 - v[i]
	}
	return r
}

// Clamp clamps each element to [0, maxVal].
func (v Lane16) Clamp(maxVal uint16) Lane16 {
	var r Lane16
	for i := range v {
		if v[i] > maxVal {
			r[i] = maxVal
		} else {
			r[i] = v[i]
		}
	}
	return r
}

// MulDiv255 computes round(v[i]*other[i]/255) for each element, using the
// same exact two-shift formula as kernel.Div255Round so this tier agrees
// bit for bit with the scalar tier.
func (v Lane16) MulDiv255(other Lane16) Lane16 {
	var r Lane16
	for i := range v {
		n := uint32(v[i])*uint32(other[i]) + 128
		r[i] = uint16((n + (n >> 8)) >> 8)
	}
	return r
}

// ModulateUnit scales each element by m (a float multiplier, not
// necessarily in [0,1]) and saturates back to [0, 255], matching
// kernel.modByte lane for lane.
func (v Lane16) ModulateUnit(m float64) Lane16 {
	var r Lane16
	for i := range v {
		r[i] = uint16(modulateByte(v[i], m))
	}
	return r
}

// modulateByte scales an 8-bit-range channel value by m and saturates to
// [0, 255]: the `m_c·Cs` / `m_a·As` term common to every mode's equation,
// shared by Lane16.ModulateUnit and Lane8.ModulateUnit.
func modulateByte(c uint16, m float64) uint16 {
	f := m*float64(c) + 0.5
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint16(f)
}
