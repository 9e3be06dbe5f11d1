package blit

import "sync"

// Endianness selects the in-memory byte order the codec uses to read and
// write 16-bit pixels (COLORKEY16, FIVE551). It has no effect on 8-bit
// pixel formats, and none on 4-byte RGBA pixels, which are always stored
// as the bytes R, G, B, A in that order.
type Endianness uint8

const (
	// LittleEndian stores the least-significant byte first. This is the
	// default and matches the in-memory layout of little-endian hosts.
	LittleEndian Endianness = iota
	// BigEndian stores the most-significant byte first.
	BigEndian
)

// Option configures package-level blit behavior. Options are applied by
// Configure, typically once at program startup before the first Blit call.
type Option func(*config)

// config holds the process-wide toggles that steer dispatch. It is guarded
// by configMu so Configure can be called safely from an init-time goroutine,
// though callers should still treat it as a one-time startup call per the
// warm-up convention documented on Blit.
type config struct {
	gammaTier    int
	simdEnabled  bool
	avx2Enabled  bool
	runtimeProbe bool
	endianness   Endianness
	unroll       int
}

func defaultConfig() config {
	return config{
		gammaTier:    0,
		simdEnabled:  true,
		avx2Enabled:  true,
		runtimeProbe: true,
		endianness:   LittleEndian,
		unroll:       16,
	}
}

var (
	configMu  sync.RWMutex
	activeCfg = defaultConfig()
)

// Configure applies the given options to the package-level configuration.
// It is intended to be called once, during single-threaded startup, before
// any call to Blit; see the warm-up note on Blit for the concurrency
// contract this implies.
//
// Example:
//
//	blit.Configure(
//		blit.WithGammaApproximation(1),
//		blit.WithAVX2(false),
//	)
func Configure(opts ...Option) {
	configMu.Lock()
	defer configMu.Unlock()
	for _, opt := range opts {
		opt(&activeCfg)
	}
}

func currentConfig() config {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeCfg
}

// WithGammaTables selects the exact, table-driven sRGB conversion (tier 0).
// This is the default.
func WithGammaTables() Option {
	return func(c *config) { c.gammaTier = 0 }
}

// WithGammaApproximation selects a cheaper sRGB approximation tier (1-3)
// in exchange for reduced accuracy in GAMMA, PMG, MUG and CPYG modes. Tier 0
// (the default, equivalent to WithGammaTables) is exact.
func WithGammaApproximation(tier int) Option {
	return func(c *config) {
		if tier < 0 || tier > 3 {
			return
		}
		c.gammaTier = tier
	}
}

// WithSIMD enables or disables the 128-bit (SSE2-class) dispatch tier.
// Disabling it forces scalar kernels regardless of CPU support.
func WithSIMD(enabled bool) Option {
	return func(c *config) {
		c.simdEnabled = enabled
		if !enabled {
			c.avx2Enabled = false
		}
	}
}

// WithAVX2 enables or disables the 256-bit (AVX2-class) dispatch tier.
// Has no effect if WithSIMD(false) has also been applied.
func WithAVX2(enabled bool) Option {
	return func(c *config) { c.avx2Enabled = enabled }
}

// WithRuntimeCPUProbe controls whether the CPU feature probe runs at all.
// Disabling it is equivalent to compiling with static SSE2/AVX2 assumptions
// off: dispatch falls back to the scalar tier unconditionally.
func WithRuntimeCPUProbe(enabled bool) Option {
	return func(c *config) { c.runtimeProbe = enabled }
}

// WithEndianness selects the in-memory byte order used by the codec for
// 16-bit pixel formats. 4-byte RGBA pixels keep their fixed R, G, B, A
// byte order under either setting.
func WithEndianness(e Endianness) Option {
	return func(c *config) { c.endianness = e }
}

// WithUnroll sets the small-width loop unroll limit used below the batch
// tiers. Valid values are 0 (disabled), 8, 16, and 32; other values are
// ignored.
func WithUnroll(limit int) Option {
	return func(c *config) {
		switch limit {
		case 0, 8, 16, 32:
			c.unroll = limit
		}
	}
}
