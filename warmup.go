package blit

import "github.com/gogpu/blit/internal/cpufeature"

// WarmUp forces the package-level CPU feature probe and sRGB tables to be
// touched once, explicitly. In this implementation both are already
// established by Go's ordinary package-init sequence before any call can
// reach them, so WarmUp never does real work; it exists so callers that
// port code from runtimes where such one-shot state is lazily built on
// first use (and therefore racy without an explicit warm-up call) have an
// equivalent call to make during single-threaded startup, before
// spawning the goroutines that will call Blit concurrently.
func WarmUp() {
	_ = cpufeature.Detect()
}
