// Package cpufeature implements the one-shot runtime CPU feature probe
// that gates the 128-bit and 256-bit dispatch tiers. Detection is
// delegated to golang.org/x/sys/cpu, which already performs the OS
// context-switch (XGETBV) gating this probe would otherwise have to
// hand-roll: on amd64, cpu.X86.HasAVX2 is only true if the OS has
// enabled the extended register state the instructions need.
package cpufeature

import "golang.org/x/sys/cpu"

// Features is the result of the one-shot CPU probe: which SIMD tiers the
// current process may safely use.
type Features struct {
	SSE2 bool
	AVX2 bool
}

var detected = Features{
	SSE2: cpu.X86.HasSSE2,
	AVX2: cpu.X86.HasAVX2,
}

// Detect returns the process-wide CPU feature flags, established once at
// package init via golang.org/x/sys/cpu and never re-probed. Non-amd64
// builds report both tiers unavailable, which is the conservative and
// correct answer since x/sys/cpu.X86 is only populated on amd64/386.
func Detect() Features {
	return detected
}

// Static returns the feature set used when the runtime probe is
// disabled (config.runtimeProbe == false): every tier reports
// unavailable, so dispatch always falls back to scalar regardless of
// the host's real capabilities.
func Static() Features {
	return Features{}
}
