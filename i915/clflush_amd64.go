//go:build amd64

package i915

// clflushRange issues MFENCE and then CLFLUSH for every 64 byte cache line
// overlapping [start, end)
func clflushRange(start, end uintptr)
