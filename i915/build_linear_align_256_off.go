//go:build !linear_align_256

package i915

const buildLinearAlign256 CreateFlags = 0
