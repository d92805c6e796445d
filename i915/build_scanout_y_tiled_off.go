//go:build !i915_scanout_y_tiled

package i915

const buildScanoutYTiled CreateFlags = 0
