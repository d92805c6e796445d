package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/memutils"
)

// maxOldestGenerationStride is the widest stride the oldest generation can tile
const maxOldestGenerationStride = 8192

// tileAlignment returns the horizontal alignment in bytes and the vertical
// alignment in rows of a surface with tiling
func (b *Backend) tileAlignment(tiling drm.Tiling) (horizontal, vertical int) {
	switch tiling {
	case drm.TilingX:
		return 512, 8
	case drm.TilingY:
		if b.device.Generation() == oldestGeneration {
			return 512, 8
		}
		return 128, 32
	}

	// Linear surfaces need no alignment on the GPU, but video consumers need
	// 16 byte aligned strides and 4 row aligned heights. Rows also start on a
	// cache line.
	if b.createFlags&BackendCreateLinearAlign256 != 0 {
		return 256, 4
	}
	return 64, 4
}

// alignDimensions rounds a plane's stride and height up to what the hardware
// can use with tiling
func (b *Backend) alignDimensions(tiling drm.Tiling, stride, height int) (int, int, error) {
	horizontal, vertical := b.tileAlignment(tiling)
	memutils.DebugCheckPow2(horizontal, "horizontal alignment")
	memutils.DebugCheckPow2(vertical, "vertical alignment")

	height = memutils.AlignUp(height, vertical)

	if b.device.Generation() > oldestGeneration {
		stride = memutils.AlignUp(stride, horizontal)
	} else {
		for stride > horizontal {
			horizontal <<= 1
		}
		stride = horizontal
	}

	if b.device.IsADLP() && stride > 1 && tiling != drm.TilingNone {
		stride = int(memutils.NextPow2(uint32(stride)))
	}

	if b.device.Generation() <= oldestGeneration && stride > maxOldestGenerationStride {
		return 0, 0, errors.Wrapf(ErrAlignment, "stride %d exceeds the %d byte limit of generation %d",
			stride, maxOldestGenerationStride, b.device.Generation())
	}

	return stride, height, nil
}
