package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

// writeCombineExcluded are usages whose CPU access patterns are too slow
// through a write-combined mapping
const writeCombineExcluded = drv.UseRenderscript | drv.UseCameraRead | drv.UseCameraWrite

// wantsWriteCombine chooses a write-combined direct mapping for scanout
// buffers, which the CPU mostly writes and the display reads
func wantsWriteCombine(useFlags drv.UseFlags) bool {
	return useFlags&drv.UseScanout != 0 && useFlags&writeCombineExcluded == 0
}

func mapProtection(flags drv.MapFlags) int {
	if flags&drv.MapWrite != 0 {
		return unix.PROT_READ | unix.PROT_WRITE
	}
	return unix.PROT_READ
}

// Map maps the whole buffer for CPU access. Untiled buffers are mapped through
// their backing store when the kernel allows it. Tiled buffers, and untiled
// buffers the kernel cannot map directly, are mapped through the aperture.
// Compressed buffers have no CPU-visible linear view and cannot be mapped.
func (b *Backend) Map(bo *drv.BO, flags drv.MapFlags) (*drv.Mapping, error) {
	b.logger.Debug("Backend::Map")

	if bo == nil {
		return nil, errors.AssertionFailedf("attempting to map a nil buffer")
	}
	if flags&drv.MapReadWrite == 0 {
		return nil, errors.Wrapf(ErrMap, "map flags %s request no access", flags)
	}
	if bo.Meta.Modifier == drv.ModifierIntelYTiledCCS {
		return nil, errors.Wrap(ErrMap, "compressed buffers cannot be mapped")
	}

	handle := bo.Handle()
	size := bo.Meta.TotalSize

	if bo.Meta.Tiling == drm.TilingNone {
		var mmapFlags drm.MmapFlags
		if wantsWriteCombine(bo.Meta.UseFlags) {
			mmapFlags |= drm.MmapWC
		}

		data, err := b.driver.GemMmap(handle, 0, uint64(size), mmapFlags)
		if err == nil {
			b.stats.AddMapping()
			return drv.NewMapping(handle, data, flags, drv.MapStrategyDirect), nil
		}

		// Objects without shmem backing, such as imported dma-bufs, can only
		// be reached through the aperture
		b.logger.Debug("direct mapping failed, falling back to the aperture",
			slog.Int("handle", int(handle)), slog.Any("error", err))
	}

	offset, err := b.driver.GemMmapGTT(handle)
	if err != nil {
		return nil, markf(err, ErrMap, "failed to get aperture offset of handle %d", handle)
	}

	data, err := b.driver.Mmap(int64(offset), size, mapProtection(flags))
	if err != nil {
		return nil, markf(err, ErrMap, "failed to map %d bytes of handle %d through the aperture", size, handle)
	}

	b.stats.AddMapping()
	return drv.NewMapping(handle, data, flags, drv.MapStrategyAperture), nil
}

// Unmap releases a mapping returned by Map
func (b *Backend) Unmap(mapping *drv.Mapping) error {
	b.logger.Debug("Backend::Unmap")

	err := drv.Unmap(b.driver, mapping)
	if err != nil {
		return err
	}

	b.stats.RemoveMapping()
	return nil
}
