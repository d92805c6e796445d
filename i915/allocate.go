package i915

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"golang.org/x/exp/slog"
)

// CreateFromMetadata allocates a GEM object for a layout returned by
// ComputeMetadata and programs its tiling. Every plane of the returned buffer
// shares the one object.
func (b *Backend) CreateFromMetadata(meta *drv.Metadata) (bo *drv.BO, err error) {
	b.logger.Debug("Backend::CreateFromMetadata")

	if meta == nil {
		return nil, errors.AssertionFailedf("attempting to create a buffer without metadata")
	}
	if err := meta.ValidatePageAligned(b.pageSize); err != nil {
		return nil, markf(err, ErrLayout, "attempting to create a buffer from invalid metadata")
	}
	if uint64(meta.Strides[0]) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrLayout, "stride %d does not fit the kernel's tiling stride", meta.Strides[0])
	}

	size := uint64(meta.TotalSize)
	var handle drm.Handle
	if b.device.HasHWProtection() && meta.UseFlags&drv.UseProtected != 0 {
		handle, err = b.driver.GemCreateProtected(size)
	} else {
		handle, err = b.driver.GemCreate(size)
	}
	if err != nil {
		b.logger.Debug("failed to create gem object", slog.Int("size", meta.TotalSize), slog.Any("error", err))
		return nil, markf(err, ErrAllocation, "failed to allocate %d byte buffer", meta.TotalSize)
	}

	defer func() {
		if err != nil {
			closeErr := b.driver.GemClose(handle)
			if closeErr != nil {
				b.logger.Warn("failed to close gem object after failed allocation",
					slog.Int("handle", int(handle)), slog.Any("error", closeErr))
			}
		}
	}()

	bo = &drv.BO{Meta: *meta}
	bo.SetHandle(handle)

	err = b.driver.GemSetTiling(handle, meta.Tiling, uint32(meta.Strides[0]))
	if err != nil {
		b.logger.Debug("failed to set tiling", slog.Int("handle", int(handle)), slog.Any("error", err))
		return nil, markf(err, ErrTilingProgram, "failed to program %s with stride %d", meta.Tiling, meta.Strides[0])
	}

	b.stats.AddBuffer(meta.TotalSize, false)
	return bo, nil
}

// CreateBuffer resolves a layout with ComputeMetadata and allocates it
func (b *Backend) CreateBuffer(width, height int, format drv.Format, useFlags drv.UseFlags, modifiers []drv.Modifier) (*drv.BO, error) {
	meta, err := b.ComputeMetadata(width, height, format, useFlags, modifiers)
	if err != nil {
		return nil, err
	}

	return b.CreateFromMetadata(meta)
}

// Destroy closes the buffer's GEM handles
func (b *Backend) Destroy(bo *drv.BO) error {
	b.logger.Debug("Backend::Destroy")

	if bo == nil {
		return errors.AssertionFailedf("attempting to destroy a nil buffer")
	}

	err := drv.Destroy(b.driver, bo)
	if err != nil {
		return err
	}

	b.stats.RemoveBuffer(bo.Meta.TotalSize, bo.Imported)
	return nil
}
