package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
)

func checkMapping(bo *drv.BO, mapping *drv.Mapping) error {
	if bo == nil {
		return errors.AssertionFailedf("attempting to synchronize a nil buffer")
	}
	if mapping == nil || !mapping.Mapped() {
		return errors.Wrap(ErrCoherency, "buffer has no active mapping")
	}
	return nil
}

// Invalidate moves the buffer into the CPU domain, or the aperture domain for
// tiled buffers, before the CPU reads it through mapping. Writable mappings
// also take the write domain.
func (b *Backend) Invalidate(bo *drv.BO, mapping *drv.Mapping) error {
	b.logger.Debug("Backend::Invalidate")

	if err := checkMapping(bo, mapping); err != nil {
		return err
	}

	domain := drm.DomainCPU
	if bo.Meta.Tiling != drm.TilingNone {
		domain = drm.DomainGTT
	}

	var writeDomain drm.Domain
	if mapping.Writable() {
		writeDomain = domain
	}

	err := b.driver.GemSetDomain(bo.Handle(), domain, writeDomain)
	if err != nil {
		return markf(err, ErrCoherency, "failed to move handle %d to %s", bo.Handle(), domain)
	}

	return nil
}

// Flush writes CPU caches for the mapped range back to memory. Only untiled
// buffers on devices without a shared last-level cache need it: tiled
// buffers are mapped through the uncached aperture.
func (b *Backend) Flush(bo *drv.BO, mapping *drv.Mapping) error {
	b.logger.Debug("Backend::Flush")

	if err := checkMapping(bo, mapping); err != nil {
		return err
	}

	if b.device.HasLLC() || bo.Meta.Tiling != drm.TilingNone {
		return nil
	}

	start := mapping.Address()
	if start == 0 {
		return nil
	}
	b.flushRange(start, start+uintptr(len(mapping.Data())))
	return nil
}
