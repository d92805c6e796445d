package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drv"
	"golang.org/x/exp/slog"
)

// Import brings in a buffer exported by another process or device and reads
// its tiling back from the kernel, since the tiling the exporter chose is
// only recorded there
func (b *Backend) Import(data *drv.ImportData) (*drv.BO, error) {
	b.logger.Debug("Backend::Import")

	if data == nil {
		return nil, errors.AssertionFailedf("attempting to import a buffer without import data")
	}

	bo, err := b.importer.Import(b.driver, data)
	if err != nil {
		return nil, err
	}

	tiling, err := b.driver.GemGetTiling(bo.Handle())
	if err != nil {
		b.logger.Debug("failed to get tiling of imported buffer", slog.Int("handle", int(bo.Handle())), slog.Any("error", err))

		destroyErr := drv.Destroy(b.driver, bo)
		if destroyErr != nil {
			b.logger.Warn("failed to close imported buffer", slog.Any("error", destroyErr))
		}
		return nil, markf(err, ErrImportTilingQuery, "failed to recover tiling of imported %s buffer", data.Format)
	}

	bo.Meta.Tiling = tiling

	b.stats.AddBuffer(bo.Meta.TotalSize, true)
	return bo, nil
}
