package i915

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/memutils"
	"golang.org/x/exp/slog"
)

const (
	// A Y tile is 128 bytes wide, 32 rows tall and one page in size
	yTileWidth  = 128
	yTileHeight = 32
	tileSize    = 4096

	// Each control surface tile covers 32x16 main surface tiles
	ccsTileColumns = 32
	ccsTileRows    = 16

	// lcuRows is the largest coded unit height video surfaces are aligned to
	lcuRows = 64

	// androidLumaAlignment makes ALIGN(luma/2, 16) a valid chroma stride
	androidLumaAlignment = 32

	// maxStride keeps every aligned stride, including one rounded up to a power
	// of two, within the kernel's 32-bit stride field
	maxStride = 1 << 31
	maxHeight = math.MaxInt32
)

// ComputeMetadata resolves the layout of a width x height buffer of format. If
// modifiers is empty, the capability table chooses the layout that best suits
// useFlags. Otherwise the most preferred of the offered modifiers is used.
func (b *Backend) ComputeMetadata(width, height int, format drv.Format, useFlags drv.UseFlags, modifiers []drv.Modifier) (*drv.Metadata, error) {
	b.logger.Debug("Backend::ComputeMetadata")

	if width <= 0 || height <= 0 || height > maxHeight {
		return nil, errors.Wrapf(ErrLayout, "invalid dimensions %dx%d", width, height)
	}
	if b.formats.NumPlanes(format) == 0 {
		return nil, errors.Wrapf(ErrLayout, "unknown format %s", format)
	}
	if int64(width) > maxStride || int64(b.formats.Stride(format, width, 0)) > maxStride {
		return nil, errors.Wrapf(ErrLayout, "a %s buffer %d pixels wide exceeds the %d byte stride limit", format, width, maxStride)
	}

	modifier, err := b.chooseModifier(width, format, useFlags, modifiers)
	if err != nil {
		b.logger.Debug("no modifier for buffer",
			slog.String("format", format.String()),
			slog.String("usage", useFlags.String()),
			slog.Int("offered", len(modifiers)),
		)
		return nil, err
	}

	tiling, err := tilingForModifier(modifier)
	if err != nil {
		return nil, err
	}

	meta := &drv.Metadata{
		Width:    width,
		Height:   height,
		Format:   format,
		UseFlags: useFlags,
		Modifier: modifier,
		Tiling:   tiling,
	}

	switch {
	case format == drv.FormatYVU420Android:
		b.layoutAndroidPlanes(meta)
	case modifier == drv.ModifierIntelYTiledCCS:
		b.layoutCompressed(meta)
	default:
		err = b.layoutPlanes(meta)
		if err != nil {
			return nil, err
		}
	}

	memutils.DebugValidate(meta)
	return meta, nil
}

// needsLCUAlignment reports whether plane of format is the chroma plane of a
// video surface that gen 11 and 12 align to the largest coded unit
func (b *Backend) needsLCUAlignment(format drv.Format, plane int) bool {
	switch format {
	case drv.FormatNV12, drv.FormatP010, drv.FormatP016:
		generation := b.device.Generation()
		return (generation == 11 || generation == 12) && plane == 1
	}
	return false
}

// layoutPlanes places each plane of meta after the previous one, with strides
// and heights aligned for the buffer's tiling
func (b *Backend) layoutPlanes(meta *drv.Metadata) error {
	numPlanes := b.formats.NumPlanes(meta.Format)
	offset := 0

	for plane := 0; plane < numPlanes; plane++ {
		stride := b.formats.Stride(meta.Format, meta.Width, plane)
		planeHeight := b.formats.PlaneHeight(meta.Format, meta.Height, plane)

		if meta.Tiling != drm.TilingNone && !memutils.IsAligned(offset, b.pageSize) {
			return withStage(
				errors.AssertionFailedf("plane %d of a %s buffer starts at offset %d, which is not page aligned", plane, meta.Tiling, offset),
				ErrAlignment,
			)
		}

		var err error
		stride, planeHeight, err = b.alignDimensions(meta.Tiling, stride, planeHeight)
		if err != nil {
			return err
		}

		if b.needsLCUAlignment(meta.Format, plane) {
			planeHeight = memutils.AlignUp(planeHeight, lcuRows)
		}

		meta.Strides[plane] = stride
		meta.Sizes[plane] = stride * planeHeight
		meta.Offsets[plane] = offset
		offset += meta.Sizes[plane]
	}

	meta.NumPlanes = numPlanes
	meta.TotalSize = memutils.AlignUp(offset, b.pageSize)
	return nil
}

// layoutAndroidPlanes lays out YVU420Android, which is only ever used as a
// linear texture. Its strides follow the format's own convention rather than
// any tiling alignment.
func (b *Backend) layoutAndroidPlanes(meta *drv.Metadata) {
	numPlanes := b.formats.NumPlanes(meta.Format)
	lumaStride := memutils.AlignUp(meta.Width, androidLumaAlignment)
	offset := 0

	for plane := 0; plane < numPlanes; plane++ {
		meta.Strides[plane] = b.formats.SubsampleStride(meta.Format, lumaStride, plane)
		meta.Sizes[plane] = meta.Strides[plane] * b.formats.PlaneHeight(meta.Format, meta.Height, plane)
		meta.Offsets[plane] = offset
		offset += meta.Sizes[plane]
	}

	meta.NumPlanes = numPlanes
	meta.TotalSize = memutils.AlignUp(offset, b.pageSize)
}

// layoutCompressed lays out a Y-tiled main surface followed by its color
// control surface. The main surface is a whole number of tiles, so the control
// surface starts on a tile boundary.
func (b *Backend) layoutCompressed(meta *drv.Metadata) {
	stride := b.formats.Stride(meta.Format, meta.Width, 0)
	widthInTiles := memutils.DivRoundUp(stride, yTileWidth)
	heightInTiles := memutils.DivRoundUp(meta.Height, yTileHeight)
	mainSize := widthInTiles * heightInTiles * tileSize

	meta.Strides[0] = widthInTiles * yTileWidth
	meta.Sizes[0] = mainSize
	meta.Offsets[0] = 0

	ccsWidthInTiles := memutils.DivRoundUp(widthInTiles, ccsTileColumns)
	ccsHeightInTiles := memutils.DivRoundUp(heightInTiles, ccsTileRows)
	ccsSize := ccsWidthInTiles * ccsHeightInTiles * tileSize

	meta.Strides[1] = ccsWidthInTiles * yTileWidth
	meta.Sizes[1] = ccsSize
	meta.Offsets[1] = mainSize

	meta.NumPlanes = 2
	meta.TotalSize = mainSize + ccsSize
}
