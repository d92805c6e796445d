package drv

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"golang.org/x/sys/unix"
)

// Importer turns exported PRIME file descriptors into a BO on driver
type Importer interface {
	Import(driver drm.Driver, data *ImportData) (*BO, error)
}

// PrimeImporter is the Importer every backend shares: one PRIME_FD_TO_HANDLE
// per plane, with plane sizes recovered from the size of each dma-buf
type PrimeImporter struct {
	Formats FormatLayouts
}

var _ Importer = PrimeImporter{}

// NumPlanes returns the plane count of a buffer with format and modifier.
// Compressed layouts add a control surface to the single main surface.
func NumPlanes(formats FormatLayouts, format Format, modifier Modifier) int {
	if modifier == ModifierIntelYTiledCCS {
		return 2
	}
	return formats.NumPlanes(format)
}

func (i PrimeImporter) Import(driver drm.Driver, data *ImportData) (*BO, error) {
	formats := i.Formats
	if formats == nil {
		formats = PlanarFormats{}
	}

	bo := &BO{
		Meta: Metadata{
			Width:     data.Width,
			Height:    data.Height,
			Format:    data.Format,
			UseFlags:  data.UseFlags,
			Modifier:  data.Modifier,
			NumPlanes: NumPlanes(formats, data.Format, data.Modifier),
		},
		Imported: true,
	}
	if bo.Meta.NumPlanes == 0 {
		return nil, errors.Newf("cannot import unknown format %s", data.Format)
	}

	var err error
	imported := 0
	defer func() {
		if err != nil {
			bo.Meta.NumPlanes = imported
			_ = Destroy(driver, bo)
		}
	}()

	for plane := 0; plane < bo.Meta.NumPlanes; plane++ {
		var handle drm.Handle
		handle, err = driver.PrimeFDToHandle(data.FDs[plane])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to import plane %d", plane)
		}
		bo.Handles[plane] = handle
		imported++
	}

	for plane := 0; plane < bo.Meta.NumPlanes; plane++ {
		bo.Meta.Strides[plane] = data.Strides[plane]
		bo.Meta.Offsets[plane] = data.Offsets[plane]

		var seekEnd int64
		seekEnd, err = unix.Seek(data.FDs[plane], 0, io.SeekEnd)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find the size of plane %d", plane)
		}

		if plane == bo.Meta.NumPlanes-1 || data.Offsets[plane+1] == 0 {
			bo.Meta.Sizes[plane] = int(seekEnd) - data.Offsets[plane]
		} else {
			bo.Meta.Sizes[plane] = data.Offsets[plane+1] - data.Offsets[plane]
		}

		if bo.Meta.Sizes[plane] <= 0 || int64(bo.Meta.Offsets[plane])+int64(bo.Meta.Sizes[plane]) > seekEnd {
			err = errors.Newf("plane %d at offset %d with size %d runs past the end of its buffer (%d)",
				plane, bo.Meta.Offsets[plane], bo.Meta.Sizes[plane], seekEnd)
			return nil, err
		}

		bo.Meta.TotalSize += bo.Meta.Sizes[plane]
	}

	return bo, nil
}

// Destroy closes every distinct handle of bo. Planes that share a handle
// close it once.
func Destroy(driver drm.Driver, bo *BO) error {
	var err error

	for plane := 0; plane < bo.Meta.NumPlanes; plane++ {
		if seenHandle(bo.Handles[:plane], bo.Handles[plane]) {
			continue
		}

		closeErr := driver.GemClose(bo.Handles[plane])
		if closeErr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(closeErr, "failed to close plane %d", plane))
		}
	}

	return err
}

func seenHandle(handles []drm.Handle, handle drm.Handle) bool {
	for _, seen := range handles {
		if seen == handle {
			return true
		}
	}
	return false
}

// Unmap releases mapping. Unmapping a mapping twice is an error.
func Unmap(driver drm.Driver, mapping *Mapping) error {
	if mapping == nil || mapping.unmapped {
		return errors.New("attempting to unmap a mapping that is not mapped")
	}

	if err := driver.Munmap(mapping.data); err != nil {
		return errors.Wrap(err, "failed to unmap buffer")
	}

	mapping.unmapped = true
	mapping.data = nil
	return nil
}
