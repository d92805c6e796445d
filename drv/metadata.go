package drv

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/memutils"
)

// Metadata is the resolved layout of a buffer: its encoding and where each
// plane lives inside the single kernel object that backs it
type Metadata struct {
	Width    int
	Height   int
	Format   Format
	UseFlags UseFlags
	Modifier Modifier
	Tiling   drm.Tiling

	NumPlanes int
	Strides   [MaxPlanes]int
	Sizes     [MaxPlanes]int
	Offsets   [MaxPlanes]int
	TotalSize int
}

var _ memutils.Validatable = &Metadata{}

// Validate checks that the planes are ordered, do not overlap, and fit
// inside TotalSize. Compressed layouts must have exactly the main surface and
// the control surface, packed with no padding.
func (m *Metadata) Validate() error {
	if m.NumPlanes < 1 || m.NumPlanes > MaxPlanes {
		return errors.Newf("metadata has %d planes", m.NumPlanes)
	}

	end := 0
	for plane := 0; plane < m.NumPlanes; plane++ {
		if m.Sizes[plane] <= 0 {
			return errors.Newf("plane %d has size %d", plane, m.Sizes[plane])
		}
		if plane > 0 && m.Offsets[plane] <= m.Offsets[plane-1] {
			return errors.Newf("plane %d offset %d does not follow plane %d offset %d", plane, m.Offsets[plane], plane-1, m.Offsets[plane-1])
		}
		if m.Offsets[plane] < end {
			return errors.Newf("plane %d at offset %d overlaps the previous plane, which ends at %d", plane, m.Offsets[plane], end)
		}
		end = m.Offsets[plane] + m.Sizes[plane]
	}

	if end > m.TotalSize {
		return errors.Newf("planes end at %d, past the total size %d", end, m.TotalSize)
	}

	if m.Modifier == ModifierIntelYTiledCCS {
		if m.NumPlanes != 2 {
			return errors.Newf("compressed layout has %d planes", m.NumPlanes)
		}
		if m.TotalSize != m.Sizes[0]+m.Sizes[1] {
			return errors.Newf("compressed layout total size %d is not the sum of its surfaces", m.TotalSize)
		}
	}

	return nil
}

// ValidatePageAligned checks Validate and that TotalSize is a multiple of pageSize
func (m *Metadata) ValidatePageAligned(pageSize int) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if !memutils.IsAligned(m.TotalSize, pageSize) {
		return errors.Newf("total size %d is not a multiple of the page size %d", m.TotalSize, pageSize)
	}

	return nil
}

func (m *Metadata) PrintParameters(json *jwriter.ObjectState) {
	json.Name("Format").String(m.Format.String())
	json.Name("Width").Int(m.Width)
	json.Name("Height").Int(m.Height)
	json.Name("Usage").String(m.UseFlags.String())
	json.Name("Modifier").String(m.Modifier.String())
	json.Name("Tiling").String(m.Tiling.String())
	json.Name("TotalSize").Int(m.TotalSize)

	planes := json.Name("Planes").Array()
	for plane := 0; plane < m.NumPlanes; plane++ {
		obj := planes.Object()
		obj.Name("Stride").Int(m.Strides[plane])
		obj.Name("Size").Int(m.Sizes[plane])
		obj.Name("Offset").Int(m.Offsets[plane])
		obj.End()
	}
	planes.End()
}
