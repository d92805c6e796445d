package drv

import "github.com/vkngwrapper/i915gbm/memutils"

// MaxPlanes is the largest number of planes a buffer may have
const MaxPlanes = 4

// FormatLayouts is the per-format plane arithmetic backends build their
// layouts on top of. It knows nothing about tiling or hardware alignment.
type FormatLayouts interface {
	// NumPlanes returns the number of planes in format, or 0 if format is unknown
	NumPlanes(format Format) int
	// Stride returns the minimum stride of plane for an image width pixels wide
	Stride(format Format, width int, plane int) int
	// PlaneHeight returns the number of rows in plane for an image height rows tall
	PlaneHeight(format Format, height int, plane int) int
	// SubsampleStride derives the stride of plane from the stride of plane 0
	SubsampleStride(format Format, stride int, plane int) int
}

type planarLayout struct {
	numPlanes             int
	horizontalSubsampling [MaxPlanes]int
	verticalSubsampling   [MaxPlanes]int
	bytesPerPixel         [MaxPlanes]int
}

var (
	packed1BPP = planarLayout{1, [MaxPlanes]int{1}, [MaxPlanes]int{1}, [MaxPlanes]int{1}}
	packed2BPP = planarLayout{1, [MaxPlanes]int{1}, [MaxPlanes]int{1}, [MaxPlanes]int{2}}
	packed3BPP = planarLayout{1, [MaxPlanes]int{1}, [MaxPlanes]int{1}, [MaxPlanes]int{3}}
	packed4BPP = planarLayout{1, [MaxPlanes]int{1}, [MaxPlanes]int{1}, [MaxPlanes]int{4}}
	packed8BPP = planarLayout{1, [MaxPlanes]int{1}, [MaxPlanes]int{1}, [MaxPlanes]int{8}}

	biplanarYUV420     = planarLayout{2, [MaxPlanes]int{1, 2}, [MaxPlanes]int{1, 2}, [MaxPlanes]int{1, 2}}
	biplanarYUV420BPP2 = planarLayout{2, [MaxPlanes]int{1, 2}, [MaxPlanes]int{1, 2}, [MaxPlanes]int{2, 4}}
	triplanarYUV420    = planarLayout{3, [MaxPlanes]int{1, 2, 2}, [MaxPlanes]int{1, 2, 2}, [MaxPlanes]int{1, 1, 1}}
)

var planarLayouts = map[Format]*planarLayout{
	FormatR8: &packed1BPP,

	FormatRGB565: &packed2BPP,

	FormatBGR888: &packed3BPP,

	FormatXRGB8888:    &packed4BPP,
	FormatXBGR8888:    &packed4BPP,
	FormatARGB8888:    &packed4BPP,
	FormatABGR8888:    &packed4BPP,
	FormatXRGB2101010: &packed4BPP,
	FormatXBGR2101010: &packed4BPP,
	FormatARGB2101010: &packed4BPP,
	FormatABGR2101010: &packed4BPP,

	FormatABGR16161616F: &packed8BPP,

	FormatNV12: &biplanarYUV420,
	FormatP010: &biplanarYUV420BPP2,
	FormatP016: &biplanarYUV420BPP2,

	FormatYVU420:        &triplanarYUV420,
	FormatYVU420Android: &triplanarYUV420,
}

// PlanarFormats is the FormatLayouts implementation for every format in this package
type PlanarFormats struct{}

var _ FormatLayouts = PlanarFormats{}

func (PlanarFormats) NumPlanes(format Format) int {
	layout, ok := planarLayouts[format]
	if !ok {
		return 0
	}
	return layout.numPlanes
}

func (PlanarFormats) Stride(format Format, width int, plane int) int {
	layout, ok := planarLayouts[format]
	if !ok || plane >= layout.numPlanes {
		return 0
	}

	planeWidth := memutils.DivRoundUp(width, layout.horizontalSubsampling[plane])
	stride := planeWidth * layout.bytesPerPixel[plane]

	if format == FormatYVU420Android && plane != 0 {
		stride = memutils.AlignUp(stride, 16)
	}

	return stride
}

func (PlanarFormats) PlaneHeight(format Format, height int, plane int) int {
	layout, ok := planarLayouts[format]
	if !ok || plane >= layout.numPlanes {
		return 0
	}

	return memutils.DivRoundUp(height, layout.verticalSubsampling[plane])
}

func (PlanarFormats) SubsampleStride(format Format, stride int, plane int) int {
	if plane == 0 {
		return stride
	}

	switch format {
	case FormatYVU420:
		return memutils.DivRoundUp(stride, 2)
	case FormatYVU420Android:
		return memutils.AlignUp(memutils.DivRoundUp(stride, 2), 16)
	}

	return stride
}
