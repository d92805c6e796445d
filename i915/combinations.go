package i915

import (
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
)

var (
	scanoutRenderFormats = []drv.Format{
		drv.FormatABGR2101010, drv.FormatABGR8888,
		drv.FormatARGB2101010, drv.FormatARGB8888,
		drv.FormatRGB565, drv.FormatXBGR2101010,
		drv.FormatXBGR8888, drv.FormatXRGB2101010,
		drv.FormatXRGB8888,
	}

	renderFormats = []drv.Format{drv.FormatABGR16161616F}

	textureOnlyFormats = []drv.Format{
		drv.FormatR8, drv.FormatNV12, drv.FormatP010,
		drv.FormatYVU420, drv.FormatYVU420Android,
	}
)

var (
	xTiledMetadata = drv.CombinationMetadata{
		Tiling:   drm.TilingX,
		Priority: 2,
		Modifier: drv.ModifierIntelXTiled,
	}
	yTiledMetadata = drv.CombinationMetadata{
		Tiling:   drm.TilingY,
		Priority: 3,
		Modifier: drv.ModifierIntelYTiled,
	}
)

// linearOnlyUsage can only be satisfied by the linear tier
const linearOnlyUsage = drv.UseRenderscript | drv.UseLinear | drv.UseSWMask

func (b *Backend) addCombinations() {
	table := b.combinations

	scanoutAndRender := drv.UseRenderMask | drv.UseScanout
	render := drv.UseRenderMask
	textureOnly := drv.UseTextureMask

	// Protected buffers must also be scanned out
	var hwProtected drv.UseFlags
	if b.device.HasHWProtection() {
		hwProtected = drv.UseProtected | drv.UseScanout
	}

	table.AddCombinations(scanoutRenderFormats, drv.LinearMetadata, scanoutAndRender)
	table.AddCombinations(renderFormats, drv.LinearMetadata, render)
	table.AddCombinations(textureOnlyFormats, drv.LinearMetadata, textureOnly)

	table.ModifyLinearCombinations()

	// Camera, display, decode and encode all exchange NV12
	table.ModifyCombination(drv.FormatNV12, drv.LinearMetadata,
		drv.UseCameraRead|drv.UseCameraWrite|drv.UseScanout|
			drv.UseHWVideoDecoder|drv.UseHWVideoEncoder|hwProtected)

	// Required by conformance tests
	table.AddCombination(drv.FormatBGR888, drv.LinearMetadata, drv.UseSWMask)

	// R8 carries JPEG blobs from the camera and bitstreams to and from the video codecs
	table.ModifyCombination(drv.FormatR8, drv.LinearMetadata,
		drv.UseCameraRead|drv.UseCameraWrite|drv.UseHWVideoDecoder|drv.UseHWVideoEncoder)

	renderNotLinear := render &^ linearOnlyUsage
	scanoutAndRenderNotLinear := renderNotLinear | drv.UseScanout

	table.AddCombinations(renderFormats, xTiledMetadata, renderNotLinear)
	table.AddCombinations(scanoutRenderFormats, xTiledMetadata, scanoutAndRenderNotLinear)

	nv12Usage := drv.UseTexture | drv.UseHWVideoDecoder
	p010Usage := nv12Usage
	if b.createFlags&BackendCreateScanoutYTiled != 0 {
		nv12Usage |= drv.UseScanout | hwProtected
		p010Usage |= hwProtected
		if b.device.Generation() >= 11 {
			p010Usage |= drv.UseScanout
		}
	}
	table.AddCombination(drv.FormatNV12, yTiledMetadata, nv12Usage)
	table.AddCombination(drv.FormatP010, yTiledMetadata, p010Usage)

	table.AddCombinations(renderFormats, yTiledMetadata, renderNotLinear)

	// Older display engines cannot scan out Y-tiled buffers, so this tier
	// never offers scanout for the RGB formats
	table.AddCombinations(scanoutRenderFormats, yTiledMetadata, renderNotLinear)
}
