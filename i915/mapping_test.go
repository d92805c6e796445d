package i915

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"golang.org/x/sys/unix"
)

func linearBO(useFlags drv.UseFlags) *drv.BO {
	return &drv.BO{
		Meta: drv.Metadata{
			Format:    drv.FormatXRGB8888,
			UseFlags:  useFlags,
			Tiling:    drm.TilingNone,
			NumPlanes: 1,
			Strides:   [drv.MaxPlanes]int{256},
			Sizes:     [drv.MaxPlanes]int{8192},
			TotalSize: 8192,
		},
		Handles: [drv.MaxPlanes]drm.Handle{1},
	}
}

func TestMap_CompressedNeverMaps(t *testing.T) {
	backend, _ := openTestBackend(t, gen12DeviceID)

	bo := &drv.BO{
		Meta: drv.Metadata{
			Modifier:  drv.ModifierIntelYTiledCCS,
			Tiling:    drm.TilingY,
			NumPlanes: 2,
			TotalSize: 69632,
		},
		Handles: [drv.MaxPlanes]drm.Handle{1, 1},
	}

	for _, flags := range []drv.MapFlags{drv.MapRead, drv.MapWrite, drv.MapReadWrite} {
		mapping, err := backend.Map(bo, flags)
		require.Nil(t, mapping)
		require.ErrorIs(t, err, ErrMap)
	}
}

func TestMap_DirectWriteCombined(t *testing.T) {
	backend, driver := openTestBackend(t, gen12DeviceID)

	data := make([]byte, 8192)
	driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapWC).Return(data, nil)

	mapping, err := backend.Map(linearBO(drv.UseScanout|drv.UseSWWriteOften), drv.MapWrite)
	require.NoError(t, err)
	require.Equal(t, drv.MapStrategyDirect, mapping.Strategy())
	require.Len(t, mapping.Data(), 8192)
	require.True(t, mapping.Writable())
	require.Equal(t, drm.Handle(1), mapping.Handle())
}

func TestMap_DirectCached(t *testing.T) {
	for _, useFlags := range []drv.UseFlags{
		drv.UseSWReadOften,
		drv.UseScanout | drv.UseCameraRead,
		drv.UseScanout | drv.UseCameraWrite,
		drv.UseScanout | drv.UseRenderscript,
	} {
		backend, driver := openTestBackend(t, gen12DeviceID)

		data := make([]byte, 8192)
		driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapFlags(0)).Return(data, nil)

		mapping, err := backend.Map(linearBO(useFlags), drv.MapRead)
		require.NoError(t, err, useFlags.String())
		require.Equal(t, drv.MapStrategyDirect, mapping.Strategy())
	}
}

func TestMap_DirectFailureFallsBackToAperture(t *testing.T) {
	backend, driver := openTestBackend(t, gen12DeviceID)

	data := make([]byte, 8192)
	driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapFlags(0)).Return(nil, unix.ENXIO)
	driver.EXPECT().GemMmapGTT(drm.Handle(1)).Return(uint64(0x100000), nil)
	driver.EXPECT().Mmap(int64(0x100000), 8192, unix.PROT_READ|unix.PROT_WRITE).Return(data, nil)

	mapping, err := backend.Map(linearBO(drv.UseSWWriteOften), drv.MapReadWrite)
	require.NoError(t, err)
	require.Equal(t, drv.MapStrategyAperture, mapping.Strategy())
}

func TestMap_TiledUsesAperture(t *testing.T) {
	backend, driver := openTestBackend(t, gen12DeviceID)

	bo := linearBO(drv.UseRendering)
	bo.Meta.Tiling = drm.TilingX

	data := make([]byte, 8192)
	driver.EXPECT().GemMmapGTT(drm.Handle(1)).Return(uint64(0x200000), nil)
	driver.EXPECT().Mmap(int64(0x200000), 8192, unix.PROT_READ).Return(data, nil)

	mapping, err := backend.Map(bo, drv.MapRead)
	require.NoError(t, err)
	require.Equal(t, drv.MapStrategyAperture, mapping.Strategy())
	require.False(t, mapping.Writable())
}

func TestMap_BothStrategiesFail(t *testing.T) {
	backend, driver := openTestBackend(t, gen12DeviceID)

	driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapFlags(0)).Return(nil, unix.ENXIO)
	driver.EXPECT().GemMmapGTT(drm.Handle(1)).Return(uint64(0), unix.ENODEV)

	mapping, err := backend.Map(linearBO(drv.UseSWReadOften), drv.MapRead)
	require.Nil(t, mapping)
	require.ErrorIs(t, err, ErrMap)
	require.ErrorIs(t, err, unix.ENODEV)

	driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapFlags(0)).Return(nil, unix.ENXIO)
	driver.EXPECT().GemMmapGTT(drm.Handle(1)).Return(uint64(0x1000), nil)
	driver.EXPECT().Mmap(int64(0x1000), 8192, unix.PROT_READ).Return(nil, unix.ENOMEM)

	mapping, err = backend.Map(linearBO(drv.UseSWReadOften), drv.MapRead)
	require.Nil(t, mapping)
	require.ErrorIs(t, err, ErrMap)
	require.Contains(t, backend.BuildStatsString(), `"MappingCount":0`)
}

func TestMap_NoAccess(t *testing.T) {
	backend, _ := openTestBackend(t, gen12DeviceID)

	_, err := backend.Map(linearBO(drv.UseSWReadOften), drv.MapNone)
	require.ErrorIs(t, err, ErrMap)
}

func TestUnmap(t *testing.T) {
	backend, driver := openTestBackend(t, gen12DeviceID)

	data := make([]byte, 8192)
	driver.EXPECT().GemMmap(drm.Handle(1), uint64(0), uint64(8192), drm.MmapFlags(0)).Return(data, nil)
	mapping, err := backend.Map(linearBO(drv.UseSWReadOften), drv.MapRead)
	require.NoError(t, err)

	driver.EXPECT().Munmap(data).Return(nil)
	require.NoError(t, backend.Unmap(mapping))
	require.False(t, mapping.Mapped())

	require.Error(t, backend.Unmap(mapping))
}
