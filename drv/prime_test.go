package drv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drm/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

// dmaBuf stands in for an exported buffer: a file whose size is the size of the buffer
func dmaBuf(t *testing.T, size int64) int {
	f, err := os.CreateTemp(t.TempDir(), "dmabuf")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.Truncate(size))
	return int(f.Fd())
}

func TestPrimeImport_SharedFD(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	fd := dmaBuf(t, 8192)
	driver.EXPECT().PrimeFDToHandle(fd).Return(drm.Handle(7), nil).Times(2)

	bo, err := PrimeImporter{}.Import(driver, &ImportData{
		FDs:      [MaxPlanes]int{fd, fd},
		Strides:  [MaxPlanes]int{64, 64},
		Offsets:  [MaxPlanes]int{0, 4096},
		Width:    64,
		Height:   64,
		Format:   FormatNV12,
		UseFlags: UseTexture,
	})
	require.NoError(t, err)
	require.True(t, bo.Imported)
	require.Equal(t, 2, bo.Meta.NumPlanes)
	require.Equal(t, drm.Handle(7), bo.Handle())
	require.Equal(t, [MaxPlanes]int{4096, 4096}, bo.Meta.Sizes)
	require.Equal(t, 8192, bo.Meta.TotalSize)
	require.Equal(t, UseTexture, bo.Meta.UseFlags)

	// Both planes share one handle, so it is closed once
	driver.EXPECT().GemClose(drm.Handle(7)).Return(nil)
	require.NoError(t, Destroy(driver, bo))
}

func TestPrimeImport_SeparateFDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	luma := dmaBuf(t, 4096)
	chroma := dmaBuf(t, 2048)
	driver.EXPECT().PrimeFDToHandle(luma).Return(drm.Handle(1), nil)
	driver.EXPECT().PrimeFDToHandle(chroma).Return(drm.Handle(2), nil)

	bo, err := PrimeImporter{}.Import(driver, &ImportData{
		FDs:     [MaxPlanes]int{luma, chroma},
		Strides: [MaxPlanes]int{64, 64},
		Format:  FormatNV12,
	})
	require.NoError(t, err)
	require.Equal(t, [MaxPlanes]int{4096, 2048}, bo.Meta.Sizes)
	require.Equal(t, 6144, bo.Meta.TotalSize)

	driver.EXPECT().GemClose(drm.Handle(1)).Return(nil)
	driver.EXPECT().GemClose(drm.Handle(2)).Return(nil)
	require.NoError(t, Destroy(driver, bo))
}

func TestPrimeImport_CompressedHasTwoPlanes(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	fd := dmaBuf(t, 69632)
	driver.EXPECT().PrimeFDToHandle(fd).Return(drm.Handle(3), nil).Times(2)

	bo, err := PrimeImporter{}.Import(driver, &ImportData{
		FDs:      [MaxPlanes]int{fd, fd},
		Strides:  [MaxPlanes]int{256, 128},
		Offsets:  [MaxPlanes]int{0, 65536},
		Format:   FormatXRGB8888,
		Modifier: ModifierIntelYTiledCCS,
	})
	require.NoError(t, err)
	require.Equal(t, 2, bo.Meta.NumPlanes)
	require.Equal(t, [MaxPlanes]int{65536, 4096}, bo.Meta.Sizes)
	require.NoError(t, bo.Meta.Validate())
}

func TestPrimeImport_FailureClosesImportedPlanes(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	luma := dmaBuf(t, 4096)
	chroma := dmaBuf(t, 2048)
	driver.EXPECT().PrimeFDToHandle(luma).Return(drm.Handle(1), nil)
	driver.EXPECT().PrimeFDToHandle(chroma).Return(drm.Handle(0), unix.EBADF)
	driver.EXPECT().GemClose(drm.Handle(1)).Return(nil)

	_, err := PrimeImporter{}.Import(driver, &ImportData{
		FDs:    [MaxPlanes]int{luma, chroma},
		Format: FormatNV12,
	})
	require.ErrorIs(t, err, unix.EBADF)
}

func TestPrimeImport_PlanePastEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	fd := dmaBuf(t, 4096)
	driver.EXPECT().PrimeFDToHandle(fd).Return(drm.Handle(5), nil)
	driver.EXPECT().GemClose(drm.Handle(5)).Return(nil)

	_, err := PrimeImporter{}.Import(driver, &ImportData{
		FDs:     [MaxPlanes]int{fd},
		Offsets: [MaxPlanes]int{8192},
		Format:  FormatXRGB8888,
	})
	require.Error(t, err)
}

func TestPrimeImport_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	_, err := PrimeImporter{}.Import(driver, &ImportData{Format: Format(0x12345678)})
	require.Error(t, err)
}

func TestDestroy_CombinesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	bo := &BO{Meta: Metadata{NumPlanes: 3}, Handles: [MaxPlanes]drm.Handle{1, 2, 1}}
	driver.EXPECT().GemClose(drm.Handle(1)).Return(unix.ENOENT)
	driver.EXPECT().GemClose(drm.Handle(2)).Return(nil)

	err := Destroy(driver, bo)
	require.ErrorIs(t, err, unix.ENOENT)
}

func TestUnmap(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	data := make([]byte, 4096)
	mapping := NewMapping(drm.Handle(1), data, MapReadWrite, MapStrategyDirect)
	require.True(t, mapping.Mapped())
	require.True(t, mapping.Writable())
	require.NotZero(t, mapping.Address())

	driver.EXPECT().Munmap(data).Return(nil)
	require.NoError(t, Unmap(driver, mapping))
	require.False(t, mapping.Mapped())
	require.Nil(t, mapping.Data())
	require.Zero(t, mapping.Address())

	require.Error(t, Unmap(driver, mapping))
	require.Error(t, Unmap(driver, nil))
}

func TestBO_SetHandle(t *testing.T) {
	bo := &BO{Meta: Metadata{NumPlanes: 2}}
	bo.SetHandle(drm.Handle(9))
	require.Equal(t, [MaxPlanes]drm.Handle{9, 9, 0, 0}, bo.Handles)
}
