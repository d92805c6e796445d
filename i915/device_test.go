package i915

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drm/mocks"
	"github.com/vkngwrapper/i915gbm/drv"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/unix"
)

func TestIdentifyDevice(t *testing.T) {
	tests := []struct {
		deviceID   uint16
		generation int
		isADLP     bool
	}{
		{deviceID: 0x2582, generation: 3},
		{deviceID: 0xA011, generation: 3},
		{deviceID: 0x3E92, generation: 4},
		{deviceID: 0x0000, generation: 4},
		{deviceID: 0x4E71, generation: 11},
		{deviceID: 0x4E57, generation: 11},
		{deviceID: 0x9A49, generation: 12},
		{deviceID: 0x9AF8, generation: 12},
		{deviceID: 0x46A6, generation: 12, isADLP: true},
		{deviceID: 0x4626, generation: 12, isADLP: true},
		{deviceID: 0x46C3, generation: 12, isADLP: true},
	}

	for _, test := range tests {
		generation, isADLP := identifyDevice(test.deviceID)
		require.Equal(t, test.generation, generation, "device %#04x", test.deviceID)
		require.Equal(t, test.isADLP, isADLP, "device %#04x", test.deviceID)
	}
}

func TestNewDeviceProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)
	expectDeviceQueries(driver, testDevice{deviceID: gen11DeviceID, hasLLC: true})

	profile, err := newDeviceProfile(driver)
	require.NoError(t, err)
	require.Equal(t, gen11DeviceID, profile.DeviceID())
	require.Equal(t, 11, profile.Generation())
	require.True(t, profile.HasLLC())
	require.False(t, profile.HasHWProtection())
	require.False(t, profile.IsADLP())
	require.Equal(t, []drv.Modifier{
		drv.ModifierIntelYTiledCCS,
		drv.ModifierIntelYTiled,
		drv.ModifierIntelXTiled,
		drv.ModifierLinear,
	}, profile.ModifierOrder())
}

func TestNewDeviceProfile_Protection(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	// Newest generation always supports protected content
	expectDeviceQueries(driver, testDevice{deviceID: gen12DeviceID})
	profile, err := newDeviceProfile(driver)
	require.NoError(t, err)
	require.True(t, profile.HasHWProtection())
	require.False(t, profile.HasLLC())

	expectDeviceQueries(driver, testDevice{deviceID: baselineDeviceID, pxpStatus: 1})
	profile, err = newDeviceProfile(driver)
	require.NoError(t, err)
	require.True(t, profile.HasHWProtection())

	expectDeviceQueries(driver, testDevice{deviceID: adlpDeviceID})
	profile, err = newDeviceProfile(driver)
	require.NoError(t, err)
	require.True(t, profile.IsADLP())
	require.True(t, profile.HasHWProtection())
}

func TestNewDeviceProfile_QueryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	driver := mocks.NewMockDriver(ctrl)

	driver.EXPECT().GetParam(drm.ParamChipsetID).Return(int32(gen12DeviceID), nil)
	driver.EXPECT().GetParam(drm.ParamHasLLC).Return(int32(0), unix.EINVAL)
	_, err := newDeviceProfile(driver)
	require.ErrorIs(t, err, ErrInit)
	require.ErrorIs(t, err, unix.EINVAL)

	driver.EXPECT().GetParam(drm.ParamChipsetID).Return(int32(gen12DeviceID), nil)
	driver.EXPECT().GetParam(drm.ParamHasLLC).Return(int32(1), nil)
	driver.EXPECT().GetParam(drm.ParamPXPStatus).Return(int32(0), unix.EIO)
	_, err = newDeviceProfile(driver)
	require.ErrorIs(t, err, ErrInit)
	require.ErrorIs(t, err, unix.EIO)
}

func TestNewDeviceProfile_PXPUnsupported(t *testing.T) {
	tests := []struct {
		errno           unix.Errno
		deviceID        uint16
		hasHWProtection bool
	}{
		{errno: unix.EINVAL, deviceID: gen11DeviceID},
		{errno: unix.ENODEV, deviceID: gen11DeviceID},
		{errno: unix.EINVAL, deviceID: gen12DeviceID, hasHWProtection: true},
		{errno: unix.ENODEV, deviceID: gen12DeviceID, hasHWProtection: true},
	}

	for _, test := range tests {
		ctrl := gomock.NewController(t)
		driver := mocks.NewMockDriver(ctrl)
		driver.EXPECT().GetParam(drm.ParamChipsetID).Return(int32(test.deviceID), nil)
		driver.EXPECT().GetParam(drm.ParamHasLLC).Return(int32(1), nil)
		driver.EXPECT().GetParam(drm.ParamPXPStatus).Return(int32(0), test.errno)

		profile, err := newDeviceProfile(driver)
		require.NoError(t, err, test.errno)
		require.Equal(t, test.hasHWProtection, profile.HasHWProtection(), test.errno)
		require.True(t, profile.HasLLC())
	}
}

func TestDeviceProfile_ModifierOrderIsACopy(t *testing.T) {
	profile := &DeviceProfile{}
	order := profile.ModifierOrder()
	order[0] = drv.ModifierLinear

	require.Equal(t, drv.ModifierIntelYTiledCCS, profile.ModifierOrder()[0])
}
