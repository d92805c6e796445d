package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"golang.org/x/sys/unix"
)

var (
	gen3IDs  = []uint16{0x2582, 0x2592, 0x2772, 0x27A2, 0x27AE, 0x29C2, 0x29B2, 0x29D2, 0xA001, 0xA011}
	gen11IDs = []uint16{0x4E71, 0x4E61, 0x4E51, 0x4E55, 0x4E57}
	gen12IDs = []uint16{0x9A40, 0x9A49, 0x9A59, 0x9A60, 0x9A68, 0x9A70, 0x9A78, 0x9AC0, 0x9AC9, 0x9AD9, 0x9AF8}
	adlpIDs  = []uint16{
		0x46A0, 0x46A1, 0x46A2, 0x46A3, 0x46A6, 0x46A8,
		0x46AA, 0x462A, 0x4626, 0x4628, 0x46B0, 0x46B1,
		0x46B2, 0x46B3, 0x46C0, 0x46C1, 0x46C2, 0x46C3,
	}
)

// modifierOrder is the order in which modifiers are preferred when the caller
// offers a choice
var modifierOrder = []drv.Modifier{
	drv.ModifierIntelYTiledCCS,
	drv.ModifierIntelYTiled,
	drv.ModifierIntelXTiled,
	drv.ModifierLinear,
}

const (
	// baselineGeneration is used for any device not found in the id tables
	baselineGeneration = 4
	// oldestGeneration has its own tiling alignment and stride limits
	oldestGeneration   = 3
)

// DeviceProfile is what the backend knows about the GPU it was opened on.
// It does not change after Open.
type DeviceProfile struct {
	deviceID        uint16
	generation      int
	hasLLC          bool
	hasHWProtection bool
	isADLP          bool
}

func containsID(ids []uint16, id uint16) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// identifyDevice derives the generation from a PCI device id. ADL-P is
// checked last and wins over every other table.
func identifyDevice(deviceID uint16) (generation int, isADLP bool) {
	generation = baselineGeneration

	if containsID(gen3IDs, deviceID) {
		generation = oldestGeneration
	}
	if containsID(gen11IDs, deviceID) {
		generation = 11
	}
	if containsID(gen12IDs, deviceID) {
		generation = 12
	}
	if containsID(adlpIDs, deviceID) {
		generation = 12
		isADLP = true
	}

	return generation, isADLP
}

func newDeviceProfile(driver drm.Driver) (*DeviceProfile, error) {
	chipsetID, err := driver.GetParam(drm.ParamChipsetID)
	if err != nil {
		return nil, markf(err, ErrInit, "failed to get %s", drm.ParamChipsetID)
	}

	profile := &DeviceProfile{deviceID: uint16(chipsetID)}
	profile.generation, profile.isADLP = identifyDevice(profile.deviceID)

	hasLLC, err := driver.GetParam(drm.ParamHasLLC)
	if err != nil {
		return nil, markf(err, ErrInit, "failed to get %s", drm.ParamHasLLC)
	}
	profile.hasLLC = hasLLC != 0

	pxpStatus, err := driver.GetParam(drm.ParamPXPStatus)
	if err != nil && !pxpUnsupported(err) {
		return nil, markf(err, ErrInit, "failed to get %s", drm.ParamPXPStatus)
	}
	profile.hasHWProtection = pxpStatus > 0 || profile.generation >= 12

	return profile, nil
}

// pxpUnsupported is true for the errnos a kernel returns when it does not know
// I915_PARAM_PXP_STATUS (EINVAL) or was built without PXP (ENODEV)
func pxpUnsupported(err error) bool {
	return errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENODEV)
}

func (p *DeviceProfile) DeviceID() uint16 {
	return p.deviceID
}

// Generation is the hardware generation the alignment and feature rules are keyed on
func (p *DeviceProfile) Generation() int {
	return p.generation
}

// HasLLC is true when the CPU and GPU share a coherent last-level cache, so
// CPU writes never need an explicit flush
func (p *DeviceProfile) HasLLC() bool {
	return p.hasLLC
}

// HasHWProtection is true when the device can allocate protected-content buffers
func (p *DeviceProfile) HasHWProtection() bool {
	return p.hasHWProtection
}

// IsADLP is true on Alder Lake-P, which needs power-of-two strides for tiled buffers
func (p *DeviceProfile) IsADLP() bool {
	return p.isADLP
}

// ModifierOrder returns the modifiers the device supports, most preferred first
func (p *DeviceProfile) ModifierOrder() []drv.Modifier {
	order := make([]drv.Modifier, len(modifierOrder))
	copy(order, modifierOrder)
	return order
}

func (p *DeviceProfile) PrintParameters(json *jwriter.ObjectState) {
	json.Name("DeviceID").Int(int(p.deviceID))
	json.Name("Generation").Int(p.generation)
	json.Name("HasLLC").Bool(p.hasLLC)
	json.Name("HasHWProtection").Bool(p.hasHWProtection)
	json.Name("IsADLP").Bool(p.isADLP)

	order := json.Name("ModifierOrder").Array()
	for _, modifier := range modifierOrder {
		order.String(modifier.String())
	}
	order.End()
}
