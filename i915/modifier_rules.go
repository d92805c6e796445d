package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
)

// modifierRequest is what the modifier rules see: the request and the
// modifier that has been chosen for it so far
type modifierRequest struct {
	device      *DeviceProfile
	createFlags CreateFlags

	width    int
	format   drv.Format
	offered  []drv.Modifier
	modifier drv.Modifier
}

// modifierRule replaces the chosen modifier when the hardware cannot use it
// for a request
type modifierRule interface {
	applies(req *modifierRequest) bool
	override(req *modifierRequest) drv.Modifier
}

// modifierRules are applied in order, each seeing the result of the ones before
var modifierRules = []modifierRule{
	hugeBufferRule{},
	compressionRule{},
}

// offeredOrLinear returns preferred if the caller offered it and linear otherwise
func offeredOrLinear(offered []drv.Modifier, preferred drv.Modifier) drv.Modifier {
	if drv.ContainsModifier(offered, preferred) {
		return preferred
	}
	return drv.ModifierLinear
}

// hugeBufferRule: before gen 11 only linear and X-tiled buffers can be wider
// than 4096 pixels. NV12 and P010 are exempt because video decode produces
// them Y-tiled regardless.
type hugeBufferRule struct{}

const hugeBufferWidth = 4096

func (hugeBufferRule) applies(req *modifierRequest) bool {
	if req.device.Generation() >= 11 || req.width <= hugeBufferWidth {
		return false
	}
	if req.format == drv.FormatNV12 || req.format == drv.FormatP010 {
		return false
	}
	return req.modifier != drv.ModifierIntelXTiled && req.modifier != drv.ModifierLinear
}

func (hugeBufferRule) override(req *modifierRequest) drv.Modifier {
	return offeredOrLinear(req.offered, drv.ModifierIntelXTiled)
}

// compressionRule removes the compressed layout when compression is disabled
type compressionRule struct{}

func (compressionRule) applies(req *modifierRequest) bool {
	return req.createFlags&BackendCreateDisableCompression != 0 && req.modifier == drv.ModifierIntelYTiledCCS
}

func (compressionRule) override(req *modifierRequest) drv.Modifier {
	return offeredOrLinear(req.offered, drv.ModifierIntelYTiled)
}

func applyModifierRules(rules []modifierRule, req *modifierRequest) drv.Modifier {
	for _, rule := range rules {
		if rule.applies(req) {
			req.modifier = rule.override(req)
		}
	}
	return req.modifier
}

// chooseModifier picks the modifier for a request. With offered modifiers the
// device's most preferred one wins; without, the capability table decides.
func (b *Backend) chooseModifier(width int, format drv.Format, useFlags drv.UseFlags, offered []drv.Modifier) (drv.Modifier, error) {
	req := &modifierRequest{
		device:      b.device,
		createFlags: b.createFlags,
		width:       width,
		format:      format,
		offered:     offered,
	}

	if len(offered) > 0 {
		modifier, ok := drv.PickModifier(offered, b.device.ModifierOrder())
		if !ok {
			return drv.ModifierInvalid, errors.Wrapf(ErrLayout, "none of the %d offered modifiers is supported", len(offered))
		}
		req.modifier = modifier
	} else {
		combination, ok := b.combinations.Best(format, useFlags)
		if !ok {
			return drv.ModifierInvalid, errors.Wrapf(ErrLayout, "no %s layout supports %s", format, useFlags)
		}
		req.modifier = combination.Metadata.Modifier
	}

	return applyModifierRules(modifierRules, req), nil
}

func tilingForModifier(modifier drv.Modifier) (drm.Tiling, error) {
	switch modifier {
	case drv.ModifierLinear:
		return drm.TilingNone, nil
	case drv.ModifierIntelXTiled:
		return drm.TilingX, nil
	case drv.ModifierIntelYTiled, drv.ModifierIntelYTiledCCS:
		return drm.TilingY, nil
	}

	return drm.TilingNone, withStage(errors.AssertionFailedf("modifier %s has no tiling mode", modifier), ErrLayout)
}
