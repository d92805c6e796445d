package drv

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Modifier is a DRM format modifier: an opaque identifier naming one memory
// layout encoding
type Modifier uint64

const (
	vendorNone  = 0x00
	vendorIntel = 0x01
)

const (
	ModifierLinear  Modifier = vendorNone<<56 | 0
	ModifierInvalid Modifier = vendorNone<<56 | 0x00ffffffffffffff

	ModifierIntelXTiled    Modifier = vendorIntel<<56 | 1
	ModifierIntelYTiled    Modifier = vendorIntel<<56 | 2
	ModifierIntelYfTiled   Modifier = vendorIntel<<56 | 3
	ModifierIntelYTiledCCS Modifier = vendorIntel<<56 | 4
)

var modifierMapping = map[Modifier]string{
	ModifierLinear:         "LINEAR",
	ModifierInvalid:        "INVALID",
	ModifierIntelXTiled:    "I915_X_TILED",
	ModifierIntelYTiled:    "I915_Y_TILED",
	ModifierIntelYfTiled:   "I915_Yf_TILED",
	ModifierIntelYTiledCCS: "I915_Y_TILED_CCS",
}

func (m Modifier) String() string {
	if name, ok := modifierMapping[m]; ok {
		return name
	}
	return fmt.Sprintf("%#016x", uint64(m))
}

// ParseModifier accepts either a modifier name as returned by Modifier.String or
// a numeric value
func ParseModifier(str string) (Modifier, error) {
	for modifier, name := range modifierMapping {
		if name == str {
			return modifier, nil
		}
	}

	var value uint64
	if _, err := fmt.Sscan(str, &value); err != nil {
		return ModifierInvalid, errors.Wrapf(err, "%q is not a format modifier", str)
	}
	return Modifier(value), nil
}

// ContainsModifier reports whether modifier is present in modifiers
func ContainsModifier(modifiers []Modifier, modifier Modifier) bool {
	for _, candidate := range modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}

// PickModifier returns the first entry of order that also appears in modifiers
func PickModifier(modifiers []Modifier, order []Modifier) (Modifier, bool) {
	for _, preferred := range order {
		if ContainsModifier(modifiers, preferred) {
			return preferred, true
		}
	}
	return ModifierInvalid, false
}
