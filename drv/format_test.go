package drv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	require.Equal(t, "NV12", FormatNV12.String())
	require.Equal(t, "R8  ", FormatR8.String())
	require.Equal(t, "9997", FormatYVU420Android.String())
	require.Equal(t, "NONE", FormatNone.String())
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("XR24")
	require.NoError(t, err)
	require.Equal(t, FormatXRGB8888, format)

	format, err = ParseFormat("R8")
	require.NoError(t, err)
	require.Equal(t, FormatR8, format)

	_, err = ParseFormat("")
	require.Error(t, err)

	_, err = ParseFormat("ABGR8888")
	require.Error(t, err)
}

func TestFormat_FourCCValues(t *testing.T) {
	require.Equal(t, Format(0x3231564e), FormatNV12)
	require.Equal(t, Format(0x34325258), FormatXRGB8888)
	require.Equal(t, Format(0x30313050), FormatP010)
}

func TestModifier_Values(t *testing.T) {
	require.Equal(t, Modifier(0), ModifierLinear)
	require.Equal(t, Modifier(0x0100000000000001), ModifierIntelXTiled)
	require.Equal(t, Modifier(0x0100000000000002), ModifierIntelYTiled)
	require.Equal(t, Modifier(0x0100000000000004), ModifierIntelYTiledCCS)
	require.Equal(t, Modifier(0x00ffffffffffffff), ModifierInvalid)
}

func TestParseModifier(t *testing.T) {
	modifier, err := ParseModifier("I915_Y_TILED_CCS")
	require.NoError(t, err)
	require.Equal(t, ModifierIntelYTiledCCS, modifier)

	modifier, err = ParseModifier("0x0100000000000001")
	require.NoError(t, err)
	require.Equal(t, ModifierIntelXTiled, modifier)

	_, err = ParseModifier("Y_TILED")
	require.Error(t, err)
}

func TestPickModifier(t *testing.T) {
	order := []Modifier{ModifierIntelYTiledCCS, ModifierIntelYTiled, ModifierIntelXTiled, ModifierLinear}

	modifier, ok := PickModifier([]Modifier{ModifierLinear, ModifierIntelXTiled}, order)
	require.True(t, ok)
	require.Equal(t, ModifierIntelXTiled, modifier)

	_, ok = PickModifier([]Modifier{ModifierIntelYfTiled}, order)
	require.False(t, ok)

	_, ok = PickModifier(nil, order)
	require.False(t, ok)
}

func TestParseUseFlag(t *testing.T) {
	flag, ok := ParseUseFlag("sw-read-often")
	require.True(t, ok)
	require.Equal(t, UseSWReadOften, flag)

	_, ok = ParseUseFlag("bogus")
	require.False(t, ok)
}

func TestUseFlags_Bits(t *testing.T) {
	require.Equal(t, UseFlags(1<<4), UseLinear)
	require.Equal(t, UseFlags(1<<8), UseProtected)
	require.Equal(t, UseFlags(1<<16), UseRenderscript)
}
