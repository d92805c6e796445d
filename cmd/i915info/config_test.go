package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/i915"
	"golang.org/x/exp/slog"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "i915info.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, Config{}, cfg)
	require.Equal(t, i915.CreateOptions{}, cfg.CreateOptions())
}

func TestLoadConfig_Fields(t *testing.T) {
	path := writeConfig(t, `
device: /dev/dri/renderD129
log_level: debug
page_size: 8192
disable_compression: true
scanout_y_tiled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/dev/dri/renderD129", cfg.Device)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 8192, cfg.PageSize)
	require.NotNil(t, cfg.DisableCompression)
	require.True(t, *cfg.DisableCompression)
	require.NotNil(t, cfg.ScanoutYTiled)
	require.False(t, *cfg.ScanoutYTiled)
	require.Nil(t, cfg.LinearAlign256)

	options := cfg.CreateOptions()
	require.Equal(t, 8192, options.PageSize)
	require.Equal(t, i915.BackendCreateDisableCompression, options.Flags)
	require.Equal(t, i915.BackendCreateScanoutYTiled, options.ClearFlags)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "page_size: [1, 2"))
	require.Error(t, err)
}

func TestSetFlag(t *testing.T) {
	on, off := true, false
	var options i915.CreateOptions

	setFlag(&options, i915.BackendCreateScanoutYTiled, nil)
	require.Equal(t, i915.CreateOptions{}, options)

	setFlag(&options, i915.BackendCreateScanoutYTiled, &on)
	require.Equal(t, i915.BackendCreateScanoutYTiled, options.Flags)
	require.Equal(t, i915.CreateFlags(0), options.ClearFlags)

	setFlag(&options, i915.BackendCreateScanoutYTiled, &off)
	require.Equal(t, i915.CreateFlags(0), options.Flags)
	require.Equal(t, i915.BackendCreateScanoutYTiled, options.ClearFlags)

	setFlag(&options, i915.BackendCreateLinearAlign256, &off)
	require.Equal(t, i915.BackendCreateScanoutYTiled|i915.BackendCreateLinearAlign256, options.ClearFlags)
}

func TestParseLogLevel(t *testing.T) {
	for name, level := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		parsed, err := parseLogLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, level, parsed, name)
	}

	_, err := parseLogLevel("loud")
	require.Error(t, err)
}

func TestParseModifiers(t *testing.T) {
	modifiers, err := parseModifiers(nil)
	require.NoError(t, err)
	require.Nil(t, modifiers)

	modifiers, err = parseModifiers([]string{drv.ModifierLinear.String(), " " + drv.ModifierIntelXTiled.String()})
	require.NoError(t, err)
	require.Equal(t, []drv.Modifier{drv.ModifierLinear, drv.ModifierIntelXTiled}, modifiers)

	_, err = parseModifiers([]string{"bogus"})
	require.Error(t, err)
}

func TestParseUseFlags_Unknown(t *testing.T) {
	_, err := parseUseFlags([]string{"bogus"})
	require.Error(t, err)

	useFlags, err := parseUseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, drv.UseNone, useFlags)
}
