package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/i915"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file passed with --config. Pointer fields
// distinguish "not set" from false.
type Config struct {
	Device   string `yaml:"device"`
	LogLevel string `yaml:"log_level"`
	PageSize int    `yaml:"page_size"`

	DisableCompression *bool `yaml:"disable_compression"`
	ScanoutYTiled      *bool `yaml:"scanout_y_tiled"`
	LinearAlign256     *bool `yaml:"linear_align_256"`
}

// LoadConfig reads the config file at path. An empty path returns a zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// setFlag turns flag on or off in options. A nil value keeps the build default.
func setFlag(options *i915.CreateOptions, flag i915.CreateFlags, value *bool) {
	if value == nil {
		return
	}
	if *value {
		options.Flags |= flag
		options.ClearFlags &^= flag
	} else {
		options.ClearFlags |= flag
		options.Flags &^= flag
	}
}

// CreateOptions returns the backend options the config describes
func (c Config) CreateOptions() i915.CreateOptions {
	options := i915.CreateOptions{PageSize: c.PageSize}

	setFlag(&options, i915.BackendCreateDisableCompression, c.DisableCompression)
	setFlag(&options, i915.BackendCreateScanoutYTiled, c.ScanoutYTiled)
	setFlag(&options, i915.BackendCreateLinearAlign256, c.LinearAlign256)

	return options
}

// applyConfig applies config file defaults to the global flags that were
// not set on the command line
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.Device != "" && !c.IsSet("device") {
		devicePath = cfg.Device
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Newf("unknown log level %q", name)
}

// parseUseFlags combines names such as "scanout" or "sw-read-often"
func parseUseFlags(names []string) (drv.UseFlags, error) {
	var useFlags drv.UseFlags
	for _, name := range names {
		flag, ok := drv.ParseUseFlag(strings.TrimSpace(name))
		if !ok {
			return drv.UseNone, errors.Newf("unknown usage %q", name)
		}
		useFlags |= flag
	}
	return useFlags, nil
}

func parseModifiers(names []string) ([]drv.Modifier, error) {
	var modifiers []drv.Modifier
	for _, name := range names {
		modifier, err := drv.ParseModifier(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, modifier)
	}
	return modifiers, nil
}
