package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/i915"
	"golang.org/x/exp/slog"
)

var (
	devicePath string
	configPath string
	logLevel   string
)

func main() {
	app := &cli.Command{
		Name:  "i915info",
		Usage: "Inspect and exercise the i915 buffer backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "device",
				Aliases:     []string{"d"},
				Usage:       "DRM render node to open",
				Value:       "/dev/dri/renderD128",
				Destination: &devicePath,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML file with backend options",
				Destination: &configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error",
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Commands: []*cli.Command{
			profileCmd(),
			combosCmd(),
			layoutCmd(),
			allocCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openBackend opens the configured device and a backend on it. The returned
// function closes both.
func openBackend(cmd *cli.Command) (*i915.Backend, func(), error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	applyConfig(cmd.Root(), cfg)

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	logger := slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(os.Stderr))

	device, err := drm.Open(devicePath)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	backend, err := i915.Open(logger, device, cfg.CreateOptions())
	if err != nil {
		_ = device.Close()
		return nil, nil, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	return backend, func() {
		_ = backend.Close()
		_ = device.Close()
	}, nil
}
