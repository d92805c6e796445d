package main

import (
	"context"
	"fmt"
	"os"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/urfave/cli/v3"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/i915"
)

func printJSON(write func(obj *jwriter.ObjectState)) {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	write(&obj)
	obj.End()
	fmt.Println(string(writer.Bytes()))
}

func profileCmd() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Print the detected device profile",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			backend, closeBackend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer closeBackend()

			printJSON(backend.Device().PrintParameters)
			return nil
		},
	}
}

func combosCmd() *cli.Command {
	return &cli.Command{
		Name:  "combos",
		Usage: "Print the backend and every registered format combination",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			backend, closeBackend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer closeBackend()

			writer := jwriter.NewWriter()
			backend.PrintDetailedMap(&writer)
			fmt.Println(string(writer.Bytes()))
			return nil
		},
	}
}

func bufferFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "format",
			Aliases:  []string{"f"},
			Usage:    "fourcc code such as XR24 or NV12",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "width",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "height",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "use",
			Usage: "usage names such as scanout or texture",
			Value: []string{"texture"},
		},
		&cli.StringSliceFlag{
			Name:  "modifier",
			Usage: "allowed modifiers; the capability table decides when none are given",
		},
	}
}

type bufferRequest struct {
	format    drv.Format
	width     int
	height    int
	useFlags  drv.UseFlags
	modifiers []drv.Modifier
}

func parseBufferRequest(cmd *cli.Command) (bufferRequest, error) {
	format, err := drv.ParseFormat(cmd.String("format"))
	if err != nil {
		return bufferRequest{}, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	useFlags, err := parseUseFlags(cmd.StringSlice("use"))
	if err != nil {
		return bufferRequest{}, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	modifiers, err := parseModifiers(cmd.StringSlice("modifier"))
	if err != nil {
		return bufferRequest{}, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}

	return bufferRequest{
		format:    format,
		width:     int(cmd.Int("width")),
		height:    int(cmd.Int("height")),
		useFlags:  useFlags,
		modifiers: modifiers,
	}, nil
}

func layoutCmd() *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "Resolve the layout of a buffer without allocating it",
		Flags: bufferFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			req, err := parseBufferRequest(cmd)
			if err != nil {
				return err
			}

			backend, closeBackend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer closeBackend()

			meta, err := backend.ComputeMetadata(req.width, req.height, req.format, req.useFlags, req.modifiers)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			printJSON(meta.PrintParameters)
			return nil
		},
	}
}

func allocCmd() *cli.Command {
	flags := append(bufferFlags(),
		&cli.BoolFlag{
			Name:  "write",
			Usage: "map the buffer writable and fill it before flushing",
		},
	)

	return &cli.Command{
		Name:  "alloc",
		Usage: "Allocate, map, synchronize and free one buffer",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			req, err := parseBufferRequest(cmd)
			if err != nil {
				return err
			}

			backend, closeBackend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer closeBackend()

			if err := exerciseBuffer(backend, req, cmd.Bool("write")); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			fmt.Println(backend.BuildStatsString())
			return nil
		},
	}
}

func exerciseBuffer(backend *i915.Backend, req bufferRequest, write bool) (err error) {
	bo, err := backend.CreateBuffer(req.width, req.height, req.format, req.useFlags, req.modifiers)
	if err != nil {
		return err
	}
	defer func() {
		if destroyErr := backend.Destroy(bo); destroyErr != nil && err == nil {
			err = destroyErr
		}
	}()

	printJSON(bo.Meta.PrintParameters)

	mapFlags := drv.MapRead
	if write {
		mapFlags |= drv.MapWrite
	}

	mapping, err := backend.Map(bo, mapFlags)
	if err != nil {
		return err
	}
	defer func() {
		if unmapErr := backend.Unmap(mapping); unmapErr != nil && err == nil {
			err = unmapErr
		}
	}()

	fmt.Fprintf(os.Stdout, "mapped %d bytes at %#x via %s\n", len(mapping.Data()), mapping.Address(), mapping.Strategy())

	if err := backend.Invalidate(bo, mapping); err != nil {
		return err
	}

	if write {
		data := mapping.Data()
		for i := range data {
			data[i] = byte(i)
		}
	}

	return backend.Flush(bo, mapping)
}
