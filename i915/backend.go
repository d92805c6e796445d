package i915

import (
	"context"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/memutils"
	"golang.org/x/exp/slog"
)

// Backend implements drv.Backend for Intel GPUs driven by the i915 kernel
// driver. The device profile and capability table are read-only once Open
// returns, so buffer operations may run concurrently. A single buffer and its
// mappings must not be used from more than one goroutine at a time.
type Backend struct {
	logger *slog.Logger
	driver drm.Driver
	device *DeviceProfile

	createFlags  CreateFlags
	pageSize     int
	combinations drv.CombinationTable
	formats      drv.FormatLayouts
	importer     drv.Importer

	flushRange func(start, end uintptr)
	stats      memutils.Counters
}

var _ drv.Backend = &Backend{}

func (b *Backend) Name() string {
	return "i915"
}

// Close releases the backend. Buffers created from it must already have been
// destroyed. The driver is not closed.
func (b *Backend) Close() error {
	b.logger.Debug("Backend::Close")

	var stats memutils.Statistics
	b.stats.Snapshot(&stats)
	if stats.BufferCount > 0 || stats.MappingCount > 0 {
		b.logger.Warn("closing i915 backend with live buffers",
			slog.Int("buffers", stats.BufferCount),
			slog.Int("mappings", stats.MappingCount),
		)
	}

	return nil
}

// Device returns the profile of the device the backend was opened on
func (b *Backend) Device() *DeviceProfile {
	return b.device
}

// Combinations returns the capability table populated by Open
func (b *Backend) Combinations() drv.CombinationTable {
	return b.combinations
}

// PageSize returns the page size buffer sizes are rounded up to
func (b *Backend) PageSize() int {
	return b.pageSize
}

// Statistics fills stats with the buffers and mappings currently live
func (b *Backend) Statistics(stats *memutils.Statistics) {
	b.stats.Snapshot(stats)
}

// BuildStatsString returns a JSON document describing the live buffers and mappings
func (b *Backend) BuildStatsString() string {
	var stats memutils.Statistics
	b.stats.Snapshot(&stats)

	writer := jwriter.NewWriter()
	obj := writer.Object()
	obj.Name("BufferCount").Int(stats.BufferCount)
	obj.Name("BufferBytes").Int(stats.BufferBytes)
	obj.Name("ImportCount").Int(stats.ImportCount)
	obj.Name("MappingCount").Int(stats.MappingCount)
	obj.End()

	return string(writer.Bytes())
}

// PrintDetailedMap writes the device profile, create flags and capability table
func (b *Backend) PrintDetailedMap(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("Backend").String(b.Name())
	obj.Name("Flags").String(b.createFlags.String())
	obj.Name("PageSize").Int(b.pageSize)

	device := obj.Name("Device").Object()
	b.device.PrintParameters(&device)
	device.End()

	combinations := obj.Name("Combinations").Object()
	drv.PrintCombinations(b.combinations, &combinations)
	combinations.End()
}

// discardHandler drops every record, for backends opened without a logger
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
