package i915

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/i915gbm/drm"
	"github.com/vkngwrapper/i915gbm/drv"
	"github.com/vkngwrapper/i915gbm/memutils"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

// CreateFlags indicate specific backend behaviors to activate or deactivate
type CreateFlags int32

var backendCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	backendCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return backendCreateFlagsMapping.FlagsToString(f)
}

const (
	// BackendCreateDisableCompression prevents the backend from choosing the
	// compressed Y-tiled layout. Requests that resolve to it are downgraded to
	// Y-tiled when the caller offered Y-tiled, and to linear otherwise.
	BackendCreateDisableCompression CreateFlags = 1 << iota
	// BackendCreateScanoutYTiled allows Y-tiled NV12 and P010 buffers to be
	// scanned out. It is set by default in builds with the i915_scanout_y_tiled tag.
	BackendCreateScanoutYTiled
	// BackendCreateLinearAlign256 aligns linear strides to 256 bytes so the
	// buffers can be imported by devices with that requirement. It is set by
	// default in builds with the linear_align_256 tag.
	BackendCreateLinearAlign256
)

func init() {
	BackendCreateDisableCompression.Register("BackendCreateDisableCompression")
	BackendCreateScanoutYTiled.Register("BackendCreateScanoutYTiled")
	BackendCreateLinearAlign256.Register("BackendCreateLinearAlign256")
}

// defaultCreateFlags are the flags the build was configured with. They apply
// unless CreateOptions.ClearFlags removes them.
const defaultCreateFlags = buildScanoutYTiled | buildLinearAlign256

// CreateOptions contains optional settings when opening a backend
type CreateOptions struct {
	// Flags indicates specific backend behaviors to activate or deactivate
	Flags CreateFlags
	// ClearFlags removes flags the build enables by default. Flags wins when a
	// flag is in both.
	ClearFlags CreateFlags
	// PageSize is the host page size that buffer sizes are rounded up to. The
	// page size of the running system is used when it is 0.
	PageSize int

	// Combinations is the capability table the backend registers its formats
	// into. A new drv.Combinations is used when it is nil. The table must be
	// empty.
	Combinations drv.CombinationTable
	// Formats is the per-format plane arithmetic layouts are built on. drv.PlanarFormats
	// is used when it is nil.
	Formats drv.FormatLayouts
	// Importer turns exported file descriptors into buffers before the backend
	// recovers their tiling. A drv.PrimeImporter over Formats is used when it is nil.
	Importer drv.Importer
}

// Open creates a Backend for the i915 device behind driver
//
// logger - Debug tracing and failure details are written here. It may be nil.
//
// driver - The DRM device buffers will be allocated on. The backend does not
// take ownership: Close does not close driver.
//
// options - Optional parameters: it is valid to leave all the fields blank
func Open(logger *slog.Logger, driver drm.Driver, options CreateOptions) (*Backend, error) {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	logger.Debug("Backend::Open")

	backend := &Backend{
		logger:       logger,
		driver:       driver,
		createFlags:  defaultCreateFlags&^options.ClearFlags | options.Flags,
		pageSize:     options.PageSize,
		combinations: options.Combinations,
		formats:      options.Formats,
		importer:     options.Importer,
		flushRange:   clflushRange,
	}

	if backend.pageSize == 0 {
		backend.pageSize = unix.Getpagesize()
	}
	if err := memutils.CheckPow2(backend.pageSize, "CreateOptions.PageSize"); err != nil {
		return nil, withStage(err, ErrInit)
	}

	if backend.combinations == nil {
		backend.combinations = drv.NewCombinations()
	} else if len(backend.combinations.Formats()) > 0 {
		return nil, errors.Wrap(ErrInit, "CreateOptions.Combinations was provided, but already contains entries")
	}

	if backend.formats == nil {
		backend.formats = drv.PlanarFormats{}
	}
	if backend.importer == nil {
		backend.importer = drv.PrimeImporter{Formats: backend.formats}
	}

	var err error
	backend.device, err = newDeviceProfile(driver)
	if err != nil {
		logger.Warn("failed to identify i915 device", slog.Any("error", err))
		return nil, err
	}

	backend.addCombinations()

	logger.Debug("opened i915 backend",
		slog.Int("deviceID", int(backend.device.DeviceID())),
		slog.Int("generation", backend.device.Generation()),
		slog.Bool("hasLLC", backend.device.HasLLC()),
		slog.Bool("hasHWProtection", backend.device.HasHWProtection()),
		slog.String("flags", backend.createFlags.String()),
	)

	return backend, nil
}
