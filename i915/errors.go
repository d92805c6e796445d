package i915

import "github.com/cockroachdb/errors"

// Each error returned by the backend carries the sentinel for the stage that
// failed, so callers can test with errors.Is from either the standard library
// or cockroachdb/errors. The kernel errno, when there is one, remains
// reachable through errors.Is as well.
var (
	// ErrInit is returned from Open when the device cannot be identified
	ErrInit = errors.New("i915 backend initialization failed")
	// ErrLayout is returned when no layout satisfies the requested format, usage and modifiers
	ErrLayout = errors.New("no compatible buffer layout")
	// ErrAlignment is returned when a layout violates a hardware stride or offset limit
	ErrAlignment = errors.New("buffer layout violates hardware alignment")
	// ErrAllocation is returned when the kernel rejects a GEM object creation
	ErrAllocation = errors.New("buffer allocation failed")
	// ErrTilingProgram is returned when the kernel rejects the tiling of a newly
	// created object. The object has been closed.
	ErrTilingProgram = errors.New("programming buffer tiling failed")
	// ErrImportTilingQuery is returned when the tiling of an imported object
	// cannot be queried. The imported handles have been closed.
	ErrImportTilingQuery = errors.New("querying imported buffer tiling failed")
	// ErrMap is returned when a buffer cannot be mapped for CPU access
	ErrMap = errors.New("buffer mapping failed")
	// ErrCoherency is returned when a cache domain transition or flush cannot be performed
	ErrCoherency = errors.New("buffer cache coherency operation failed")
)

// stageError matches its stage sentinel in errors.Is and unwraps to its cause
type stageError struct {
	stage error
	cause error
}

func (e *stageError) Error() string {
	return e.stage.Error() + ": " + e.cause.Error()
}

func (e *stageError) Unwrap() error {
	return e.cause
}

func (e *stageError) Is(target error) bool {
	return target == e.stage
}

func withStage(err error, stage error) error {
	return &stageError{stage: stage, cause: err}
}

func markf(err error, stage error, format string, args ...any) error {
	return withStage(errors.Wrapf(err, format, args...), stage)
}
