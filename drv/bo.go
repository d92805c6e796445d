package drv

import (
	"unsafe"

	"github.com/vkngwrapper/i915gbm/drm"
)

// BO is a buffer object: one logical, possibly multi-plane buffer backed by a
// single kernel object. Every plane handle of a buffer created by a backend is
// the same handle.
type BO struct {
	Meta    Metadata
	Handles [MaxPlanes]drm.Handle
	// Imported is true when the buffer came from another process or device via
	// a PRIME file descriptor
	Imported bool
}

// Handle returns the handle of plane 0
func (b *BO) Handle() drm.Handle {
	return b.Handles[0]
}

// SetHandle records handle as the handle of every plane of the buffer
func (b *BO) SetHandle(handle drm.Handle) {
	for plane := 0; plane < b.Meta.NumPlanes; plane++ {
		b.Handles[plane] = handle
	}
}

// ImportData describes a buffer exported from elsewhere as one PRIME file
// descriptor per plane
type ImportData struct {
	FDs      [MaxPlanes]int
	Strides  [MaxPlanes]int
	Offsets  [MaxPlanes]int
	Modifier Modifier

	Width    int
	Height   int
	Format   Format
	UseFlags UseFlags
}

// MapStrategy records how a mapping reached the buffer's memory
type MapStrategy int32

const (
	// MapStrategyDirect maps the object's backing store via GEM_MMAP
	MapStrategyDirect MapStrategy = iota
	// MapStrategyAperture maps the object through the GTT aperture
	MapStrategyAperture
)

var mapStrategyMapping = map[MapStrategy]string{
	MapStrategyDirect:   "MapStrategyDirect",
	MapStrategyAperture: "MapStrategyAperture",
}

func (s MapStrategy) String() string {
	return mapStrategyMapping[s]
}

// Mapping is a CPU view of an entire buffer. A Mapping is owned by the
// buffer's lifecycle and must not be used from more than one goroutine
// without external synchronization.
type Mapping struct {
	data     []byte
	flags    MapFlags
	strategy MapStrategy
	handle   drm.Handle
	unmapped bool
}

// NewMapping is used by backends to record a mapping they have established
func NewMapping(handle drm.Handle, data []byte, flags MapFlags, strategy MapStrategy) *Mapping {
	return &Mapping{
		data:     data,
		flags:    flags,
		strategy: strategy,
		handle:   handle,
	}
}

// Data returns the mapped bytes. The slice is nil once the mapping has been unmapped.
func (m *Mapping) Data() []byte {
	return m.data
}

func (m *Mapping) Flags() MapFlags {
	return m.flags
}

func (m *Mapping) Strategy() MapStrategy {
	return m.strategy
}

// Handle returns the kernel object the mapping was made from
func (m *Mapping) Handle() drm.Handle {
	return m.handle
}

// Writable is true when the mapping was opened with MapWrite
func (m *Mapping) Writable() bool {
	return m.flags&MapWrite != 0
}

// Mapped is false once Unmap has succeeded
func (m *Mapping) Mapped() bool {
	return !m.unmapped
}

// Address returns the first mapped address, or 0 if the mapping is empty
func (m *Mapping) Address() uintptr {
	if len(m.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(m.data)))
}
