package drv

// Backend is the surface a hardware backend exposes to the driver core.
// Unmap and Destroy are shared by every backend and live in this package.
type Backend interface {
	Name() string
	Close() error

	// ComputeMetadata resolves a layout for a width x height buffer of format.
	// modifiers may be nil, in which case the capability table picks the layout
	// from useFlags.
	ComputeMetadata(width, height int, format Format, useFlags UseFlags, modifiers []Modifier) (*Metadata, error)
	// CreateFromMetadata allocates a buffer with a layout previously returned
	// by ComputeMetadata
	CreateFromMetadata(meta *Metadata) (*BO, error)
	Import(data *ImportData) (*BO, error)
	Destroy(bo *BO) error

	Map(bo *BO, flags MapFlags) (*Mapping, error)
	Unmap(mapping *Mapping) error
	// Invalidate prepares the buffer for CPU access through mapping
	Invalidate(bo *BO, mapping *Mapping) error
	// Flush makes CPU writes through mapping visible to the GPU
	Flush(bo *BO, mapping *Mapping) error

	Combinations() CombinationTable
}
