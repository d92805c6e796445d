package drm

//go:generate mockgen -source driver.go -destination mocks/driver_mock.go -package mocks

import "github.com/vkngwrapper/core/v2/common"

// Handle is a GEM object handle, scoped to the DRM file it was created on.
type Handle uint32

// Tiling is the I915_TILING_* mode recorded by the kernel for a GEM object.
type Tiling uint32

const (
	TilingNone Tiling = iota
	TilingX
	TilingY
)

var tilingMapping = map[Tiling]string{
	TilingNone: "TilingNone",
	TilingX:    "TilingX",
	TilingY:    "TilingY",
}

func (t Tiling) String() string {
	return tilingMapping[t]
}

// Domain is a set of I915_GEM_DOMAIN_* cache domains
type Domain uint32

var domainMapping = common.NewFlagStringMapping[Domain]()

func (d Domain) Register(str string) {
	domainMapping.Register(d, str)
}
func (d Domain) String() string {
	return domainMapping.FlagsToString(d)
}

const (
	// DomainCPU is I915_GEM_DOMAIN_CPU: the object is read or written through the CPU cache
	DomainCPU Domain = 0x00000001
	// DomainGTT is I915_GEM_DOMAIN_GTT: the object is accessed through the aperture
	DomainGTT Domain = 0x00000040
)

func init() {
	DomainCPU.Register("DomainCPU")
	DomainGTT.Register("DomainGTT")
}

// MmapFlags are the I915_MMAP_* flags accepted by DRM_IOCTL_I915_GEM_MMAP
type MmapFlags uint32

const (
	// MmapWC requests a write-combined CPU mapping of the object's backing store
	MmapWC MmapFlags = 0x1
)

// Driver is the set of kernel requests the backend issues against a DRM file.
// Every call is a plain blocking request.
type Driver interface {
	// FD returns the underlying DRM file descriptor
	FD() int

	GetParam(param Param) (int32, error)

	// GemCreate creates a GEM object of at least size bytes
	GemCreate(size uint64) (Handle, error)
	// GemCreateProtected creates a GEM object carrying the protected-content
	// object parameter
	GemCreateProtected(size uint64) (Handle, error)
	GemSetTiling(handle Handle, tiling Tiling, stride uint32) error
	GemGetTiling(handle Handle) (Tiling, error)

	// GemMmap maps the object's backing store directly and returns the mapped range
	GemMmap(handle Handle, offset, size uint64, flags MmapFlags) ([]byte, error)
	// GemMmapGTT returns the fake offset to pass to Mmap to reach the object
	// through the aperture
	GemMmapGTT(handle Handle) (uint64, error)
	GemSetDomain(handle Handle, readDomains, writeDomain Domain) error
	GemClose(handle Handle) error

	PrimeFDToHandle(fd int) (Handle, error)

	// Mmap maps length bytes of the DRM file at offset as a shared mapping
	Mmap(offset int64, length int, prot int) ([]byte, error)
	Munmap(data []byte) error

	Close() error
}
