package drm

import "unsafe"

// Request blocks below mirror include/uapi/drm/i915_drm.h and drm.h for
// 64-bit hosts. They never leave this package: callers go through Driver,
// and every block is produced by the new* builder next to it.

// i915 ioctl numbers, relative to commandBase.
const (
	nrI915GetParam     = 0x06
	nrI915GemCreate    = 0x1b
	nrI915GemMmap      = 0x1e
	nrI915GemSetDomain = 0x1f
	nrI915GemSetTiling = 0x21
	nrI915GemGetTiling = 0x22
	nrI915GemMmapGTT   = 0x24
	nrI915GemCreateExt = 0x3c
)

// Core DRM ioctl numbers.
const (
	nrGemClose        = 0x09
	nrPrimeFDToHandle = 0x2e
)

// Param is an I915_PARAM_* identifier accepted by DRM_IOCTL_I915_GETPARAM.
type Param int32

const (
	ParamChipsetID Param = 4
	ParamHasLLC    Param = 17
	ParamPXPStatus Param = 58
)

var paramMapping = map[Param]string{
	ParamChipsetID: "I915_PARAM_CHIPSET_ID",
	ParamHasLLC:    "I915_PARAM_HAS_LLC",
	ParamPXPStatus: "I915_PARAM_PXP_STATUS",
}

func (p Param) String() string {
	return paramMapping[p]
}

// Extension and object parameter identifiers used by the protected create path.
const (
	gemCreateExtSetParamName  = 1
	objectParam               = uint64(1) << 32
	paramProtectedContent     = 0x1
	protectedContentParamData = 1
)

// drm_i915_getparam_t. Value is a real pointer so the kernel's write
// target stays reachable, and in place, while the request is in flight.
type getParam struct {
	Param int32
	Value *int32
}

func newGetParam(param Param, value *int32) getParam {
	return getParam{
		Param: int32(param),
		Value: value,
	}
}

// drm_i915_gem_create
type gemCreate struct {
	Size   uint64
	Handle uint32
	Pad    uint32
}

func newGemCreate(size uint64) gemCreate {
	return gemCreate{Size: size}
}

// i915_user_extension
type userExtension struct {
	NextExtension uint64
	Name          uint32
	Flags         uint32
	Rsvd          [4]uint32
}

// drm_i915_gem_object_param
type gemObjectParam struct {
	Handle uint32
	Size   uint32
	Param  uint64
	Data   uint64
}

// drm_i915_gem_create_ext_setparam
type gemCreateExtSetParam struct {
	Base  userExtension
	Param gemObjectParam
}

func newProtectedContentSetParam() gemCreateExtSetParam {
	return gemCreateExtSetParam{
		Base: userExtension{Name: gemCreateExtSetParamName},
		Param: gemObjectParam{
			Param: objectParam | paramProtectedContent,
			Data:  protectedContentParamData,
		},
	}
}

// drm_i915_gem_create_ext. The __u64 extensions field holds a pointer,
// which is 8 bytes on the hosts this file describes.
type gemCreateExt struct {
	Size       uint64
	Handle     uint32
	Flags      uint32
	Extensions *gemCreateExtSetParam
}

func newGemCreateExt(size uint64, extension *gemCreateExtSetParam) gemCreateExt {
	return gemCreateExt{
		Size:       size,
		Extensions: extension,
	}
}

// drm_i915_gem_set_tiling
type gemSetTiling struct {
	Handle      uint32
	TilingMode  uint32
	Stride      uint32
	SwizzleMode uint32
}

func newGemSetTiling(handle Handle, tiling Tiling, stride uint32) gemSetTiling {
	return gemSetTiling{
		Handle:     uint32(handle),
		TilingMode: uint32(tiling),
		Stride:     stride,
	}
}

// drm_i915_gem_get_tiling
type gemGetTiling struct {
	Handle          uint32
	TilingMode      uint32
	SwizzleMode     uint32
	PhysSwizzleMode uint32
}

func newGemGetTiling(handle Handle) gemGetTiling {
	return gemGetTiling{Handle: uint32(handle)}
}

// drm_i915_gem_mmap
type gemMmap struct {
	Handle  uint32
	Pad     uint32
	Offset  uint64
	Size    uint64
	AddrPtr uint64
	Flags   uint64
}

func newGemMmap(handle Handle, offset, size uint64, flags MmapFlags) gemMmap {
	return gemMmap{
		Handle: uint32(handle),
		Offset: offset,
		Size:   size,
		Flags:  uint64(flags),
	}
}

// drm_i915_gem_mmap_gtt
type gemMmapGTT struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

func newGemMmapGTT(handle Handle) gemMmapGTT {
	return gemMmapGTT{Handle: uint32(handle)}
}

// drm_i915_gem_set_domain
type gemSetDomain struct {
	Handle      uint32
	ReadDomains uint32
	WriteDomain uint32
}

func newGemSetDomain(handle Handle, readDomains, writeDomain Domain) gemSetDomain {
	return gemSetDomain{
		Handle:      uint32(handle),
		ReadDomains: uint32(readDomains),
		WriteDomain: uint32(writeDomain),
	}
}

// drm_gem_close
type gemClose struct {
	Handle uint32
	Pad    uint32
}

func newGemClose(handle Handle) gemClose {
	return gemClose{Handle: uint32(handle)}
}

// drm_prime_handle
type primeHandle struct {
	Handle uint32
	Flags  uint32
	FD     int32
}

func newPrimeFDToHandle(fd int) primeHandle {
	return primeHandle{FD: int32(fd)}
}

var (
	ioctlI915GetParam     = iowr(commandBase+nrI915GetParam, uint32(unsafe.Sizeof(getParam{})))
	ioctlI915GemCreate    = iowr(commandBase+nrI915GemCreate, uint32(unsafe.Sizeof(gemCreate{})))
	ioctlI915GemCreateExt = iowr(commandBase+nrI915GemCreateExt, uint32(unsafe.Sizeof(gemCreateExt{})))
	ioctlI915GemSetTiling = iowr(commandBase+nrI915GemSetTiling, uint32(unsafe.Sizeof(gemSetTiling{})))
	ioctlI915GemGetTiling = iowr(commandBase+nrI915GemGetTiling, uint32(unsafe.Sizeof(gemGetTiling{})))
	ioctlI915GemMmap      = iowr(commandBase+nrI915GemMmap, uint32(unsafe.Sizeof(gemMmap{})))
	ioctlI915GemMmapGTT   = iowr(commandBase+nrI915GemMmapGTT, uint32(unsafe.Sizeof(gemMmapGTT{})))
	ioctlI915GemSetDomain = iow(commandBase+nrI915GemSetDomain, uint32(unsafe.Sizeof(gemSetDomain{})))
	ioctlGemClose         = iow(nrGemClose, uint32(unsafe.Sizeof(gemClose{})))
	ioctlPrimeFDToHandle  = iowr(nrPrimeFDToHandle, uint32(unsafe.Sizeof(primeHandle{})))
)
