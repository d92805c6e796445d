package drm

// ioctl request encoding, from include/uapi/asm-generic/ioctl.h.
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2
)

// ioctlBase is DRM_IOCTL_BASE, the ioctl type shared by every DRM request.
const ioctlBase = uint32('d')

// commandBase is DRM_COMMAND_BASE, the first request number available to
// driver-specific ioctls.
const commandBase = 0x40

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr(dir<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNRShift)
}

func iow(nr, size uint32) uintptr {
	return ioc(iocWrite, ioctlBase, nr, size)
}

func iowr(nr, size uint32) uintptr {
	return ioc(iocRead|iocWrite, ioctlBase, nr, size)
}
