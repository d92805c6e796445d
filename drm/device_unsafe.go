package drm

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl issues a blocking request, restarting it when interrupted the same
// way libdrm's drmIoctl does.
func (d *Device) ioctl(cmd uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), cmd, uintptr(arg))
		if errno == unix.EINTR || errno == unix.EAGAIN {
			continue
		}
		if errno != 0 {
			return errno
		}
		return nil
	}
}

func (d *Device) ioctlGetParam(req *getParam) error {
	return d.ioctl(ioctlI915GetParam, unsafe.Pointer(req))
}

func (d *Device) ioctlGemCreate(req *gemCreate) error {
	return d.ioctl(ioctlI915GemCreate, unsafe.Pointer(req))
}

func (d *Device) ioctlGemCreateExt(req *gemCreateExt) error {
	return d.ioctl(ioctlI915GemCreateExt, unsafe.Pointer(req))
}

func (d *Device) ioctlGemSetTiling(req *gemSetTiling) error {
	return d.ioctl(ioctlI915GemSetTiling, unsafe.Pointer(req))
}

func (d *Device) ioctlGemGetTiling(req *gemGetTiling) error {
	return d.ioctl(ioctlI915GemGetTiling, unsafe.Pointer(req))
}

func (d *Device) ioctlGemMmap(req *gemMmap) error {
	return d.ioctl(ioctlI915GemMmap, unsafe.Pointer(req))
}

func (d *Device) ioctlGemMmapGTT(req *gemMmapGTT) error {
	return d.ioctl(ioctlI915GemMmapGTT, unsafe.Pointer(req))
}

func (d *Device) ioctlGemSetDomain(req *gemSetDomain) error {
	return d.ioctl(ioctlI915GemSetDomain, unsafe.Pointer(req))
}

func (d *Device) ioctlGemClose(req *gemClose) error {
	return d.ioctl(ioctlGemClose, unsafe.Pointer(req))
}

func (d *Device) ioctlPrimeFDToHandle(req *primeHandle) error {
	return d.ioctl(ioctlPrimeFDToHandle, unsafe.Pointer(req))
}

// mappedBytes views a kernel-provided user address as a byte slice. The
// range is owned by the mapping, not by the Go heap.
func mappedBytes(addr uint64, size uint64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), int(size))
}

func mmapShared(fd int, offset int64, length int, prot int) ([]byte, error) {
	ptr, err := unix.MmapPtr(fd, offset, nil, uintptr(length), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(ptr), length), nil
}

// munmap is used for both Mmap and GemMmap ranges, so it cannot go through
// unix.Munmap, which only knows about ranges it mapped itself.
func munmap(data []byte) error {
	return unix.MunmapPtr(unsafe.Pointer(unsafe.SliceData(data)), uintptr(len(data)))
}
