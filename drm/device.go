package drm

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// Device is a Driver backed by an open DRM device node
type Device struct {
	fd     int
	ownsFD bool
}

var _ Driver = (*Device)(nil)

// Open opens the DRM node at path, usually a /dev/dri/renderD* node
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open drm node %s", path)
	}

	return &Device{fd: fd, ownsFD: true}, nil
}

// NewDevice wraps an already-open DRM file descriptor. The caller keeps
// ownership of fd: Close will not close it.
func NewDevice(fd int) *Device {
	return &Device{fd: fd}
}

func (d *Device) FD() int {
	return d.fd
}

func (d *Device) GetParam(param Param) (int32, error) {
	var value int32
	req := newGetParam(param, &value)
	if err := d.ioctlGetParam(&req); err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_I915_GETPARAM %s failed", param)
	}

	return value, nil
}

func (d *Device) GemCreate(size uint64) (Handle, error) {
	req := newGemCreate(size)
	if err := d.ioctlGemCreate(&req); err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_I915_GEM_CREATE failed (size=%d)", size)
	}

	return Handle(req.Handle), nil
}

func (d *Device) GemCreateProtected(size uint64) (Handle, error) {
	ext := newProtectedContentSetParam()
	req := newGemCreateExt(size, &ext)
	if err := d.ioctlGemCreateExt(&req); err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_I915_GEM_CREATE_EXT failed (size=%d)", size)
	}

	return Handle(req.Handle), nil
}

func (d *Device) GemSetTiling(handle Handle, tiling Tiling, stride uint32) error {
	req := newGemSetTiling(handle, tiling, stride)
	if err := d.ioctlGemSetTiling(&req); err != nil {
		return errors.Wrapf(err, "DRM_IOCTL_I915_GEM_SET_TILING failed (handle=%d, tiling=%s, stride=%d)", handle, tiling, stride)
	}

	return nil
}

func (d *Device) GemGetTiling(handle Handle) (Tiling, error) {
	req := newGemGetTiling(handle)
	if err := d.ioctlGemGetTiling(&req); err != nil {
		return TilingNone, errors.Wrapf(err, "DRM_IOCTL_I915_GEM_GET_TILING failed (handle=%d)", handle)
	}

	return Tiling(req.TilingMode), nil
}

func (d *Device) GemMmap(handle Handle, offset, size uint64, flags MmapFlags) ([]byte, error) {
	req := newGemMmap(handle, offset, size, flags)
	if err := d.ioctlGemMmap(&req); err != nil {
		return nil, errors.Wrapf(err, "DRM_IOCTL_I915_GEM_MMAP failed (handle=%d)", handle)
	}

	return mappedBytes(req.AddrPtr, size), nil
}

func (d *Device) GemMmapGTT(handle Handle) (uint64, error) {
	req := newGemMmapGTT(handle)
	if err := d.ioctlGemMmapGTT(&req); err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_I915_GEM_MMAP_GTT failed (handle=%d)", handle)
	}

	return req.Offset, nil
}

func (d *Device) GemSetDomain(handle Handle, readDomains, writeDomain Domain) error {
	req := newGemSetDomain(handle, readDomains, writeDomain)
	if err := d.ioctlGemSetDomain(&req); err != nil {
		return errors.Wrapf(err, "DRM_IOCTL_I915_GEM_SET_DOMAIN failed (handle=%d, read=%s, write=%s)", handle, readDomains, writeDomain)
	}

	return nil
}

func (d *Device) GemClose(handle Handle) error {
	req := newGemClose(handle)
	if err := d.ioctlGemClose(&req); err != nil {
		return errors.Wrapf(err, "DRM_IOCTL_GEM_CLOSE failed (handle=%d)", handle)
	}

	return nil
}

func (d *Device) PrimeFDToHandle(fd int) (Handle, error) {
	req := newPrimeFDToHandle(fd)
	if err := d.ioctlPrimeFDToHandle(&req); err != nil {
		return 0, errors.Wrapf(err, "DRM_IOCTL_PRIME_FD_TO_HANDLE failed (fd=%d)", fd)
	}

	return Handle(req.Handle), nil
}

func (d *Device) Mmap(offset int64, length int, prot int) ([]byte, error) {
	data, err := mmapShared(d.fd, offset, length, prot)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap of drm offset %#x failed (length=%d)", offset, length)
	}

	return data, nil
}

// Munmap releases a range returned by Mmap or GemMmap
func (d *Device) Munmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	return munmap(data)
}

func (d *Device) Close() error {
	if !d.ownsFD {
		return nil
	}

	return unix.Close(d.fd)
}
