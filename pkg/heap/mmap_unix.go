//go:build linux || darwin

package heap

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MmapSource backs segments with anonymous private mappings. Fresh
// anonymous pages are zero filled by the kernel.
type MmapSource struct{}

func (MmapSource) Acquire(size int) ([]byte, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}
	return mem, nil
}

func (MmapSource) Release(mem []byte) error {
	return errors.Wrap(unix.Munmap(mem), "munmap")
}
