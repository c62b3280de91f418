//go:build unix

package slab

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Alloc obtains an n-byte slab backed by an anonymous private mapping.
// If the mapping cannot be created the slab falls back to the heap.
func Alloc(n int) (*Buffer, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &Buffer{data: make([]byte, n)}, nil
	}
	return &Buffer{data: data, mapped: true}, nil
}

func unmap(data []byte) error {
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
