//go:build linux || darwin

package store

import (
	"golang.org/x/sys/unix"
)

const mmapSupported = true

// mapBlock returns size zeroed bytes from an anonymous private mapping.
func mapBlock(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapBlock releases a mapping returned by mapBlock.
func unmapBlock(b []byte) error {
	return unix.Munmap(b)
}
