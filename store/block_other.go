//go:build !linux && !darwin

package store

const mmapSupported = false

// mapBlock falls back to a heap allocation where anonymous mappings are unavailable.
func mapBlock(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapBlock([]byte) error { return nil }
