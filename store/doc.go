// Package store provides CellStore: one contiguous, zero-initialized byte
// block divided into fixed-width cells.
//
// # Layout
//
// A store of capacity N and cell size W owns exactly N*W bytes. Cell i
// occupies bytes [i*W, (i+1)*W). Each cell holds an entry encoded by
// internal/format:
//
//	key 0x00 value 0x00 padding...
//
// A cell whose first byte is 0x00 is empty. Keys are never empty, so an
// occupied cell always starts with a non-zero byte.
//
// # Backing
//
// BackingHeap (the default) allocates the block with make. BackingMmap maps
// an anonymous private region on Linux and macOS, keeping large tables out of
// the Go heap; elsewhere it behaves like BackingHeap. Close releases
// the mapping; for heap stores it only drops the reference.
//
// # Guarantees
//
//   - Every cell access is bounds-checked; an index >= Capacity returns
//     ErrIndexOutOfRange.
//   - Write validates the entry against the configured cell size before
//     touching the block. A failed Write leaves the block byte-for-byte
//     unchanged.
//
// # Thread Safety
//
// Store instances are not thread-safe. Callers must synchronize access
// externally.
package store
