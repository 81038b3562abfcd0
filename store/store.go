package store

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/celltable/internal/buf"
	"github.com/joshuapare/celltable/internal/format"
	"github.com/joshuapare/celltable/pkg/types"
)

// Store is a fixed number of fixed-width cells over one contiguous block.
type Store struct {
	data     []byte
	capacity int
	cellSize int
	occupied int
	mapped   bool
}

// New allocates a zeroed block of capacity*cellSize bytes.
func New(capacity, cellSize int, opts *Options) (*Store, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if capacity < 1 || cellSize < format.MinCellSize {
		return nil, fmt.Errorf("%w (capacity=%d, cell size=%d)", ErrInvalidDimensions, capacity, cellSize)
	}
	size, err := buf.BlockSize(capacity, cellSize)
	if err != nil {
		return nil, types.New(types.ErrKindAlloc, "store: sizing block", err)
	}

	s := &Store{capacity: capacity, cellSize: cellSize}
	if opts.Backing == BackingMmap && mmapSupported {
		data, err := mapBlock(size)
		if err != nil {
			return nil, types.New(types.ErrKindAlloc, fmt.Sprintf("store: mapping %d bytes", size), err)
		}
		s.data = data
		s.mapped = true
		return s, nil
	}

	data, err := allocHeap(size)
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

// allocHeap converts a runtime allocation failure into ErrAllocationFailed.
// Only "makeslice: len out of range" style panics are recoverable; a true
// out-of-memory condition still terminates the process.
func allocHeap(size int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = types.New(types.ErrKindAlloc, fmt.Sprintf("store: allocating %d bytes", size), fmt.Errorf("%v", r))
		}
	}()
	return make([]byte, size), nil
}

// Close releases the block. It is safe to call more than once.
func (s *Store) Close() error {
	if s.data == nil {
		return nil
	}
	data := s.data
	s.data = nil
	if s.mapped {
		s.mapped = false
		if err := unmapBlock(data); err != nil {
			return fmt.Errorf("store: unmap: %w", err)
		}
	}
	return nil
}

// Capacity returns the number of cells.
func (s *Store) Capacity() int { return s.capacity }

// CellSize returns the width of each cell in bytes.
func (s *Store) CellSize() int { return s.cellSize }

// Occupied returns how many cells hold an entry.
func (s *Store) Occupied() int { return s.occupied }

// Mapped reports whether the block is an anonymous mapping.
func (s *Store) Mapped() bool { return s.mapped }

// Snapshot returns a copy of the whole block.
func (s *Store) Snapshot() []byte { return bytes.Clone(s.data) }

// cell returns the bounds-checked view of cell index.
func (s *Store) cell(index int) ([]byte, error) {
	if s.data == nil {
		return nil, ErrClosed
	}
	if index < 0 || index >= s.capacity {
		return nil, fmt.Errorf("%w: %d (capacity %d)", ErrIndexOutOfRange, index, s.capacity)
	}
	c, ok := buf.Cell(s.data, index, s.cellSize)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return c, nil
}

// IsEmpty reports whether cell index holds no entry.
func (s *Store) IsEmpty(index int) (bool, error) {
	c, err := s.cell(index)
	if err != nil {
		return false, err
	}
	return format.IsEmpty(c), nil
}

// KeyEquals reports whether cell index holds key.
func (s *Store) KeyEquals(index int, key string) (bool, error) {
	c, err := s.cell(index)
	if err != nil {
		return false, err
	}
	return format.KeyEquals(c, key), nil
}

// Read returns the entry stored in cell index.
func (s *Store) Read(index int) (string, string, error) {
	c, err := s.cell(index)
	if err != nil {
		return "", "", err
	}
	return format.Decode(c)
}

// Value returns the value of cell index, which must hold an entry.
func (s *Store) Value(index int) (string, error) {
	_, v, err := s.Read(index)
	return v, err
}

// Fits reports whether key and value can be written to any cell.
func (s *Store) Fits(key, value string) error {
	return format.Validate(key, value, s.cellSize)
}

// Write encodes key and value into cell index, replacing whatever it held.
func (s *Store) Write(index int, key, value string) error {
	c, err := s.cell(index)
	if err != nil {
		return err
	}
	wasEmpty := format.IsEmpty(c)
	if err := format.Encode(c, key, value); err != nil {
		return err
	}
	if wasEmpty {
		s.occupied++
	}
	return nil
}
