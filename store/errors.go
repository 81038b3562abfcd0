package store

import "github.com/joshuapare/celltable/pkg/types"

var (
	// ErrInvalidDimensions indicates capacity < 1 or cell size < 2.
	ErrInvalidDimensions = types.New(types.ErrKindDimensions, "store: capacity must be >= 1 and cell size >= 2", nil)

	// ErrAllocationFailed indicates capacity * cellSize overflowed or the backing allocation failed.
	ErrAllocationFailed = types.New(types.ErrKindAlloc, "store: allocation failed", nil)

	// ErrIndexOutOfRange indicates an index >= Capacity.
	ErrIndexOutOfRange = types.New(types.ErrKindRange, "store: cell index out of range", nil)

	// ErrClosed indicates the block has been released.
	ErrClosed = types.New(types.ErrKindState, "store: closed", nil)
)
