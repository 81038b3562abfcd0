package format

import "github.com/joshuapare/celltable/pkg/types"

var (
	// ErrEntryTooLarge indicates the key, value and two terminators exceed the cell.
	ErrEntryTooLarge = types.New(types.ErrKindTooLarge, "format: entry exceeds cell size", nil)
	// ErrInvalidKey indicates an empty key, which would read back as an empty cell.
	ErrInvalidKey = types.New(types.ErrKindInput, "format: key must be non-empty", nil)
	// ErrEmbeddedNUL indicates a key or value containing the terminator byte.
	ErrEmbeddedNUL = types.New(types.ErrKindInput, "format: key or value contains NUL", nil)
	// ErrEmptyCell indicates a decode was attempted on an unoccupied cell.
	ErrEmptyCell = types.New(types.ErrKindNotFound, "format: cell is empty", nil)
	// ErrCorruptCell indicates a cell is missing one of its terminators.
	ErrCorruptCell = types.New(types.ErrKindInput, "format: cell missing terminator", nil)
)
