// Package format encodes key/value entries into fixed-width cells.
//
// Cell layout:
//
//	Offset        Size        Description
//	0x00          len(key)    Key bytes (never empty, never NUL)
//	len(key)      1           Terminator (0x00)
//	len(key)+1    len(value)  Value bytes (never NUL)
//	...           1           Terminator (0x00)
//	...           rest        Zero padding
//
// A cell whose first byte is the terminator is empty.
package format

import (
	"bytes"
	"fmt"
	"strings"
)

// EncodedLen is the number of bytes key and value occupy in a cell.
func EncodedLen(key, value string) int {
	return len(key) + len(value) + Overhead
}

// Validate reports whether key and value can be encoded into a cell of
// cellSize bytes without touching any cell.
func Validate(key, value string, cellSize int) error {
	if key == "" {
		return ErrInvalidKey
	}
	if strings.IndexByte(key, Terminator) >= 0 || strings.IndexByte(value, Terminator) >= 0 {
		return ErrEmbeddedNUL
	}
	if n := EncodedLen(key, value); n > cellSize {
		return fmt.Errorf("%w (need %d, have %d)", ErrEntryTooLarge, n, cellSize)
	}
	return nil
}

// Encode writes key and value into cell and zeroes the remaining bytes.
// The cell is left untouched when Validate fails.
func Encode(cell []byte, key, value string) error {
	if err := Validate(key, value, len(cell)); err != nil {
		return err
	}
	n := copy(cell, key)
	cell[n] = Terminator
	n++
	n += copy(cell[n:], value)
	cell[n] = Terminator
	n++
	clear(cell[n:])
	return nil
}

// IsEmpty reports whether the cell is unoccupied.
func IsEmpty(cell []byte) bool {
	return len(cell) == 0 || cell[0] == Terminator
}

// Decode returns the key and value stored in cell.
func Decode(cell []byte) (string, string, error) {
	if IsEmpty(cell) {
		return "", "", ErrEmptyCell
	}
	k := bytes.IndexByte(cell, Terminator)
	if k < 0 {
		return "", "", ErrCorruptCell
	}
	rest := cell[k+1:]
	v := bytes.IndexByte(rest, Terminator)
	if v < 0 {
		return "", "", ErrCorruptCell
	}
	return string(cell[:k]), string(rest[:v]), nil
}

// KeyEquals reports whether cell holds key. It does not allocate.
func KeyEquals(cell []byte, key string) bool {
	if IsEmpty(cell) || len(key) >= len(cell) {
		return false
	}
	return cell[len(key)] == Terminator && string(cell[:len(key)]) == key
}
