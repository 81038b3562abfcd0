// Package buf contains bounds-checked helpers for slicing fixed-width cells
// out of a flat byte block.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// either operand is negative or the product would overflow int.
// This guards the capacity * cellSize calculation when sizing a block.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// BlockSize returns count * width, or an error when either is negative or
// the product overflows.
func BlockSize(count, width int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if width < 0 {
		return 0, fmt.Errorf("negative width: %d", width)
	}
	size, ok := MulOverflowSafe(count, width)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * width=%d", count, width)
	}
	return size, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
// The returned slice has its capacity clipped to n so appends cannot spill
// into the neighbouring cell.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// Cell returns the index-th width-byte cell of b.
func Cell(b []byte, index, width int) ([]byte, bool) {
	if index < 0 || width <= 0 {
		return nil, false
	}
	off, ok := MulOverflowSafe(index, width)
	if !ok {
		return nil, false
	}
	return Slice(b, off, width)
}
