package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	tests := []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, 5, 0, true},
		{7, 0, 0, true},
		{7, 8, 56, true},
		{math.MaxInt, 2, 0, false},
		{math.MaxInt/2 + 1, 2, 0, false},
		{-1, 4, 0, false},
		{4, -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := MulOverflowSafe(tt.a, tt.b)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MulOverflowSafe(%d,%d)=%d,%v want %d,%v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBlockSize(t *testing.T) {
	if n, err := BlockSize(7, 8); err != nil || n != 56 {
		t.Fatalf("BlockSize(7,8)=%d,%v want 56,nil", n, err)
	}
	if _, err := BlockSize(math.MaxInt, 16); err == nil {
		t.Fatalf("expected overflow error")
	}
	if _, err := BlockSize(-1, 16); err == nil {
		t.Fatalf("expected negative count error")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}

func TestSliceCapacityClipped(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	got, ok := Slice(data, 0, 2)
	if !ok || cap(got) != 2 {
		t.Fatalf("Slice cap=%d want 2", cap(got))
	}
	got = append(got, 9)
	if data[2] != 2 {
		t.Fatalf("append through a cell view modified the neighbouring byte")
	}
}

func TestCell(t *testing.T) {
	data := make([]byte, 12)
	for i := range data {
		data[i] = byte(i)
	}
	c, ok := Cell(data, 2, 4)
	if !ok || len(c) != 4 || c[0] != 8 {
		t.Fatalf("Cell(2,4)=%v,%v", c, ok)
	}
	if _, ok := Cell(data, 3, 4); ok {
		t.Fatalf("Cell should reject index past the end")
	}
	if _, ok := Cell(data, -1, 4); ok {
		t.Fatalf("Cell should reject negative index")
	}
	if _, ok := Cell(data, 0, 0); ok {
		t.Fatalf("Cell should reject zero width")
	}
}
