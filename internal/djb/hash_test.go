package djb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum32(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 5381},
		{"a", 5381*33 + 'a'},
		{"ab", (5381*33+'a')*33 + 'b'},
		{"k1", (5381*33+'k')*33 + '1'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sum32(tt.in), "Sum32(%q)", tt.in)
	}
}

func TestSum32MatchesShiftForm(t *testing.T) {
	// ((h << 5) + h) + c is the same recurrence.
	shift := func(s string) uint32 {
		h := uint32(5381)
		for i := 0; i < len(s); i++ {
			h = ((h << 5) + h) + uint32(s[i])
		}
		return h
	}
	for _, s := range []string{"x", "hello", "1804289383", "a much longer key that wraps the accumulator several times"} {
		assert.Equal(t, shift(s), Sum32(s), "Sum32(%q)", s)
	}
}

func TestSum32HighBytes(t *testing.T) {
	// Bytes are treated as unsigned.
	assert.Equal(t, uint32(5381*33+0xff), Sum32("\xff"))
}

func BenchmarkSum32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Sum32("1804289383")
	}
}
