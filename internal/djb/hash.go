// Package djb implements the 32-bit multiplicative string hash used to
// address cells in both table variants.
package djb

const (
	// seed is the initial hash value.
	seed = 5381
	// multiplier is applied before adding each byte: h = h*33 + b.
	multiplier = 33
)

// Sum32 hashes the bytes of key with h = h*33 + b starting from 5381,
// wrapping modulo 2^32.
func Sum32(key string) uint32 {
	h := uint32(seed)
	for i := 0; i < len(key); i++ {
		h = h*multiplier + uint32(key[i])
	}
	return h
}
