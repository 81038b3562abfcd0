// Package prime selects the prime moduli used to size tables and rows.
//
// The search is deliberately simple trial division: table sizes are chosen
// once at construction and the reference sizing scheme is reproduced exactly,
// including its treatment of 1 as the fallback "prime".
package prime

// IsPrime reports whether n has no divisor in [2, n/2].
// 0 and 1 report true, which is what lets LargestBelow fall back to 1.
func IsPrime(n uint32) bool {
	for i := n / 2; i > 1; i-- {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// LargestBelow returns the greatest p with 1 <= p < n for which IsPrime(p)
// holds, scanning downward from n-1. It returns 1 when n <= 2.
func LargestBelow(n uint32) uint32 {
	if n <= 2 {
		return 1
	}
	for p := n - 1; p > 1; p-- {
		if IsPrime(p) {
			return p
		}
	}
	return 1
}

// Descending returns count moduli where the first is LargestBelow(start) and
// each subsequent one is LargestBelow of its predecessor. Once the chain
// reaches 1 it stays at 1.
func Descending(start uint32, count int) []uint32 {
	if count <= 0 {
		return nil
	}
	out := make([]uint32, count)
	bound := start
	for i := range out {
		out[i] = LargestBelow(bound)
		bound = out[i]
	}
	return out
}
