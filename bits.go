package fixmath

// IsPowerOfTwo reports whether n has at most one bit set.
//
// Per the historical contract this also returns true for 0 and for
// MinInt32 (whose bit pattern is a lone sign bit). Callers that need the
// strict mathematical predicate must check n > 0 themselves.
func IsPowerOfTwo(n int32) bool {
	return n&(n-1) == 0
}

// CountBits returns the number of set bits in n using a parallel popcount.
// Negative values count the bits of the two's-complement pattern.
func CountBits(n int32) int {
	x := uint32(n)
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f
	return int((x * 0x01010101) >> 24)
}

// Log2 returns floor(log2(n)) for n > 0. The result for n <= 0 is
// unspecified; callers must guard.
func Log2(n int32) int {
	log := 0
	for n > 1 {
		n >>= 1
		log++
	}
	return log
}
