package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsPowerOf reports whether n is a positive power of base (base ≥ 2).
// IsPowerOf(1, base) is true: base^0.
func IsPowerOf(n, base int) bool {
	if n < 1 {
		return false
	}

	for n%base == 0 {
		n /= base
	}

	return n == 1
}

// IsPowerOf3 reports whether n is a positive power of three.
func IsPowerOf3(n int) bool {
	return IsPowerOf(n, 3)
}

// IsPowerOf4 reports whether n is a positive power of four.
func IsPowerOf4(n int) bool {
	return IsPowerOf(n, 4)
}

// IsPowerOf5 reports whether n is a positive power of five.
func IsPowerOf5(n int) bool {
	return IsPowerOf(n, 5)
}

// NextPowerOfTwo returns the smallest power of two ≥ n, or 1 for n < 1.
func NextPowerOfTwo(n int) int {
	result := 1
	for result < n {
		result <<= 1
	}

	return result
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for j := 0; j < bits; j++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}
