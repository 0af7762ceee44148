package math

import (
	stdmath "math"

	"github.com/cwbudde/algo-fft-plan/internal/fftypes"
)

// Isqrt returns ⌊√n⌋ for n ≥ 0.
//
// A float64 square root seeds the answer and integer comparisons correct it,
// so the result is exact even where float64 rounding is not. The correction
// uses division instead of squaring to avoid overflow near the top of the
// type's range.
func Isqrt[T fftypes.Integer](n T) T {
	if n <= 1 {
		if n < 0 {
			return 0
		}

		return n
	}

	x := T(stdmath.Sqrt(float64(n)))

	for x > 0 && x > n/x {
		x--
	}

	for x+1 <= n/(x+1) {
		x++
	}

	return x
}
