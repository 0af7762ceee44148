package math

import "github.com/cwbudde/algo-fft-plan/internal/fftypes"

// ModularExponent returns base^exponent mod modulo using exponentiation by
// squaring. Every intermediate product is reduced before accumulation, so
// exponents far beyond the naive overflow point are supported as long as
// modulo*modulo fits in T. An exponent of 0 yields 1 regardless of base.
// Requires modulo > 0.
func ModularExponent[T fftypes.Unsigned](base, exponent, modulo T) T {
	result := T(1)

	for exponent > 0 {
		if exponent&1 == 1 {
			result = result * base % modulo
		}

		exponent >>= 1
		base = base * base % modulo
	}

	return result
}

// ExtendedEuclidean returns (gcd, s, t) such that a*s + b*t = gcd, using the
// standard iterative quotient-and-swap recurrence. The sign of the returned
// gcd follows directly from the recurrence and is not normalized to be
// non-negative (e.g. a negative a with b = 0 yields a negative gcd).
func ExtendedEuclidean[T fftypes.Signed](a, b T) (gcd, s, t T) {
	sOld, sCur := T(1), T(0)
	tOld, tCur := T(0), T(1)
	rOld, rCur := a, b

	for rCur > 0 {
		quotient := rOld / rCur

		rOld, rCur = rCur, rOld-quotient*rCur
		sOld, sCur = sCur, sOld-quotient*sCur
		tOld, tCur = tCur, tOld-quotient*tCur
	}

	return rOld, sOld, tOld
}

// MultiplicativeInverse returns the r in [0, n) with a*r ≡ 1 (mod n).
//
// This is a half extended Euclidean recurrence: only the Bézout coefficient
// of a is tracked, one variable fewer than ExtendedEuclidean. Because T is
// unsigned, a coefficient that would go negative is wrapped around to the
// other end of the modulus instead (3 - 4 mod 5 = -1 mod 5 = 4).
//
// Requires gcd(a, n) = 1; callers violating that get a meaningless result,
// not an error.
func MultiplicativeInverse[T fftypes.Unsigned](a, n T) T {
	var t T
	tNew := T(1)

	r, rNew := n, a

	for rNew > 0 {
		quotient := r / rNew
		r, rNew = rNew, r-quotient*rNew

		subtract := quotient * tNew
		if subtract < t {
			t = t - subtract
		} else {
			t = n - (subtract-t)%n
		}

		t, tNew = tNew, t
	}

	return t
}
