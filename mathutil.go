package fftplan

import (
	m "github.com/cwbudde/algo-fft-plan/internal/math"
)

// Re-export public functions from internal/math.
var (
	PrimitiveRoot             = m.PrimitiveRoot
	DistinctPrimeFactors      = m.DistinctPrimeFactors
	Factorize                 = m.Factorize
	IsHighlyComposite         = m.IsHighlyComposite
	IsPowerOf2                = m.IsPowerOf2
	NextPowerOfTwo            = m.NextPowerOfTwo
	ComputeBitReversalIndices = m.ComputeBitReversalIndices
)

// ModularExponent returns base^exponent mod modulo by exponentiation by
// squaring, reducing every intermediate product. An exponent of 0 yields 1
// regardless of base. Requires exponent ≥ 0 (implied by T) and modulo > 0.
func ModularExponent[T Unsigned](base, exponent, modulo T) T {
	return m.ModularExponent(base, exponent, modulo)
}

// MultiplicativeInverse returns the r in [0, n) with a*r ≡ 1 (mod n).
// Requires gcd(a, n) = 1 (n is typically prime); violating that yields a
// meaningless result rather than an error.
func MultiplicativeInverse[T Unsigned](a, n T) T {
	return m.MultiplicativeInverse(a, n)
}

// ExtendedEuclidean returns (gcd, s, t) with a*s + b*t = gcd. The sign of
// the returned gcd follows the recurrence and is not normalized.
func ExtendedEuclidean[T Signed](a, b T) (gcd, s, t T) {
	return m.ExtendedEuclidean(a, b)
}
