package math

// DistinctPrimeFactors returns the prime divisors of n in ascending order,
// recording presence only (a factor appearing with multiplicity k is listed
// once). Trial division: 2 is handled separately, then odd candidates up to
// a ⌊√n⌋+1 bound that is recomputed whenever a factor has been fully divided
// out, shrinking the remaining search space.
func DistinctPrimeFactors(n uint64) []uint64 {
	var result []uint64

	// Handle 2 separately so the odd-candidate loop can step by 2.
	if n%2 == 0 {
		for n%2 == 0 {
			n /= 2
		}

		result = append(result, 2)
	}

	if n > 1 {
		divisor := uint64(3)
		limit := Isqrt(n) + 1

		for divisor < limit {
			if n%divisor == 0 {
				for n%divisor == 0 {
					n /= divisor
				}

				result = append(result, divisor)

				limit = Isqrt(n) + 1
			}

			divisor += 2
		}

		// Anything left above the bound is itself prime.
		if n > 1 {
			result = append(result, n)
		}
	}

	return result
}

// PrimitiveRoot returns the smallest generator of the multiplicative group
// modulo prime. A candidate g is a generator iff g^((prime-1)/q) mod prime
// differs from 1 for every distinct prime factor q of prime-1, so each
// candidate from 2 upward is tested against exactly those exponents and the
// first survivor is returned.
//
// The input must be prime; this is not checked. ok == false means every
// candidate was exhausted, which cannot happen for a genuine prime and
// signals a violated precondition rather than an expected outcome.
func PrimitiveRoot(prime uint64) (root uint64, ok bool) {
	factors := DistinctPrimeFactors(prime - 1)

	testExponents := make([]uint64, len(factors))
	for i, factor := range factors {
		testExponents[i] = (prime - 1) / factor
	}

candidates:
	for potentialRoot := uint64(2); potentialRoot < prime; potentialRoot++ {
		for _, exponent := range testExponents {
			if ModularExponent(potentialRoot, exponent, prime) == 1 {
				continue candidates
			}
		}

		return potentialRoot, true
	}

	return 0, false
}
