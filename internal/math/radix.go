package math

// Factorize returns the prime factors of n in ascending order with
// multiplicity, the flat radix list a mixed-radix decomposition works
// through (e.g. 40 yields [2 2 2 5]). Requires n ≥ 1; n == 1 yields an
// empty list.
func Factorize(n int) []int {
	pf := ComputePrimeFactors(n)

	radixes := make([]int, 0, pf.totalFactorCount)
	for i := 0; i < pf.powerTwo; i++ {
		radixes = append(radixes, 2)
	}

	for i := 0; i < pf.powerThree; i++ {
		radixes = append(radixes, 3)
	}

	for _, factor := range pf.otherFactors {
		for i := 0; i < factor.Count; i++ {
			radixes = append(radixes, factor.Value)
		}
	}

	return radixes
}

// IsHighlyComposite reports whether every prime factor of n is 2, 3, or 5,
// the sizes fixed-radix fast paths can handle without a generic fallback.
// Requires n ≥ 1; n == 1 is highly composite.
func IsHighlyComposite(n int) bool {
	pf := ComputePrimeFactors(n)

	for _, factor := range pf.otherFactors {
		if factor.Value != 5 {
			return false
		}
	}

	return true
}
