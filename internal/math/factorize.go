package math

import (
	"fmt"
	"math/bits"
	"slices"
)

// PrimeFactor is a single prime power: Value^Count.
type PrimeFactor struct {
	Value int
	Count int
}

// PrimeFactors is the canonical prime factorization of an integer n ≥ 1,
// with powers of 2 and 3 held in dedicated slots (the radices planners care
// about most) and all larger primes in an ascending, value-distinct list.
// Aggregate factor counts are cached at construction so planner queries are
// O(1).
//
// Operations that conceptually mutate a PrimeFactors (RemoveFactors,
// PartitionFactors) instead take it by value and return fresh values; any
// shared slice is cloned before modification, so no holder of the original
// ever observes a partial update.
type PrimeFactors struct {
	otherFactors        []PrimeFactor
	n                   int
	powerTwo            int
	powerThree          int
	totalFactorCount    int
	distinctFactorCount int
}

// ComputePrimeFactors builds the factorization of n by trial division.
// Requires n ≥ 1; n == 1 yields the empty factorization (not prime).
//
// Powers of two come from the trailing zero bits, powers of three from
// repeated division, and the rest from odd candidates starting at 5 under a
// ⌊√remainder⌋+1 bound recomputed after each factor is fully divided out.
// Worst case O(√n) divisions (n prime), an acceptable one-time planning
// cost.
func ComputePrimeFactors(n int) PrimeFactors {
	result := PrimeFactors{n: n}

	result.powerTwo = bits.TrailingZeros(uint(n))
	result.totalFactorCount += result.powerTwo
	n >>= result.powerTwo

	if result.powerTwo > 0 {
		result.distinctFactorCount++
	}

	for n%3 == 0 {
		result.powerThree++
		n /= 3
	}

	result.totalFactorCount += result.powerThree

	if result.powerThree > 0 {
		result.distinctFactorCount++
	}

	if n > 1 {
		divisor := 5
		limit := Isqrt(n) + 1

		for divisor < limit {
			count := 0
			for n%divisor == 0 {
				n /= divisor
				count++
			}

			if count > 0 {
				result.otherFactors = append(result.otherFactors, PrimeFactor{Value: divisor, Count: count})
				result.totalFactorCount += count
				result.distinctFactorCount++

				// Shrink the bound to match what remains undivided.
				limit = Isqrt(n) + 1
			}

			divisor += 2
		}

		// The bound logic can leave one prime factor standing.
		if n > 1 {
			result.otherFactors = append(result.otherFactors, PrimeFactor{Value: n, Count: 1})
			result.totalFactorCount++
			result.distinctFactorCount++
		}
	}

	return result
}

// IsPrime reports whether the factored value is prime.
func (pf PrimeFactors) IsPrime() bool {
	return pf.totalFactorCount == 1
}

// Product returns the factored value n.
func (pf PrimeFactors) Product() int {
	return pf.n
}

// TotalFactorCount returns the number of prime factors counted with
// multiplicity.
func (pf PrimeFactors) TotalFactorCount() int {
	return pf.totalFactorCount
}

// DistinctFactorCount returns the number of distinct prime factors.
func (pf PrimeFactors) DistinctFactorCount() int {
	return pf.distinctFactorCount
}

// PowerOfTwo returns the exponent of 2 in the factorization.
func (pf PrimeFactors) PowerOfTwo() int {
	return pf.powerTwo
}

// PowerOfThree returns the exponent of 3 in the factorization.
func (pf PrimeFactors) PowerOfThree() int {
	return pf.powerThree
}

// OtherFactors returns the prime powers beyond 2 and 3, ascending by value.
// The returned slice is shared; callers must treat it as read-only.
func (pf PrimeFactors) OtherFactors() []PrimeFactor {
	return pf.otherFactors
}

// RemoveFactors divides the factored value by factor.Value^factor.Count and
// returns the reduced factorization. ok == false exactly when the result
// would be 1, i.e. the value was fully divided away. A Count of 0 returns
// the input unchanged.
//
// Requesting more copies than are stored, or a value that is not 2, 3, or
// present in the other-factor list, is a caller contract violation and
// panics.
func (pf PrimeFactors) RemoveFactors(factor PrimeFactor) (result PrimeFactors, ok bool) {
	if factor.Count == 0 {
		return pf, true
	}

	switch factor.Value {
	case 2:
		if factor.Count > pf.powerTwo {
			panic(fmt.Sprintf("math: removing 2^%d from a factorization holding 2^%d", factor.Count, pf.powerTwo))
		}

		pf.powerTwo -= factor.Count
		pf.n >>= factor.Count
		pf.totalFactorCount -= factor.Count

		if pf.powerTwo == 0 {
			pf.distinctFactorCount--
		}
	case 3:
		if factor.Count > pf.powerThree {
			panic(fmt.Sprintf("math: removing 3^%d from a factorization holding 3^%d", factor.Count, pf.powerThree))
		}

		pf.powerThree -= factor.Count
		pf.n /= intPow(3, factor.Count)
		pf.totalFactorCount -= factor.Count

		if pf.powerThree == 0 {
			pf.distinctFactorCount--
		}
	default:
		index := slices.IndexFunc(pf.otherFactors, func(item PrimeFactor) bool {
			return item.Value == factor.Value
		})
		if index < 0 {
			panic(fmt.Sprintf("math: removing absent factor %d", factor.Value))
		}

		if factor.Count > pf.otherFactors[index].Count {
			panic(fmt.Sprintf("math: removing %d^%d from a factorization holding %d^%d",
				factor.Value, factor.Count, factor.Value, pf.otherFactors[index].Count))
		}

		pf.otherFactors = slices.Clone(pf.otherFactors)
		pf.otherFactors[index].Count -= factor.Count
		pf.n /= intPow(factor.Value, factor.Count)
		pf.totalFactorCount -= factor.Count

		if pf.otherFactors[index].Count == 0 {
			pf.distinctFactorCount--
			pf.otherFactors = slices.Delete(pf.otherFactors, index, index+1)
		}
	}

	if pf.n > 1 {
		return pf, true
	}

	return PrimeFactors{}, false
}

// intPow returns base^exp by repeated multiplication. Exponents here are
// factor multiplicities, so the loop is short.
func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}

	return result
}
