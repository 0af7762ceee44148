package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInternallyConsistent re-derives every cached aggregate of pf from
// its exponent fields and checks it against the stored value.
func assertInternallyConsistent(t *testing.T, pf PrimeFactors) {
	t.Helper()

	cumulativeProduct := 1
	discoveredDistinct := 0
	discoveredTotal := 0

	if pf.PowerOfTwo() > 0 {
		cumulativeProduct <<= pf.PowerOfTwo()
		discoveredDistinct++
		discoveredTotal += pf.PowerOfTwo()
	}

	if pf.PowerOfThree() > 0 {
		cumulativeProduct *= intPow(3, pf.PowerOfThree())
		discoveredDistinct++
		discoveredTotal += pf.PowerOfThree()
	}

	previousValue := 3

	for _, factor := range pf.OtherFactors() {
		require.Greater(t, factor.Value, previousValue, "other factors must be ascending and > 3")
		require.Positive(t, factor.Count)

		cumulativeProduct *= intPow(factor.Value, factor.Count)
		discoveredDistinct++
		discoveredTotal += factor.Count
		previousValue = factor.Value
	}

	assert.Equal(t, pf.Product(), cumulativeProduct)
	assert.Equal(t, pf.DistinctFactorCount(), discoveredDistinct)
	assert.Equal(t, pf.TotalFactorCount(), discoveredTotal)
	assert.Equal(t, pf.IsPrime(), discoveredTotal == 1)
}

func TestComputePrimeFactors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n               int
		factors         map[int]int
		totalFactors    int
		distinctFactors int
		isPrime         bool
	}{
		{2, map[int]int{2: 1}, 1, 1, true},
		{128, map[int]int{2: 7}, 7, 1, false},
		{3, map[int]int{3: 1}, 1, 1, true},
		{81, map[int]int{3: 4}, 4, 1, false},
		{5, map[int]int{5: 1}, 1, 1, true},
		{125, map[int]int{5: 3}, 3, 1, false},
		{97, map[int]int{97: 1}, 1, 1, true},
		{6, map[int]int{2: 1, 3: 1}, 2, 2, false},
		{12, map[int]int{2: 2, 3: 1}, 3, 2, false},
		{36, map[int]int{2: 2, 3: 2}, 4, 2, false},
		{10, map[int]int{2: 1, 5: 1}, 2, 2, false},
		{100, map[int]int{2: 2, 5: 2}, 4, 2, false},
		{44100, map[int]int{2: 2, 3: 2, 5: 2, 7: 2}, 8, 4, false},
	}

	for _, tt := range tests {
		factors := ComputePrimeFactors(tt.n)

		assert.Equal(t, tt.n, factors.Product())
		assert.Equal(t, tt.isPrime, factors.IsPrime(), "n=%d", tt.n)
		assert.Equal(t, tt.distinctFactors, factors.DistinctFactorCount(), "n=%d", tt.n)
		assert.Equal(t, tt.totalFactors, factors.TotalFactorCount(), "n=%d", tt.n)
		assert.Equal(t, tt.factors[2], factors.PowerOfTwo(), "n=%d", tt.n)
		assert.Equal(t, tt.factors[3], factors.PowerOfThree(), "n=%d", tt.n)

		// Every stored other-factor must match the expected map, and every
		// expected prime must show up in one of the three slots.
		found := map[int]int{2: factors.PowerOfTwo(), 3: factors.PowerOfThree()}
		for _, factor := range factors.OtherFactors() {
			found[factor.Value] = factor.Count
		}

		for value, count := range tt.factors {
			assert.Equal(t, count, found[value], "n=%d factor=%d", tt.n, value)
		}
	}
}

func TestComputePrimeFactorsOne(t *testing.T) {
	t.Parallel()

	factors := ComputePrimeFactors(1)

	assert.Equal(t, 1, factors.Product())
	assert.False(t, factors.IsPrime())
	assert.Zero(t, factors.TotalFactorCount())
	assert.Zero(t, factors.DistinctFactorCount())
	assert.Empty(t, factors.OtherFactors())
}

func TestComputePrimeFactorsConsistencySweep(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 10000; n++ {
		factors := ComputePrimeFactors(n)

		require.Equal(t, n, factors.Product())
		assertInternallyConsistent(t, factors)
	}
}

func TestRemoveFactors(t *testing.T) {
	t.Parallel()

	// For every n, remove every valid (value, count) pair and check the
	// remainder.
	for n := 2; n <= 500; n++ {
		factors := ComputePrimeFactors(n)

		stored := map[int]int{}
		if factors.PowerOfTwo() > 0 {
			stored[2] = factors.PowerOfTwo()
		}

		if factors.PowerOfThree() > 0 {
			stored[3] = factors.PowerOfThree()
		}

		for _, factor := range factors.OtherFactors() {
			stored[factor.Value] = factor.Count
		}

		for value, exponent := range stored {
			for count := 0; count <= exponent; count++ {
				removed, ok := factors.RemoveFactors(PrimeFactor{Value: value, Count: count})

				if !ok {
					// Only a full removal of the last factor reaches 1.
					require.Equal(t, n, intPow(value, count), "n=%d value=%d count=%d", n, value, count)
					continue
				}

				require.Equal(t, n/intPow(value, count), removed.Product(), "n=%d value=%d count=%d", n, value, count)
				assertInternallyConsistent(t, removed)
			}
		}

		// The original must be untouched by any of the removals above.
		require.Equal(t, n, factors.Product())
		assertInternallyConsistent(t, factors)
	}
}

func TestRemoveFactorsContractViolations(t *testing.T) {
	t.Parallel()

	factors := ComputePrimeFactors(360) // 2^3 * 3^2 * 5

	assert.Panics(t, func() { factors.RemoveFactors(PrimeFactor{Value: 2, Count: 4}) })
	assert.Panics(t, func() { factors.RemoveFactors(PrimeFactor{Value: 3, Count: 3}) })
	assert.Panics(t, func() { factors.RemoveFactors(PrimeFactor{Value: 5, Count: 2}) })
	assert.Panics(t, func() { factors.RemoveFactors(PrimeFactor{Value: 7, Count: 1}) })
}
