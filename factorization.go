package fftplan

import (
	m "github.com/cwbudde/algo-fft-plan/internal/math"
)

// ComputePrimeFactors builds the canonical prime factorization of a
// transform length n. Returns ErrInvalidLength if n < 1; n == 1 yields the
// empty factorization, which is not prime.
//
// A planner calls this once per requested length, inspects IsPrime, and
// either partitions the composite result recursively or falls back to the
// modular primitives (PrimitiveRoot, MultiplicativeInverse) for a
// Rader-style prime-length construction.
func ComputePrimeFactors(n int) (PrimeFactors, error) {
	if n < 1 {
		return PrimeFactors{}, ErrInvalidLength
	}

	return m.ComputePrimeFactors(n), nil
}

// PartitionFactors splits a composite factorization into two factorizations
// whose products multiply back to the original value and are as close as
// possible. Returns ErrPrimeLength if factors is prime; unlike the
// PrimeFactors.PartitionFactors method, which trusts its caller and panics,
// this wrapper is safe to call without checking IsPrime first.
func PartitionFactors(factors PrimeFactors) (left, right PrimeFactors, err error) {
	if factors.IsPrime() {
		return PrimeFactors{}, PrimeFactors{}, ErrPrimeLength
	}

	left, right = factors.PartitionFactors()

	return left, right, nil
}
