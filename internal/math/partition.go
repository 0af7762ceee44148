package math

import "slices"

// PartitionFactors splits the factorization into two factorizations whose
// products multiply back to the original value and are as numerically close
// as possible. Both results have a product greater than 1 and satisfy every
// PrimeFactors invariant. The input must not be prime; callers check
// IsPrime first, and a prime input panics.
//
// Three mutually exclusive cases, in priority order:
//
//  1. Perfect square: every exponent is even, so halving them all yields the
//     exact square root on both sides with no re-derivation.
//  2. Single distinct prime p^k: split k into ⌊k/2⌋ and k-⌊k/2⌋ (k > 1 is
//     guaranteed by the non-prime precondition).
//  3. General composite: greedily assign each other-factor prime power,
//     then the whole 2-block, then the whole 3-block, to whichever running
//     side is currently smaller (ties go left), and re-derive both halves
//     from scratch with ComputePrimeFactors. The redundant trial division
//     keeps this branch simple; see DESIGN.md for the trade-off.
func (pf PrimeFactors) PartitionFactors() (left, right PrimeFactors) {
	if pf.IsPrime() {
		panic("math: partitioning a prime factorization")
	}

	allCountsEven := pf.powerTwo%2 == 0 && pf.powerThree%2 == 0 &&
		!slices.ContainsFunc(pf.otherFactors, func(factor PrimeFactor) bool {
			return factor.Count%2 != 0
		})

	switch {
	case allCountsEven:
		newProduct := 1

		pf.powerTwo /= 2
		newProduct <<= pf.powerTwo

		pf.powerThree /= 2
		newProduct *= intPow(3, pf.powerThree)

		pf.otherFactors = slices.Clone(pf.otherFactors)
		for i := range pf.otherFactors {
			pf.otherFactors[i].Count /= 2
			newProduct *= intPow(pf.otherFactors[i].Value, pf.otherFactors[i].Count)
		}

		pf.totalFactorCount /= 2
		pf.n = newProduct

		// Two structurally identical square roots, with independent slices.
		other := pf
		other.otherFactors = slices.Clone(pf.otherFactors)

		return pf, other
	case pf.distinctFactorCount == 1:
		// One prime power p^k: give ⌊k/2⌋ to one half and the rest to the
		// other, then fill in the product for whichever slot holds p.
		half := PrimeFactors{
			n:                   pf.n,
			powerTwo:            pf.powerTwo / 2,
			powerThree:          pf.powerThree / 2,
			totalFactorCount:    pf.totalFactorCount / 2,
			distinctFactorCount: 1,
		}

		pf.powerTwo -= half.powerTwo
		pf.powerThree -= half.powerThree
		pf.totalFactorCount -= half.totalFactorCount

		switch {
		case len(pf.otherFactors) > 0:
			first := pf.otherFactors[0]
			halfFactor := PrimeFactor{Value: first.Value, Count: first.Count / 2}

			pf.otherFactors = []PrimeFactor{{Value: first.Value, Count: first.Count - halfFactor.Count}}
			half.otherFactors = []PrimeFactor{halfFactor}

			pf.n = intPow(first.Value, first.Count-halfFactor.Count)
			half.n = intPow(halfFactor.Value, halfFactor.Count)
		case half.powerTwo > 0:
			half.n = 1 << half.powerTwo
			pf.n = 1 << pf.powerTwo
		default:
			half.n = intPow(3, half.powerThree)
			pf.n = intPow(3, pf.powerThree)
		}

		return pf, half
	default:
		// A mixed bag: greedily place whole prime-power units on whichever
		// cumulative side is smaller.
		leftProduct, rightProduct := 1, 1

		for _, factor := range pf.otherFactors {
			factorProduct := intPow(factor.Value, factor.Count)
			if leftProduct <= rightProduct {
				leftProduct *= factorProduct
			} else {
				rightProduct *= factorProduct
			}
		}

		if leftProduct <= rightProduct {
			leftProduct <<= pf.powerTwo
		} else {
			rightProduct <<= pf.powerTwo
		}

		if leftProduct <= rightProduct {
			leftProduct *= intPow(3, pf.powerThree)
		} else {
			rightProduct *= intPow(3, pf.powerThree)
		}

		// Re-derive each half from scratch. Assembling the factor lists
		// incrementally would save some trial division but costs a lot of
		// code for a one-time planning step.
		return ComputePrimeFactors(leftProduct), ComputePrimeFactors(rightProduct)
	}
}
