package fftplan

import (
	"github.com/cwbudde/algo-fft-plan/internal/fftypes"
	m "github.com/cwbudde/algo-fft-plan/internal/math"
)

// PrimeFactor is a single prime power: Value^Count.
// The canonical definition is in internal/math.
type PrimeFactor = m.PrimeFactor

// PrimeFactors is the canonical prime factorization of a transform length.
// The canonical definition is in internal/math.
type PrimeFactors = m.PrimeFactors

// Unsigned is the type constraint for the unsigned integer arguments of the
// modular arithmetic primitives.
// The canonical definition is in internal/fftypes.
type Unsigned = fftypes.Unsigned

// Signed is the type constraint for the signed integer arguments of the
// extended Euclidean algorithm.
// The canonical definition is in internal/fftypes.
type Signed = fftypes.Signed

// Integer is the type constraint covering both Unsigned and Signed.
// The canonical definition is in internal/fftypes.
type Integer = fftypes.Integer
