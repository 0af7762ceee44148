package fftplan

import "errors"

// Sentinel errors returned by the validating planner-facing surface.
// The internal arithmetic trusts its callers and panics on contract
// violations; these errors cover input that arrives from outside the
// planner, such as a user-requested transform length.
var (
	// ErrInvalidLength is returned when a transform length is less than 1.
	ErrInvalidLength = errors.New("fftplan: invalid transform length")

	// ErrPrimeLength is returned when a prime factorization is handed to
	// PartitionFactors. Prime lengths cannot be split; the planner handles
	// them with a Rader-style construction instead.
	ErrPrimeLength = errors.New("fftplan: cannot partition a prime length")
)
