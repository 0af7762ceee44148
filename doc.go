// Package fftplan is the number-theoretic planning toolkit behind an FFT
// engine.
//
// Before any signal data is touched, a planner has to decide how a transform
// of length n decomposes: composite lengths split recursively into two
// balanced sub-transforms (mixed-radix decomposition), and prime lengths are
// handled through multiplicative-group index permutations in the style of
// Rader's algorithm, which need a primitive root and a modular inverse.
// This package answers both questions with exact integer arithmetic.
//
// The center of the API is PrimeFactors, the canonical prime factorization
// of one length with cached aggregate counts. Operations that conceptually
// mutate a PrimeFactors consume it and return fresh values instead, so a
// factorization in hand is never observed mid-update and independent
// lengths can be planned concurrently.
//
// Everything here is one-time planning cost, O(√n) at worst; none of it
// belongs on a per-sample path. Transform execution (butterfly kernels,
// twiddle tables, scratch layout, algorithm dispatch) is out of scope.
package fftplan
