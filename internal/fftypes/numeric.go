package fftypes

// Unsigned is a type constraint for the unsigned integer types used by the
// modular arithmetic primitives.
type Unsigned interface {
	~uint | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is a type constraint for the signed integer types accepted by the
// extended Euclidean algorithm.
type Signed interface {
	~int | ~int16 | ~int32 | ~int64
}

// Integer is a type constraint covering every integer type in Unsigned and
// Signed.
type Integer interface {
	Unsigned | Signed
}
