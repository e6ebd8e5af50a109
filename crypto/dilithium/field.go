//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

// Field constants for the Dilithium ring R_q = Z_q[X]/(X^256+1).
const (
	q            = 8380417
	qinv   int64 = 58728449 // q^(-1) mod 2^32
	montR  int32 = -4186625 // 2^32 mod q, in two's complement int32 form
	d            = 13
	rootOfUnity  = 1753
)

// montgomeryReduce computes a * R^(-1) mod q for a in (-q*2^31, q*2^31),
// returning a value in (-q, q).
func montgomeryReduce(a int64) int32 {
	t := int32(a) * int32(qinv)
	return int32((a - int64(t)*q) >> 32)
}

// reduce32 reduces a to a representative in [-6283009, 6283008], for
// a <= 2^31 - 2^22 - 1.
func reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*q
}

// caddq conditionally adds q to a so that the result lies in [0, q) when
// a was already in (-q, q).
func caddq(a int32) int32 {
	return a + ((a >> 31) & q)
}

// freeze reduces a to a unique representative in [0, q).
func freeze(a int32) int32 {
	return caddq(reduce32(a))
}
