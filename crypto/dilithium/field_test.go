//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

import "testing"

func TestMontgomeryReduceRoundTrip(t *testing.T) {
	for _, a := range []int32{0, 1, -1, q - 1, -(q - 1), 12345, -54321} {
		// a * R mod q, reduced back through Montgomery, should land on
		// the same residue class as a.
		prod := int64(a) * int64(montR)
		got := montgomeryReduce(prod)
		if freeze(got) != freeze(a) {
			t.Errorf("montgomeryReduce(%d*R) = %d, want residue %d", a, freeze(got), freeze(a))
		}
	}
}

func TestFreezeRange(t *testing.T) {
	for _, a := range []int32{0, q, -q, 2 * q, -(2 * q), 123456789, -123456789} {
		got := freeze(a)
		if got < 0 || got >= q {
			t.Errorf("freeze(%d) = %d, out of range [0,%d)", a, got, q)
		}
	}
}

func TestCaddqNonNegative(t *testing.T) {
	for _, a := range []int32{-1, -(q - 1), 0, q - 1} {
		got := caddq(a)
		if got < 0 {
			t.Errorf("caddq(%d) = %d, want >= 0", a, got)
		}
	}
}
