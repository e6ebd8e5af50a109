//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// Rate, in bytes, of one Keccak-f[1600] squeeze block for each XOF
// width used by this scheme.
const (
	shake128Rate = 168
	shake256Rate = 136
)

// xof wraps golang.org/x/crypto/sha3's incremental SHAKE state. The
// spec's absorb/squeeze-with-cursor contract is exactly the Write/Read
// discipline of sha3.ShakeHash: Write absorbs, and the first Read call
// finalizes the sponge and starts squeezing, exactly like the
// reference's separate "absorb" and "finalize" steps collapsed into
// one. Hand-rolling Keccak-f[1600] here would just reimplement what
// this library already does.
type xof struct {
	h sha3.ShakeHash
}

func newXOF128() *xof {
	return &xof{h: sha3.NewShake128()}
}

func newXOF256() *xof {
	return &xof{h: sha3.NewShake256()}
}

// absorb writes one or more byte strings into the sponge, in order.
func (x *xof) absorb(parts ...[]byte) {
	for _, p := range parts {
		x.h.Write(p)
	}
}

// squeezeBlock reads exactly len(buf) bytes of output, continuing from
// wherever the previous squeeze left off.
func (x *xof) squeezeBlock(buf []byte) {
	if _, err := io.ReadFull(x.h, buf); err != nil {
		panic(err) // ShakeHash.Read never errors
	}
}

func (x *xof) reset() {
	x.h.Reset()
}

func nonceLE(nonce uint16) []byte {
	return []byte{byte(nonce), byte(nonce >> 8)}
}

// streamInit128 realizes dilithium_shake128_stream_init: absorb a
// 32-byte seed followed by a little-endian 16-bit nonce.
func streamInit128(seed []byte, nonce uint16) *xof {
	x := newXOF128()
	x.absorb(seed, nonceLE(nonce))
	return x
}

// streamInit256 realizes dilithium_shake256_stream_init: absorb a
// 64-byte seed followed by a little-endian 16-bit nonce.
func streamInit256(seed []byte, nonce uint16) *xof {
	x := newXOF256()
	x.absorb(seed, nonceLE(nonce))
	return x
}

// shake256Sum is the one-shot SHAKE256(dst, parts...) used for the
// collision-resistant hashes CRH and H in key generation and signing.
func shake256Sum(dst []byte, parts ...[]byte) {
	x := newXOF256()
	x.absorb(parts...)
	x.squeezeBlock(dst)
}
