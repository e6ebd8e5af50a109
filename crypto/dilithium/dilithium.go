//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// logger receives structured events for key generation, signing, and
// the sign loop's rejection restarts. Silent by default; callers that
// want visibility call SetLogger.
var logger = zap.NewNop()

// SetLogger installs l as the package-wide event logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GenerateKey runs component 4.I's key generation: derive (rho,
// rhoprime, key) from a fresh seed, expand the public matrix A, sample
// the secret vectors s1/s2, and compute t = A*s1 + s2, split into
// (t1, t0). rnd defaults to crypto/rand.Reader when nil.
func GenerateKey(mode Mode, rnd io.Reader) (pk, sk []byte, err error) {
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, nil, err
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	var seed [seedBytes]byte
	if _, err := io.ReadFull(rnd, seed[:]); err != nil {
		return nil, nil, errors.Wrap(err, "dilithium: read seed")
	}

	seedbuf := make([]byte, 2*seedBytes+crhBytes)
	shake256Sum(seedbuf, seed[:])
	rho := seedbuf[:seedBytes]
	rhoprime := seedbuf[seedBytes : seedBytes+crhBytes]
	key := seedbuf[seedBytes+crhBytes:]

	mat := p.NewMatrix()
	p.expandMatrix(mat, rho)

	s1 := p.NewPolyvecl()
	p.polyvecUniformEta(s1, rhoprime, 0, p.Eta)

	s2 := p.NewPolyveck()
	p.polyvecUniformEta(s2, rhoprime, uint16(p.L), p.Eta)

	s1hat := make(Polyvecl, p.L)
	copy(s1hat, s1)
	vecNTT(s1hat)

	t := p.NewPolyveck()
	p.polyvecMatrixPointwiseMontgomery(t, mat, s1hat)
	vecReduce(t)
	vecInvNTTToMont(t)
	vecAdd(t, t, s2)
	vecCaddq(t)

	t1 := p.NewPolyveck()
	t0 := p.NewPolyveck()
	p.polyveckPower2round(t1, t0, t)

	pk = make([]byte, p.PublicKeySize())
	p.packPublicKey(pk, rho, t1)

	tr := make([]byte, crhBytes)
	shake256Sum(tr, pk)

	sk = make([]byte, p.SecretKeySize())
	p.packSecretKey(sk, rho, tr, key, t0, s1, s2)

	logger.Debug("dilithium: generated key pair",
		zap.Stringer("mode", mode),
		zap.Int("pk_bytes", len(pk)),
		zap.Int("sk_bytes", len(sk)))

	return pk, sk, nil
}

// Sign runs the Fiat-Shamir-with-Aborts signing loop of component 4.I.
// When rnd is nil, the masking seed rhoprime is derived deterministically
// from (key, mu) instead of fresh randomness, the scheme's "hedged off"
// mode; both modes share the same rejection loop below.
func Sign(mode Mode, sk, msg []byte, rnd io.Reader) (sig []byte, err error) {
	p, err := ParamsForMode(mode)
	if err != nil {
		return nil, err
	}
	if len(sk) != p.SecretKeySize() {
		return nil, errors.Wrapf(ErrBadKeyLength, "dilithium: secret key is %d bytes", len(sk))
	}

	rho := make([]byte, seedBytes)
	tr := make([]byte, crhBytes)
	key := make([]byte, seedBytes)
	t0 := p.NewPolyveck()
	s1 := p.NewPolyvecl()
	s2 := p.NewPolyveck()
	p.unpackSecretKey(rho, tr, key, t0, s1, s2, sk)

	mu := make([]byte, crhBytes)
	shake256Sum(mu, tr, msg)

	rhoprime := make([]byte, crhBytes)
	if rnd != nil {
		if _, err := io.ReadFull(rnd, rhoprime); err != nil {
			return nil, errors.Wrap(err, "dilithium: read masking seed")
		}
	} else {
		shake256Sum(rhoprime, key, mu)
	}

	mat := p.NewMatrix()
	p.expandMatrix(mat, rho)
	vecNTT(s1)
	vecNTT(s2)
	vecNTT(t0)

	sig = make([]byte, p.SignatureSize())
	w1buf := make([]byte, p.K*p.polyW1PackedBytes)

	var nonce uint16
	attempts := 0
	for {
		attempts++

		y := p.NewPolyvecl()
		p.polyvecUniformGamma1(y, rhoprime, nonce)
		nonce++

		z := make(Polyvecl, p.L)
		copy(z, y)
		vecNTT(z)

		w := p.NewPolyveck()
		p.polyvecMatrixPointwiseMontgomery(w, mat, z)
		vecReduce(w)
		vecInvNTTToMont(w)
		vecCaddq(w)

		w0 := p.NewPolyveck()
		w1 := p.NewPolyveck()
		p.polyveckDecompose(w1, w0, w)
		p.polyveckPackW1(w1buf, w1)

		shake256Sum(sig[:seedBytes], mu, w1buf)

		var cp Poly
		p.polyChallenge(&cp, sig[:seedBytes])
		cp.ntt()

		pointwisePolyMontgomery(z, &cp, s1)
		vecInvNTTToMont(z)
		vecAdd(z, z, y)
		vecReduce(z)
		if vecChknorm(z, int32(p.Gamma1-p.Beta)) != 0 {
			logger.Debug("dilithium: sign restart", zap.String("reason", "z norm"), zap.Int("attempt", attempts))
			continue
		}

		h := p.NewPolyveck()
		pointwisePolyMontgomery(h, &cp, s2)
		vecInvNTTToMont(h)
		vecSub(w0, w0, h)
		vecReduce(w0)
		if vecChknorm(w0, int32(p.Gamma2-p.Beta)) != 0 {
			logger.Debug("dilithium: sign restart", zap.String("reason", "w0 norm"), zap.Int("attempt", attempts))
			continue
		}

		pointwisePolyMontgomery(h, &cp, t0)
		vecInvNTTToMont(h)
		vecReduce(h)
		if vecChknorm(h, int32(p.Gamma2)) != 0 {
			logger.Debug("dilithium: sign restart", zap.String("reason", "ct0 norm"), zap.Int("attempt", attempts))
			continue
		}

		vecAdd(w0, w0, h)
		n := p.polyveckMakeHint(h, w0, w1)
		if n > p.Omega {
			logger.Debug("dilithium: sign restart", zap.String("reason", "hint weight"), zap.Int("attempt", attempts))
			continue
		}

		p.packSignature(sig, nil, z, h)
		logger.Debug("dilithium: signed", zap.Stringer("mode", mode), zap.Int("attempts", attempts))
		return sig, nil
	}
}

// Verify runs component 4.I's verification: recompute the commitment
// w1 from z, c, and t1, reconcile it against the signed hints h, and
// check the recomputed challenge against the one carried in sig.
func Verify(mode Mode, pk, msg, sig []byte) error {
	p, err := ParamsForMode(mode)
	if err != nil {
		return err
	}
	if len(pk) != p.PublicKeySize() {
		return errors.Wrapf(ErrBadKeyLength, "dilithium: public key is %d bytes", len(pk))
	}
	if len(sig) != p.SignatureSize() {
		return errors.Wrapf(ErrBadSignatureLength, "dilithium: signature is %d bytes", len(sig))
	}

	rho := make([]byte, seedBytes)
	t1 := p.NewPolyveck()
	p.unpackPublicKey(rho, t1, pk)

	c := make([]byte, seedBytes)
	z := p.NewPolyvecl()
	h := p.NewPolyveck()
	if err := p.unpackSignature(c, z, h, sig); err != nil {
		return err
	}

	if vecChknorm(z, int32(p.Gamma1-p.Beta)) != 0 {
		return ErrNormViolation
	}

	tr := make([]byte, crhBytes)
	shake256Sum(tr, pk)
	mu := make([]byte, crhBytes)
	shake256Sum(mu, tr, msg)

	var cp Poly
	p.polyChallenge(&cp, c)
	cp.ntt()

	mat := p.NewMatrix()
	p.expandMatrix(mat, rho)

	vecNTT(z)
	w := p.NewPolyveck()
	p.polyvecMatrixPointwiseMontgomery(w, mat, z)

	vecShiftLeft(t1)
	vecNTT(t1)
	ct1 := p.NewPolyveck()
	pointwisePolyMontgomery(ct1, &cp, t1)
	vecSub(w, w, ct1)
	vecReduce(w)
	vecInvNTTToMont(w)
	vecCaddq(w)

	w1 := p.NewPolyveck()
	p.polyveckUseHint(w1, w, h)

	buf := make([]byte, p.K*p.polyW1PackedBytes)
	p.polyveckPackW1(buf, w1)

	c2 := make([]byte, seedBytes)
	shake256Sum(c2, mu, buf)

	if !bytes.Equal(c, c2) {
		logger.Debug("dilithium: verify failed", zap.Stringer("mode", mode))
		return ErrChallengeMismatch
	}

	logger.Debug("dilithium: verified", zap.Stringer("mode", mode))
	return nil
}
