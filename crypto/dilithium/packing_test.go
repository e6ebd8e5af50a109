//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

import "testing"

func samplePoly(seed int32, lo, hi int32) Poly {
	var p Poly
	span := int64(hi-lo) + 1
	state := int64(seed) + 12345
	for i := range p {
		state = (state*1103515245 + 12345) & 0x7FFFFFFF
		p[i] = lo + int32(state%span)
	}
	return p
}

func TestPolyT1RoundTrip(t *testing.T) {
	a := samplePoly(1, 0, 1023)
	buf := make([]byte, polyT1PackedBytes)
	polyt1Pack(buf, &a)
	var b Poly
	polyt1Unpack(&b, buf)
	if a != b {
		t.Fatalf("polyt1 round trip mismatch")
	}
}

func TestPolyT0RoundTrip(t *testing.T) {
	a := samplePoly(2, -4095, 4096)
	buf := make([]byte, polyT0PackedBytes)
	polyt0Pack(buf, &a)
	var b Poly
	polyt0Unpack(&b, buf)
	if a != b {
		t.Fatalf("polyt0 round trip mismatch")
	}
}

func TestPolyEtaRoundTrip(t *testing.T) {
	for _, mode := range []Mode{Mode2, Mode3, Mode5} {
		p, err := ParamsForMode(mode)
		if err != nil {
			t.Fatal(err)
		}
		a := samplePoly(3, -int32(p.Eta), int32(p.Eta))
		buf := make([]byte, p.polyEtaPackedBytes)
		p.polyetaPack(buf, &a)
		var b Poly
		p.polyetaUnpack(&b, buf)
		if a != b {
			t.Fatalf("%v: polyeta round trip mismatch", mode)
		}
	}
}

func TestPolyZRoundTrip(t *testing.T) {
	for _, mode := range []Mode{Mode2, Mode3, Mode5} {
		p, err := ParamsForMode(mode)
		if err != nil {
			t.Fatal(err)
		}
		a := samplePoly(4, -int32(p.Gamma1)+1, int32(p.Gamma1))
		buf := make([]byte, p.polyZPackedBytes)
		p.polyzPack(buf, &a)
		var b Poly
		p.polyzUnpack(&b, buf)
		if a != b {
			t.Fatalf("%v: polyz round trip mismatch", mode)
		}
	}
}

func TestUnpackSignatureRejectsBadOmega(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	if err != nil {
		t.Fatal(err)
	}
	sig := make([]byte, p.SignatureSize())
	idx := seedBytes + p.L*p.polyZPackedBytes
	sig[idx+p.Omega+0] = byte(p.Omega + 1) // out of range
	c := make([]byte, seedBytes)
	z := p.NewPolyvecl()
	h := p.NewPolyveck()
	if err := p.unpackSignature(c, z, h, sig); err != ErrBadHintOmega {
		t.Fatalf("expected ErrBadHintOmega, got %v", err)
	}
}

func TestUnpackSignatureRejectsNonMonotoneHint(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	if err != nil {
		t.Fatal(err)
	}
	sig := make([]byte, p.SignatureSize())
	idx := seedBytes + p.L*p.polyZPackedBytes
	sig[idx+0] = 5
	sig[idx+1] = 5 // duplicate index, not strictly increasing
	sig[idx+p.Omega+0] = 2
	for i := 1; i < p.K; i++ {
		sig[idx+p.Omega+i] = 2
	}
	c := make([]byte, seedBytes)
	z := p.NewPolyvecl()
	h := p.NewPolyveck()
	if err := p.unpackSignature(c, z, h, sig); err != ErrBadHintOrder {
		t.Fatalf("expected ErrBadHintOrder, got %v", err)
	}
}

func TestUnpackSignatureRejectsPaddingGarbage(t *testing.T) {
	p, err := ParamsForMode(Mode2)
	if err != nil {
		t.Fatal(err)
	}
	sig := make([]byte, p.SignatureSize())
	idx := seedBytes + p.L*p.polyZPackedBytes
	sig[idx+p.Omega-1] = 7 // nonzero in the padding region, all counts 0
	c := make([]byte, seedBytes)
	z := p.NewPolyvecl()
	h := p.NewPolyveck()
	if err := p.unpackSignature(c, z, h, sig); err != ErrBadHintPadding {
		t.Fatalf("expected ErrBadHintPadding, got %v", err)
	}
}

func TestPackSignatureUnpackRoundTrip(t *testing.T) {
	p, err := ParamsForMode(Mode3)
	if err != nil {
		t.Fatal(err)
	}
	z := p.NewPolyvecl()
	for i := range z {
		z[i] = samplePoly(int32(i), -int32(p.Gamma1)+1, int32(p.Gamma1))
	}
	h := p.NewPolyveck()
	h[0][0] = 1
	h[0][5] = 1
	h[p.K-1][255] = 1

	sig := make([]byte, p.SignatureSize())
	c := make([]byte, seedBytes)
	for i := range c {
		c[i] = byte(i)
	}
	p.packSignature(sig, c, z, h)

	gotC := make([]byte, seedBytes)
	gotZ := p.NewPolyvecl()
	gotH := p.NewPolyveck()
	if err := p.unpackSignature(gotC, gotZ, gotH, sig); err != nil {
		t.Fatalf("unpackSignature: %v", err)
	}
	for i := range c {
		if gotC[i] != c[i] {
			t.Fatalf("c mismatch at %d", i)
		}
	}
	for i := range z {
		if z[i] != gotZ[i] {
			t.Fatalf("z[%d] mismatch", i)
		}
	}
	for i := range h {
		if h[i] != gotH[i] {
			t.Fatalf("h[%d] mismatch", i)
		}
	}
}
