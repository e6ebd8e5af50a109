//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

// Polyvecl is a vector of L polynomials (the "short" dimension:
// secret s1, masking y, response z).
type Polyvecl []Poly

// Polyveck is a vector of K polynomials (the "tall" dimension: secret
// s2, public t, commitment w, hint h).
type Polyveck []Poly

// Matrix is the K*L public matrix A.
type Matrix []Polyvecl

// NewPolyvecl allocates a zeroed L-length vector.
func (p *Params) NewPolyvecl() Polyvecl {
	return make(Polyvecl, p.L)
}

// NewPolyveck allocates a zeroed K-length vector.
func (p *Params) NewPolyveck() Polyveck {
	return make(Polyveck, p.K)
}

// NewMatrix allocates a zeroed K*L matrix.
func (p *Params) NewMatrix() Matrix {
	m := make(Matrix, p.K)
	for i := range m {
		m[i] = p.NewPolyvecl()
	}
	return m
}

// expandMatrix fills mat with A[i][j] = polyUniform(rho, (i<<8)+j)
// (§4.G).
func (p *Params) expandMatrix(mat Matrix, rho []byte) {
	for i := 0; i < p.K; i++ {
		for j := 0; j < p.L; j++ {
			polyUniform(&mat[i][j], rho, uint16(i<<8+j))
		}
	}
}

// --- generic (length-independent) vector operations ---

func vecAdd(c, a, b []Poly) {
	for i := range c {
		polyAdd(&c[i], &a[i], &b[i])
	}
}

func vecSub(c, a, b []Poly) {
	for i := range c {
		polySub(&c[i], &a[i], &b[i])
	}
}

func vecReduce(v []Poly) {
	for i := range v {
		v[i].reduce()
	}
}

func vecCaddq(v []Poly) {
	for i := range v {
		v[i].caddq()
	}
}

func vecNTT(v []Poly) {
	for i := range v {
		v[i].ntt()
	}
}

func vecInvNTTToMont(v []Poly) {
	for i := range v {
		v[i].invNTTToMont()
	}
}

func vecShiftLeft(v []Poly) {
	for i := range v {
		v[i].shiftLeft()
	}
}

func vecChknorm(v []Poly, bound int32) int {
	for i := range v {
		if v[i].chknorm(bound) != 0 {
			return 1
		}
	}
	return 0
}

// pointwisePolyMontgomery computes c[i] = a*v[i] for every component,
// a single poly a times each poly in v.
func pointwisePolyMontgomery(c []Poly, a *Poly, v []Poly) {
	for i := range c {
		pointwiseMontgomery(&c[i], a, &v[i])
	}
}

// --- L/K specific wrappers ---

func (p *Params) polyvecUniformEta(v []Poly, seed []byte, nonce uint16, eta int) {
	for i := range v {
		polyUniformEta(&v[i], seed, nonce, eta)
		nonce++
	}
}

func (p *Params) polyvecUniformGamma1(v []Poly, seed []byte, nonceBase uint16) {
	for i := range v {
		p.polyUniformGamma1(&v[i], seed, uint16(p.L)*nonceBase+uint16(i))
	}
}

func (p *Params) polyveckPower2round(t1, t0, a Polyveck) {
	for i := range a {
		polyPower2round(&t1[i], &t0[i], &a[i])
	}
}

func (p *Params) polyveckDecompose(a1, a0, a Polyveck) {
	for i := range a {
		p.polyDecompose(&a1[i], &a0[i], &a[i])
	}
}

// polyveckMakeHint fills h and returns the total number of nonzero
// hint coefficients across all K polynomials.
func (p *Params) polyveckMakeHint(h, a0, a1 Polyveck) int {
	n := 0
	for i := range h {
		n += p.polyMakeHint(&h[i], &a0[i], &a1[i])
	}
	return n
}

func (p *Params) polyveckUseHint(b, a, h Polyveck) {
	for i := range b {
		p.polyUseHint(&b[i], &a[i], &h[i])
	}
}

func (p *Params) polyveckPackW1(out []byte, w1 Polyveck) {
	for i := range w1 {
		p.polyw1Pack(out[i*p.polyW1PackedBytes:], &w1[i])
	}
}

// polyvecMatrixPointwiseMontgomery computes t = mat * v (a matrix-
// vector product in NTT domain).
func (p *Params) polyvecMatrixPointwiseMontgomery(t Polyveck, mat Matrix, v Polyvecl) {
	for i := 0; i < p.K; i++ {
		p.polyveclPointwiseAccMontgomery(&t[i], mat[i], v)
	}
}

// polyveclPointwiseAccMontgomery computes w = sum_i u[i]*v[i], the dot
// product of two L-vectors in NTT domain.
func (p *Params) polyveclPointwiseAccMontgomery(w *Poly, u, v Polyvecl) {
	var t Poly
	pointwiseMontgomery(w, &u[0], &v[0])
	for i := 1; i < p.L; i++ {
		pointwiseMontgomery(&t, &u[i], &v[i])
		polyAdd(w, w, &t)
	}
}
