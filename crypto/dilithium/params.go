//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package dilithium implements the CRYSTALS-Dilithium module-lattice
// digital signature scheme at security levels Mode2, Mode3, and Mode5:
// key generation, signing by Fiat-Shamir with Aborts, and verification,
// over the ring R_q = Z_q[X]/(X^256+1) with q = 8380417.
package dilithium

import "fmt"

// Mode selects a Dilithium parameter set.
type Mode int

// Supported parameter sets.
const (
	Mode2 Mode = iota
	Mode3
	Mode5
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case Mode2:
		return "Dilithium2"
	case Mode3:
		return "Dilithium3"
	case Mode5:
		return "Dilithium5"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Byte widths shared across all parameter sets.
const (
	seedBytes = 32
	crhBytes  = 64 // widened tr/mu digest width, see DESIGN.md Open Question 1

	polyT1PackedBytes = 320
	polyT0PackedBytes = 416
)

// Params holds the per-mode constants of component 4.I. One instance
// exists per Mode, constructed by ParamsForMode; all arithmetic is
// dispatched at runtime off this record rather than via compile-time
// generics, so a single built library exposes all three modes.
type Params struct {
	Mode Mode

	K, L        int
	Eta         int
	Tau         int
	Beta        int
	Gamma1      int
	Gamma2      int
	Omega       int
	CTildeBytes int

	polyEtaPackedBytes int
	polyZPackedBytes   int
	polyW1PackedBytes  int
}

// ParamsForMode returns the parameter record for mode.
func ParamsForMode(mode Mode) (*Params, error) {
	switch mode {
	case Mode2:
		return &Params{
			Mode: Mode2,
			K:    4, L: 4,
			Eta: 2, Tau: 39, Beta: 78,
			Gamma1: 1 << 17, Gamma2: (q - 1) / 88,
			Omega: 80, CTildeBytes: 32,
			polyEtaPackedBytes: 96,
			polyZPackedBytes:   576,
			polyW1PackedBytes:  192,
		}, nil
	case Mode3:
		return &Params{
			Mode: Mode3,
			K:    6, L: 5,
			Eta: 4, Tau: 49, Beta: 196,
			Gamma1: 1 << 19, Gamma2: (q - 1) / 32,
			Omega: 55, CTildeBytes: 32,
			polyEtaPackedBytes: 128,
			polyZPackedBytes:   640,
			polyW1PackedBytes:  128,
		}, nil
	case Mode5:
		return &Params{
			Mode: Mode5,
			K:    8, L: 7,
			Eta: 2, Tau: 60, Beta: 120,
			Gamma1: 1 << 19, Gamma2: (q - 1) / 32,
			Omega: 75, CTildeBytes: 32,
			polyEtaPackedBytes: 96,
			polyZPackedBytes:   640,
			polyW1PackedBytes:  128,
		}, nil
	default:
		return nil, errUnknownMode
	}
}

// PublicKeySize returns the encoded public key length in bytes.
func (p *Params) PublicKeySize() int {
	return seedBytes + p.K*polyT1PackedBytes
}

// SecretKeySize returns the encoded secret key length in bytes.
//
// This follows the widened tr convention (DESIGN.md Open Question 1):
// rho(32) || key(32) || tr(64) || s1 || s2 || t0.
func (p *Params) SecretKeySize() int {
	return 2*seedBytes + crhBytes + p.L*p.polyEtaPackedBytes + p.K*p.polyEtaPackedBytes + p.K*polyT0PackedBytes
}

// SignatureSize returns the encoded signature length in bytes.
func (p *Params) SignatureSize() int {
	return seedBytes + p.L*p.polyZPackedBytes + p.Omega + p.K
}
