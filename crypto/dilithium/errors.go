//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dilithium

import "github.com/pkg/errors"

// Sentinel errors returned by this package. The key and signature
// length errors are wrapped with github.com/pkg/errors at the call
// site that detects them, so errors.Is still matches the sentinel
// through the wrap; the others are returned unwrapped.
var (
	errUnknownMode        = errors.New("dilithium: unknown mode")
	ErrBadKeyLength       = errors.New("dilithium: bad key length")
	ErrBadSignatureLength = errors.New("dilithium: bad signature length")
	ErrBadHintOmega       = errors.New("dilithium: invalid hint omega count")
	ErrBadHintOrder       = errors.New("dilithium: invalid hint ordering")
	ErrBadHintPadding     = errors.New("dilithium: invalid hint padding")
	ErrNormViolation      = errors.New("dilithium: response norm out of bounds")
	ErrChallengeMismatch  = errors.New("dilithium: challenge mismatch")
)
