// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Rng is the façade spec.md §4.5 describes: a source of uniformly
// distributed integers in [1, n-1]. Production code must only construct
// one over crypto/rand (see CryptoRand); the io.Reader seam exists so
// tests can inject a deterministic source — e.g. to reproduce the
// known-answer test vectors in spec.md §8 — without an insecure RNG ever
// being reachable from production code paths.
type Rng struct {
	reader io.Reader
}

// CryptoRand returns an Rng backed by crypto/rand.Reader, the only
// entropy source this package accepts in production.
func CryptoRand() Rng {
	return Rng{reader: rand.Reader}
}

// NewDeterministicRng returns an Rng backed by the supplied reader. This is
// intended for tests only: an io.Reader that is not a CSPRNG must never be
// wired into production signing. There is no compile-time way to enforce
// that restriction in Go, so it is enforced as a naming/usage convention —
// see the warning in SPEC_FULL.md §3 and DESIGN.md.
func NewDeterministicRng(r io.Reader) Rng {
	return Rng{reader: r}
}

// Scalar draws a uniformly distributed ModNScalar in [1, n-1] using
// rejection sampling: a candidate is read from the underlying reader,
// interpreted as a 256-bit big-endian unsigned integer, and retried
// whenever it is zero or falls outside [1, n-1]. This keeps the sampling
// unbiased, unlike a naïve "mod n" reduction which skews the distribution
// very slightly low. It returns ErrRngFailure if the reader itself errors.
func (rg Rng) Scalar() (*ModNScalar, error) {
	buf := make([]byte, 32)
	for attempt := 0; attempt < maxRngAttempts; attempt++ {
		if _, err := io.ReadFull(rg.reader, buf); err != nil {
			return nil, makeError(ErrRngFailure, "rng: "+err.Error())
		}
		v := new(big.Int).SetBytes(buf)
		if v.Sign() == 0 || v.Cmp(groupOrderVal) >= 0 {
			continue
		}
		var s ModNScalar
		s.SetBigInt(v)
		return &s, nil
	}
	return nil, makeError(ErrRngFailure, "rng: failed to draw an in-range scalar")
}

// maxRngAttempts bounds the rejection-sampling loop in Scalar. Since the
// group order n is only a handful of bits short of 2^256, the probability
// that a sample is out of range is on the order of 2^-32; this bound exists
// purely as a defense against a broken reader, not because the happy path
// is expected to need more than one or two draws.
const maxRngAttempts = 256
