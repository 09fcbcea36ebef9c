// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// Signature is an SM2 signature: a pair (r, s) with r, s ∈ [1, n-1] per
// spec.md §3.
type Signature struct {
	r ModNScalar
	s ModNScalar
}

// NewSignature instantiates a Signature from already-computed r and s
// values, without checking their range. Use ParseSignature when decoding
// attacker-controlled bytes instead.
func NewSignature(r, s *ModNScalar) *Signature {
	return &Signature{r: *r, s: *s}
}

// R returns the r component of the signature.
func (sig *Signature) R() ModNScalar {
	return sig.r
}

// S returns the s component of the signature.
func (sig *Signature) S() ModNScalar {
	return sig.s
}

// InRange reports whether both signature components satisfy the spec.md
// §3 range invariant r, s ∈ [1, n-1]. Verify consults this before doing any
// cryptographic work, per spec.md §7's "out-of-range signatures are
// rejected without cryptographic work".
func (sig *Signature) InRange() bool {
	return sig.r.InRange() && sig.s.InRange()
}

// Bytes serializes the signature as r ‖ s, each a 32-byte big-endian
// integer — the "256-bit big-endian where bytes are required" numeric
// encoding spec.md §6 calls for. The ASN.1 DER form is provided separately
// by DER/ParseDER (encoding.go).
func (sig *Signature) Bytes() [64]byte {
	var out [64]byte
	r := sig.r.Bytes()
	s := sig.s.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// ParseSignature decodes a 64-byte r ‖ s signature produced by Bytes. It
// does not itself range-check r and s; callers (or Verify) do that, since
// an out-of-range signature is a verification failure, not a parse error.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != 64 {
		return nil, makeError(ErrInvalidCurveParams, "signature must be exactly 64 bytes")
	}
	var sig Signature
	sig.r.SetByteSlice(b[:32])
	sig.s.SetByteSlice(b[32:])
	return &sig, nil
}
