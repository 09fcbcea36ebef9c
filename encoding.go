// Copyright 2024 The dromara/dongle contributors
// Adapted for this package's signature type.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptoAsn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// DER encodes and decodes a Signature as the ASN.1 SEQUENCE { r INTEGER, s
// INTEGER } most third-party SM2/ECDSA tooling expects on the wire, using
// golang.org/x/crypto/cryptobyte — the same library the dromara/dongle SM2
// example in the retrieval pack uses for its own signature transport. This
// is deliberately the only wire format this package offers beyond the
// fixed-width Bytes()/ParseSignature() pair: certificate/PKIX-level
// encoding is out of scope per spec.md §1.

// DER returns the ASN.1 DER encoding of sig.
func (sig *Signature) DER() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cryptoAsn1.SEQUENCE, func(child *cryptobyte.Builder) {
		child.AddASN1BigInt(sig.r.BigInt())
		child.AddASN1BigInt(sig.s.BigInt())
	})
	return b.Bytes()
}

// ParseDER decodes an ASN.1 DER-encoded signature produced by DER.
func ParseDER(der []byte) (*Signature, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cryptoAsn1.SEQUENCE) || !input.Empty() {
		return nil, makeError(ErrInvalidCurveParams, "signature: malformed DER sequence")
	}

	r, s := new(big.Int), new(big.Int)
	if !inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return nil, makeError(ErrInvalidCurveParams, "signature: malformed DER integers")
	}

	var rScalar, sScalar ModNScalar
	rScalar.SetBigInt(r)
	sScalar.SetBigInt(s)
	return NewSignature(&rScalar, &sScalar), nil
}
