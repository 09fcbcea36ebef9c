// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"encoding/binary"

	"github.com/emmansun/gmsm/sm3"
)

// HashFunc is the dependency contract spec.md §6 describes for the hash
// primitive: any function that reduces a byte sequence of arbitrary length
// to a 32-byte digest. This package never implements SM3 itself — that is
// explicitly out of scope per spec.md §1 — it only consumes one, via
// github.com/emmansun/gmsm/sm3, the external collaborator spec.md hands to
// the signer and verifier.
type HashFunc func(msg []byte) [32]byte

// DefaultHashFunc is the SM3 implementation this package uses unless a
// caller overrides it through SignOptions.Hash.
func DefaultHashFunc(msg []byte) [32]byte {
	var out [32]byte
	h := sm3.New()
	h.Write(msg)
	copy(out[:], h.Sum(nil))
	return out
}

// Preprocessor transforms a message before it reaches the hash function.
// spec.md §9 leaves the ZA user-identifier preprocessing mandated by GB/T
// 32918.2 as an open question — "note but do not guess intent: whether
// interop with standards-compliant verifiers is required" — and asks for a
// pluggable hook so both modes are available without changing the signer
// or verifier core. RawPreprocessor (the default) preserves the source
// engine's behavior: e = H(M), no ZA. ZAPreprocessor opts into the
// standard's e = H(ZA ‖ M).
type Preprocessor interface {
	Preprocess(msg []byte, pub Point, h HashFunc) []byte
}

// RawPreprocessor implements the source engine's simplified behavior: the
// hash input is the message, unmodified. This is the default used by
// Engine.
type RawPreprocessor struct{}

// Preprocess returns msg unchanged.
func (RawPreprocessor) Preprocess(msg []byte, _ Point, _ HashFunc) []byte {
	return msg
}

// ZAPreprocessor implements the GB/T 32918.2 ZA construction:
//
//	ZA = H(ENTLA ‖ IDA ‖ a ‖ b ‖ xG ‖ yG ‖ xA ‖ yA)
//	hash input = ZA ‖ M
//
// grounded on the dromara/dongle SM2 example's getZA helper. UID defaults
// to the standard's "1234567812345678" sample identifier when left empty,
// matching that example's defaultUID convention.
type ZAPreprocessor struct {
	UID []byte
}

var defaultUID = []byte("1234567812345678")

// Preprocess returns ZA ‖ msg, where ZA is computed against the active
// curve parameters and the supplied public key.
func (z ZAPreprocessor) Preprocess(msg []byte, pub Point, h HashFunc) []byte {
	uid := z.UID
	if len(uid) == 0 {
		uid = defaultUID
	}

	coordLen := (activeParams.BitSize + 7) / 8
	za := make([]byte, 0, 2+len(uid)+coordLen*6)

	var entla [2]byte
	binary.BigEndian.PutUint16(entla[:], uint16(len(uid)*8))
	za = append(za, entla[:]...)
	za = append(za, uid...)
	za = append(za, padLeft(curveAVal.Bytes(), coordLen)...)
	za = append(za, padLeft(curveBVal.Bytes(), coordLen)...)
	za = append(za, padLeft(activeParams.Gx.Bytes(), coordLen)...)
	za = append(za, padLeft(activeParams.Gy.Bytes(), coordLen)...)
	xBytes, yBytes := pub.X.Bytes(), pub.Y.Bytes()
	za = append(za, xBytes[:]...)
	za = append(za, yBytes[:]...)

	digest := h(za)
	out := make([]byte, 0, len(digest)+len(msg))
	out = append(out, digest[:]...)
	out = append(out, msg...)
	return out
}

// padLeft left-pads b with zero bytes until it is size bytes long. If b is
// already at least that long it is returned unchanged.
func padLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// hashToScalar implements HashAdapter from spec.md §4.3: it hashes msg
// (after preprocessing) with h and reduces the big-endian digest modulo
// the active curve's group order n. Per spec.md, the "e == 0" substitution
// is the caller's (Signer/Verifier's) responsibility, not this adapter's —
// hashToScalar returns the raw reduction, including zero.
func hashToScalar(msg []byte, pub Point, h HashFunc, pre Preprocessor) *ModNScalar {
	if h == nil {
		h = DefaultHashFunc
	}
	if pre == nil {
		pre = RawPreprocessor{}
	}
	digest := h(pre.Preprocess(msg, pub, h))

	var e ModNScalar
	e.SetByteSlice(digest[:])
	return &e
}

// nonZeroHash applies the spec.md §4.4/§4.5 "if e == 0, set e = 1"
// substitution on top of hashToScalar.
func nonZeroHash(msg []byte, pub Point, h HashFunc, pre Preprocessor) *ModNScalar {
	e := hashToScalar(msg, pub, h, pre)
	if e.IsZero() {
		e.SetInt(1)
	}
	return e
}
