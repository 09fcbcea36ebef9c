// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import "math/big"

// ModNScalar implements modular arithmetic over the curve's group order n.  It is the sibling of FieldVal: same chainable
// API, same big.Int backing, different modulus.  Signature components (r,
// s), private keys, and nonces are all represented as ModNScalar values.
//
// The duplication between FieldVal and ModNScalar mirrors the teacher
// package's own split between its FieldVal and ModNScalar types — GB/T
// 32918 genuinely needs arithmetic modulo two different moduli (the field
// prime p for point coordinates, the group order n for scalars), and
// collapsing them into one generic type would obscure which modulus a
// given value is reduced against at the call site.
type ModNScalar struct {
	n *big.Int
}

// groupOrderVal is set by params.go during package initialization to the
// active curve's group order n.  All ModNScalar arithmetic reduces modulo
// this value.
var groupOrderVal = new(big.Int)

func (s *ModNScalar) int() *big.Int {
	if s.n == nil {
		s.n = new(big.Int)
	}
	return s.n
}

func (s *ModNScalar) reduce() *ModNScalar {
	v := s.int()
	v.Mod(v, groupOrderVal)
	return s
}

// SetInt sets the scalar to the passed integer and normalizes it.
func (s *ModNScalar) SetInt(ui uint64) *ModNScalar {
	s.int().SetUint64(ui)
	return s.reduce()
}

// Set sets the scalar equal to the passed one.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.int().Set(val.int())
	return s
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian
// unsigned integer, reduces it modulo the group order, and stores the
// result. It returns whether the original value before reduction overflowed
// the group order, matching the overflow-detection idiom this type's
// decred namesake exposes.
func (s *ModNScalar) SetByteSlice(b []byte) (overflow bool) {
	v := new(big.Int).SetBytes(b)
	overflow = v.Cmp(groupOrderVal) >= 0
	s.int().Mod(v, groupOrderVal)
	return overflow
}

// SetBigInt sets the scalar from an arbitrary big.Int, reducing it modulo
// the group order.
func (s *ModNScalar) SetBigInt(v *big.Int) *ModNScalar {
	s.int().Mod(v, groupOrderVal)
	return s
}

// SetHex decodes the passed big-endian hex string into the scalar, reducing
// it modulo the group order.
func (s *ModNScalar) SetHex(hexString string) *ModNScalar {
	if len(hexString)%2 != 0 {
		hexString = "0" + hexString
	}
	return s.SetBigInt(fromHex(hexString))
}

// IsZero returns whether the scalar is equal to zero.
func (s *ModNScalar) IsZero() bool {
	return s.int().Sign() == 0
}

// Equals returns whether the two scalars are the same.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.int().Cmp(val.int()) == 0
}

// InRange reports whether the scalar, interpreted as the range [0, n), lies
// in [1, n-1] — the range every valid private key, nonce, and signature
// component must satisfy per spec.md §3.
func (s *ModNScalar) InRange() bool {
	return s.int().Sign() > 0 && s.int().Cmp(groupOrderVal) < 0
}

// Add adds the passed value to the scalar and stores the result.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	s.int().Add(s.int(), val.int())
	return s.reduce()
}

// Add2 adds the two passed scalars together and stores the result.
func (s *ModNScalar) Add2(val1, val2 *ModNScalar) *ModNScalar {
	s.int().Add(val1.int(), val2.int())
	return s.reduce()
}

// AddInt adds the passed integer to the scalar and stores the result.
func (s *ModNScalar) AddInt(ui uint64) *ModNScalar {
	s.int().Add(s.int(), new(big.Int).SetUint64(ui))
	return s.reduce()
}

// Negate negates the scalar.
func (s *ModNScalar) Negate() *ModNScalar {
	s.int().Neg(s.int())
	return s.reduce()
}

// Sub subtracts the passed value from the scalar and stores the result.
func (s *ModNScalar) Sub(val *ModNScalar) *ModNScalar {
	s.int().Sub(s.int(), val.int())
	return s.reduce()
}

// Mul multiplies the scalar by the passed one and stores the result.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	s.int().Mul(s.int(), val.int())
	return s.reduce()
}

// Mul2 multiplies the two passed scalars together and stores the result.
func (s *ModNScalar) Mul2(val1, val2 *ModNScalar) *ModNScalar {
	s.int().Mul(val1.int(), val2.int())
	return s.reduce()
}

// Inverse finds the modular multiplicative inverse of the scalar modulo the
// group order using the extended binary GCD algorithm, sharing its
// implementation with FieldVal.Inverse (see invModBinaryGCD). inv(0) is 0
// by convention; see the note on FieldVal.Inverse.
func (s *ModNScalar) Inverse() *ModNScalar {
	s.int().Set(invModBinaryGCD(s.int(), groupOrderVal))
	return s
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	v := s.int().Bytes()
	copy(b[32-len(v):], v)
	return b
}

// BigInt returns a copy of the scalar's value as a big.Int. Used at the
// API boundary (e.g. encoding.go) where callers expect math/big values.
func (s *ModNScalar) BigInt() *big.Int {
	return new(big.Int).Set(s.int())
}

// String returns the scalar as a human-readable hex string.
func (s *ModNScalar) String() string {
	return s.int().Text(16)
}
