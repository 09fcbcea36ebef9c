// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import "math/big"

// FieldVal implements modular arithmetic over the curve's field prime p.  Internally it is backed by a normalized math/big integer
// rather than the 10x26-bit limb representation used by some production
// secp256k1 implementations — see the note in DESIGN.md on why that tradeoff
// was made for this curve.  The exported API intentionally mirrors that
// style of field type: chainable mutating methods that return the receiver,
// so expressions such as Add(y).Mul(z) read the way the arithmetic is
// described in the GB/T 32918 reference formulas.
//
// The zero value of FieldVal is zero.  A FieldVal must be associated with a
// modulus before use; this package only ever constructs them via the
// curve's fixed field prime, never user-supplied, so that association is
// implicit.
type FieldVal struct {
	n *big.Int
}

// fieldPrimeVal is set by params.go during package initialization to the
// active curve's field prime.  All FieldVal arithmetic reduces modulo this
// value.
var fieldPrimeVal = new(big.Int)

func (f *FieldVal) int() *big.Int {
	if f.n == nil {
		f.n = new(big.Int)
	}
	return f.n
}

func (f *FieldVal) reduce() *FieldVal {
	v := f.int()
	v.Mod(v, fieldPrimeVal)
	return f
}

// SetInt sets the field value to the passed integer and normalizes it.
func (f *FieldVal) SetInt(ui uint64) *FieldVal {
	f.int().SetUint64(ui)
	return f.reduce()
}

// Set sets the field value equal to the passed one.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.int().Set(val.int())
	return f
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian
// unsigned integer, reduces it modulo the field prime, and stores the
// result.  Unlike decred's FieldVal, there is no silent 32-byte truncation:
// byte slices longer than 32 bytes are still reduced correctly since the
// backing representation is arbitrary precision.
func (f *FieldVal) SetByteSlice(b []byte) *FieldVal {
	f.int().SetBytes(b)
	return f.reduce()
}

// SetHex decodes the passed big-endian hex string into the field value.
func (f *FieldVal) SetHex(hexString string) *FieldVal {
	if len(hexString)%2 != 0 {
		hexString = "0" + hexString
	}
	return f.SetByteSlice(fromHex(hexString).Bytes())
}

// Normalize is a no-op for this representation: every mutating method
// already leaves the value fully reduced into [0, p).  It is kept so call
// sites written against the usual FieldVal idiom (which does require an
// explicit normalize after lazily-reduced limb arithmetic) continue to
// read naturally.
func (f *FieldVal) Normalize() *FieldVal {
	return f
}

// IsZero returns whether the field value is equal to zero.
func (f *FieldVal) IsZero() bool {
	return f.int().Sign() == 0
}

// Equals returns whether the two field values are the same.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.int().Cmp(val.int()) == 0
}

// Add adds the passed value to the field value and stores the result.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	f.int().Add(f.int(), val.int())
	return f.reduce()
}

// Add2 adds the two passed field values together and stores the result.
func (f *FieldVal) Add2(val1, val2 *FieldVal) *FieldVal {
	f.int().Add(val1.int(), val2.int())
	return f.reduce()
}

// AddInt adds the passed integer to the field value and stores the result.
func (f *FieldVal) AddInt(ui uint64) *FieldVal {
	f.int().Add(f.int(), new(big.Int).SetUint64(ui))
	return f.reduce()
}

// Negate negates the field value.  The magnitude parameter is accepted for
// call-site compatibility with the limb-based idiom this API mirrors (where
// it bounds the number of moduli subtracted); since this representation
// reduces eagerly, it has no effect on the result.
func (f *FieldVal) Negate(magnitude uint32) *FieldVal {
	f.int().Neg(f.int())
	return f.reduce()
}

// Mul multiplies the field value by the passed one and stores the result.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	f.int().Mul(f.int(), val.int())
	return f.reduce()
}

// Mul2 multiplies the two passed field values together and stores the
// result.
func (f *FieldVal) Mul2(val1, val2 *FieldVal) *FieldVal {
	f.int().Mul(val1.int(), val2.int())
	return f.reduce()
}

// MulInt multiplies the field value by the passed integer and stores the
// result.
func (f *FieldVal) MulInt(ui uint64) *FieldVal {
	f.int().Mul(f.int(), new(big.Int).SetUint64(ui))
	return f.reduce()
}

// Square squares the field value and stores the result.
func (f *FieldVal) Square() *FieldVal {
	f.int().Mul(f.int(), f.int())
	return f.reduce()
}

// SquareVal squares the passed value and stores the result.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	f.int().Mul(val.int(), val.int())
	return f.reduce()
}

// Inverse finds the modular multiplicative inverse of the field value
// modulo the field prime using the extended binary GCD algorithm and
// stores the result.
//
// inv(0) is defined to be 0 by convention, matching the behavior of the
// GB/T 32918 reference implementations this package is modeled on (see
// invModBinaryGCD). No path in this package's signing or verification code
// ever calls Inverse on a value it has not already established is nonzero,
// so that convention never influences a produced signature or verification
// result.
func (f *FieldVal) Inverse() *FieldVal {
	f.int().Set(invModBinaryGCD(f.int(), fieldPrimeVal))
	return f
}

// Bytes returns the field value as a 32-byte big-endian array.
func (f *FieldVal) Bytes() [32]byte {
	var b [32]byte
	v := f.int().Bytes()
	copy(b[32-len(v):], v)
	return b
}

// String returns the field value as a human-readable hex string.
func (f *FieldVal) String() string {
	return f.int().Text(16)
}

// invModBinaryGCD computes a⁻¹ mod m using the extended binary GCD
// (Stein's) algorithm.  It returns 0 when a is 0 mod m, matching the
// zero-inverse convention documented on FieldVal.Inverse and ModNScalar.Inverse.
func invModBinaryGCD(a, m *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}

	u := new(big.Int).Mod(a, m)
	if u.Sign() == 0 {
		return new(big.Int)
	}
	v := new(big.Int).Set(m)
	x1 := big.NewInt(1)
	x2 := new(big.Int)

	one := big.NewInt(1)
	for u.Cmp(one) != 0 && v.Cmp(one) != 0 {
		for u.Bit(0) == 0 {
			u.Rsh(u, 1)
			if x1.Bit(0) == 0 {
				x1.Rsh(x1, 1)
			} else {
				x1.Add(x1, m)
				x1.Rsh(x1, 1)
			}
		}
		for v.Bit(0) == 0 {
			v.Rsh(v, 1)
			if x2.Bit(0) == 0 {
				x2.Rsh(x2, 1)
			} else {
				x2.Add(x2, m)
				x2.Rsh(x2, 1)
			}
		}
		if u.Cmp(v) >= 0 {
			u.Sub(u, v)
			x1.Sub(x1, x2)
		} else {
			v.Sub(v, u)
			x2.Sub(x2, x1)
		}
	}

	var result *big.Int
	if u.Cmp(one) == 0 {
		result = x1
	} else {
		result = x2
	}
	result.Mod(result, m)
	if result.Sign() < 0 {
		result.Add(result, m)
	}
	return result
}
