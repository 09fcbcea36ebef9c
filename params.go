// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// CurveParams bundles the domain parameters of a short-Weierstrass curve
// y² = x³ + a·x + b (mod p) together with its base point and group order.
//
// Per REDESIGN FLAG 1 (see SPEC_FULL.md §6), curve parameters are carried as
// a value rather than compiled-in package globals, so a single engine
// implementation can in principle serve an alternative prime-field
// Weierstrass curve.  In practice this package only ships the GB/T 32918.5
// recommended curve (see SM2Params), and the field/scalar arithmetic types
// still bind to a single active modulus pair set up by setActive — see
// the note on that function for why a fully general multi-curve arithmetic
// layer was not built out.
type CurveParams struct {
	*elliptic.CurveParams
	A *big.Int // curve coefficient a
}

// fromHex converts the passed hex string into a big integer pointer and will
// panic if there is an error.  This is only safe to use for hard-coded
// constants.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// SM2Params returns the domain parameters recommended by GB/T 32918.5 for
// the standard SM2 curve, exactly as given in spec.md §3.
func SM2Params() *CurveParams {
	return &CurveParams{
		CurveParams: &elliptic.CurveParams{
			Name:    "sm2p256v1",
			P:       fromHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF"),
			N:       fromHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123"),
			B:       fromHex("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93"),
			Gx:      fromHex("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"),
			Gy:      fromHex("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"),
			BitSize: 256,
		},
		A: fromHex("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC"),
	}
}

// validate performs basic sanity checks on a CurveParams value: that the
// required fields are present and that the base point actually lies on the
// curve it describes.  It does not attempt to prove n is prime or that the
// base point generates a subgroup of order exactly n — those are domain
// parameter design concerns, not something a consumer of this package can
// usefully re-derive at runtime.
func (cp *CurveParams) validate() error {
	if cp == nil || cp.CurveParams == nil || cp.A == nil {
		return makeError(ErrInvalidCurveParams, "curve parameters incomplete")
	}
	if cp.P == nil || cp.N == nil || cp.B == nil || cp.Gx == nil || cp.Gy == nil {
		return makeError(ErrInvalidCurveParams, "curve parameters incomplete")
	}
	lhs := new(big.Int).Mul(cp.Gy, cp.Gy)
	lhs.Mod(lhs, cp.P)

	rhs := new(big.Int).Mul(cp.Gx, cp.Gx)
	rhs.Mul(rhs, cp.Gx)
	ax := new(big.Int).Mul(cp.A, cp.Gx)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, cp.B)
	rhs.Mod(rhs, cp.P)

	if lhs.Cmp(rhs) != 0 {
		return makeError(ErrInvalidCurveParams, fmt.Sprintf("base point %s is not on the curve it describes", cp.Name))
	}
	return nil
}

// setActive installs the field prime and group order of cp as the moduli
// used by FieldVal and ModNScalar.  It is called once at package
// initialization time (see init, below).
//
// FieldVal/ModNScalar bind to a single package-level modulus pair rather
// than carrying their own modulus per value (see the note on FieldVal) so
// that the arithmetic stays as cheap as the teacher's own fixed-curve
// arithmetic. The consequence, matching the concurrency model described in
// spec.md §5, is that this package supports exactly one active curve at a
// time: concurrent Engines are safe only when they all share the curve
// installed by the most recent setActive call, which in practice
// is always SM2Params() since this module ships no second curve.
func (cp *CurveParams) setActive() {
	fieldPrimeVal.Set(cp.P)
	groupOrderVal.Set(cp.N)
	curveAVal.Set(cp.A)
	curveBVal.Set(cp.B)
	activeParams = cp
}

// activeParams, curveAVal, and curveBVal mirror fieldPrimeVal/groupOrderVal:
// package-level state describing the single curve currently installed.
var (
	activeParams *CurveParams
	curveAVal    = new(big.Int)
	curveBVal    = new(big.Int)
)

// basePoint returns the active curve's base point G in affine form.
func basePoint() Point {
	var pt Point
	pt.X.SetByteSlice(activeParams.Gx.Bytes())
	pt.Y.SetByteSlice(activeParams.Gy.Bytes())
	return pt
}

func init() {
	SM2Params().setActive()
}
