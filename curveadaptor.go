// Copyright 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import (
	"crypto/elliptic"
	"math/big"
)

// curveAdaptor implements the standard library's crypto/elliptic.Curve
// interface over this package's group law, so GroupOps can be reused by
// other packages that consume that interface (crypto/ecdsa among them),
// the same role the teacher's KoblitzCurve plays for secp256k1. It is
// exposed as SM2() rather than a concrete exported type, mirroring the
// teacher's S256() constructor.
type curveAdaptor struct {
	params *elliptic.CurveParams
}

var sm2Curve = &curveAdaptor{params: SM2Params().CurveParams}

// SM2 returns a crypto/elliptic.Curve implementation of the GB/T 32918.5
// recommended curve, backed by this package's field and group arithmetic.
func SM2() elliptic.Curve {
	return sm2Curve
}

// Params returns the parameters for the curve.
func (c *curveAdaptor) Params() *elliptic.CurveParams {
	return c.params
}

func bigToPoint(x, y *big.Int) Point {
	var p Point
	p.X.SetByteSlice(x.Bytes())
	p.Y.SetByteSlice(y.Bytes())
	return p
}

func pointToBig(p Point) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	return new(big.Int).SetBytes(xb[:]), new(big.Int).SetBytes(yb[:])
}

// IsOnCurve reports whether the affine point (x, y) satisfies the curve
// equation.
func (c *curveAdaptor) IsOnCurve(x, y *big.Int) bool {
	p := bigToPoint(x, y)
	return p.IsOnCurve()
}

// Add returns the sum of (x1, y1) and (x2, y2).
func (c *curveAdaptor) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1 := bigToPoint(x1, y1)
	p2 := bigToPoint(x2, y2)
	return pointToBig(AddAffine(p1, p2))
}

// Double returns 2*(x1, y1).
func (c *curveAdaptor) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p := bigToPoint(x1, y1)
	return pointToBig(doubleAffine(p))
}

// ScalarMult returns k*(x1, y1) where k is a big-endian integer.
func (c *curveAdaptor) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	p := bigToPoint(x1, y1)
	var scalar ModNScalar
	scalar.SetByteSlice(k)
	return pointToBig(ScalarMult(&scalar, p))
}

// ScalarBaseMult returns k*G where k is a big-endian integer.
func (c *curveAdaptor) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	var scalar ModNScalar
	scalar.SetByteSlice(k)
	return pointToBig(ScalarBaseMult(&scalar))
}
