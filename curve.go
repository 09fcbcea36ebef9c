// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// References:
//   [GB/T 32918.1]: Public key cryptographic algorithm SM2 based on
//     elliptic curves — Part 1: General
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes,
//     Vanstone)

// This file implements the elliptic-curve group law described in spec.md
// §4.2. Two representations coexist, matching the two strategies spec.md
// treats as one abstract layer:
//
//   - Point, an affine (x, y) pair with an explicit infinity flag, and
//     AddAffine/ScalarMultAffine, a straightforward reference
//     implementation useful for testing and for cross-checking the
//     accelerated path.
//   - JacobianPoint, a projective (X, Y, Z) triple, and
//     addJacobian/doubleJacobian/ScalarMult, the accelerated internal
//     path used by Sign and Verify. It converts back to affine at the API
//     boundary (JacobianPoint.ToAffine).
//
// Unlike the secp256k1 formulas this package's teacher specializes (which
// assume a = 0 and therefore drop the a·Z⁴ term entirely), the SM2 curve
// has a = p - 3 ≠ 0, so the generic Jacobian doubling formula from spec.md
// §4.2 is used throughout rather than the teacher's a=0 fast paths.

// Point is an affine point on the curve, or the point at infinity (the
// group identity element O).
type Point struct {
	X, Y     FieldVal
	infinity bool
}

// InfinityPoint returns the point at infinity.
func InfinityPoint() Point {
	return Point{infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// Equals reports whether p and q represent the same affine point.
func (p *Point) Equals(q *Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y)
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + a·x + b (mod p). The
// point at infinity is considered to be on the curve.
func (p *Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	var lhs, rhs, t FieldVal
	lhs.SquareVal(&p.Y)
	rhs.SquareVal(&p.X).Mul(&p.X)
	t.SetByteSlice(curveAVal.Bytes()).Mul(&p.X)
	rhs.Add(&t)
	t.SetByteSlice(curveBVal.Bytes())
	rhs.Add(&t)
	return lhs.Equals(&rhs)
}

// AddAffine adds two affine points using the reference formulas of
// spec.md §4.2:
//
//	If either operand is infinity, return the other.
//	If x1 == x2 and y1 != y2, return infinity.
//	Otherwise derive the chord/tangent slope λ and the resulting point.
func AddAffine(p1, p2 Point) Point {
	if p1.infinity {
		return p2
	}
	if p2.infinity {
		return p1
	}
	if p1.X.Equals(&p2.X) {
		if !p1.Y.Equals(&p2.Y) {
			return InfinityPoint()
		}
		return doubleAffine(p1)
	}

	var lambda, num, den FieldVal
	num.Set(&p2.Y).Add(negFieldVal(&p1.Y))
	den.Set(&p2.X).Add(negFieldVal(&p1.X))
	lambda.Set(&den).Inverse().Mul(&num)

	return affineFromLambda(lambda, p1.X, p2.X, p1.Y)
}

// doubleAffine doubles the affine point p using the tangent-slope formula
// λ = (3x₁² + a)·(2y₁)⁻¹ mod p from spec.md §4.2.
func doubleAffine(p Point) Point {
	if p.infinity || p.Y.IsZero() {
		return InfinityPoint()
	}
	var lambda, num, den, three, a, two FieldVal
	three.SetInt(3)
	a.SetByteSlice(curveAVal.Bytes())
	two.SetInt(2)

	num.SquareVal(&p.X).Mul(&three).Add(&a)
	den.Set(&p.Y).Mul(&two)
	lambda.Set(&den).Inverse().Mul(&num)

	return affineFromLambda(lambda, p.X, p.X, p.Y)
}

// affineFromLambda finishes an affine addition/doubling given the slope λ
// and the two input points' x values (x1, x2 — equal for doubling) and
// p1's y value: x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1.
func affineFromLambda(lambda, x1, x2, y1 FieldVal) Point {
	var x3, y3, t FieldVal
	x3.SquareVal(&lambda).Add(negFieldVal(&x1)).Add(negFieldVal(&x2))
	t.Set(&x1).Add(negFieldVal(&x3))
	y3.Set(&lambda).Mul(&t).Add(negFieldVal(&y1))
	return Point{X: x3, Y: y3}
}

// negFieldVal returns -v mod p as a new value, leaving v unmodified.
func negFieldVal(v *FieldVal) *FieldVal {
	var n FieldVal
	n.Set(v).Negate(1)
	return &n
}

// ScalarMultAffine computes [k]P using double-and-add over the affine
// reference addition. It is the slow reference path spec.md §4.2 calls
// for; production signing and verification use ScalarMult instead. It
// exists so tests can assert the two group-operation strategies agree, per
// spec.md §8.
func ScalarMultAffine(k *ModNScalar, p Point) Point {
	result := InfinityPoint()
	current := p
	kv := k.BigInt()
	for kv.Sign() > 0 {
		if kv.Bit(0) == 1 {
			result = AddAffine(result, current)
		}
		current = doubleAffine(current)
		kv.Rsh(kv, 1)
	}
	return result
}

// JacobianPoint is a point in Jacobian projective coordinates: the affine
// point it represents is (X/Z², Y/Z³). Z == 0 denotes the point at
// infinity.
type JacobianPoint struct {
	X, Y, Z FieldVal
}

// AffineToJacobian converts the affine point p to Jacobian form with Z = 1,
// or to the Jacobian infinity representation (0, 0, 0) if p is infinity.
func AffineToJacobian(p Point) JacobianPoint {
	var j JacobianPoint
	if p.infinity {
		return j
	}
	j.X.Set(&p.X)
	j.Y.Set(&p.Y)
	j.Z.SetInt(1)
	return j
}

// ToAffine converts j to affine coordinates: z_inv = Z⁻¹ mod p,
// x = X·z_inv², y = Y·z_inv³. If Z == 0, it returns the affine point at
// infinity.
func (j *JacobianPoint) ToAffine() Point {
	if j.Z.IsZero() {
		return InfinityPoint()
	}
	var zInv, zInv2, zInv3, x, y FieldVal
	zInv.Set(&j.Z).Inverse()
	zInv2.SquareVal(&zInv)
	zInv3.Set(&zInv2).Mul(&zInv)
	x.Mul2(&j.X, &zInv2)
	y.Mul2(&j.Y, &zInv3)
	return Point{X: x, Y: y}
}

// isJacobianInfinity reports whether j represents the point at infinity.
func isJacobianInfinity(j *JacobianPoint) bool {
	return j.Z.IsZero()
}

// doubleJacobian doubles the Jacobian point j per spec.md §4.2:
//
//	if Y1 == 0: return (0, 0, 0)
//	S = 4·X1·Y1² mod p; M = 3·X1² + a·Z1⁴ mod p
//	X3 = M² − 2S; Y3 = M·(S − X3) − 8·Y1⁴; Z3 = 2·Y1·Z1
func doubleJacobian(j *JacobianPoint) JacobianPoint {
	if j.Y.IsZero() || j.Z.IsZero() {
		return JacobianPoint{}
	}

	var y2, s, twoS, zz, zzzz, aZZZZ, m, x3, y3, z3 FieldVal
	var four, eight, two, three FieldVal
	four.SetInt(4)
	eight.SetInt(8)
	two.SetInt(2)
	three.SetInt(3)

	y2.SquareVal(&j.Y)
	s.Mul2(&j.X, &y2).Mul(&four)
	twoS.Set(&s).Mul(&two)

	zz.SquareVal(&j.Z)
	zzzz.SquareVal(&zz)
	aZZZZ.SetByteSlice(curveAVal.Bytes()).Mul(&zzzz)
	m.SquareVal(&j.X).Mul(&three).Add(&aZZZZ)

	x3.SquareVal(&m).Add(negFieldVal(&twoS))

	var sMinusX3, y1to4 FieldVal
	sMinusX3.Set(&s).Add(negFieldVal(&x3))
	y1to4.SquareVal(&y2).Mul(&eight)
	y3.Set(&m).Mul(&sMinusX3).Add(negFieldVal(&y1to4))

	z3.Mul2(&j.Y, &j.Z).Mul(&two)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// addJacobian adds the Jacobian points j1 and j2 per spec.md §4.2:
//
//	handle Z == 0 short-circuits
//	U1 = X1·Z2², U2 = X2·Z1², S1 = Y1·Z2³, S2 = Y2·Z1³
//	if U1 == U2: if S1 != S2 return infinity; else delegate to doubling
//	H = U2 − U1, R = S2 − S1
//	X3 = R² − H³ − 2·U1·H²; Y3 = R·(U1·H² − X3) − S1·H³; Z3 = H·Z1·Z2
func addJacobian(j1, j2 *JacobianPoint) JacobianPoint {
	if isJacobianInfinity(j1) {
		return *j2
	}
	if isJacobianInfinity(j2) {
		return *j1
	}

	var z1z1, z2z2, u1, u2, s1, s2 FieldVal
	z1z1.SquareVal(&j1.Z)
	z2z2.SquareVal(&j2.Z)
	u1.Mul2(&j1.X, &z2z2)
	u2.Mul2(&j2.X, &z1z1)
	s1.Mul2(&j1.Y, &z2z2).Mul(&j2.Z)
	s2.Mul2(&j2.Y, &z1z1).Mul(&j1.Z)

	if u1.Equals(&u2) {
		if !s1.Equals(&s2) {
			return JacobianPoint{}
		}
		return doubleJacobian(j1)
	}

	var h, r, hh, hhh, u1hh, two FieldVal
	two.SetInt(2)
	h.Set(&u2).Add(negFieldVal(&u1))
	r.Set(&s2).Add(negFieldVal(&s1))
	hh.SquareVal(&h)
	hhh.Set(&hh).Mul(&h)
	u1hh.Mul2(&u1, &hh)

	var x3, y3, z3, twoU1hh FieldVal
	twoU1hh.Set(&u1hh).Mul(&two)
	x3.SquareVal(&r).Add(negFieldVal(&hhh)).Add(negFieldVal(&twoU1hh))

	var u1hhMinusX3, s1hhh FieldVal
	u1hhMinusX3.Set(&u1hh).Add(negFieldVal(&x3))
	s1hhh.Mul2(&s1, &hhh)
	y3.Mul2(&r, &u1hhMinusX3).Add(negFieldVal(&s1hhh))

	z3.Set(&h).Mul(&j1.Z).Mul(&j2.Z)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// ScalarMult computes [k]P using double-and-add over Jacobian coordinates
// (the accelerated internal path) and returns the result in affine form.
// This is the path Sign and Verify use.
func ScalarMult(k *ModNScalar, p Point) Point {
	result := JacobianPoint{} // identity
	current := AffineToJacobian(p)
	kv := k.BigInt()
	for kv.Sign() > 0 {
		if kv.Bit(0) == 1 {
			result = addJacobian(&result, &current)
		}
		current = doubleJacobian(&current)
		kv.Rsh(kv, 1)
	}
	return result.ToAffine()
}

// ScalarBaseMult computes [k]G, where G is the active curve's base point.
func ScalarBaseMult(k *ModNScalar) Point {
	return ScalarMult(k, basePoint())
}
