// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// Verify implements spec.md §4.4's verify(msg, (r, s)) -> bool using the
// default hash function (SM3) and no ZA preprocessing. It is total: no
// malformed input causes a panic, and an out-of-range (r, s) simply
// returns false without doing any group arithmetic.
func (pub *PublicKey) Verify(msg []byte, sig *Signature) bool {
	return pub.VerifyWithOptions(msg, sig, SignOptions{})
}

// VerifyWithOptions is Verify with a caller-supplied hash/preprocessing
// configuration; see SignOptions. The configuration must match what the
// signer used or verification will fail.
func (pub *PublicKey) VerifyWithOptions(msg []byte, sig *Signature, opts SignOptions) bool {
	if !sig.InRange() {
		return false
	}

	e := nonZeroHash(msg, pub.point, opts.Hash, opts.Preprocessor)

	var t ModNScalar
	t.Add2(&sig.r, &sig.s)
	if t.IsZero() {
		return false
	}

	sG := ScalarBaseMult(&sig.s)
	tP := ScalarMult(&t, pub.point)
	sum := AddAffine(sG, tP)

	x1Bytes := sum.X.Bytes()
	var x1Scalar, v ModNScalar
	x1Scalar.SetByteSlice(x1Bytes[:])
	v.Add2(e, &x1Scalar)

	return v.Equals(&sig.r)
}
