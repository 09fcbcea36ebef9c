// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// maxSignAttempts bounds the degeneracy-retry loop described in spec.md
// §4.4 and discussed as a REDESIGN FLAG in §9: the source's loop is
// unbounded, but the probability of hitting r == 0, r + k ≡ 0 (mod n), or
// s == 0 more than a couple of times in a row is astronomically small, so
// a generous bound that can never be hit in practice is strictly safer
// than looping forever on a broken RNG.
const maxSignAttempts = 255

// SignOptions lets a caller override the hash function and preprocessing
// step Sign uses. The zero value selects SM3 with no ZA preprocessing,
// matching the source engine's behavior.
type SignOptions struct {
	Hash         HashFunc
	Preprocessor Preprocessor
}

// Sign implements spec.md §4.4's sign(msg) -> (r, s) using the default
// hash function (SM3) and no ZA preprocessing.
func (priv *PrivateKey) Sign(msg []byte, rng Rng) (*Signature, error) {
	return priv.SignWithOptions(msg, rng, SignOptions{})
}

// SignWithOptions is Sign with a caller-supplied hash/preprocessing
// configuration; see SignOptions.
func (priv *PrivateKey) SignWithOptions(msg []byte, rng Rng, opts SignOptions) (*Signature, error) {
	pub := priv.PubKey().Point()
	e := nonZeroHash(msg, pub, opts.Hash, opts.Preprocessor)

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		k, err := rng.Scalar()
		if err != nil {
			return nil, err
		}

		x1y1 := ScalarBaseMult(k)
		x1Bytes := x1y1.X.Bytes()

		var x1Scalar, r ModNScalar
		x1Scalar.SetByteSlice(x1Bytes[:])
		r.Add2(e, &x1Scalar)

		var rPlusK ModNScalar
		rPlusK.Add2(&r, k)
		if r.IsZero() || rPlusK.IsZero() {
			continue
		}

		// s = (1+d)⁻¹ · (k - r·d) mod n
		var rd, kMinusRd, s ModNScalar
		rd.Mul2(&r, &priv.d)
		kMinusRd.Set(k).Sub(&rd)
		s.Mul2(&priv.dPlus1Inv, &kMinusRd)
		if s.IsZero() {
			continue
		}

		return NewSignature(&r, &s), nil
	}
	return nil, makeError(ErrRetriesExhausted, "sign: exceeded maximum retry attempts")
}
