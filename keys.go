// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// PrivateKey is an SM2 private scalar d ∈ [1, n-1].
type PrivateKey struct {
	d ModNScalar

	// dPlus1Inv caches (1 + d)⁻¹ mod n, the one per-key value Sign's
	// degeneracy-retry loop reuses across every attempt. spec.md §4.4
	// notes implementations may precompute this once per key; it is
	// computed eagerly at construction, rather than lazily on first
	// Sign, so that a key installed before concurrent signing begins
	// (the concurrency model spec.md §5 requires) never has two
	// goroutines racing to populate it.
	dPlus1Inv ModNScalar
}

// PublicKey is an SM2 public point P = [d]G. Per spec.md §3 it is never
// the point at infinity, since a valid private key is always in [1, n-1].
type PublicKey struct {
	point Point
}

// D returns a copy of the private scalar.
func (p *PrivateKey) D() ModNScalar {
	return p.d
}

// PubKey computes and returns the public key corresponding to this private
// key: P = [d]G.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := ScalarBaseMult(&p.d)
	return &PublicKey{point: pt}
}

// Point returns a copy of the affine public point.
func (pub *PublicKey) Point() Point {
	return pub.point
}

// NewPrivateKey wraps an already-in-range scalar as a PrivateKey. Callers
// should normally prefer CreateKeyPair, which draws d from the RNG façade;
// this constructor exists for deserializing a previously generated key
// (e.g. from the known-answer test vectors in spec.md §8).
func NewPrivateKey(d *ModNScalar) (*PrivateKey, error) {
	if !d.InRange() {
		return nil, makeError(ErrInvalidCurveParams, "private scalar out of range [1, n-1]")
	}
	return newPrivateKey(d), nil
}

func newPrivateKey(d *ModNScalar) *PrivateKey {
	priv := &PrivateKey{d: *d}
	var one ModNScalar
	one.SetInt(1)
	priv.dPlus1Inv.Add2(&priv.d, &one).Inverse()
	return priv
}

// CreateKeyPair implements spec.md §4.4's create_key_pair: it draws d
// uniformly from [1, n-1] using rng and computes P = [d]G.
func CreateKeyPair(rng Rng) (*PrivateKey, *PublicKey, error) {
	d, err := rng.Scalar()
	if err != nil {
		return nil, nil, err
	}
	priv := newPrivateKey(d)
	return priv, priv.PubKey(), nil
}
