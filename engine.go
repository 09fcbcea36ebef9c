// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

// Engine is the stateful façade spec.md §3/§6 describes: it starts with no
// keys installed, transitions to "keyed" via CreateKeyPair (or SetKeyPair),
// and stays keyed for its lifetime. Signing requires a private key;
// verification requires a public key; calling either before the relevant
// key is installed returns ErrKeyMissing instead of panicking.
//
// Per spec.md §5, a single Engine may be used concurrently only once its
// key pair is installed and before any concurrent sign/verify calls begin;
// CreateKeyPair itself is not safe to race with Sign/Verify.
type Engine struct {
	priv *PrivateKey
	pub  *PublicKey
}

// NewEngine returns an unkeyed Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// CreateKeyPair draws a new key pair from rng and installs it, per
// spec.md §4.4's create_key_pair. It returns the installed key pair.
func (e *Engine) CreateKeyPair(rng Rng) (*PrivateKey, *PublicKey, error) {
	priv, pub, err := CreateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}
	e.priv, e.pub = priv, pub
	return priv, pub, nil
}

// SetKeyPair installs an already-generated key pair, e.g. one decoded from
// storage. pub may be nil, in which case it is derived from priv.
func (e *Engine) SetKeyPair(priv *PrivateKey, pub *PublicKey) {
	e.priv = priv
	if pub != nil {
		e.pub = pub
	} else if priv != nil {
		e.pub = priv.PubKey()
	}
}

// PrivateKey returns the installed private key, or nil if none has been
// installed.
func (e *Engine) PrivateKey() *PrivateKey {
	return e.priv
}

// PublicKey returns the installed public key, or nil if none has been
// installed.
func (e *Engine) PublicKey() *PublicKey {
	return e.pub
}

// Sign signs msg with the engine's installed private key. It returns
// ErrKeyMissing if no private key has been installed.
func (e *Engine) Sign(msg []byte, rng Rng) (*Signature, error) {
	if e.priv == nil {
		return nil, makeError(ErrKeyMissing, "sign: no private key installed")
	}
	return e.priv.Sign(msg, rng)
}

// Verify verifies sig over msg with the engine's installed public key. It
// returns an error (ErrKeyMissing) only when no public key is installed;
// a negative verification result is reported as (false, nil), distinct
// from the KeyMissing error case per spec.md §4.4/§7.
func (e *Engine) Verify(msg []byte, sig *Signature) (bool, error) {
	if e.pub == nil {
		return false, makeError(ErrKeyMissing, "verify: no public key installed")
	}
	return e.pub.Verify(msg, sig), nil
}
