// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package sm2 implements the SM2 elliptic-curve digital signature algorithm
defined by GB/T 32918 (the Chinese national cryptography standard) in pure
Go.

This package provides an implementation of the arithmetic and signature
primitives needed to generate SM2 key pairs, sign arbitrary messages, and
verify the resulting signatures, over the curve recommended in GB/T
32918.5. See https://www.gmbz.org.cn for details on the standard.

An overview of the features provided by this package:

  - Curve parameters carried as a value (CurveParams) rather than only as
    package globals, so the same engine type can serve a different
    short-Weierstrass curve if one is ever substituted in
  - FieldVal type for working modulo the curve's field prime
  - ModNScalar type for working modulo the curve's group order
  - Elliptic curve operations in both affine and Jacobian projective
    coordinates, with the Jacobian path used as the accelerated internal
    representation and affine kept as a reference implementation
  - Private/public key generation backed by a cryptographically strong RNG
    façade, with support for injecting a deterministic source in tests
  - SM2 signing and verification over an SM3 digest, including the
    degeneracy-retry loop mandated by GB/T 32918.2
  - A pluggable hash-preprocessing hook so callers can opt into the
    standard's ZA user-identifier preprocessing without forcing it on
    every caller

It also provides an implementation of the Go standard library
crypto/elliptic Curve interface via the package-level SM2 function, so the
group law can be reused with other packages that consume that interface.

This package does not implement SM2 encryption or key exchange, does not
implement the SM3 hash function itself (it depends on an external SM3
implementation, by design — see HashFunc), and does not provide constant-time
guarantees against side-channel adversaries; see the package-level security
notes in hash.go and rng.go for details on each of these choices.
*/
package sm2
