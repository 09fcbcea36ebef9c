// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sm2

import "testing"

func TestFieldValArithmetic(t *testing.T) {
	var one, two, three, sum FieldVal
	one.SetInt(1)
	two.SetInt(2)
	three.SetInt(3)
	sum.Add2(&one, &two)
	if !sum.Equals(&three) {
		t.Fatalf("1 + 2 = %s, want %s", sum.String(), three.String())
	}

	var product FieldVal
	product.Mul2(&two, &three)
	var six FieldVal
	six.SetInt(6)
	if !product.Equals(&six) {
		t.Fatalf("2 * 3 = %s, want %s", product.String(), six.String())
	}
}

func TestFieldValWrapsModulo(t *testing.T) {
	var pMinusOne FieldVal
	pMinusOne.SetByteSlice(fieldPrimeVal.Bytes())
	var one FieldVal
	one.SetInt(1)
	pMinusOne.Add(negFieldVal(&one))

	var result FieldVal
	result.Add2(&pMinusOne, &one)
	if !result.IsZero() {
		t.Fatalf("(p-1) + 1 mod p = %s, want 0", result.String())
	}
}

func TestFieldValInverse(t *testing.T) {
	tests := []string{
		"2", "3", "7", "deadbeef", "123456789abcdef0",
	}
	for _, hexVal := range tests {
		var v, inv, product, one FieldVal
		v.SetHex(hexVal)
		inv.Set(&v).Inverse()
		product.Mul2(&v, &inv)
		one.SetInt(1)
		if !product.Equals(&one) {
			t.Errorf("%s * %s^-1 = %s, want 1", v.String(), v.String(), product.String())
		}
	}
}

func TestFieldValInverseOfZeroIsZero(t *testing.T) {
	var zero, inv FieldVal
	inv.Set(&zero).Inverse()
	if !inv.IsZero() {
		t.Fatalf("inverse of 0 = %s, want 0 by convention", inv.String())
	}
}

func TestFieldValBytesRoundTrip(t *testing.T) {
	var v FieldVal
	v.SetHex("fedcba9876543210")
	b := v.Bytes()

	var v2 FieldVal
	v2.SetByteSlice(b[:])
	if !v.Equals(&v2) {
		t.Fatalf("round trip through Bytes changed value: %s != %s", v.String(), v2.String())
	}
}
