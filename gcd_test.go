// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestGCDAgainstMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := normalize(r.Intn(2) == 0, randMag(r, 1+r.Intn(10)))
		b := normalize(r.Intn(2) == 0, randMag(r, 1+r.Intn(10)))

		got := GCD(a, b)
		want := new(big.Int).GCD(nil, nil, toBig(a.Abs()), toBig(b.Abs()))
		if toBig(got).Cmp(want) != 0 {
			t.Fatalf("GCD(%v, %v) = %v, want %v", a, b, got, want)
		}
	}
}

func TestGCDEdgeCases(t *testing.T) {
	if !GCD(Zero, Zero).IsZero() {
		t.Error("GCD(0,0) != 0")
	}
	if GCD(FromInt64(-12), Zero).Cmp(FromInt64(12)) != 0 {
		t.Error("GCD(a,0) != |a|")
	}
	if GCD(FromInt64(12), FromInt64(18)).Cmp(FromInt64(6)) != 0 {
		t.Error("GCD(12,18) != 6")
	}
}

func TestGCDUint64Direct(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		a, b := r.Uint64(), r.Uint64()
		got := gcdUint64(a, b)
		want := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)).Uint64()
		if got != want {
			t.Fatalf("gcdUint64(%d,%d) = %d, want %d", a, b, got, want)
		}
	}
}
