// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math/rand"
	"testing"
)

// TestKaratsubaMatchesSchoolbook forces the Karatsuba path (by lowering the
// threshold) on inputs small enough that a direct schoolbook computation is
// still cheap to cross-check against, for both balanced and imbalanced
// operand lengths.
func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	restoreK := SetKaratsubaThresholdForTest(2)
	restoreS := SetSquareThresholdForTest(2)
	defer restoreK()
	defer restoreS()

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		a := randMag(r, 4+r.Intn(20))
		b := randMag(r, 4+r.Intn(20))

		want := make([]uint32, len(a)+len(b))
		mulSchoolbook(want, a, b)

		got := mulMagnitude(a, b)
		if magCmp(got, trim(want)) != 0 {
			t.Fatalf("mulMagnitude (Karatsuba) mismatch: a=%v b=%v got=%v want=%v", a, b, got, trim(want))
		}
	}
}

func TestImbalancedMultiply(t *testing.T) {
	restoreK := SetKaratsubaThresholdForTest(2)
	defer restoreK()

	r := rand.New(rand.NewSource(6))
	long := randMag(r, 50)
	short := randMag(r, 3)

	want := make([]uint32, len(long)+len(short))
	mulSchoolbook(want, long, short)

	got := mulMagnitude(long, short)
	if magCmp(got, trim(want)) != 0 {
		t.Fatalf("imbalanced mulMagnitude mismatch: got=%v want=%v", got, trim(want))
	}
}

func TestSquareMatchesMultiplyBySelf(t *testing.T) {
	restoreS := SetSquareThresholdForTest(2)
	restoreK := SetKaratsubaThresholdForTest(2)
	defer restoreS()
	defer restoreK()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := randMag(r, 4+r.Intn(20))
		want := mulMagnitude(a, a)
		got := sqrMagnitude(a)
		if magCmp(got, want) != 0 {
			t.Fatalf("sqrMagnitude != mulMagnitude(a,a) for a=%v", a)
		}
	}
}

func TestScratchPoolPathExercised(t *testing.T) {
	restore := SetScratchPoolThresholdForTest(0)
	defer restore()
	restoreK := SetKaratsubaThresholdForTest(2)
	defer restoreK()

	r := rand.New(rand.NewSource(8))
	a := randMag(r, 30)
	b := randMag(r, 30)
	want := make([]uint32, len(a)+len(b))
	mulSchoolbook(want, a, b)
	got := mulMagnitude(a, b)
	if magCmp(got, trim(want)) != 0 {
		t.Fatalf("mulMagnitude mismatch with pool threshold forced to 0")
	}
}
