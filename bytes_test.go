// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math/rand"
	"testing"
)

func TestBytesRoundtripSigned(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	for i := 0; i < 300; i++ {
		v := normalize(r.Intn(2) == 0, randMag(r, 1+r.Intn(6)))
		for _, bigEndian := range []bool{true, false} {
			buf, err := v.Bytes(false, bigEndian)
			if err != nil {
				t.Fatalf("Bytes(%v) error: %v", v, err)
			}
			got := SetBytes(buf, false, bigEndian)
			if got.Cmp(v) != 0 {
				t.Fatalf("SetBytes(Bytes(%v, bigEndian=%v)) = %v", v, bigEndian, got)
			}
		}
	}
}

func TestBytesRoundtripUnsigned(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for i := 0; i < 300; i++ {
		v := normalize(false, randMag(r, 1+r.Intn(6)))
		for _, bigEndian := range []bool{true, false} {
			buf, err := v.Bytes(true, bigEndian)
			if err != nil {
				t.Fatalf("Bytes(%v) error: %v", v, err)
			}
			got := SetBytes(buf, true, bigEndian)
			if got.Cmp(v) != 0 {
				t.Fatalf("SetBytes(Bytes(%v, bigEndian=%v)) = %v", v, bigEndian, got)
			}
		}
	}
}

func TestBytesUnsignedOverflow(t *testing.T) {
	if _, err := FromInt64(-1).Bytes(true, true); err == nil {
		t.Error("expected ErrOverflow exporting a negative value as unsigned")
	}
}

func TestBytesMinimalSignedEncoding(t *testing.T) {
	// 33022 = 0x80FE needs a leading 0x00 pad byte so its top byte's sign
	// bit isn't mistaken for a negative number: little-endian minimal
	// signed form is FE 80 00.
	v := FromInt64(33022)
	buf, err := v.Bytes(false, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFE, 0x80, 0x00}
	if len(buf) != len(want) {
		t.Fatalf("Bytes(33022) = %v, want %v", buf, want)
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("Bytes(33022) = %v, want %v", buf, want)
		}
	}
}

func TestBytesZero(t *testing.T) {
	buf, err := Zero.Bytes(false, true)
	if err != nil || len(buf) != 1 || buf[0] != 0 {
		t.Fatalf("Bytes(0) = %v, %v, want [0], nil", buf, err)
	}
}

func TestSetBytesEmpty(t *testing.T) {
	if got := SetBytes(nil, false, true); !got.IsZero() {
		t.Errorf("SetBytes(nil) = %v, want 0", got)
	}
}
