// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// This file implements unsigned arithmetic on little-endian limb slices —
// the magnitude engine every signed operation in ops.go reduces to after
// sign reconciliation. Grounded on the classic Go math/big nat.go
// add/sub/cmp trio (see the pack's copy of the pre-module math/big source),
// adapted to 32-bit limbs with explicit bits.Add32/Sub32 carry chains.

// trim returns a the slice with any high (most-significant) zero limbs
// removed. It does not copy.
func trim(a []uint32) []uint32 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// magCmp compares two trimmed magnitudes, returning -1, 0, or +1.
func magCmp(a, b []uint32) int {
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magIsZero reports whether a trimmed magnitude is zero.
func magIsZero(a []uint32) bool {
	return len(trim(a)) == 0
}

// magAdd returns a+b as a freshly allocated, trimmed magnitude.
func magAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	i := 0
	for ; i < len(b); i++ {
		out[i], carry = addLimb(a[i], b[i], carry)
	}
	for ; i < len(a); i++ {
		out[i], carry = addLimb(a[i], 0, carry)
	}
	out[len(a)] = carry
	return trim(out)
}

// magSub returns a-b as a freshly allocated, trimmed magnitude. The caller
// must ensure a >= b; violating this precondition is not reported as an
// error: it produces a wrong result, or an index-out-of-range panic when b
// has more limbs than a, matching the unchecked nature of the underlying
// borrow chain (this mirrors the teacher's own convention of pushing
// precondition checks to the caller for hot inner loops).
func magSub(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	i := 0
	for ; i < len(b); i++ {
		out[i], borrow = subLimb(a[i], b[i], borrow)
	}
	for ; i < len(a); i++ {
		out[i], borrow = subLimb(a[i], 0, borrow)
	}
	return trim(out)
}

// magAddSelf adds src into dst in place. dst must be long enough to absorb
// any carry that propagates past len(src); a carry that would overflow
// dst's length is dropped, which callers only do when they can prove (as
// Karatsuba's combine step does) that the true sum fits.
func magAddSelf(dst, src []uint32) {
	var carry uint32
	i := 0
	for ; i < len(src) && i < len(dst); i++ {
		dst[i], carry = addLimb(dst[i], src[i], carry)
	}
	for carry != 0 && i < len(dst) {
		dst[i], carry = addLimb(dst[i], 0, carry)
		i++
	}
}

// magSubCombined subtracts both z0 and z2 from zMid in a single pass,
// tracking a combined borrow that may exceed one limb per step (since two
// subtrahends are applied at once). This is Karatsuba's fused
// "z_mid -= z0 + z2" from §4.3.
func magSubCombined(zMid, z0, z2 []uint32) {
	var borrow int64
	for i := range zMid {
		v := int64(zMid[i]) - borrow
		if i < len(z0) {
			v -= int64(z0[i])
		}
		if i < len(z2) {
			v -= int64(z2[i])
		}
		borrow = 0
		for v < 0 {
			v += 1 << 32
			borrow++
		}
		zMid[i] = uint32(v)
	}
}
