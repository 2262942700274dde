// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Lsh returns x << n (x * 2^n). Left shift is exact multiplication by a
// power of two regardless of sign, so it operates directly on the
// magnitude and preserves x's sign.
func (x BigInt) Lsh(n uint) BigInt {
	if n == 0 || x.IsZero() {
		return x
	}
	neg, mag := x.signMag()
	return normalize(neg, magShl(mag, n))
}

// Rsh returns x >> n, the arithmetic (sign-propagating) right shift —
// equivalently floor(x / 2^n). For non-negative x this is a truncating
// magnitude shift; for negative x, per §4.6, this is computed through the
// same two's-complement relationship a materialized sign-extended buffer
// would show: floor(-|x|/2^n) is -(|x|>>n) when no low bits are shifted
// out, and -((|x|>>n)+1) otherwise. Shifting out the entire magnitude
// yields Zero for non-negative x and MinusOne for negative x.
func (x BigInt) Rsh(n uint) BigInt {
	if n == 0 || x.IsZero() {
		return x
	}
	neg, mag := x.signMag()
	shifted, remainder := magShrTrunc(mag, n)
	if !neg {
		return normalize(false, shifted)
	}
	if remainder {
		return normalize(true, magAdd(shifted, []uint32{1}))
	}
	return normalize(true, shifted)
}

// magShl returns a<<n as a freshly allocated, trimmed magnitude.
func magShl(a []uint32, n uint) []uint32 {
	a = trim(a)
	if len(a) == 0 {
		return nil
	}
	limbShift := n / 32
	bitShift := n % 32
	out := make([]uint32, uint(len(a))+limbShift+1)
	if bitShift == 0 {
		copy(out[limbShift:], a)
	} else {
		carry := shlMag(out[limbShift:uint(len(a))+limbShift], a, bitShift)
		out[uint(len(a))+limbShift] = carry
	}
	return trim(out)
}

// magShrTrunc returns a>>n truncated toward zero (dropping the low n
// bits), plus whether any of those dropped bits were set.
func magShrTrunc(a []uint32, n uint) (shifted []uint32, anyRemainder bool) {
	a = trim(a)
	limbShift := n / 32
	bitShift := n % 32
	if limbShift >= uint(len(a)) {
		return nil, !magIsZero(a)
	}
	for i := uint(0); i < limbShift; i++ {
		if a[i] != 0 {
			anyRemainder = true
			break
		}
	}
	remaining := a[limbShift:]
	if bitShift > 0 && remaining[0]&(1<<bitShift-1) != 0 {
		anyRemainder = true
	}
	out := make([]uint32, len(remaining))
	shrMag(out, remaining, bitShift)
	return trim(out), anyRemainder
}
