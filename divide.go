// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// This file implements Knuth's Algorithm D, grounded on the historical Go
// math/big nat.divLarge (see the pack's other_examples copy of
// src/math/big/nat.go): normalize the divisor so its top bit is set,
// shift the dividend by the same amount, then run the guess-and-correct
// long division loop. Rather than spec.md §4.4's "lazily recompute the
// shifted top limbs each step", this shifts the whole working copy once
// up front — the same simplification math/big itself makes — which is
// simpler to get right and behaves identically.

// divWord divides the magnitude u by the single limb d, returning the
// quotient magnitude and the remainder. Precondition: d != 0.
func divWord(u []uint32, d uint32) (q []uint32, r uint32) {
	u = trim(u)
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trim(q), uint32(rem)
}

// shlMag shifts a left by 0..31 bits into dst (len(dst) == len(a)),
// returning the bits shifted out of the top limb.
func shlMag(dst, a []uint32, shift uint) uint32 {
	if shift == 0 {
		copy(dst, a)
		return 0
	}
	var carry uint32
	for i, v := range a {
		dst[i] = v<<shift | carry
		carry = v >> (32 - shift)
	}
	return carry
}

// shrMag shifts a right by 0..31 bits into dst (len(dst) == len(a)).
func shrMag(dst, a []uint32, shift uint) {
	if shift == 0 {
		copy(dst, a)
		return
	}
	var carry uint32
	for i := len(a) - 1; i >= 0; i-- {
		dst[i] = a[i]>>shift | carry
		carry = a[i] << (32 - shift)
	}
}

// mulSubMulWord computes dst -= qhat*v (dst and v given as limb windows, v
// trimmed, len(dst) == len(v)+1) and returns the borrow out of the top
// limb, used by divLarge's D4 step.
func mulSubMulWord(dst, v []uint32, qhat uint32) uint32 {
	var carry uint64
	var borrow uint64
	for i, vi := range v {
		hi, lo := mulLimb(vi, qhat)
		prod := uint64(hi)<<32 | uint64(lo)
		prod += carry
		carry = prod >> 32
		lo32 := uint32(prod)
		d := uint64(dst[i]) - uint64(lo32) - borrow
		dst[i] = uint32(d)
		borrow = (d >> 63) & 1 // 1 if underflow occurred
	}
	d := uint64(dst[len(v)]) - carry - borrow
	dst[len(v)] = uint32(d)
	return uint32((d >> 63) & 1)
}

// divLarge implements Algorithm D for |u| >= |v| >= 2. It returns a
// freshly allocated, trimmed quotient and remainder; neither aliases u or
// v.
func divLarge(u, v []uint32) (q, r []uint32) {
	u, v = trim(u), trim(v)
	n := len(v)
	m := len(u) - n

	shift := uint(leadingZeros32(v[n-1]))

	vn := make([]uint32, n)
	shlMag(vn, v, shift)

	un := make([]uint32, len(u)+1)
	topOut := shlMag(un[:len(u)], u, shift)
	un[len(u)] = topOut

	quotient := make([]uint32, m+1)

	vTop, vNext := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		var qhat uint64
		top2 := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		if un[j+n] == vTop {
			qhat = 0xFFFF_FFFF
		} else {
			qhat = top2 / uint64(vTop)
		}
		rhat := top2 - qhat*uint64(vTop)

		for rhat <= 0xFFFF_FFFF && qhat*uint64(vNext) > rhat<<32|uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vTop)
		}

		borrow := mulSubMulWord(un[j:j+n+1], vn, uint32(qhat))
		if borrow != 0 {
			// qhat was one too large: add v back and decrement.
			var addCarry uint32
			for i := 0; i < n; i++ {
				un[j+i], addCarry = addLimb(un[j+i], vn[i], addCarry)
			}
			un[j+n], _ = addLimb(un[j+n], 0, addCarry)
			qhat--
		}
		quotient[j] = uint32(qhat)
	}

	remShifted := un[:n]
	rem := make([]uint32, n)
	shrMag(rem, remShifted, shift)

	return trim(quotient), trim(rem)
}

// divRemMagnitude divides trimmed magnitude u by trimmed non-zero
// magnitude v, returning trimmed quotient and remainder with
// u == q*v + r and r < v.
func divRemMagnitude(u, v []uint32) (q, r []uint32) {
	u, v = trim(u), trim(v)
	if magCmp(u, v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		qq, rr := divWord(u, v[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, []uint32{rr}
	}
	return divLarge(u, v)
}
