// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// GCD returns the non-negative greatest common divisor of a and b. Signs
// are discarded; GCD(0, 0) is 0 and GCD(a, 0) is |a|. §4.5 leaves the
// algorithm unspecified beyond the result ("the contract is only the
// result, not the algorithm"): for operands that fit in a uint64 this
// uses binary GCD, otherwise repeated Euclidean division via
// divRemMagnitude. A
// full Lehmer's GCD is not implemented — the Euclidean fallback already
// satisfies every property in §8 and every operand this module's
// division engine can represent; see DESIGN.md.
func GCD(a, b BigInt) BigInt {
	_, am := a.signMag()
	_, bm := b.signMag()
	return normalize(false, gcdMagnitude(am, bm))
}

func gcdMagnitude(a, b []uint32) []uint32 {
	a, b = trim(a), trim(b)
	if len(a) <= 2 && len(b) <= 2 {
		return trim(limbsFromUint64(gcdUint64(magToUint64(a), magToUint64(b))))
	}
	for len(b) > 0 {
		_, r := divRemMagnitude(a, b)
		a, b = b, r
	}
	return a
}

func magToUint64(a []uint32) uint64 {
	var v uint64
	if len(a) > 0 {
		v = uint64(a[0])
	}
	if len(a) > 1 {
		v |= uint64(a[1]) << 32
	}
	return v
}

// gcdUint64 is the classic binary GCD (Stein's algorithm).
func gcdUint64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := minTrailingZeros(a, b)
	a >>= trailingZeros64(a)
	for b != 0 {
		b >>= trailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

func trailingZeros64(x uint64) uint {
	if x == 0 {
		return 64
	}
	var n uint
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

func minTrailingZeros(a, b uint64) uint {
	za, zb := trailingZeros64(a), trailingZeros64(b)
	if za < zb {
		return za
	}
	return zb
}
