// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// mulMagnitude returns the trimmed product of two trimmed magnitudes.
func mulMagnitude(a, b []uint32) []uint32 {
	a, b = trim(a), trim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	dst := make([]uint32, len(a)+len(b))
	mulInto(dst, a, b)
	return trim(dst)
}

// mulInto writes a*b into dst, which must be zeroed and have length
// len(a)+len(b). It dispatches between schoolbook, Karatsuba, and a
// chunked fallback for operands whose lengths differ too much for a
// single balanced Karatsuba split to make sense (§4.3 describes the
// balanced case; very imbalanced multiplicands — a 10000-limb number by a
// 40-limb number, say — are handled by splitting the longer operand into
// chunks the size of the shorter one and accumulating shifted products,
// each of which then recurses into a balanced multiply).
func mulInto(dst, a, b []uint32) {
	if len(a) < len(b) {
		a, b = b, a
	}
	for i := range dst {
		dst[i] = 0
	}
	if len(b) == 0 {
		return
	}
	switch {
	case len(b) < 2 || len(b) < getKaratsubaThreshold():
		mulSchoolbook(dst, a, b)
	case len(a) > 2*len(b):
		mulImbalanced(dst, a, b)
	default:
		mulKaratsubaInto(dst, a, b)
	}
}

// mulImbalanced multiplies a (much longer) by b by splitting a into
// len(b)-sized chunks, recursively multiplying each chunk by b, and
// accumulating the shifted partial products into dst.
func mulImbalanced(dst, a, b []uint32) {
	chunk := len(b)
	for pos := 0; pos < len(a); pos += chunk {
		end := pos + chunk
		if end > len(a) {
			end = len(a)
		}
		piece := a[pos:end]
		partLen := len(piece) + len(b)
		part := newLimbs(partLen)
		mulInto(part, b, piece)
		magAddSelf(dst[pos:], trim(part))
		freeLimbs(part)
	}
}

// mulKaratsubaInto implements §4.3's recursion for the balanced case
// (len(b) <= len(a) <= 2*len(b), len(b) at or above the Karatsuba
// threshold). dst must be zeroed and have length len(a)+len(b).
func mulKaratsubaInto(dst, a, b []uint32) {
	n := len(b) / 2
	aLo, aHi := a[:n], a[n:]
	bLo, bHi := b[:n], b[n:]

	// z0 = aLo*bLo and z2 = aHi*bHi land directly in the low and high
	// halves of the destination.
	mulInto(dst[:2*n], aLo, bLo)
	mulInto(dst[2*n:], aHi, bHi)

	sumALen := maxInt(len(aLo), len(aHi)) + 1
	sumBLen := maxInt(len(bLo), len(bHi)) + 1
	sumA := newLimbs(sumALen)
	sumB := newLimbs(sumBLen)
	defer freeLimbs(sumA)
	defer freeLimbs(sumB)

	copy(sumA, aLo)
	magAddSelf(sumA, aHi)
	copy(sumB, bLo)
	magAddSelf(sumB, bHi)
	sumA, sumB = trim(sumA), trim(sumB)

	zMid := newLimbs(len(sumA) + len(sumB))
	defer freeLimbs(zMid)
	mulInto(zMid, sumA, sumB)

	// z_mid -= z0 + z2, fused into a single pass with a combined borrow.
	magSubCombined(zMid, dst[:2*n], dst[2*n:])

	// dst += z_mid << (32*n)
	magAddSelf(dst[n:], trim(zMid))
}

// sqrMagnitude returns the trimmed square of a trimmed magnitude.
func sqrMagnitude(a []uint32) []uint32 {
	a = trim(a)
	if len(a) == 0 {
		return nil
	}
	dst := make([]uint32, 2*len(a))
	sqrInto(dst, a)
	return trim(dst)
}

// sqrInto writes a*a into dst, which must be zeroed and have length
// 2*len(a). It follows the identical Karatsuba recursion as mulInto with
// a=b, using sqrSchoolbook/sqrInto on the sub-halves instead of a general
// multiply (§4.3: "Squaring follows the identical recursion... and uses
// square on sub-halves").
func sqrInto(dst, a []uint32) {
	n := len(a)
	for i := range dst {
		dst[i] = 0
	}
	if n == 0 {
		return
	}
	if n < 2 || n < getSquareThreshold() {
		sqrSchoolbook(dst, a)
		return
	}

	half := n / 2
	aLo, aHi := a[:half], a[half:]

	sqrInto(dst[:2*half], aLo)
	sqrInto(dst[2*half:], aHi)

	sumLen := maxInt(len(aLo), len(aHi)) + 1
	sumA := newLimbs(sumLen)
	defer freeLimbs(sumA)
	copy(sumA, aLo)
	magAddSelf(sumA, aHi)
	sumA = trim(sumA)

	zMid := newLimbs(2 * len(sumA))
	defer freeLimbs(zMid)
	sqrInto(zMid, sumA)

	magSubCombined(zMid, dst[:2*half], dst[2*half:])
	magAddSelf(dst[half:], trim(zMid))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
