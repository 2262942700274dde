// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// A limb is one 32-bit digit of a magnitude, least-significant limb first.
// All magnitude-level arithmetic in this package bottoms out in the
// carry/borrow-propagating primitives below, built on math/bits so the
// compiler can lower them to the hardware ADC/SBB-style instructions where
// available.

// addLimb adds x, y and an incoming carry (0 or 1), returning the sum and
// the outgoing carry.
func addLimb(x, y, carry uint32) (sum, carryOut uint32) {
	return bits.Add32(x, y, carry)
}

// subLimb subtracts y and an incoming borrow (0 or 1) from x, returning the
// difference and the outgoing borrow.
func subLimb(x, y, borrow uint32) (diff, borrowOut uint32) {
	return bits.Sub32(x, y, borrow)
}

// mulLimb multiplies x and y, returning the 64-bit product split into high
// and low 32-bit halves.
func mulLimb(x, y uint32) (hi, lo uint32) {
	return bits.Mul32(x, y)
}

// leadingZeros32 returns the number of leading zero bits in x; 32 for x==0.
func leadingZeros32(x uint32) int {
	return bits.LeadingZeros32(x)
}

// twosComplementInPlace negates limbs in place (bitwise NOT followed by
// +1), returning the carry out of the top limb. A negation of the
// all-zero magnitude leaves it unchanged and reports a carry of 1; every
// non-zero input reports a carry of 0.
func twosComplementInPlace(limbs []uint32) (carryOut uint32) {
	carry := uint32(1)
	for i := range limbs {
		limbs[i] = ^limbs[i]
		limbs[i], carry = addLimb(limbs[i], 0, carry)
	}
	return carry
}
