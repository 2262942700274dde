// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Bitwise operators (§4.6) work over a shared fixed-length two's-complement
// materialization: both operands are widened to the same limb count — one
// limb longer than the wider magnitude, so the sign bit always has room —
// sign-extended with all-zero (positive) or all-one (negative) limbs, then
// combined limb by limb and decoded back to sign-magnitude form.

// twosComplementBuf materializes x as an n-limb two's-complement value,
// sign-extending as needed. n must be at least len(trim(mag))+1.
func twosComplementBuf(x BigInt, n int) []uint32 {
	neg, mag := x.signMag()
	buf := make([]uint32, n)
	copy(buf, mag)
	if neg {
		twosComplementInPlace(buf)
	}
	return buf
}

// fromTwosComplementBuf decodes an n-limb two's-complement buffer back into
// a BigInt, consuming buf (it may be mutated in place).
func fromTwosComplementBuf(buf []uint32) BigInt {
	if len(buf) == 0 {
		return Zero
	}
	if buf[len(buf)-1]&0x8000_0000 != 0 {
		twosComplementInPlace(buf)
		return normalize(true, buf)
	}
	return normalize(false, buf)
}

func twosComplementWidth(x, y BigInt) int {
	_, xm := x.signMag()
	_, ym := y.signMag()
	return maxInt(len(trim(xm)), len(trim(ym))) + 1
}

// And returns the bitwise AND of x and y's two's-complement representations.
func (x BigInt) And(y BigInt) BigInt {
	n := twosComplementWidth(x, y)
	xb, yb := twosComplementBuf(x, n), twosComplementBuf(y, n)
	for i := range xb {
		xb[i] &= yb[i]
	}
	return fromTwosComplementBuf(xb)
}

// Or returns the bitwise OR of x and y's two's-complement representations.
func (x BigInt) Or(y BigInt) BigInt {
	n := twosComplementWidth(x, y)
	xb, yb := twosComplementBuf(x, n), twosComplementBuf(y, n)
	for i := range xb {
		xb[i] |= yb[i]
	}
	return fromTwosComplementBuf(xb)
}

// Xor returns the bitwise XOR of x and y's two's-complement representations.
func (x BigInt) Xor(y BigInt) BigInt {
	n := twosComplementWidth(x, y)
	xb, yb := twosComplementBuf(x, n), twosComplementBuf(y, n)
	for i := range xb {
		xb[i] ^= yb[i]
	}
	return fromTwosComplementBuf(xb)
}

// Not returns the bitwise complement of x: -(x+1).
func (x BigInt) Not() BigInt {
	return x.Add(One).Neg()
}

// bitLenMag returns the number of bits needed to represent a trimmed,
// non-empty magnitude.
func bitLenMag(mag []uint32) int {
	mag = trim(mag)
	if len(mag) == 0 {
		return 0
	}
	top := len(mag) - 1
	return 32*top + (32 - leadingZeros32(mag[top]))
}

// GetBitLength returns the number of bits in the minimal two's-complement
// representation of x, excluding the sign bit. Zero has bit length 0; for
// a negative x it equals the bit length of |x|-1 (e.g. -8's minimal
// two's-complement form is 1000, so its bit length is 3).
func (x BigInt) GetBitLength() int {
	if x.IsZero() {
		return 0
	}
	if !x.IsNegative() {
		_, mag := x.signMag()
		return bitLenMag(mag)
	}
	_, mag := x.Neg().Sub(One).signMag()
	return bitLenMag(mag)
}
