// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/big"

// toBig and fromBig bridge this package's representation to math/big,
// which every cross-check test in this package uses as an independent
// oracle. They go through big-endian bytes rather than big.Int's
// word-based accessors, since math/big.Word's width is platform-dependent
// and this package's limbs are always 32 bits.

func toBig(x BigInt) *big.Int {
	neg, mag := x.signMag()
	mag = trim(mag)
	be := make([]byte, len(mag)*4)
	for i, w := range mag {
		be[len(be)-4*i-1] = byte(w)
		be[len(be)-4*i-2] = byte(w >> 8)
		be[len(be)-4*i-3] = byte(w >> 16)
		be[len(be)-4*i-4] = byte(w >> 24)
	}
	b := new(big.Int).SetBytes(be)
	if neg {
		b.Neg(b)
	}
	return b
}

func fromBig(b *big.Int) BigInt {
	neg := b.Sign() < 0
	be := new(big.Int).Abs(b).Bytes()
	n := (len(be) + 3) / 4
	limbs := make([]uint32, n)
	for i, bb := range be {
		pos := len(be) - 1 - i
		limbs[pos/4] |= uint32(bb) << (8 * uint(pos%4))
	}
	return normalize(neg, limbs)
}
