// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math"

// Log returns the logarithm of v in the given base, per §4.5's
// float64-mantissa approach: v's top bits are extracted into a float64
// mantissa in [0.5, 1) and combined with its bit length, avoiding ever
// materializing v as an actual floating-point value (which would overflow
// for any v needing more than ~1024 bits). Zero and negative v yield NaN.
func Log(v BigInt, base float64) float64 {
	if v.IsNegative() || v.IsZero() {
		return math.NaN()
	}
	_, mag := v.signMag()
	mag = trim(mag)
	bits := bitLenMag(mag)

	top := normalize(false, mag)
	if bits > 64 {
		top = top.Rsh(uint(bits - 64))
	}
	topVal, _ := top.Uint64()
	mantissa := float64(topVal) / math.Pow(2, float64(minInt(bits, 64)))

	lnV := math.Log(mantissa) + float64(bits)*math.Log(2)
	return lnV / math.Log(base)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
