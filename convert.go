// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math"

const maxInt64 = int64(1<<63 - 1)

// Int64 returns x as an int64 along with whether x fits in one.
func (x BigInt) Int64() (int64, bool) {
	if x.abs == nil {
		return int64(x.small), true
	}
	mag := trim(x.abs)
	if len(mag) > 2 {
		return 0, false
	}
	v := magToUint64(mag)
	if x.neg {
		if v > 1<<63 {
			return 0, false
		}
		return -int64(v), true
	}
	if v > uint64(maxInt64) {
		return 0, false
	}
	return int64(v), true
}

// Uint64 returns x as a uint64 along with whether x fits in one.
func (x BigInt) Uint64() (uint64, bool) {
	if x.IsNegative() {
		return 0, false
	}
	_, mag := x.signMag()
	if len(trim(mag)) > 2 {
		return 0, false
	}
	return magToUint64(mag), true
}

// Int32 returns x as an int32 along with whether x fits in one.
func (x BigInt) Int32() (int32, bool) {
	v, ok := x.Int64()
	if !ok || v < int64(minInt32) || v > int64(maxInt32) {
		return 0, false
	}
	return int32(v), true
}

// Uint32 returns x as a uint32 along with whether x fits in one.
func (x BigInt) Uint32() (uint32, bool) {
	v, ok := x.Uint64()
	if !ok || v > uint64(^uint32(0)) {
		return 0, false
	}
	return uint32(v), true
}

// MustInt64 is Int64 without the ok flag: it panics on overflow. Provided
// for call sites that have already bounds-checked and want an unadorned
// value rather than a two-result form to thread through.
func (x BigInt) MustInt64() int64 {
	v, ok := x.Int64()
	if !ok {
		panic(errOverflow("bigint.MustInt64", "value does not fit in an int64"))
	}
	return v
}

// MustUint64 is Uint64 without the ok flag: it panics on overflow.
func (x BigInt) MustUint64() uint64 {
	v, ok := x.Uint64()
	if !ok {
		panic(errOverflow("bigint.MustUint64", "value does not fit in a uint64"))
	}
	return v
}

// FromFloat64 converts f to a BigInt, truncating any fractional part
// toward zero. It reports ErrOverflow for NaN and infinities, per §6's
// IEEE-754 extraction rules.
func FromFloat64(f float64) (BigInt, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigInt{}, errOverflow("bigint.FromFloat64", "value must be finite")
	}
	if f == 0 {
		return Zero, nil
	}
	neg := f < 0
	mantissa, exp := math.Frexp(math.Abs(f))
	mantInt := uint64(mantissa * (1 << 53))
	exp -= 53

	v := FromUint64(mantInt)
	switch {
	case exp > 0:
		v = v.Lsh(uint(exp))
	case exp < 0:
		v = v.Rsh(uint(-exp))
	}
	if neg && !v.IsZero() {
		v = v.Neg()
	}
	return v, nil
}

// Float64 returns the float64 nearest to x, with the usual rounding and
// overflow-to-Inf behavior that converting an oversized magnitude implies.
func (x BigInt) Float64() float64 {
	if x.IsZero() {
		return 0
	}
	neg, mag := x.signMag()
	mag = trim(mag)
	bits := bitLenMag(mag)
	if bits <= 63 {
		f := float64(magToUint64(mag))
		if neg {
			f = -f
		}
		return f
	}
	shift := uint(bits - 63)
	shifted, dropped := magShrTrunc(mag, shift)
	top := magToUint64(shifted)
	if dropped {
		// Sticky bit: keeps float64(top) from rounding a value just above a
		// halfway point down as if it were an exact tie.
		top |= 1
	}
	f := float64(top) * math.Pow(2, float64(shift))
	if neg {
		f = -f
	}
	return f
}
