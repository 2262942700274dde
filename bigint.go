// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// BigInt is an arbitrary-precision signed integer. The zero value is the
// integer 0, ready to use without further initialization.
//
// Internally BigInt is a tagged union: small values live inline in the
// small field (abs == nil); values that cannot be represented as a signed
// 32-bit integer live in abs as a little-endian magnitude with neg giving
// the sign. INT32_MIN is the sole exception — it is always stored in
// Extended form so that the inline fast path never needs to special-case
// it. A BigInt is immutable once constructed: every operation below
// returns a new value and never mutates its receiver or its arguments.
type BigInt struct {
	small int32
	neg   bool
	abs   []uint32
}

const (
	minInt32 = int32(-1) << 31
	maxInt32 = int32(1<<31 - 1)
)

// Canonical representations named by spec: Zero, One, MinusOne, and the
// Extended form of math.MinInt32 (which can never be stored inline).
var (
	Zero     = BigInt{small: 0}
	One      = BigInt{small: 1}
	MinusOne = BigInt{small: -1}
	MinInt   = BigInt{neg: true, abs: []uint32{0x8000_0000}}
)

// FromInt64 converts an int64 to a BigInt exactly.
func FromInt64(v int64) BigInt {
	if v >= int64(minInt32)+1 && v <= int64(maxInt32) {
		result := BigInt{small: int32(v)}
		result.assertValid()
		return result
	}
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1 // avoids overflow when v == math.MinInt64
	} else {
		u = uint64(v)
	}
	return normalize(neg, limbsFromUint64(u))
}

// FromInt32 converts an int32 to a BigInt exactly.
func FromInt32(v int32) BigInt {
	if v == minInt32 {
		return MinInt
	}
	result := BigInt{small: v}
	result.assertValid()
	return result
}

// FromUint64 converts a uint64 to a BigInt exactly.
func FromUint64(v uint64) BigInt {
	if v <= uint64(maxInt32) {
		result := BigInt{small: int32(v)}
		result.assertValid()
		return result
	}
	return normalize(false, limbsFromUint64(v))
}

func limbsFromUint64(u uint64) []uint32 {
	return []uint32{uint32(u), uint32(u >> 32)}
}

// normalize builds the canonical BigInt for a (sign, magnitude) pair,
// trimming leading (high) zero limbs and collapsing to inline form
// whenever possible. sign is ignored when the magnitude is zero. This is
// the single chokepoint every arithmetic path must return through.
func normalize(neg bool, limbs []uint32) BigInt {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	limbs = limbs[:n:n]

	var result BigInt
	switch {
	case n == 0:
		result = Zero
	case n == 1:
		v := limbs[0]
		switch {
		case neg && v == 0x8000_0000:
			result = MinInt
		case neg && v < 0x8000_0000:
			result = BigInt{small: -int32(v)}
		case neg:
			result = BigInt{neg: true, abs: limbs}
		case v <= uint32(maxInt32):
			result = BigInt{small: int32(v)}
		default:
			result = BigInt{abs: limbs}
		}
	default:
		result = BigInt{neg: neg, abs: limbs}
	}
	result.assertValid()
	return result
}

// signMag returns x's sign and little-endian magnitude limbs, materializing
// the inline form into a freshly allocated single-limb slice when needed.
// The returned slice must never be mutated by the caller: for the Extended
// case it aliases x's own storage.
func (x BigInt) signMag() (neg bool, mag []uint32) {
	if x.abs != nil {
		return x.neg, x.abs
	}
	if x.small == 0 {
		return false, nil
	}
	if x.small < 0 {
		return true, []uint32{uint32(-int64(x.small))}
	}
	return false, []uint32{uint32(x.small)}
}

// IsZero reports whether x is the integer 0.
func (x BigInt) IsZero() bool {
	return x.abs == nil && x.small == 0
}

// IsNegative reports whether x < 0.
func (x BigInt) IsNegative() bool {
	if x.abs != nil {
		return x.neg
	}
	return x.small < 0
}

// IsEven reports whether x is divisible by two.
func (x BigInt) IsEven() bool {
	if x.abs != nil {
		return x.abs[0]&1 == 0
	}
	return x.small&1 == 0
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x BigInt) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.IsNegative():
		return -1
	default:
		return 1
	}
}

// Neg returns -x.
func (x BigInt) Neg() BigInt {
	if x.IsZero() {
		return Zero
	}
	neg, mag := x.signMag()
	return normalize(!neg, mag)
}

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func (x BigInt) CmpAbs(y BigInt) int {
	_, xm := x.signMag()
	_, ym := y.signMag()
	return magCmp(xm, ym)
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x BigInt) Cmp(y BigInt) int {
	xNeg, xm := x.signMag()
	yNeg, ym := y.signMag()
	xZero, yZero := len(xm) == 0, len(ym) == 0
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		if yNeg {
			return 1
		}
		return -1
	case yZero:
		if xNeg {
			return -1
		}
		return 1
	case xNeg != yNeg:
		if xNeg {
			return -1
		}
		return 1
	case xNeg:
		return -magCmp(xm, ym)
	default:
		return magCmp(xm, ym)
	}
}

// assertValidFields performs the structural invariant checks named by the
// spec. It is called by assertValid, whose body is compiled in only under
// the debug build tag (see debug_on.go / debug_off.go); outside of that
// tag assertValid is a no-op and this function is never reached.
func (x BigInt) assertValidFields() error {
	if x.abs == nil {
		if x.small == minInt32 {
			return errInvariant("inline form must not store INT32_MIN")
		}
		return nil
	}
	if len(x.abs) == 0 {
		return errInvariant("extended form must not have an empty magnitude")
	}
	if x.abs[len(x.abs)-1] == 0 {
		return errInvariant("extended form must not have a leading zero limb")
	}
	if len(x.abs) == 1 {
		v := x.abs[0]
		if v < 0x8000_0000 {
			return errInvariant("single-limb extended magnitude must be >= 2^31")
		}
	}
	return nil
}

func errInvariant(msg string) error {
	return &Error{Kind: InvariantViolation, Op: "bigint.AssertValid", Msg: msg}
}

// isPowerOfTwoMagnitude reports whether mag (assumed non-zero, trimmed)
// represents a power of two.
func isPowerOfTwoMagnitude(mag []uint32) bool {
	top := len(mag) - 1
	for i := 0; i < top; i++ {
		if mag[i] != 0 {
			return false
		}
	}
	return mag[top]&(mag[top]-1) == 0
}

// IsPowerOfTwo reports whether x is a positive power of two.
func (x BigInt) IsPowerOfTwo() bool {
	if x.IsZero() || x.IsNegative() {
		return false
	}
	_, mag := x.signMag()
	return isPowerOfTwoMagnitude(mag)
}
