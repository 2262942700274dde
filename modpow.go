// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// ModPow computes (v^e) mod m using left-to-right (most-significant-bit
// first) square-and-multiply, reducing modulo m after every multiply. The
// sign of a non-zero result is negative iff v is negative and e is odd,
// matching ((v mod m)^e) mod m with sign preserved through e's parity.
func ModPow(v, e, m BigInt) (BigInt, error) {
	if e.IsNegative() {
		return BigInt{}, errInvalidArgument("bigint.ModPow", "negative exponent")
	}
	if m.IsZero() {
		return BigInt{}, errDivideByZero("bigint.ModPow")
	}
	if m.Abs().Cmp(One) == 0 {
		return Zero, nil
	}
	if e.IsZero() {
		return One, nil
	}

	_, eMag := e.signMag()
	base, err := Mod(v, m)
	if err != nil {
		return BigInt{}, err
	}

	result := One
	for i := len(eMag) - 1; i >= 0; i-- {
		word := eMag[i]
		for bit := uint(0); bit < 32; bit++ {
			result = result.Mul(result)
			if result, err = Mod(result, m); err != nil {
				return BigInt{}, err
			}
			if word&(0x8000_0000>>bit) != 0 {
				result = result.Mul(base)
				if result, err = Mod(result, m); err != nil {
					return BigInt{}, err
				}
			}
		}
	}

	return result, nil
}

// Pow computes v^e with e >= 0 via square-and-multiply, without any
// modular reduction.
func Pow(v, e BigInt) (BigInt, error) {
	if e.IsNegative() {
		return BigInt{}, errInvalidArgument("bigint.Pow", "negative exponent")
	}
	if e.IsZero() {
		return One, nil
	}
	if v.IsZero() {
		return Zero, nil
	}

	_, eMag := e.signMag()
	result := One
	base := v
	for i := 0; i < len(eMag); i++ {
		word := eMag[i]
		for bit := 0; bit < 32; bit++ {
			if word&(1<<uint(bit)) != 0 {
				result = result.Mul(base)
			}
			if i == len(eMag)-1 && word>>uint(bit) == 0 {
				break
			}
			base = base.Mul(base)
		}
	}
	return result, nil
}
