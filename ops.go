// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Add returns x+y. §4.2: same-sign operands add magnitudes; opposite-sign
// operands subtract the smaller magnitude from the larger and take the
// sign of the larger.
func (x BigInt) Add(y BigInt) BigInt {
	xNeg, xm := x.signMag()
	yNeg, ym := y.signMag()
	if xNeg == yNeg {
		return normalize(xNeg, magAdd(xm, ym))
	}
	switch magCmp(xm, ym) {
	case 0:
		return Zero
	case 1:
		return normalize(xNeg, magSub(xm, ym))
	default:
		return normalize(yNeg, magSub(ym, xm))
	}
}

// Sub returns x-y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x BigInt) Mul(y BigInt) BigInt {
	xNeg, xm := x.signMag()
	yNeg, ym := y.signMag()
	if len(xm) == 0 || len(ym) == 0 {
		return Zero
	}
	return normalize(xNeg != yNeg, mulMagnitude(xm, ym))
}

// Square returns x*x, using the dedicated squaring kernel rather than a
// general multiply.
func (x BigInt) Square() BigInt {
	_, xm := x.signMag()
	if len(xm) == 0 {
		return Zero
	}
	return normalize(false, sqrMagnitude(xm))
}

// DivRem returns the quotient and remainder of truncating division (the
// remainder has the sign of x, or is zero), per §4.4. Returns
// ErrDivideByZero if y is zero.
func DivRem(x, y BigInt) (q, r BigInt, err error) {
	xNeg, xm := x.signMag()
	yNeg, ym := y.signMag()
	if len(ym) == 0 {
		return BigInt{}, BigInt{}, errDivideByZero("bigint.DivRem")
	}
	if len(xm) == 0 {
		return Zero, Zero, nil
	}
	qm, rm := divRemMagnitude(xm, ym)
	q = normalize(xNeg != yNeg, qm)
	r = normalize(xNeg, rm)
	return q, r, nil
}

// Div returns the truncating quotient x/y.
func Div(x, y BigInt) (BigInt, error) {
	q, _, err := DivRem(x, y)
	return q, err
}

// Mod returns the truncating remainder of x/y (same sign as x, or zero).
func Mod(x, y BigInt) (BigInt, error) {
	_, r, err := DivRem(x, y)
	return r, err
}
