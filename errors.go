// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "fmt"

// Kind classifies the structured errors this package can return. There is
// no retry and no partial success: every operation either returns a valid
// result or a *Error describing exactly why it could not.
type Kind int

const (
	// DivideByZero is returned by Div, Mod, DivRem, and ModPow when the
	// divisor or modulus is zero.
	DivideByZero Kind = iota
	// Overflow is the panic value of MustInt64 and MustUint64 when the
	// value does not fit (the checked Int64/Uint64/Int32/Uint32 report
	// this with ok == false instead), and is returned by Bytes when
	// exporting a negative value as unsigned and by FromFloat64 when the
	// input is not finite.
	Overflow
	// InvalidArgument is returned by Pow and ModPow for a negative
	// exponent. Log does not return an error; it returns NaN for
	// non-positive input, matching IEEE float conventions.
	InvalidArgument
	// InvariantViolation marks an internal representation invariant
	// failure. It is only ever produced by assertValid, which compiles to
	// a no-op outside of debug builds (see debug_off.go / debug_on.go).
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case DivideByZero:
		return "divide by zero"
	case Overflow:
		return "overflow"
	case InvalidArgument:
		return "invalid argument"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown error"
	}
}

// Error is the structured failure type returned by this package's public
// API. Op names the failing operation (e.g. "bigint.Div"); Msg carries any
// additional detail.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("bigint: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("bigint: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is a *Error of the same Kind, enabling
// errors.Is(err, bigint.ErrDivideByZero) style checks without requiring
// callers to match on the exact Op or Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors usable with errors.Is. Only Kind is compared; Op and Msg
// are ignored by (*Error).Is.
var (
	ErrDivideByZero      = &Error{Kind: DivideByZero}
	ErrOverflow          = &Error{Kind: Overflow}
	ErrInvalidArgument   = &Error{Kind: InvalidArgument}
	ErrInvariantViolation = &Error{Kind: InvariantViolation}
)

func errDivideByZero(op string) *Error {
	return &Error{Kind: DivideByZero, Op: op}
}

func errOverflow(op, msg string) *Error {
	return &Error{Kind: Overflow, Op: op, Msg: msg}
}

func errInvalidArgument(op, msg string) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Msg: msg}
}
