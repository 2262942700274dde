// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build debug

package bigint

// assertValid panics with an InvariantViolation *Error if x violates any of
// the representation invariants from §3. Built with -tags debug, this runs
// on every constructor and arithmetic exit path reached by the test suite;
// it never ships in a release build.
func (x BigInt) assertValid() {
	if err := x.assertValidFields(); err != nil {
		panic(err)
	}
}
