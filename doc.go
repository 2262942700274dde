// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package bigint implements the arithmetic kernel of an arbitrary-precision
// signed integer: a compact dual representation (a machine-word fast path
// plus an arbitrary-length magnitude), Karatsuba multiplication and
// squaring with scratch-buffer reuse, Knuth Algorithm D division with
// guess correction, GCD, modular exponentiation, shifts, two's-complement
// bitwise operations, and two's-complement byte import/export.
//
// Textual parsing/formatting, decimal and double conversions beyond the
// raw bit extraction this package exposes, hash combining, and wire-format
// envelopes are deliberately out of scope: they are external collaborators
// built on top of Bytes, SetBytes, GetBitLength, and the shift operations.
//
// Every BigInt is immutable once constructed. Arithmetic functions never
// mutate their operands; they always return a new value. Because values
// never change after construction, they may be freely shared across
// goroutines without synchronization.
package bigint
