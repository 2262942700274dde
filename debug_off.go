// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !debug

package bigint

// assertValid is a no-op in release builds. Invariant checks never surface
// in production; see debug_on.go for the checked build.
func (x BigInt) assertValid() {}
