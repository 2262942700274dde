// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "sync"

// Two allocation strategies coexist, as required by §5: a small region
// sized so Go's own escape analysis can keep it on the stack when it
// doesn't outlive the call, and a sync.Pool-backed path above that for
// the larger scratch buffers Karatsuba and division need. This mirrors
// the bigIntPool pattern used for scratch big.Int reuse in the pack's
// Karatsuba reference (agbruneau-Fibonacci's internal/bigfft), adapted
// here to pool raw limb slices instead of *big.Int values.

// defaultScratchPoolThreshold is the default limb count above which scratch
// buffers are drawn from the pool instead of a fresh make(); see
// tunables.go for how it is tuned.
const defaultScratchPoolThreshold = 64

var limbPool = sync.Pool{
	New: func() any {
		buf := make([]uint32, 0, 256)
		return &buf
	},
}

// newLimbs returns a zeroed scratch slice of length n. Small requests are
// ordinary make() calls that can be stack-allocated by the compiler when
// they don't escape; larger requests come from limbPool. Every newLimbs
// must be paired with freeLimbs on every exit path, including error
// returns — callers either `defer freeLimbs(buf)` immediately after
// acquiring it or, where no early return can intervene (mulImbalanced),
// call freeLimbs directly once the buffer is no longer needed.
func newLimbs(n int) []uint32 {
	if n <= 0 {
		return nil
	}
	if n <= getScratchPoolThreshold() {
		return make([]uint32, n)
	}
	p := limbPool.Get().(*[]uint32)
	buf := *p
	if cap(buf) < n {
		buf = make([]uint32, n)
	} else {
		buf = buf[:n]
		for i := range buf {
			buf[i] = 0
		}
	}
	return buf
}

// freeLimbs releases a scratch slice acquired via newLimbs. It is a no-op
// for slices small enough to have been stack-local.
func freeLimbs(buf []uint32) {
	if cap(buf) <= getScratchPoolThreshold() || buf == nil {
		return
	}
	b := buf[:0]
	limbPool.Put(&b)
}
