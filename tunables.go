// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "sync"

// The Karatsuba/squaring/scratch thresholds are module-level, test-exposed
// parameters, matching §9's "mutable singletons for threshold constants"
// note: release builds use the defaults below; tests override them with
// SetKaratsubaThresholdForTest et al. to force schoolbook-only or
// Karatsuba-only code paths against the same inputs. This repurposes the
// teacher's Dispatcher/getDispatcher() singleton shape (dispatch.go in the
// original bigmath package) — there the singleton selected a CPU-specific
// function pointer; here it guards a plain int behind a RWMutex instead,
// since this package has no architecture-specific implementations to pick
// between.
const (
	defaultKaratsubaThreshold = 32
	defaultSquareThreshold    = 32
)

var tunablesMu sync.RWMutex
var (
	karatsubaThreshold  = defaultKaratsubaThreshold
	squareThreshold     = defaultSquareThreshold
	scratchPoolLimbSize = defaultScratchPoolThreshold
)

func getKaratsubaThreshold() int {
	tunablesMu.RLock()
	defer tunablesMu.RUnlock()
	return karatsubaThreshold
}

func getSquareThreshold() int {
	tunablesMu.RLock()
	defer tunablesMu.RUnlock()
	return squareThreshold
}

func getScratchPoolThreshold() int {
	tunablesMu.RLock()
	defer tunablesMu.RUnlock()
	return scratchPoolLimbSize
}

// SetKaratsubaThresholdForTest overrides the limb count at or above which
// multiplication switches from schoolbook to Karatsuba. It returns a
// restore function that must be called to put the default back; tests
// use it to force one code path or the other over identical inputs.
func SetKaratsubaThresholdForTest(n int) (restore func()) {
	tunablesMu.Lock()
	prev := karatsubaThreshold
	karatsubaThreshold = n
	tunablesMu.Unlock()
	return func() {
		tunablesMu.Lock()
		karatsubaThreshold = prev
		tunablesMu.Unlock()
	}
}

// SetSquareThresholdForTest is SetKaratsubaThresholdForTest's counterpart
// for the squaring recursion.
func SetSquareThresholdForTest(n int) (restore func()) {
	tunablesMu.Lock()
	prev := squareThreshold
	squareThreshold = n
	tunablesMu.Unlock()
	return func() {
		tunablesMu.Lock()
		squareThreshold = prev
		tunablesMu.Unlock()
	}
}

// SetScratchPoolThresholdForTest overrides the limb count above which
// scratch buffers are drawn from the shared pool instead of make(). Tests
// use a threshold of 0 to force every allocation through the pool path,
// exercising its accounting.
func SetScratchPoolThresholdForTest(n int) (restore func()) {
	tunablesMu.Lock()
	prev := scratchPoolLimbSize
	scratchPoolLimbSize = n
	tunablesMu.Unlock()
	return func() {
		tunablesMu.Lock()
		scratchPoolLimbSize = prev
		tunablesMu.Unlock()
	}
}
