// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genBigInt produces BigInt values drawn uniformly from [-2^62, 2^62], so
// most values use the Extended form; the inline/Extended boundary and
// INT32_MIN are not specially targeted.
func genBigInt() gopter.Gen {
	return gen.Int64Range(-1<<62, 1<<62).Map(func(v int64) BigInt {
		return FromInt64(v)
	})
}

func genNonZeroBigInt() gopter.Gen {
	return genBigInt().SuchThat(func(v interface{}) bool {
		return !v.(BigInt).IsZero()
	})
}

// TestAlgebraicProperties exercises §8's named algebraic laws (commutativity,
// associativity, distributivity, additive inverse, and the defining relationship
// between DivRem and Mul/Add) against randomly generated operands.
func TestAlgebraicProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b BigInt) bool {
			return a.Add(b).Cmp(b.Add(a)) == 0
		},
		genBigInt(), genBigInt(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c BigInt) bool {
			return a.Add(b).Add(c).Cmp(a.Add(b.Add(c))) == 0
		},
		genBigInt(), genBigInt(), genBigInt(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b BigInt) bool {
			return a.Mul(b).Cmp(b.Mul(a)) == 0
		},
		genBigInt(), genBigInt(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c BigInt) bool {
			return a.Mul(b).Mul(c).Cmp(a.Mul(b.Mul(c))) == 0
		},
		genBigInt(), genBigInt(), genBigInt(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c BigInt) bool {
			lhs := a.Mul(b.Add(c))
			rhs := a.Mul(b).Add(a.Mul(c))
			return lhs.Cmp(rhs) == 0
		},
		genBigInt(), genBigInt(), genBigInt(),
	))

	properties.Property("x + (-x) == 0", prop.ForAll(
		func(a BigInt) bool {
			return a.Add(a.Neg()).IsZero()
		},
		genBigInt(),
	))

	properties.Property("x*x == Square(x)", prop.ForAll(
		func(a BigInt) bool {
			return a.Mul(a).Cmp(a.Square()) == 0
		},
		genBigInt(),
	))

	properties.Property("DivRem satisfies x == q*y + r with |r| < |y|", prop.ForAll(
		func(a, b BigInt) bool {
			q, r, err := DivRem(a, b)
			if err != nil {
				return false
			}
			rebuilt := q.Mul(b).Add(r)
			return rebuilt.Cmp(a) == 0 && r.CmpAbs(b) < 0
		},
		genBigInt(), genNonZeroBigInt(),
	))

	properties.Property("remainder sign matches the dividend's (or is zero)", prop.ForAll(
		func(a, b BigInt) bool {
			_, r, err := DivRem(a, b)
			if err != nil {
				return false
			}
			return r.IsZero() || r.IsNegative() == a.IsNegative()
		},
		genBigInt(), genNonZeroBigInt(),
	))

	properties.Property("GCD divides both operands", prop.ForAll(
		func(a, b BigInt) bool {
			g := GCD(a, b)
			if g.IsZero() {
				return a.IsZero() && b.IsZero()
			}
			_, ra, err1 := DivRem(a, g)
			_, rb, err2 := DivRem(b, g)
			return err1 == nil && err2 == nil && ra.IsZero() && rb.IsZero()
		},
		genBigInt(), genBigInt(),
	))

	properties.Property("Lsh then Rsh by the same amount recovers the original", prop.ForAll(
		func(a BigInt, n uint8) bool {
			shift := uint(n % 64)
			return a.Lsh(shift).Rsh(shift).Cmp(a) == 0
		},
		genBigInt(), gen.UInt8(),
	))

	properties.Property("two's-complement Not is an involution", prop.ForAll(
		func(a BigInt) bool {
			return a.Not().Not().Cmp(a) == 0
		},
		genBigInt(),
	))

	properties.Property("signed byte export/import round-trips", prop.ForAll(
		func(a BigInt, bigEndian bool) bool {
			buf, err := a.Bytes(false, bigEndian)
			if err != nil {
				return false
			}
			return SetBytes(buf, false, bigEndian).Cmp(a) == 0
		},
		genBigInt(), gen.Bool(),
	))

	properties.TestingRun(t)
}
