// SPDX-License-Identifier: MIT

package mpreal

import "math/big"

// dummyPrecisionPercent is the share of (precision − 1) bits kept by
// DummyPrecision.
const dummyPrecisionPercent = 90

// Epsilon returns machine epsilon at prec bits: the gap between 1 and the next
// representable value, 2^(1−prec). The result carries precision prec.
// prec must be ≥ 1: math/big turns a 0-bit value into a 64-bit one.
func Epsilon(prec uint) *big.Float {
	z := new(big.Float).SetPrec(prec).SetInt64(1)

	return z.SetMantExp(z, 1-int(prec))
}

// EpsilonOf returns machine epsilon at the precision of x.
// EpsilonOf(x) == Epsilon(x.Prec()) for every x.
func EpsilonOf(x *big.Float) *big.Float { return Epsilon(x.Prec()) }

// Epsilon returns machine epsilon at the context precision.
func (c *Context) Epsilon() *big.Float { return Epsilon(c.prec) }

// EpsilonOf returns machine epsilon at the precision of x. A zero-value x
// (precision 0, never initialised) falls back to the context precision.
func (c *Context) EpsilonOf(x *big.Float) *big.Float {
	if x.Prec() == 0 {
		return Epsilon(c.prec)
	}

	return Epsilon(x.Prec())
}

// DummyPrecision returns the deliberately loose tolerance generic algorithms
// use for approximate-equality decisions: epsilon at ⌊(prec−1)·90/100⌋ bits.
// For the 64-bit default that is 2^−55 instead of the true 2^−63.
// At 1 and 2 bits the formula yields 0 bits; it is clamped to 1, giving 1.
func (c *Context) DummyPrecision() *big.Float {
	weak := max(((c.prec-1)*dummyPrecisionPercent)/100, 1)

	return Epsilon(weak)
}
