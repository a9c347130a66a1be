// SPDX-License-Identifier: MIT

package bigconst

import "math/big"

// guardBits is the extra working precision carried through every series.
const guardBits = 64

// workPrec returns the internal precision used for a target precision.
func workPrec(prec uint) uint { return prec + guardBits }

// newFloat returns a zero value at precision wp (nearest-even rounding).
func newFloat(wp uint) *big.Float { return new(big.Float).SetPrec(wp) }

// intFloat returns v at precision wp.
func intFloat(v int64, wp uint) *big.Float { return newFloat(wp).SetInt64(v) }

// roundTo copies x into a fresh value with the target precision and mode.
func roundTo(x *big.Float, prec uint, mode big.RoundingMode) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(mode).Set(x)
}

// negligible reports whether term no longer changes sum at wp bits.
func negligible(term, sum *big.Float, wp uint) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}

	return term.MantExp(nil) < sum.MantExp(nil)-int(wp)
}

// oddPowerSeries sums y^(2k+1)/(2k+1) for k = 0, 1, ...
// With alternate=true the signs alternate, giving atan(y); otherwise atanh(y).
// Requires |y| < 1; convergence is geometric in y².
func oddPowerSeries(y *big.Float, alternate bool, wp uint) *big.Float {
	sum := newFloat(wp)
	pow := newFloat(wp).Set(y)
	y2 := newFloat(wp).Mul(y, y)
	term := newFloat(wp)
	den := newFloat(wp)

	for k := int64(0); ; k++ {
		den.SetInt64(2*k + 1)
		term.Quo(pow, den)
		if alternate && k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if negligible(term, sum, wp) {
			break
		}
		pow.Mul(pow, y2)
	}

	return sum
}

// reciprocal returns 1/v at wp bits.
func reciprocal(v int64, wp uint) *big.Float {
	return newFloat(wp).Quo(intFloat(1, wp), intFloat(v, wp))
}

// ln2 returns ln 2 = 2·atanh(1/3) at wp bits.
func ln2(wp uint) *big.Float {
	s := oddPowerSeries(reciprocal(3, wp), false, wp)

	return s.Mul(s, intFloat(2, wp))
}

// pi returns π at wp bits via Machin's formula.
func pi(wp uint) *big.Float {
	a := oddPowerSeries(reciprocal(5, wp), true, wp)
	a.Mul(a, intFloat(16, wp))
	b := oddPowerSeries(reciprocal(239, wp), true, wp)
	b.Mul(b, intFloat(4, wp))

	return a.Sub(a, b)
}

// log returns ln x for finite x > 0 at wp bits.
// x is split as m·2^e with m in [0.5, 1); ln m = 2·atanh((m−1)/(m+1)) and
// |(m−1)/(m+1)| ≤ 1/3 keeps the series fast.
func log(x *big.Float, wp uint) *big.Float {
	m := newFloat(wp)
	e := x.MantExp(m)

	one := intFloat(1, wp)
	num := newFloat(wp).Sub(m, one)
	den := newFloat(wp).Add(m, one)
	y := newFloat(wp).Quo(num, den)

	r := oddPowerSeries(y, false, wp)
	r.Mul(r, intFloat(2, wp))
	if e != 0 {
		l := ln2(wp)
		l.Mul(l, intFloat(int64(e), wp))
		r.Add(r, l)
	}

	return r
}
