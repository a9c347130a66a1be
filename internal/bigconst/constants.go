// SPDX-License-Identifier: MIT

package bigconst

import (
	"math"
	"math/big"
)

// Pi returns π rounded to prec bits with the given rounding mode.
func Pi(prec uint, mode big.RoundingMode) *big.Float {
	return roundTo(pi(workPrec(prec)), prec, mode)
}

// Log2 returns ln 2 rounded to prec bits with the given rounding mode.
func Log2(prec uint, mode big.RoundingMode) *big.Float {
	return roundTo(ln2(workPrec(prec)), prec, mode)
}

// Euler returns the Euler–Mascheroni constant γ rounded to prec bits.
//
// Brent–McMillan B1: with b_k = (n^k/k!)² and a_k = b_k·(H_k − ln n),
// γ = Σa_k / Σb_k + O(e^{−4n}). The recurrences are
//
//	b_k = b_{k−1}·n²/k²
//	a_k = a_{k−1}·n²/k² + b_k/k
//
// starting from b_0 = 1, a_0 = −ln n.
func Euler(prec uint, mode big.RoundingMode) *big.Float {
	wp := workPrec(prec)
	n := int64(float64(wp)*math.Ln2/4) + 1

	nf := intFloat(n, wp)
	n2 := newFloat(wp).Mul(nf, nf)

	a := log(nf, wp)
	a.Neg(a)
	b := intFloat(1, wp)
	sumA := newFloat(wp).Set(a)
	sumB := newFloat(wp).Set(b)

	kf := newFloat(wp)
	k2 := newFloat(wp)
	t := newFloat(wp)
	for k := int64(1); ; k++ {
		kf.SetInt64(k)
		k2.SetInt64(k * k)

		b.Mul(b, n2)
		b.Quo(b, k2)

		a.Mul(a, n2)
		a.Quo(a, k2)
		t.Quo(b, kf)
		a.Add(a, t)

		sumA.Add(sumA, a)
		sumB.Add(sumB, b)

		// Terms grow until k ≈ n, so only test for convergence past the peak.
		if k > n && negligible(b, sumB, wp) && negligible(a, sumA, wp) {
			break
		}
	}

	return roundTo(sumA.Quo(sumA, sumB), prec, mode)
}

// Catalan returns Catalan's constant G rounded to prec bits.
//
// G = (π/8)·ln(2+√3) + (3/8)·Σ t_k/(2k+1)², with t_k = 1/C(2k,k),
// t_{k+1} = t_k·(k+1)/(2·(2k+1)), and ln(2+√3) = 2·atanh(1/√3).
func Catalan(prec uint, mode big.RoundingMode) *big.Float {
	wp := workPrec(prec)

	// (π/8)·ln(2+√3)
	y := newFloat(wp).Sqrt(reciprocal(3, wp))
	head := oddPowerSeries(y, false, wp)
	head.Mul(head, intFloat(2, wp))
	head.Mul(head, pi(wp))
	head.Quo(head, intFloat(8, wp))

	// (3/8)·Σ t_k/(2k+1)²
	sum := newFloat(wp)
	t := intFloat(1, wp)
	term := newFloat(wp)
	den := newFloat(wp)
	for k := int64(0); ; k++ {
		den.SetInt64((2*k + 1) * (2*k + 1))
		term.Quo(t, den)
		sum.Add(sum, term)
		if negligible(term, sum, wp) {
			break
		}
		t.Mul(t, intFloat(k+1, wp))
		t.Quo(t, intFloat(2*(2*k+1), wp))
	}
	sum.Mul(sum, intFloat(3, wp))
	sum.Quo(sum, intFloat(8, wp))

	return roundTo(head.Add(head, sum), prec, mode)
}
