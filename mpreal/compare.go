// SPDX-License-Identifier: MIT

package mpreal

import "math/big"

// IsMuchSmallerThan reports |a| ≤ |b|·eps.
// Temporaries adopt the operands' precision; inputs are never mutated.
func IsMuchSmallerThan(a, b, eps *big.Float) bool {
	lhs := new(big.Float).Abs(a)
	rhs := new(big.Float).Abs(b)
	rhs.Mul(rhs, eps)

	return lhs.Cmp(rhs) <= 0
}

// IsApprox reports whether a and b are fuzzy-equal: |a − b| ≤ eps.
// The tolerance is absolute. Infinities are equal only to themselves
// (math/big refuses Inf − Inf).
func IsApprox(a, b, eps *big.Float) bool {
	if a.IsInf() || b.IsInf() {
		return a.Cmp(b) == 0
	}
	d := new(big.Float).Sub(a, b)
	d.Abs(d)

	return d.Cmp(eps) <= 0
}

// IsApproxOrLessThan reports a ≤ b, or IsApprox(a, b, eps).
func IsApproxOrLessThan(a, b, eps *big.Float) bool {
	return a.Cmp(b) <= 0 || IsApprox(a, b, eps)
}
