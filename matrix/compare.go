// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"

	"github.com/katalvlaran/mpmatrix/mpreal"
)

// AllClose reports whether every pair of entries satisfies |a−b| ≤ eps.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilScalar, ErrNaNInf (eps is ±Inf).
func AllClose(a, b *Dense, eps *big.Float) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateScalar(eps); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i := range a.data {
		if !mpreal.IsApprox(&a.data[i], &b.data[i], eps) {
			return false, nil
		}
	}

	return true, nil
}
