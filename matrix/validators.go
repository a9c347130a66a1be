// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (tagged by validator) so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShapes checks a (m×k) · b (k×n) accumulating into c (m×n).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOperands.
func ValidateMulShapes(c, a, b *Dense) error {
	for _, m := range []*Dense{c, a, b} {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulShapes: Inner", ErrDimensionMismatch)
	}
	if c.r != a.r || c.c != b.c {
		return validatorErrorf("ValidateMulShapes: Result", ErrDimensionMismatch)
	}
	if c == a || c == b {
		return validatorErrorf("ValidateMulShapes", ErrAliasedOperands)
	}

	return nil
}

// ValidateScalar ensures a scalar argument is non-nil and finite.
func ValidateScalar(x *big.Float) error {
	if x == nil {
		return validatorErrorf("ValidateScalar", ErrNilScalar)
	}
	if x.IsInf() {
		return validatorErrorf("ValidateScalar", ErrNaNInf)
	}

	return nil
}
