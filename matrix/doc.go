// SPDX-License-Identifier: MIT

// Package matrix is a dense matrix of arbitrary-precision scalars (*big.Float)
// plus the minimal host machinery needed to drive the gebp kernel: panel
// packing and a blocked, concurrent C += alpha·A·B driver.
//
// The package provides:
//
//   - Dense: column-major []big.Float storage with safe accessors (At/Set
//     return sentinel errors, never panic on user input).
//   - PackLHS / PackRHS: copy sub-blocks into the kernel's packed layout.
//   - Mul / MulAdd: depth-blocked, column-blocked multiplication. Column blocks
//     of the result are disjoint and run concurrently on a bounded worker group;
//     depth blocks run in order so accumulation is deterministic for a given
//     block size.
//   - AllClose: element-wise fuzzy comparison through mpreal.IsApprox.
//
// Precision and rounding mode come from an explicit *mpreal.Context (see
// WithContext); every entry of a Dense is initialised at that context's
// precision, so no scalar is ever left in math/big's precision-0 state.
package matrix
