// SPDX-License-Identifier: MIT

// Package bigconst evaluates mathematical constants at an arbitrary binary
// precision on top of math/big.Float.
//
// Every exported function:
//   - works internally at prec+guardBits bits,
//   - rounds exactly once into a fresh value of the requested precision and mode,
//   - recomputes from scratch on every call (no cache, so a caller that changes
//     precision between calls never observes a stale value).
//
// Series used:
//   - π:       Machin, 16·atan(1/5) − 4·atan(1/239).
//   - ln 2:    2·atanh(1/3).
//   - γ:       Brent–McMillan (algorithm B1) with n ≈ wp·ln2/4.
//   - Catalan: (π/8)·ln(2+√3) + (3/8)·Σ 1/((2k+1)²·C(2k,k)).
package bigconst
