// SPDX-License-Identifier: MIT

// Package mpreal adapts math/big.Float into a first-class scalar for dense
// linear algebra.
//
// What & Why:
//
//	Generic numeric code (norms, decompositions, rank and convergence tests)
//	needs a fixed set of facts about its scalar type: named constants, the
//	largest finite value, machine epsilon, a looser "dummy" tolerance, fuzzy
//	comparisons, narrowing casts to native types, a random generator, and a
//	handful of cost/trait flags. This package answers those queries for
//	*big.Float without exposing anything about its internals.
//
// Precision & rounding:
//
//	big.Float keeps precision and rounding mode per value. What other
//	arbitrary-precision libraries treat as process-wide "current default" is an
//	explicit, immutable *Context here, built once with functional options and
//	shared read-only by any number of goroutines.
//
// Failure semantics:
//
//	Adapter operations perform no validation. Anything math/big rejects (for
//	example precision above big.MaxPrec) surfaces exactly as math/big reports it.
//	Only the Option constructors panic, and only on nonsensical arguments.
package mpreal
