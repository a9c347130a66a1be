// SPDX-License-Identifier: MIT

// Package mpreal: functional configuration of the arithmetic Context.
//
// Design goals:
//   - Explicit state: precision and rounding mode travel with a *Context,
//     never through package-level mutable variables.
//   - Immutable after construction: a Context is safe for concurrent readers.
//   - Safe by construction: With* constructors panic only on nonsensical values.
package mpreal

import "math/big"

// Defaults (single source of truth).
const (
	// DefaultPrecision is the mantissa width, in bits, of a zero-option Context.
	DefaultPrecision uint = 64

	// DefaultRoundingMode is the rounding mode of a zero-option Context.
	DefaultRoundingMode = big.ToNearestEven
)

const (
	panicPrecisionInvalid = "mpreal: WithPrecision: bits must be in [1, big.MaxPrec]"
	panicModeInvalid      = "mpreal: WithRoundingMode: unknown rounding mode"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	prec uint             // mantissa bits; DefaultPrecision
	mode big.RoundingMode // DefaultRoundingMode
}

// WithPrecision sets the context precision in bits.
// Panics when bits is 0 or exceeds big.MaxPrec (programmer error).
func WithPrecision(bits uint) Option {
	if bits == 0 || bits > big.MaxPrec {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.prec = bits }
}

// WithRoundingMode sets the rounding mode applied by every value the
// context creates and by every kernel call that reads the context.
// Panics on a mode outside the big.RoundingMode enumeration.
func WithRoundingMode(mode big.RoundingMode) Option {
	if mode > big.ToPositiveInf {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = mode }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		prec: DefaultPrecision,
		mode: DefaultRoundingMode,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// Context carries the precision and rounding mode that other libraries keep
// as global defaults. The zero value is not usable; build one with NewContext.
type Context struct {
	prec uint
	mode big.RoundingMode
}

// NewContext resolves opts against the defaults and returns an immutable Context.
//
// Complexity: O(len(opts)).
func NewContext(opts ...Option) *Context {
	o := gatherOptions(opts...)

	return &Context{prec: o.prec, mode: o.mode}
}

// defaultContext is shared by DefaultContext callers; it is never mutated.
var defaultContext = NewContext()

// DefaultContext returns the shared zero-option Context (64 bits, nearest-even).
func DefaultContext() *Context { return defaultContext }

// Prec returns the context precision in bits.
func (c *Context) Prec() uint { return c.prec }

// Mode returns the context rounding mode.
func (c *Context) Mode() big.RoundingMode { return c.mode }

// New returns +0 initialised at the context precision and rounding mode.
// Every value a generic algorithm creates should come from here, so that no
// scalar is ever left with math/big's "precision 0" placeholder state.
func (c *Context) New() *big.Float {
	return new(big.Float).SetPrec(c.prec).SetMode(c.mode)
}

// Init initialises an existing (typically zero-value) scalar in place to +0
// at the context precision and mode. It is the slice-friendly twin of New.
func (c *Context) Init(x *big.Float) *big.Float {
	return x.SetPrec(c.prec).SetMode(c.mode).SetInt64(0)
}

// FromFloat64 returns v at the context precision and mode.
// Panics, as math/big does, when v is NaN.
func (c *Context) FromFloat64(v float64) *big.Float {
	return c.New().SetFloat64(v)
}

// FromInt64 returns v at the context precision and mode.
func (c *Context) FromInt64(v int64) *big.Float {
	return c.New().SetInt64(v)
}
