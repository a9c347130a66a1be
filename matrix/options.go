// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// blocked multiplication driver.
//
// Design goals:
//   - Deterministic behavior: results depend only on inputs, context and block
//     sizes, never on the worker count or scheduling.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"runtime"

	"github.com/katalvlaran/mpmatrix/mpreal"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultDepthBlock is the reduction length packed per pass (kc).
	DefaultDepthBlock = 256

	// DefaultColBlock is the number of result columns one worker owns per pass (nc).
	DefaultColBlock = 64

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicContextNil   = "matrix: WithContext: ctx must be non-nil"
	panicWorkersBad   = "matrix: WithWorkers: n must be >= 1"
	panicBlockSizeBad = "matrix: WithBlockSize: kc and nc must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	ctx            *mpreal.Context // nil ⇒ inherit (operand context or mpreal.DefaultContext)
	validateNaNInf bool            // DefaultValidateNaNInf
	depthBlock     int             // DefaultDepthBlock
	colBlock       int             // DefaultColBlock
	workers        int             // DefaultWorkers (0 ⇒ GOMAXPROCS)
}

// WithContext sets the arithmetic context: precision of new entries, and
// precision and rounding mode of kernel accumulation.
func WithContext(ctx *mpreal.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithValidateNaNInf rejects NaN and ±Inf on ingestion and Set (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store ±Inf. NaN is still rejected on float64
// ingestion because big.Float cannot represent it.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers bounds the number of column blocks processed concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersBad)
	}

	return func(o *Options) { o.workers = n }
}

// WithBlockSize sets the depth block kc and the column block nc of the driver.
// Changing kc changes where partial sums are rounded into C, and therefore may
// change low-order bits of the result; nc never does.
func WithBlockSize(kc, nc int) Option {
	if kc < 1 || nc < 1 {
		panic(panicBlockSizeBad)
	}

	return func(o *Options) {
		o.depthBlock = kc
		o.colBlock = nc
	}
}

// gatherOptions applies user-provided setters on top of defaults and
// resolves derived values (worker count).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		depthBlock:     DefaultDepthBlock,
		colBlock:       DefaultColBlock,
		workers:        DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// contextOr returns the configured context, or fallback when none was set.
func (o Options) contextOr(fallback *mpreal.Context) *mpreal.Context {
	if o.ctx != nil {
		return o.ctx
	}
	if fallback != nil {
		return fallback
	}

	return mpreal.DefaultContext()
}
