// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Multiply arbitrary-precision matrices through the gebp kernel.
//
// Driver layout (GotoBLAS-style, single packed A per depth block):
//   - Stage 1: split the reduction dimension into depth blocks of kc.
//   - Stage 2: pack the m×kc slice of A once per depth block.
//   - Stage 3: split result columns into blocks of nc; each block packs its own
//     kc×nc slice of B and runs the kernel on a disjoint column window of C.
//   - Stage 4: wait for all column blocks before the next depth block, so the
//     partial sums of every C entry accumulate in increasing depth order.
//
// Determinism:
//   - Each C column is owned by exactly one goroutine per depth block and the
//     depth blocks are sequential, so results do not depend on the worker count.

package matrix

import (
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mpmatrix/gebp"
)

// Mul returns a·b as a new matrix.
//
// The result takes the context from WithContext, or else a's context; its
// entries start at +0 and receive the rounded kernel sums.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (0·∞ or ∞−∞ from ±Inf
// entries stored under WithNoValidateNaNInf).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	ctx := o.contextOr(a.ctx)

	c, err := NewDense(a.r, b.c, WithContext(ctx))
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	one := ctx.FromInt64(1)
	if err = MulAdd(c, one, a, b, append(opts[:len(opts):len(opts)], WithContext(ctx))...); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return c, nil
}

// MulAdd computes c += alpha·a·b in place.
//
// Kernel arithmetic uses WithContext when given, or else c's context.
// a and b are only read; c must not be a or b.
//
// Errors: ErrNilMatrix, ErrNilScalar, ErrDimensionMismatch, ErrAliasedOperands,
// ErrNaNInf (alpha is ±Inf, or ±Inf entries stored under WithNoValidateNaNInf
// produce 0·∞ or ∞−∞). After ErrNaNInf from the arithmetic, c holds partial sums.
//
// Complexity: Time O(m·n·k) big.Float multiply/add pairs; Space O(m·kc + n·kc)
// for the packed panels.
func MulAdd(c *Dense, alpha *big.Float, a, b *Dense, opts ...Option) error {
	if err := ValidateMulShapes(c, a, b); err != nil {
		return matrixErrorf(opMulAdd, err)
	}
	if err := ValidateScalar(alpha); err != nil {
		return matrixErrorf(opMulAdd, err)
	}
	o := gatherOptions(opts...)
	kern := gebp.NewBigFloat(o.contextOr(c.ctx))
	nr := kern.Shape().NR

	rows, depth, cols := a.r, a.c, b.c
	kc := min(o.depthBlock, depth)
	nc := min(o.colBlock, cols)
	if nc%nr != 0 && nc < cols {
		nc += nr - nc%nr // keep interior column blocks aligned to whole kernel groups
	}

	packA := make([]big.Float, rows*kc)
	packB := make([][]big.Float, (cols+nc-1)/nc)

	var k0, j0, blk int
	for k0 = 0; k0 < depth; k0 += kc {
		kb := min(kc, depth-k0)
		packA = PackLHS(packA, a, 0, k0, rows, kb)

		var g errgroup.Group
		g.SetLimit(o.workers)
		for j0, blk = 0, 0; j0 < cols; j0, blk = j0+nc, blk+1 {
			j0, blk := j0, blk
			nb := min(nc, cols-j0)
			g.Go(func() (err error) {
				defer recoverNaN(&err)
				packB[blk] = PackRHS(packB[blk], b, k0, j0, kb, nb, nr)
				kern.MulAdd(
					gebp.Block[big.Float]{Data: c.data[j0*rows:], Stride: rows},
					gebp.Panel[big.Float]{Data: packA, Stride: kb},
					gebp.Panel[big.Float]{Data: packB[blk], Stride: kb},
					rows, kb, nb, alpha,
				)

				return nil
			})
		}
		// Wait is also the depth-block barrier.
		if err := g.Wait(); err != nil {
			return matrixErrorf(opMulAdd, err)
		}
	}

	return nil
}

// recoverNaN turns a big.ErrNaN panic (0·∞, ∞−∞) raised inside a worker into
// ErrNaNInf on *err. Any other panic is re-raised.
func recoverNaN(err *error) {
	r := recover()
	if r == nil {
		return
	}
	nan, ok := r.(big.ErrNaN)
	if !ok {
		panic(r)
	}
	*err = fmt.Errorf("%w: %s", ErrNaNInf, nan.Error())
}
