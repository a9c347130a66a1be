// SPDX-License-Identifier: MIT

package gebp

import (
	"math/big"

	"github.com/katalvlaran/mpmatrix/mpreal"
)

// Register blocking for *big.Float. nr must stay 2: hosts pack B in pairs.
const (
	bigFloatMR = 1
	bigFloatNR = 2
)

// BigFloat is the GEBP kernel for *big.Float scalars.
//
// Scratch values are created at the context precision and rounding mode.
// Products and partial sums round to that precision; each C entry receives
// the scaled sum rounded at its own precision with the context mode (a C
// entry that was never initialised adopts the context precision).
type BigFloat struct {
	prec uint
	mode big.RoundingMode
}

var _ Kernel[big.Float] = BigFloat{}

// NewBigFloat returns a kernel reading precision and rounding mode from ctx.
func NewBigFloat(ctx *mpreal.Context) BigFloat {
	return BigFloat{prec: ctx.Prec(), mode: ctx.Mode()}
}

// Shape returns {MR: 1, NR: 2}.
func (BigFloat) Shape() Shape { return Shape{MR: bigFloatMR, NR: bigFloatNR} }

// MulAdd computes C[0:rows, 0:cols] += alpha·A·B. See the package
// documentation for the panel layout.
//
// Scratch: two accumulators, one product temporary and one spare, built once
// per call. Each reduction step writes acc+tmp into the spare and swaps it
// with the accumulator, so no addition has its destination aliasing an
// operand (math/big copies an aliased mantissa on every such call).
//
// Complexity: Time O(rows·cols·depth) big.Float multiply/add pairs;
// four scratch values per call.
func (k BigFloat) MulAdd(c Block[big.Float], a, b Panel[big.Float], rows, depth, cols int, alpha *big.Float) {
	if rows <= 0 || depth <= 0 || cols <= 0 {
		return
	}
	strideA := a.stride(depth)
	strideB := b.stride(depth)

	var scratch [4]big.Float
	for s := range scratch {
		k.init(&scratch[s])
	}
	acc1, acc2, tmp, spare := &scratch[0], &scratch[1], &scratch[2], &scratch[3]

	var j, i, kk int
	for j = 0; j < cols; j += bigFloatNR {
		nr := min(bigFloatNR, cols-j)
		c1 := c.Data[j*c.Stride:]
		var c2 []big.Float
		if nr == 2 {
			c2 = c.Data[(j+1)*c.Stride:]
		}

		for i = 0; i < rows; i++ {
			ai := a.Data[i*strideA+a.Offset:]
			bj := b.Data[j*strideB+b.Offset*nr:]
			acc1.SetInt64(0)
			acc2.SetInt64(0)

			for kk = 0; kk < depth; kk++ {
				// A[i,k] is loaded once and shared by both columns.
				tmp.Mul(&ai[kk], &bj[0])
				spare.Add(acc1, tmp)
				acc1, spare = spare, acc1
				if nr == 2 {
					tmp.Mul(&ai[kk], &bj[1])
					spare.Add(acc2, tmp)
					acc2, spare = spare, acc2
				}
				bj = bj[nr:]
			}

			tmp.Mul(acc1, alpha)
			k.addInto(&c1[i], tmp)
			if nr == 2 {
				tmp.Mul(acc2, alpha)
				k.addInto(&c2[i], tmp)
			}
		}
	}
}

// init prepares a scratch value at the kernel precision and mode.
func (k BigFloat) init(x *big.Float) {
	x.SetPrec(k.prec).SetMode(k.mode)
}

// addInto performs dst += v in place, rounding with the kernel mode.
func (k BigFloat) addInto(dst, v *big.Float) {
	dst.SetMode(k.mode)
	dst.Add(dst, v)
}
