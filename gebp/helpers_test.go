// SPDX-License-Identifier: MIT

package gebp_test

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/mpmatrix/mpreal"
)

// bigFromInts builds a row-major matrix of exact integers at ctx precision.
func bigFromInts(ctx *mpreal.Context, vals [][]int64) [][]*big.Float {
	out := make([][]*big.Float, len(vals))
	for i, row := range vals {
		out[i] = make([]*big.Float, len(row))
		for j, v := range row {
			out[i][j] = ctx.FromInt64(v)
		}
	}

	return out
}

// bigRandom builds a rows×cols row-major matrix uniform on [-1, 1).
func bigRandom(ctx *mpreal.Context, rng *rand.Rand, rows, cols int) [][]*big.Float {
	low, high := big.NewFloat(-1), big.NewFloat(1)
	out := make([][]*big.Float, rows)
	for i := range out {
		out[i] = make([]*big.Float, cols)
		for j := range out[i] {
			out[i][j] = ctx.RandomRange(rng, low, high)
		}
	}

	return out
}

// cloneBig deep-copies a row-major matrix.
func cloneBig(m [][]*big.Float) [][]*big.Float {
	out := make([][]*big.Float, len(m))
	for i, row := range m {
		out[i] = make([]*big.Float, len(row))
		for j, v := range row {
			out[i][j] = new(big.Float).Copy(v)
		}
	}

	return out
}

// fillPad sets every element of buf to pad (if pad != nil).
func fillPad(buf []big.Float, pad *big.Float) {
	if pad == nil {
		return
	}
	for i := range buf {
		buf[i].Set(pad)
	}
}

// packLHS lays A out as row panels (mr=1): row i at i*stride+offset.
// stride ≤ 0 means depth. Padding cells hold pad.
func packLHS(a [][]*big.Float, stride, offset int, pad *big.Float) []big.Float {
	rows, depth := len(a), len(a[0])
	if stride <= 0 {
		stride = depth
	}
	buf := make([]big.Float, (rows-1)*stride+offset+depth)
	fillPad(buf, pad)
	for i := 0; i < rows; i++ {
		for k := 0; k < depth; k++ {
			buf[i*stride+offset+k].Set(a[i][k])
		}
	}

	return buf
}

// packRHS lays B out as nr-wide column groups (last group may be narrower).
// The returned slice is exactly as long as the kernel may read.
func packRHS(b [][]*big.Float, nr, stride, offset int, pad *big.Float) []big.Float {
	depth, cols := len(b), len(b[0])
	if stride <= 0 {
		stride = depth
	}
	lastJ := ((cols - 1) / nr) * nr
	lastNR := min(nr, cols-lastJ)
	buf := make([]big.Float, lastJ*stride+offset*lastNR+depth*lastNR)
	fillPad(buf, pad)
	for j := 0; j < cols; j += nr {
		w := min(nr, cols-j)
		base := j*stride + offset*w
		for k := 0; k < depth; k++ {
			for q := 0; q < w; q++ {
				buf[base+k*w+q].Set(b[k][j+q])
			}
		}
	}

	return buf
}

// toBlock writes a row-major C into a column-major buffer with the given
// stride and extra trailing columns; unused cells hold pad.
func toBlock(c [][]*big.Float, stride, extraCols int, pad *big.Float) []big.Float {
	rows, cols := len(c), len(c[0])
	buf := make([]big.Float, (cols+extraCols-1)*stride+rows)
	fillPad(buf, pad)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			buf[j*stride+i].Set(c[i][j])
		}
	}

	return buf
}

// fromBlock reads a rows×cols row-major view out of a column-major buffer.
func fromBlock(buf []big.Float, stride, rows, cols int) [][]*big.Float {
	out := make([][]*big.Float, rows)
	for i := range out {
		out[i] = make([]*big.Float, cols)
		for j := range out[i] {
			out[i][j] = new(big.Float).Copy(&buf[j*stride+i])
		}
	}

	return out
}

// naiveMulAdd computes C += alpha·A·B element by element with the same
// rounding discipline and k order as the kernel. It mutates c.
func naiveMulAdd(ctx *mpreal.Context, c, a, b [][]*big.Float, alpha *big.Float) {
	acc := ctx.New()
	tmp := ctx.New()
	for i := range c {
		for j := range c[i] {
			acc.SetInt64(0)
			for k := range b {
				tmp.Mul(a[i][k], b[k][j])
				acc.Add(acc, tmp)
			}
			acc.Mul(acc, alpha)
			c[i][j].SetMode(ctx.Mode())
			c[i][j].Add(c[i][j], acc)
		}
	}
}

// zeros returns a rows×cols matrix of context-initialised zeros.
func zeros(ctx *mpreal.Context, rows, cols int) [][]*big.Float {
	out := make([][]*big.Float, rows)
	for i := range out {
		out[i] = make([]*big.Float, cols)
		for j := range out[i] {
			out[i][j] = ctx.New()
		}
	}

	return out
}
