// SPDX-License-Identifier: MIT

package gebp_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mpmatrix/gebp"
	"github.com/katalvlaran/mpmatrix/mpreal"
)

// BenchmarkBigFloatMulAdd reports allocations per call; the kernel's own
// scratch is constant, so growth with n comes from math/big internals only.
func BenchmarkBigFloatMulAdd(b *testing.B) {
	b.ReportAllocs()
	for _, prec := range []uint{64, 256} {
		for _, n := range []int{8, 32} {
			b.Run(fmt.Sprintf("prec=%d/n=%d", prec, n), func(b *testing.B) {
				ctx := mpreal.NewContext(mpreal.WithPrecision(prec))
				rng := rand.New(rand.NewSource(1))
				k := gebp.NewBigFloat(ctx)
				pa := gebp.Panel[big.Float]{Data: packLHS(bigRandom(ctx, rng, n, n), 0, 0, nil)}
				pb := gebp.Panel[big.Float]{Data: packRHS(bigRandom(ctx, rng, n, n), 2, 0, 0, nil)}
				c := gebp.Block[big.Float]{Data: toBlock(zeros(ctx, n, n), n, 0, nil), Stride: n}
				alpha := ctx.FromInt64(1)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					k.MulAdd(c, pa, pb, n, n, n, alpha)
				}
			})
		}
	}
}

func BenchmarkFloat64MulAdd(b *testing.B) {
	b.ReportAllocs()
	const n = 64
	rng := rand.New(rand.NewSource(1))
	pa := gebp.Panel[float64]{Data: packLHS64(randInts(rng, n, n))}
	pb := gebp.Panel[float64]{Data: packRHS64(randInts(rng, n, n), 4)}
	c := gebp.Block[float64]{Data: make([]float64, n*n), Stride: n}
	alpha := 1.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gebp.Float64{}.MulAdd(c, pa, pb, n, n, n, &alpha)
	}
}
