// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpmatrix/matrix"
	"github.com/katalvlaran/mpmatrix/mpreal"
)

// mustFromFloat64s builds a Dense from row-major values or fails the test.
func mustFromFloat64s(tb testing.TB, rows, cols int, vals []float64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromFloat64s(rows, cols, vals, opts...)
	require.NoError(tb, err)

	return m
}

// mustRandom builds a Dense uniform on [-1, 1) from a fixed seed.
func mustRandom(tb testing.TB, rows, cols int, seed int64, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Random(rows, cols, rand.New(rand.NewSource(seed)), opts...)
	require.NoError(tb, err)

	return m
}

// randInts returns rows*cols small integers in [-8, 8].
func randInts(rng *rand.Rand, rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	for i := range out {
		out[i] = float64(rng.Intn(17) - 8)
	}

	return out
}

// mustAt reads (i, j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Dense, i, j int) *big.Float {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// naiveProduct computes a·b entry by entry at ctx precision, summing in
// increasing depth order exactly as a single-depth-block kernel does.
func naiveProduct(tb testing.TB, ctx *mpreal.Context, a, b *matrix.Dense) [][]*big.Float {
	tb.Helper()
	rows, depth, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([][]*big.Float, rows)
	tmp := ctx.New()
	for i := 0; i < rows; i++ {
		out[i] = make([]*big.Float, cols)
		for j := 0; j < cols; j++ {
			acc := ctx.New()
			for k := 0; k < depth; k++ {
				tmp.Mul(mustAt(tb, a, i, k), mustAt(tb, b, k, j))
				acc.Add(acc, tmp)
			}
			out[i][j] = acc
		}
	}

	return out
}

// requireBitEqual asserts every entry of m equals want exactly.
func requireBitEqual(tb testing.TB, want [][]*big.Float, m *matrix.Dense) {
	tb.Helper()
	for i := range want {
		for j := range want[i] {
			got := mustAt(tb, m, i, j)
			require.Zerof(tb, want[i][j].Cmp(got), "entry (%d,%d): want %s, got %s",
				i, j, want[i][j].Text('g', 30), got.Text('g', 30))
		}
	}
}

// requireSameEntries asserts a and b agree bit for bit.
func requireSameEntries(tb testing.TB, a, b *matrix.Dense) {
	tb.Helper()
	require.Equal(tb, a.Rows(), b.Rows())
	require.Equal(tb, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.Zerof(tb, mustAt(tb, a, i, j).Cmp(mustAt(tb, b, i, j)), "entry (%d,%d)", i, j)
		}
	}
}
