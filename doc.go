// Package mpmatrix is arbitrary-precision dense matrix multiplication for Go,
// built on math/big.Float.
//
// What is inside?
//
//	mpreal/  — numeric traits for *big.Float: an explicit precision and
//	           rounding-mode Context, machine epsilon, the fuzzy comparisons,
//	           Highest/Lowest, the constants π, γ, ln 2, Catalan, random values
//	           and narrowing conversions.
//	gebp/    — the general block-panel multiply-accumulate kernel
//	           (C += α·A·B over packed panels) for *big.Float, plus a float64
//	           kernel with the same contract.
//	matrix/  — a column-major Dense host that packs operands, splits the
//	           product into depth and column blocks, and runs the kernel on
//	           disjoint column blocks concurrently.
//	cmd/mpgemm — a command that multiplies random matrices and checks the
//	           result against float64 BLAS.
//
// Precision is never global: every value is created from an mpreal.Context,
// and the kernel rounds with the context's precision and mode.
//
// Quick start:
//
//	ctx := mpreal.NewContext(mpreal.WithPrecision(256))
//	a, _ := matrix.Random(64, 64, nil, matrix.WithContext(ctx))
//	b, _ := matrix.Random(64, 64, nil, matrix.WithContext(ctx))
//	c, _ := matrix.Mul(a, b)
//	fmt.Println(c.Rows(), c.Cols())
package mpmatrix
