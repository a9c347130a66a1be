// SPDX-License-Identifier: MIT

package mpreal

import (
	"math/big"

	"github.com/katalvlaran/mpmatrix/internal/bigconst"
)

// Highest returns the largest finite value representable with prec mantissa
// bits: (1 − 2^−prec)·2^big.MaxExp.
//
// Complexity: O(prec).
func Highest(prec uint) *big.Float {
	// 2^prec − 1 has exactly prec one-bits, so SetInt below is exact.
	mant := new(big.Int).Lsh(big.NewInt(1), prec)
	mant.Sub(mant, big.NewInt(1))

	z := new(big.Float).SetPrec(prec).SetInt(mant)

	return z.SetMantExp(z, big.MaxExp-int(prec))
}

// Lowest returns the most negative finite value at prec bits. Always −Highest(prec).
func Lowest(prec uint) *big.Float {
	z := Highest(prec)

	return z.Neg(z)
}

// Pi returns π at prec bits, rounded to nearest-even.
func Pi(prec uint) *big.Float { return bigconst.Pi(prec, DefaultRoundingMode) }

// Euler returns the Euler–Mascheroni constant γ at prec bits, rounded to nearest-even.
func Euler(prec uint) *big.Float { return bigconst.Euler(prec, DefaultRoundingMode) }

// Log2 returns ln 2 at prec bits, rounded to nearest-even.
func Log2(prec uint) *big.Float { return bigconst.Log2(prec, DefaultRoundingMode) }

// Catalan returns Catalan's constant at prec bits, rounded to nearest-even.
func Catalan(prec uint) *big.Float { return bigconst.Catalan(prec, DefaultRoundingMode) }

// Highest is Highest(c.Prec()) carrying the context rounding mode.
func (c *Context) Highest() *big.Float { return Highest(c.prec).SetMode(c.mode) }

// Lowest is Lowest(c.Prec()) carrying the context rounding mode.
func (c *Context) Lowest() *big.Float { return Lowest(c.prec).SetMode(c.mode) }

// Pi returns π at the context precision, rounded with the context mode.
// Recomputed on every call.
func (c *Context) Pi() *big.Float { return bigconst.Pi(c.prec, c.mode) }

// Euler returns γ at the context precision, rounded with the context mode.
func (c *Context) Euler() *big.Float { return bigconst.Euler(c.prec, c.mode) }

// Log2 returns ln 2 at the context precision, rounded with the context mode.
func (c *Context) Log2() *big.Float { return bigconst.Log2(c.prec, c.mode) }

// Catalan returns Catalan's constant at the context precision and mode.
func (c *Context) Catalan() *big.Float { return bigconst.Catalan(c.prec, c.mode) }
