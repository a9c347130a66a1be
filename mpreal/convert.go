// SPDX-License-Identifier: MIT

package mpreal

import "math/big"

// Narrowing casts follow math/big's native conversion rules and add no checks:
// out-of-range values saturate (±Inf for floats, MinInt64/MaxInt64 for
// integers) exactly as big.Float defines.

// ToFloat64 returns x rounded to the nearest float64 (ties to even).
func ToFloat64(x *big.Float) float64 {
	f, _ := x.Float64()

	return f
}

// ToFloat32 returns x rounded to the nearest float32 (ties to even).
func ToFloat32(x *big.Float) float32 {
	f, _ := x.Float32()

	return f
}

// ToInt64 truncates x toward zero.
func ToInt64(x *big.Float) int64 {
	i, _ := x.Int64()

	return i
}

// ToInt truncates x toward zero and narrows to int.
func ToInt(x *big.Float) int { return int(ToInt64(x)) }
