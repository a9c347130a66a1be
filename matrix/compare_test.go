// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpmatrix/matrix"
	"github.com/katalvlaran/mpmatrix/mpreal"
)

func TestAllClose(t *testing.T) {
	ctx := mpreal.NewContext(mpreal.WithPrecision(100))
	a := mustFromFloat64s(t, 2, 2, []float64{1, 2, 3, 4}, matrix.WithContext(ctx))
	b := a.Clone()

	ok, err := matrix.AllClose(a, b, big.NewFloat(0))
	require.NoError(t, err)
	require.True(t, ok)

	// Nudge one entry by 2^-80: within 2^-70, outside 2^-90.
	v := mustAt(t, b, 1, 0)
	v.Add(v, new(big.Float).SetMantExp(big.NewFloat(1), -80))
	require.NoError(t, b.Set(1, 0, v))

	ok, err = matrix.AllClose(a, b, new(big.Float).SetMantExp(big.NewFloat(1), -70))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, new(big.Float).SetMantExp(big.NewFloat(1), -90))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllCloseErrors(t *testing.T) {
	a := mustFromFloat64s(t, 2, 2, make([]float64, 4))
	b := mustFromFloat64s(t, 2, 3, make([]float64, 6))

	_, err := matrix.AllClose(a, b, big.NewFloat(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, nil, big.NewFloat(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, nil)
	require.ErrorIs(t, err, matrix.ErrNilScalar)
}
