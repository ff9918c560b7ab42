package matrix_test

import (
	"math"
	"testing"

	"github.com/MKuranowski/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSubScalar_RoundTrip(t *testing.T) {
	m := mustDense(t, 3, 5)
	fillSeeded(t, m, 21)
	orig := toRows(t, m)

	require.NoError(t, matrix.AddScalar(m, 4.25))
	require.NoError(t, matrix.SubScalar(m, 4.25))
	// (x + k) - k re-rounds once per step, so compare within an ulp-scale delta.
	got := toRows(t, m)
	for i := range orig {
		for j := range orig[i] {
			require.InDelta(t, orig[i][j], got[i][j], 1e-12)
		}
	}
}

func TestMulScalar_Linearity(t *testing.T) {
	const k = 3.7
	m := mustDense(t, 4, 4)
	fillSeeded(t, m, 5)
	orig := toRows(t, m)

	require.NoError(t, matrix.MulScalar(m, k))
	require.NoError(t, matrix.MulScalar(m, 1/k))
	got := toRows(t, m)
	for i := range orig {
		for j := range orig[i] {
			require.InDelta(t, orig[i][j], got[i][j], 1e-12)
		}
	}
}

func TestPowScalar_Scenario(t *testing.T) {
	// PowScalar([1, 2, -1, 0.5], 3) → [1, 8, -1, 0.125].
	m := mustFromRows(t, [][]float64{{1, 2, -1, 0.5}})
	require.NoError(t, matrix.PowScalar(m, 3))
	require.Equal(t, [][]float64{{1, 8, -1, 0.125}}, toRows(t, m))
}

func TestPowScalar_HostEdgeCases(t *testing.T) {
	// Negative base with a non-integer exponent follows math.Pow: NaN.
	m := mustFromRows(t, [][]float64{{-2, 4, 0}})
	require.NoError(t, matrix.PowScalar(m, 0.5))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	// Anything to the power zero is one, including zero itself.
	m = mustFromRows(t, [][]float64{{0, -3, 7}})
	require.NoError(t, matrix.PowScalar(m, 0))
	require.Equal(t, [][]float64{{1, 1, 1}}, toRows(t, m))
}

func TestApply_RowMajorOrder(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	// The mapping function records the values it sees; the sequence must be
	// exactly row-major.
	var seen []float64
	require.NoError(t, matrix.Apply(m, func(v float64) float64 {
		seen = append(seen, v)
		return v * 10
	}))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, seen)
	require.Equal(t, [][]float64{{10, 20, 30}, {40, 50, 60}}, toRows(t, m))
}

func TestApply_NilFunc(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.ErrorIs(t, matrix.Apply(m, nil), matrix.ErrNilFunc)
}

func TestScalarOps_GenericFallbackMatchesFastPath(t *testing.T) {
	fast := mustDense(t, 3, 7)
	fillSeeded(t, fast, 99)
	slow := fast.Clone()

	require.NoError(t, matrix.AddScalar(fast, 1.5))
	require.NoError(t, matrix.MulScalar(fast, -2))
	require.NoError(t, matrix.PowScalar(fast, 2))

	wrapped := opaque{inner: slow}
	require.NoError(t, matrix.AddScalar(wrapped, 1.5))
	require.NoError(t, matrix.MulScalar(wrapped, -2))
	require.NoError(t, matrix.PowScalar(wrapped, 2))

	require.Equal(t, toRows(t, fast), toRows(t, slow))
}
