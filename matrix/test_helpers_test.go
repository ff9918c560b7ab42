// SPDX-License-Identifier: MIT
// Shared helpers for the matrix package tests: literal constructors,
// content extraction, deterministic random fills and an interface wrapper
// that hides *Dense to force the generic kernel paths.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/MKuranowski/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense allocates a rows×cols zeroed Dense, failing the test on error.
func mustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	return m
}

// mustFromRows builds a Dense from literal row slices.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	m := mustDense(t, len(rows), len(rows[0]))
	for i := range rows {
		require.Len(t, rows[i], len(rows[0]))
		for j, v := range rows[i] {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// toRows extracts the full contents of m as row slices for equality checks.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// fillSeeded fills m with reproducible uniform noise from the given seed.
func fillSeeded(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, m.FillUniform(-25, 25, rng))
}

// opaque hides the concrete *Dense behind a plain Matrix so kernels take
// their generic At/Set fallback instead of the flat fast path.
type opaque struct{ inner matrix.Matrix }

func (o opaque) Rows() int                     { return o.inner.Rows() }
func (o opaque) Cols() int                     { return o.inner.Cols() }
func (o opaque) At(i, j int) (float64, error)  { return o.inner.At(i, j) }
func (o opaque) Set(i, j int, v float64) error { return o.inner.Set(i, j, v) }
func (o opaque) Clone() matrix.Matrix          { return opaque{inner: o.inner.Clone()} }
