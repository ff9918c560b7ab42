// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place scalar kernels (AddScalar, SubScalar, MulScalar, PowScalar)
//     and the caller-supplied mapping kernel Apply.
//
// Determinism & Performance:
//   - Scalar add/sub/mul are per-cell and order-independent, so the vek SIMD
//     fast path matches the generic fallback bit for bit.
//   - PowScalar intentionally stays on math.Pow: the contract is the host
//     power function's full IEEE edge-case behavior (negative base with a
//     non-integer exponent yields NaN, pow(x, 0) == 1, and so on).

package matrix

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// applyGeneric is the interface fallback shared by every scalar kernel:
// row-major i→j traversal applying f to each cell through At/Set.
func applyGeneric(m Matrix, f func(float64) float64, opTag string) error {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = m.Set(i, j, f(v)); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// AddScalar adds k to every cell of m in place: m[i,j] += k.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(1).
func AddScalar(m Matrix, k float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opAddScalar, err)
	}
	if d, ok := m.(*Dense); ok {
		vek.AddNumber_Inplace(d.data, k)

		return nil
	}

	return applyGeneric(m, func(v float64) float64 { return v + k }, opAddScalar)
}

// SubScalar subtracts k from every cell of m in place: m[i,j] -= k.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(1).
func SubScalar(m Matrix, k float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opSubScalar, err)
	}
	if d, ok := m.(*Dense); ok {
		vek.SubNumber_Inplace(d.data, k)

		return nil
	}

	return applyGeneric(m, func(v float64) float64 { return v - k }, opSubScalar)
}

// MulScalar multiplies every cell of m by k in place: m[i,j] *= k.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(1).
func MulScalar(m Matrix, k float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opMulScalar, err)
	}
	if d, ok := m.(*Dense); ok {
		vek.MulNumber_Inplace(d.data, k)

		return nil
	}

	return applyGeneric(m, func(v float64) float64 { return v * k }, opMulScalar)
}

// PowScalar raises every cell of m to exponent in place:
// m[i,j] = pow(m[i,j], exponent), with math.Pow semantics for every domain
// edge case (negative bases with non-integer exponents produce NaN, any
// value to the power 0 is 1, and so on); nothing is clamped or filtered.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(1).
func PowScalar(m Matrix, exponent float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opPowScalar, err)
	}
	if d, ok := m.(*Dense); ok {
		for i := range d.data {
			d.data[i] = math.Pow(d.data[i], exponent)
		}

		return nil
	}

	return applyGeneric(m, func(v float64) float64 { return math.Pow(v, exponent) }, opPowScalar)
}

// Apply replaces every cell with f(cell), visiting cells in row-major order.
// f should be pure; the traversal order only becomes observable if f carries
// side effects, which is discouraged but not prohibited.
//
// Errors: ErrNilMatrix, ErrReleased, ErrNilFunc.
// Determinism: fixed row-major i→j order on both paths.
// Complexity: Time O(r*c), Space O(1).
func Apply(m Matrix, f func(float64) float64) error {
	if err := ValidateLive(m); err != nil {
		return matrixErrorf(opApply, err)
	}
	if f == nil {
		return matrixErrorf(opApply, ErrNilFunc)
	}
	if d, ok := m.(*Dense); ok {
		// Flat traversal of a row-major buffer IS row-major cell order.
		for i := range d.data {
			d.data[i] = f(d.data[i])
		}

		return nil
	}

	return applyGeneric(m, f, opApply)
}
