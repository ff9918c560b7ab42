// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise binary kernels (Add, Sub) that mutate the LEFT operand in
//     place, matching the container's single-owner mutation model.
//
// Determinism & Performance:
//   - Elementwise sums/differences are order-independent per cell, so the
//     SIMD fast path is bit-identical to the scalar fallback.
//   - Dense fast path operates on the flat buffers via vek in-place kernels.

package matrix

import (
	"fmt"

	"github.com/viterin/vek"
)

// addSub applies a[i] = a[i] + sign*b[i] for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the fast path.
func addSub(a, b Matrix, sign float64, opTag string) error {
	// Validate both operands are live and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → SIMD in-place kernel on flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if sign > 0 {
				vek.Add_Inplace(da.data, db.data)
			} else {
				vek.Sub_Inplace(da.data, db.data)
			}

			return nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = a.Set(i, j, av+sign*bv); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Add performs the elementwise sum a[i,j] += b[i,j], mutating a in place.
// b is never modified. Both operands must be live and share one shape.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Determinism: per-cell operation, no accumulation; SIMD and scalar paths agree exactly.
// Complexity: Time O(r*c), Space O(1).
func Add(a, b Matrix) error { return addSub(a, b, +1, opAdd) }

// Sub performs the elementwise difference a[i,j] -= b[i,j], mutating a in
// place. b is never modified. Both operands must be live and share one shape.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Determinism: per-cell operation, no accumulation; SIMD and scalar paths agree exactly.
// Complexity: Time O(r*c), Space O(1).
func Sub(a, b Matrix) error { return addSub(a, b, -1, opSub) }
