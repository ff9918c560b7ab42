// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Naive O(r·n·c) matrix multiplication: allocating MatMul and the
//     allocation-free MatMulInto it delegates to.
//
// Numeric contract:
//   - Every output cell is accumulated LEFT TO RIGHT starting at 0.0 in a
//     fixed i→j→k order, with no fused multiply-add and no zero skipping.
//     The fast path and the interface fallback produce bit-identical
//     results, and so do MatMul and MatMulInto.

package matrix

import "fmt"

// MatMul computes the matrix product a × b into a freshly allocated Dense of
// shape (a.Rows × b.Cols). Operands are never mutated.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: delegate to MatMulInto for the shared kernel.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(a.r · a.c · b.c), Space O(a.r · b.c).
func MatMul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	dest, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	if err = MatMulInto(a, b, dest); err != nil {
		return nil, err
	}

	return dest, nil
}

// MatMulInto computes the matrix product a × b into the pre-sized dest,
// allocating nothing. dest must have exactly the shape (a.Rows × b.Cols) and
// must not alias a or b: the kernel overwrites dest cells while operand
// cells are still being read.
//
// Implementation:
//   - Stage 1: validate operand compatibility, dest liveness and dest shape.
//   - Stage 2: triple loop i→j→k; each cell starts at 0.0 and accumulates
//     a(i,k)*b(k,j) strictly left to right. Fast path indexes the flat
//     buffers directly; fallback reads through At, keeping the same order.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (inner mismatch or
// wrong dest shape).
// Determinism: fixed i→j→k on both paths; associativity-sensitive results
// reproduce exactly across runs and platforms.
// Complexity: Time O(a.r · a.c · b.c), Space O(1).
func MatMulInto(a, b Matrix, dest *Dense) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMatMulInto, err)
	}
	if err := ValidateLive(dest); err != nil {
		return matrixErrorf(opMatMulInto, err)
	}
	if dest.r != a.Rows() || dest.c != b.Cols() {
		return matrixErrorf(opMatMulInto, ErrDimensionMismatch)
	}

	inner := a.Cols() // shared dimension a.Cols == b.Rows
	var (
		i, j, k int     // loop iterators (fixed i→j→k order)
		acc     float64 // per-cell accumulator, starts at 0.0
	)

	// Fast path: both operands *Dense → flat row-major indexing.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseD int
			for i = 0; i < dest.r; i++ {
				baseA = i * da.c
				baseD = i * dest.c
				for j = 0; j < dest.c; j++ {
					acc = 0.0
					for k = 0; k < inner; k++ {
						acc += da.data[baseA+k] * db.data[k*db.c+j]
					}
					dest.data[baseD+j] = acc
				}
			}

			return nil
		}
	}

	// Fallback: generic interface loop, same i→j→k accumulation order.
	var av, bv float64
	var err error
	for i = 0; i < dest.r; i++ {
		for j = 0; j < dest.c; j++ {
			acc = 0.0
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return matrixErrorf(opMatMulInto, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return matrixErrorf(opMatMulInto, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			dest.data[i*dest.c+j] = acc
		}
	}

	return nil
}
