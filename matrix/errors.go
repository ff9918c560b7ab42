// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the shared operation tags and the matrixErrorf wrapper. All
// kernels MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the facade,
// so callers can still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or a wrapped buffer's length disagrees with rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, MatMul where a.Cols != b.Rows, or a
	// MatMulInto destination of the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidInterval signals a uniform-fill interval with hi <= lo
	// (or a NaN bound, which can satisfy neither ordering).
	ErrInvalidInterval = errors.New("matrix: invalid uniform interval")

	// ErrNilRand indicates that a nil *rand.Rand was passed to a uniform fill.
	// Randomized constructors take the source explicitly; there is no hidden
	// process-global seeding.
	ErrNilRand = errors.New("matrix: nil random source")

	// ErrNilFunc indicates that a nil mapping function was passed to Apply.
	ErrNilFunc = errors.New("matrix: nil map function")

	// ErrReleased indicates an operation on a matrix whose buffer is gone:
	// either a second Release or any use after Release.
	ErrReleased = errors.New("matrix: buffer already released")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opMulScalar  = "MulScalar"
	opPowScalar  = "PowScalar"
	opApply      = "Apply"
	opMatMul     = "MatMul"
	opMatMulInto = "MatMulInto"
	opTransposed = "Transposed"
	opTranspose  = "Transpose"
	opDump       = "Dump"
	opFill       = "Fill"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match. Keeps a stable "Op: underlying" shape
// for uniform reporting across facades. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
