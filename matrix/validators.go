// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/liveness/shape checks here.
//   - Return plain sentinel errors (tagged, not re-wrapped) so call sites can
//     wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. Live → Shape).

package matrix

import (
	"fmt"
	"math/rand"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures the matrix reference is non-nil and, for *Dense,
// that its buffer has not been released.
//
// Inputs: Matrix interface value.
// Errors: ErrNilMatrix on a nil reference, ErrReleased on a dead buffer.
// Complexity: O(1).
func ValidateLive(m Matrix) error {
	// Reject a nil interface outright.
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	// Concrete *Dense carries liveness state; typed-nil also counts as nil.
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return validatorErrorf("ValidateLive", ErrNilMatrix)
		}
		if d.data == nil {
			return validatorErrorf("ValidateLive", ErrReleased)
		}
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are live (caller must ensure).
//
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Live(a) → Live(b) → SameShape.
//
// Errors: combines ErrNilMatrix, ErrReleased and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs live.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateInterval ensures hi > lo for uniform fills. A NaN bound fails the
// comparison and is rejected through the same sentinel.
//
// Errors: ErrInvalidInterval. Complexity: O(1).
func ValidateInterval(lo, hi float64) error {
	if !(hi > lo) {
		return validatorErrorf("ValidateInterval", ErrInvalidInterval)
	}

	return nil
}

// ValidateRand ensures an explicit pseudo-random source was supplied.
//
// Errors: ErrNilRand. Complexity: O(1).
func ValidateRand(rng *rand.Rand) error {
	if rng == nil {
		return validatorErrorf("ValidateRand", ErrNilRand)
	}

	return nil
}
