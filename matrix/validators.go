// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors (tag-wrapped) so call sites match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Dense symmetry runs O(n²) on the upper triangle only; CSR symmetry runs
//    O(nnz log nnz) — an any-mismatch reduction, never a full equality sweep.
//
// AI-Hints:
//  - Use ValidateSymmetric before spectral methods (Jacobi, Lanczos) to fail fast.
//  - Use ValidateVecLen for any MatVec-like operation to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: Matrix value (assumed non-nil by caller or checked first).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks m is square and |m[i,j]-m[j,i]| <= eps for all i<j.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: *CSR fast-path — any-mismatch scan over stored entries only.
//   - Stage 3: generic path — upper-triangle scan via At, short-circuiting on
//     the first violation (any-mismatch, not full equality).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(nnz log nnz) for CSR; O(n²) otherwise.
func ValidateSymmetric(m Matrix, eps float64) error {
	const tag = "ValidateSymmetric"
	if err := ValidateSquare(m); err != nil {
		return err
	}

	// Fast-path: sparse any-mismatch over stored entries.
	if s, ok := m.(*CSR); ok {
		if !s.symmetricWithin(eps) {
			return validatorErrorf(tag, ErrAsymmetry)
		}

		return nil
	}

	// Generic path: upper triangle only, fixed i→j order.
	n := m.Rows()
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if b, err = m.At(j, i); err != nil {
				return validatorErrorf(tag, err)
			}
			if math.Abs(a-b) > eps {
				return validatorErrorf(tag, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen – Ensures x is non-nil and has exactly want entries.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, want int) error {
	if x == nil || len(x) != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumn – Ensures m is a non-nil single-column matrix.
// Spectral inputs (circle angles, graph node indices, eigenvalue vectors)
// travel as [N,1] columns; this guard keeps that contract in one place.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateColumn(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Cols() != 1 || m.Rows() < 1 {
		return validatorErrorf("ValidateColumn", ErrDimensionMismatch)
	}

	return nil
}
