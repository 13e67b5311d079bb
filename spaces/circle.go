// SPDX-License-Identifier: MIT
// Package spaces - Circle: the 1-dimensional circular manifold S¹ with the
// closed-form Fourier spectrum.
//
// Eigenfunctions of the Laplace–Beltrami operator on the circle are the
// Fourier basis: level 0 is the constant function, level l ≥ 1 holds the
// pair {√2·cos(lθ), √2·sin(lθ)} sharing the eigenvalue l². Everything here
// is analytic — construction is cheap and stateless, so no caching exists.

package spaces

import (
	"fmt"
	"math"

	"github.com/eigenworks/spectra/matrix"
)

// circleDimension is the intrinsic dimension of S¹.
const circleDimension = 1

// levelWidth is the number of eigenfunctions in every level above the
// constant: one cosine and one sine.
const levelWidth = 2

// SinCosEigenfunctions is the circle's eigenfunction basis.
//
// The basis is emitted level-major: column 0 is the constant 1, columns
// 2l−1 and 2l are √2·cos(lθ) and √2·sin(lθ) for level l ≥ 1. The total
// count must be odd (1 + 2·(L−1)) so the last level is whole.
type SinCosEigenfunctions struct {
	num    int // total basis size M (odd, >= 1)
	levels int // L = M/2 + 1
}

// Compile-time assertion: the circle basis carries an addition theorem.
var _ EigenfunctionsWithAdditionTheorem = (*SinCosEigenfunctions)(nil)

// NewSinCosEigenfunctions builds the circle basis of size num.
//
// Errors:
//   - ErrNonPositiveEigenfunctions when num < 1.
//   - ErrEvenEigenfunctions when num is even (a split level).
//
// Complexity: O(1) — evaluation is lazy.
func NewSinCosEigenfunctions(num int) (*SinCosEigenfunctions, error) {
	if num < 1 {
		return nil, fmt.Errorf("NewSinCosEigenfunctions(%d): %w", num, ErrNonPositiveEigenfunctions)
	}
	if num%2 == 0 {
		return nil, fmt.Errorf("NewSinCosEigenfunctions(%d): %w", num, ErrEvenEigenfunctions)
	}

	return &SinCosEigenfunctions{num: num, levels: num/2 + 1}, nil
}

// Evaluate returns the [N, M] basis values at the polar angles X ([N,1],
// radians).
//
// Implementation:
//   - Stage 1: ValidateColumn(X).
//   - Stage 2: per point, write the constant then each level's (cos, sin)
//     pair in fixed level-major order — the exact order GetEigenvalues
//     repeats eigenvalues in.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not a column).
// Complexity: Time O(N·M), Space O(N·M).
func (e *SinCosEigenfunctions) Evaluate(X matrix.Matrix) (matrix.Matrix, error) {
	const op = "SinCosEigenfunctions.Evaluate"
	if err := matrix.ValidateColumn(X); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := X.Rows()
	out, err := matrix.NewDense(n, e.num)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		i, l  int
		theta float64
		freq  float64
	)
	for i = 0; i < n; i++ {
		if theta, err = X.At(i, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = out.Set(i, 0, 1.0); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for l = 1; l < e.levels; l++ {
			freq = float64(l)
			if err = out.Set(i, 2*l-1, math.Sqrt2*math.Cos(freq*theta)); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if err = out.Set(i, 2*l, math.Sqrt2*math.Sin(freq*theta)); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return out, nil
}

// AdditionTheorem returns the [N, N2, L] per-level collapsed products.
//
// It exploits the identity
//
//	sin(lθ₁)sin(lθ₂) + cos(lθ₁)cos(lθ₂) = cos(l(θ₁−θ₂)),
//
// scaled by the level multiplicity N_l (1 for l = 0, else 2 — the √2
// normalizations square and sum). The pairwise angle difference broadcasts
// across all N×N2 pairs and all levels, so the full M-wide basis is never
// materialized — the central performance reason this fast path exists.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not columns).
// Complexity: Time O(N·N2·L) — independent of the per-level width.
func (e *SinCosEigenfunctions) AdditionTheorem(X, X2 matrix.Matrix) (*matrix.Dense3, error) {
	const op = "SinCosEigenfunctions.AdditionTheorem"
	if err := matrix.ValidateColumn(X); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateColumn(X2); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n1, n2 := X.Rows(), X2.Rows()
	out, err := matrix.NewDense3(n1, n2, e.levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		i, j, l      int
		t1, t2, diff float64
		mult         float64
	)
	for i = 0; i < n1; i++ {
		if t1, err = X.At(i, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for j = 0; j < n2; j++ {
			if t2, err = X2.At(j, 0); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			diff = t1 - t2
			for l = 0; l < e.levels; l++ {
				mult = levelWidth
				if l == 0 {
					mult = 1
				}
				if err = out.Set(i, j, l, mult*math.Cos(float64(l)*diff)); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	return out, nil
}

// AdditionTheoremDiag returns the [N, L] diagonal case X2 = X.
//
// On the diagonal the angle difference vanishes and every level's sum
// reduces to its multiplicity N_l, independent of the point — an O(N·L)
// fill instead of an O(N·M) evaluation followed by a contraction.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not a column).
func (e *SinCosEigenfunctions) AdditionTheoremDiag(X matrix.Matrix) (matrix.Matrix, error) {
	const op = "SinCosEigenfunctions.AdditionTheoremDiag"
	if err := matrix.ValidateColumn(X); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := X.Rows()
	out, err := matrix.NewDense(n, e.levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var i, l int
	var mult float64
	for i = 0; i < n; i++ {
		for l = 0; l < e.levels; l++ {
			mult = levelWidth
			if l == 0 {
				mult = 1
			}
			if err = out.Set(i, l, mult); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return out, nil
}

// NumEigenfunctions returns M. O(1).
func (e *SinCosEigenfunctions) NumEigenfunctions() int { return e.num }

// NumLevels returns L. For each level except the constant there are two
// eigenfunctions. O(1).
func (e *SinCosEigenfunctions) NumLevels() int { return e.levels }

// NumEigenfunctionsPerLevel returns [1, 2, 2, ...] of length L (fresh copy).
func (e *SinCosEigenfunctions) NumEigenfunctionsPerLevel() []int {
	per := make([]int, e.levels)
	for l := 0; l < e.levels; l++ {
		if l == 0 {
			per[l] = 1
			continue
		}
		per[l] = levelWidth
	}

	return per
}

// Circle is the S¹ manifold with sine/cosine eigenfunctions.
// It is stateless and safe for concurrent use.
type Circle struct{}

// Compile-time assertion: Circle is a DiscreteSpectrumSpace.
var _ DiscreteSpectrumSpace = (*Circle)(nil)

// NewCircle returns the circle space.
func NewCircle() *Circle { return &Circle{} }

// Dimension returns 1, the intrinsic dimension of S¹. O(1).
func (c *Circle) Dimension() int { return circleDimension }

// GetEigenfunctions returns a fresh SinCosEigenfunctions basis of size num.
// Pure closed form — no caching is needed.
//
// Errors: ErrNonPositiveEigenfunctions, ErrEvenEigenfunctions.
func (c *Circle) GetEigenfunctions(num int) (Eigenfunctions, error) {
	return NewSinCosEigenfunctions(num)
}

// GetEigenvalues returns the first num Laplace–Beltrami eigenvalues on S¹
// as a [num, 1] column.
//
// Implementation:
//   - Stage 1: build the basis to learn the level structure.
//   - Stage 2: eigenvalue per level is l²; repeat each level's eigenvalue
//     according to its multiplicity, level-major, so eigenvalue[i]
//     corresponds exactly to eigenfunction i of Evaluate's column order.
//
// Errors: ErrNonPositiveEigenfunctions, ErrEvenEigenfunctions.
// Complexity: O(num).
func (c *Circle) GetEigenvalues(num int) (*matrix.Dense, error) {
	const op = "Circle.GetEigenvalues"
	ef, err := NewSinCosEigenfunctions(num)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(num, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	row := 0
	for l, width := range ef.NumEigenfunctionsPerLevel() {
		lambda := float64(l) * float64(l)
		for m := 0; m < width; m++ {
			if err = out.Set(row, 0, lambda); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			row++
		}
	}

	return out, nil
}

// IsTangent reports whether vector is tangent to the circle at basePoint.
//
// Explicitly unsupported: it exists only to satisfy the manifold capability
// surface required by geometry collaborators, and fails rather than return a
// wrong answer.
//
// Errors: ErrNotImplemented, always.
func (c *Circle) IsTangent(vector, basePoint matrix.Matrix, atol float64) (bool, error) {
	return false, fmt.Errorf("Circle.IsTangent: %w", ErrNotImplemented)
}
