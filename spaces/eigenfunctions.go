// SPDX-License-Identifier: MIT
// Package spaces - the Eigenfunctions contract and its addition-theorem
// extension.
//
// Purpose:
//   - Define the polymorphic surface every concrete basis satisfies, so
//     kernel-construction code treats the circle's closed-form Fourier basis
//     and a graph's discrete eigenvector columns uniformly.
//   - Provide SumOuterProducts, the brute-force per-level contraction: the
//     correctness oracle every addition theorem must match, and the generic
//     weighting path for bases without a closed form.

package spaces

import (
	"fmt"

	"github.com/eigenworks/spectra/matrix"
)

// Eigenfunctions is an ordered, finite basis of M functions partitioned into
// L contiguous levels, each level sharing one eigenvalue.
//
// Invariant: sum(NumEigenfunctionsPerLevel()) == NumEigenfunctions().
type Eigenfunctions interface {
	// Evaluate returns the [N, M] matrix of each basis function's value at
	// each of the N input points. X is an [N, 1] column in the coordinate
	// system of the concrete space. No side effects.
	Evaluate(X matrix.Matrix) (matrix.Matrix, error)

	// NumEigenfunctions returns M, the total basis size.
	NumEigenfunctions() int

	// NumLevels returns L, the number of same-eigenvalue groups.
	NumLevels() int

	// NumEigenfunctionsPerLevel returns a fresh length-L slice of positive
	// level widths, indexed by level.
	NumEigenfunctionsPerLevel() []int
}

// EigenfunctionsWithAdditionTheorem extends Eigenfunctions with per-level
// collapsed pairwise products.
type EigenfunctionsWithAdditionTheorem interface {
	Eigenfunctions

	// AdditionTheorem returns the [N, N2, L] tensor whose (i, j, l) entry is
	// the sum over level l's basis functions of (value at X[i]) × (value at
	// X2[j]). Implementations exploit closed-form identities so the cost is
	// independent of the level width; the result must equal SumOuterProducts
	// to numerical tolerance.
	AdditionTheorem(X, X2 matrix.Matrix) (*matrix.Dense3, error)

	// AdditionTheoremDiag returns the [N, L] diagonal special case X2 = X,
	// which may admit a cheaper formula (for rotation-invariant levels the
	// diagonal sum is a per-level constant).
	AdditionTheoremDiag(X matrix.Matrix) (matrix.Matrix, error)
}

// SumOuterProducts computes the brute-force addition-theorem tensor
// Σ_{m in level l} evaluate(X)[:,m] ⊗ evaluate(X2)[:,m] for every level l.
//
// This is the correctness contract every AdditionTheorem implementation must
// reproduce, and the generic O(N·N2·M) weighting path for bases that carry
// no closed-form identity. Fast paths exist precisely to avoid this cost.
//
// Errors: propagated Evaluate failures; matrix sentinels on shape misuse.
// Complexity: Time O(N·N2·M), Space O(N·N2·L).
func SumOuterProducts(ef Eigenfunctions, X, X2 matrix.Matrix) (*matrix.Dense3, error) {
	const op = "SumOuterProducts"
	phi1, err := ef.Evaluate(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	phi2, err := ef.Evaluate(X2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n1, n2 := phi1.Rows(), phi2.Rows()
	perLevel := ef.NumEigenfunctionsPerLevel()
	out, err := matrix.NewDense3(n1, n2, len(perLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		i, j, l, m, w int
		col           int // running basis-function column, level-major
		a, b, acc     float64
	)
	for i = 0; i < n1; i++ {
		for j = 0; j < n2; j++ {
			col = 0
			for l = 0; l < len(perLevel); l++ {
				acc = 0
				w = perLevel[l]
				for m = 0; m < w; m++ {
					if a, err = phi1.At(i, col+m); err != nil {
						return nil, fmt.Errorf("%s: %w", op, err)
					}
					if b, err = phi2.At(j, col+m); err != nil {
						return nil, fmt.Errorf("%s: %w", op, err)
					}
					acc += a * b
				}
				col += w
				if err = out.Set(i, j, l, acc); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	return out, nil
}
