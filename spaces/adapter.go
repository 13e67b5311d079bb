// SPDX-License-Identifier: MIT
// Package spaces - EigenvectorEigenfunctions: discrete eigenvectors exposed
// through the Eigenfunctions contract.
//
// Each column of the [n, num] eigenvector block is a "basis function"
// defined only on the n graph nodes: evaluation is a row lookup by node
// index, not a continuous function evaluation. Every level holds exactly one
// function, so the addition theorem degenerates to per-eigenvector outer
// products — no closed-form collapsing is possible, or needed, for a
// discrete spectrum. The adapter exists purely so Graph satisfies the same
// contract as Circle.

package spaces

import (
	"fmt"
	"math"

	"github.com/eigenworks/spectra/matrix"
)

// EigenvectorEigenfunctions adapts an eigenvector block to the
// Eigenfunctions contract. It holds a non-owning, read-only reference to the
// block cached inside the originating Graph.
type EigenvectorEigenfunctions struct {
	vectors *matrix.Dense // [n, num], shared with the graph's cache
}

// Compile-time assertion: the adapter carries an addition theorem.
var _ EigenfunctionsWithAdditionTheorem = (*EigenvectorEigenfunctions)(nil)

// NewEigenvectorEigenfunctions wraps an [n, num] eigenvector block.
// Errors: matrix.ErrNilMatrix.
func NewEigenvectorEigenfunctions(vectors *matrix.Dense) (*EigenvectorEigenfunctions, error) {
	if vectors == nil {
		return nil, fmt.Errorf("NewEigenvectorEigenfunctions: %w", matrix.ErrNilMatrix)
	}

	return &EigenvectorEigenfunctions{vectors: vectors}, nil
}

// nodeIndices converts an [N,1] column of integral node indices into []int,
// validating integrality and range against the n nodes.
func (e *EigenvectorEigenfunctions) nodeIndices(op string, X matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateColumn(X); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := e.vectors.Rows()
	idx := make([]int, X.Rows())
	var v float64
	var err error
	for i := 0; i < X.Rows(); i++ {
		if v, err = X.At(i, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%s: row %d (%v): %w", op, i, v, ErrNotNodeIndex)
		}
		k := int(v)
		if k < 0 || k >= n {
			return nil, fmt.Errorf("%s: row %d (%d): %w", op, i, k, matrix.ErrOutOfRange)
		}
		idx[i] = k
	}

	return idx, nil
}

// Evaluate returns the [N, num] values of each eigenvector at each requested
// node: a validated row gather from the eigenvector block.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not a column),
// ErrNotNodeIndex, matrix.ErrOutOfRange.
// Complexity: Time O(N·num).
func (e *EigenvectorEigenfunctions) Evaluate(X matrix.Matrix) (matrix.Matrix, error) {
	const op = "EigenvectorEigenfunctions.Evaluate"
	idx, err := e.nodeIndices(op, X)
	if err != nil {
		return nil, err
	}
	out, err := matrix.GatherRows(e.vectors, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// AdditionTheorem returns the [N, N2, L] per-level products. With one
// function per level this is the plain outer product of the gathered
// eigenvector entries: out[i,j,l] = φ_l(X[i]) · φ_l(X2[j]).
//
// Errors: as Evaluate. Complexity: Time O(N·N2·num).
func (e *EigenvectorEigenfunctions) AdditionTheorem(X, X2 matrix.Matrix) (*matrix.Dense3, error) {
	const op = "EigenvectorEigenfunctions.AdditionTheorem"
	phi1, err := e.Evaluate(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	phi2, err := e.Evaluate(X2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n1, n2, levels := phi1.Rows(), phi2.Rows(), e.NumLevels()
	out, err := matrix.NewDense3(n1, n2, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var (
		i, j, l int
		a, b    float64
	)
	for i = 0; i < n1; i++ {
		for j = 0; j < n2; j++ {
			for l = 0; l < levels; l++ {
				if a, err = phi1.At(i, l); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
				if b, err = phi2.At(j, l); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
				if err = out.Set(i, j, l, a*b); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
			}
		}
	}

	return out, nil
}

// AdditionTheoremDiag returns the [N, L] diagonal case: the squared
// gathered entries, out[i,l] = φ_l(X[i])².
//
// Errors: as Evaluate. Complexity: Time O(N·num).
func (e *EigenvectorEigenfunctions) AdditionTheoremDiag(X matrix.Matrix) (matrix.Matrix, error) {
	const op = "EigenvectorEigenfunctions.AdditionTheoremDiag"
	phi, err := e.Evaluate(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n, levels := phi.Rows(), e.NumLevels()
	out, err := matrix.NewDense(n, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var i, l int
	var v float64
	for i = 0; i < n; i++ {
		for l = 0; l < levels; l++ {
			if v, err = phi.At(i, l); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if err = out.Set(i, l, v*v); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	return out, nil
}

// NumEigenfunctions returns the number of wrapped eigenvectors. O(1).
func (e *EigenvectorEigenfunctions) NumEigenfunctions() int { return e.vectors.Cols() }

// NumLevels equals NumEigenfunctions: each level holds one function. O(1).
func (e *EigenvectorEigenfunctions) NumLevels() int { return e.vectors.Cols() }

// NumEigenfunctionsPerLevel returns [1, 1, ...] of length num (fresh copy).
func (e *EigenvectorEigenfunctions) NumEigenfunctionsPerLevel() []int {
	per := make([]int, e.vectors.Cols())
	for l := range per {
		per[l] = 1
	}

	return per
}
