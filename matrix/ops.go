// SPDX-License-Identifier: MIT
// Package matrix provides the elementary kernels the spectral layer is built
// on: matrix-vector products, transposition, scaling, degree/Laplacian
// assembly and row gathering. All kernels perform strict fail-fast validation
// and return sentinel errors on misuse; each has a *Dense fast-path and a
// generic interface fallback with fixed loop orders.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec     = "MatVec"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opDegree     = "Degree"
	opLaplacian  = "Laplacian"
	opGatherRows = "GatherRows"
	opEigen      = "Eigen"
	opSmallest   = "SmallestEigenpairs"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing; *CSR
// delegates to its O(nnz) MulVec.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c) dense / O(nnz) sparse, Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Fast-path: sparse one-pass product.
	if s, ok := m.(*CSR); ok {
		y, err := s.MulVec(x)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}

		return y, nil
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ { // iterate rows deterministically
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Transpose returns a new Dense with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path: Dense → Dense flat copy, data[i*cols+j] → res.data[j*rows+i].
	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new Dense whose elements are alpha * m[i,j].
// The original matrix is never mutated; alpha = 0 yields an explicit zero
// matrix with the same shape.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path: single flat loop on the backing slice.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Degree returns the row sums of a square matrix — the vertex degrees when
// m is an adjacency matrix (weighted degrees for weighted adjacency).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²) dense / O(nnz) sparse, Space O(n).
func Degree(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDegree, err)
	}
	n := m.Rows()
	deg := make([]float64, n)

	// Fast-path: sparse single pass over stored entries.
	if s, ok := m.(*CSR); ok {
		var i, k int
		for i = 0; i < s.n; i++ {
			for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				deg[i] += s.val[k]
			}
		}

		return deg, nil
	}

	// Fast-path: dense flat row walks.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < n; j++ {
				deg[i] += d.data[base+j]
			}
		}

		return deg, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDegree, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			deg[i] += v
		}
	}

	return deg, nil
}

// Laplacian builds L = D − A for a square adjacency matrix A, where D is the
// diagonal matrix of row sums (degrees). The result keeps A's representation:
// *CSR in → *CSR out; anything else materializes a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateSquare(A); compute degrees.
//   - Stage 2: L[i,i] = deg[i] − A[i,i]; L[i,j] = −A[i,j] for i ≠ j.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n²) dense / O(nnz log nnz) sparse.
//
// AI-Hints:
//   - Keep large sparse adjacencies as *CSR so the eigensolver facade can take
//     the Krylov path instead of densifying.
func Laplacian(adj Matrix) (Matrix, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}

	// Fast-path: sparse-in, sparse-out.
	if s, ok := adj.(*CSR); ok {
		lap, err := s.laplacian()
		if err != nil {
			return nil, matrixErrorf(opLaplacian, err)
		}

		return lap, nil
	}

	deg, err := Degree(adj)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	n := adj.Rows()

	// Fast-path: dense flat fill.
	if d, ok := adj.(*Dense); ok {
		res, err := NewDense(n, n)
		if err != nil {
			return nil, matrixErrorf(opLaplacian, err)
		}
		var i, j, base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < n; j++ {
				res.data[base+j] = -d.data[base+j]
			}
			res.data[base+i] += deg[i]
		}

		return res, nil
	}

	// Fallback: negate generically, then lift the degrees onto the diagonal
	// (−A[i,i] + deg[i] = deg[i] − A[i,i]).
	neg, err := Scale(adj, -1)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		if v, err = neg.At(i, i); err != nil {
			return nil, matrixErrorf(opLaplacian, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if err = neg.Set(i, i, v+deg[i]); err != nil {
			return nil, matrixErrorf(opLaplacian, fmt.Errorf("Set(%d,%d): %w", i, i, err))
		}
	}

	return neg, nil
}

// GatherRows returns a fresh Dense whose k-th row is m[rows[k], :].
// This is the discrete "evaluation" primitive: graph eigenfunctions are row
// lookups into the eigenvector block, not continuous function evaluations.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty rows), ErrOutOfRange.
// Complexity: Time O(len(rows)*c), Space O(len(rows)*c).
func GatherRows(m Matrix, rows []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGatherRows, err)
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opGatherRows, ErrInvalidDimensions)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(len(rows), c)
	if err != nil {
		return nil, matrixErrorf(opGatherRows, err)
	}

	// Fast-path: dense row block copies.
	if d, ok := m.(*Dense); ok {
		for k, src := range rows {
			if src < 0 || src >= r {
				return nil, matrixErrorf(opGatherRows, fmt.Errorf("row %d: %w", src, ErrOutOfRange))
			}
			copy(res.data[k*c:(k+1)*c], d.data[src*c:(src+1)*c])
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var j int
	var v float64
	for k, src := range rows {
		if src < 0 || src >= r {
			return nil, matrixErrorf(opGatherRows, fmt.Errorf("row %d: %w", src, ErrOutOfRange))
		}
		for j = 0; j < c; j++ {
			if v, err = m.At(src, j); err != nil {
				return nil, matrixErrorf(opGatherRows, fmt.Errorf("At(%d,%d): %w", src, j, err))
			}
			if err = res.Set(k, j, v); err != nil {
				return nil, matrixErrorf(opGatherRows, fmt.Errorf("Set(%d,%d): %w", k, j, err))
			}
		}
	}

	return res, nil
}
