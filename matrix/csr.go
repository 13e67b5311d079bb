// SPDX-License-Identifier: MIT

// Package matrix - CSR: compressed sparse row storage for square matrices.
//
// Purpose:
//   - Hold large sparse adjacency/Laplacian structures where only the
//     matrix-vector product matters (Krylov eigensolvers).
//   - Stay read-only after construction: the spectral pipeline never mutates
//     an adjacency in place, so Set intentionally fails with
//     ErrMatrixNotImplemented rather than invalidating the index arrays.
//
// Determinism:
//   - Triplets are sorted (row, col) at construction; duplicate coordinates
//     are accumulated. All traversals follow the sorted order.
//
// Complexity quicksheet:
//   - NewCSRFromTriplets: O(nnz log nnz); At: O(log nnz(row)); MulVec: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// csrErrorf wraps an error with a uniform CSR context.
func csrErrorf(method string, err error) error {
	return fmt.Errorf("CSR.%s: %w", method, err)
}

// CSR is a square sparse matrix in compressed-sparse-row form.
//   - n is the dimension; rowPtr has length n+1.
//   - colIdx/val hold column indices and values per row, column-sorted.
type CSR struct {
	n      int
	rowPtr []int
	colIdx []int
	val    []float64
}

// Compile-time assertion: *CSR satisfies the Matrix contract.
var _ Matrix = (*CSR)(nil)

// triplet is the COO ingestion record used only during construction.
type triplet struct {
	r, c int
	v    float64
}

// NewCSRFromTriplets builds an n×n CSR matrix from COO coordinates.
//
// Implementation:
//   - Stage 1: validate n>0, equal slice lengths, indices in [0,n), finite
//     values. Zero values are dropped (structural zeros are not stored).
//   - Stage 2: sort triplets by (row, col), accumulate duplicates, compress.
//
// Errors:
//   - ErrInvalidDimensions (n<=0), ErrDimensionMismatch (ragged slices),
//     ErrOutOfRange (bad coordinate), ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz).
func NewCSRFromTriplets(n int, rows, cols []int, vals []float64) (*CSR, error) {
	const op = "NewCSRFromTriplets"
	if n <= 0 {
		return nil, csrErrorf(op, ErrInvalidDimensions)
	}
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, csrErrorf(op, ErrDimensionMismatch)
	}

	// Ingest, validating each coordinate and value.
	ts := make([]triplet, 0, len(rows))
	for k := 0; k < len(rows); k++ {
		if rows[k] < 0 || rows[k] >= n || cols[k] < 0 || cols[k] >= n {
			return nil, csrErrorf(op, ErrOutOfRange)
		}
		if math.IsNaN(vals[k]) || math.IsInf(vals[k], 0) {
			return nil, csrErrorf(op, ErrNaNInf)
		}
		if vals[k] == 0 {
			continue // structural zeros are not stored
		}
		ts = append(ts, triplet{r: rows[k], c: cols[k], v: vals[k]})
	}

	// Deterministic (row, col) order; stable accumulation of duplicates.
	sort.Slice(ts, func(a, b int) bool {
		if ts[a].r != ts[b].r {
			return ts[a].r < ts[b].r
		}
		return ts[a].c < ts[b].c
	})

	m := &CSR{
		n:      n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, 0, len(ts)),
		val:    make([]float64, 0, len(ts)),
	}
	prevR, prevC := -1, -1 // sentinel: no entry appended yet
	for _, t := range ts {
		if t.r == prevR && t.c == prevC {
			m.val[len(m.val)-1] += t.v // accumulate duplicate coordinate
			continue
		}
		m.colIdx = append(m.colIdx, t.c)
		m.val = append(m.val, t.v)
		m.rowPtr[t.r+1]++
		prevR, prevC = t.r, t.c
	}
	// Prefix-sum rowPtr counts into offsets.
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m, nil
}

// Rows returns the dimension n. O(1).
func (m *CSR) Rows() int { return m.n }

// Cols returns the dimension n. O(1).
func (m *CSR) Cols() int { return m.n }

// NNZ returns the number of stored entries. O(1).
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the element at (i, j); absent coordinates read as 0.
// Errors: ErrOutOfRange. Complexity: O(log nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, csrErrorf(ctxAt, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	// Binary search the column-sorted row segment.
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.val[k], nil
	}

	return 0, nil
}

// Set is unsupported: CSR is read-only after construction.
// Errors: ErrOutOfRange (bad index), ErrMatrixNotImplemented otherwise.
func (m *CSR) Set(i, j int, _ float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return csrErrorf(ctxSet, ErrOutOfRange)
	}

	return csrErrorf(ctxSet, ErrMatrixNotImplemented)
}

// Clone returns a deep copy sharing no storage with the receiver. O(nnz).
func (m *CSR) Clone() Matrix {
	cp := &CSR{
		n:      m.n,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		val:    make([]float64, len(m.val)),
	}
	copy(cp.rowPtr, m.rowPtr)
	copy(cp.colIdx, m.colIdx)
	copy(cp.val, m.val)

	return cp
}

// MulVec computes y = m * x in one pass over the stored entries.
// Errors: ErrDimensionMismatch when len(x) != n. Complexity: O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.n {
		return nil, csrErrorf("MulVec", ErrDimensionMismatch)
	}
	y := make([]float64, m.n)
	var i, k int
	var acc float64
	for i = 0; i < m.n; i++ { // fixed row order
		acc = 0
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			acc += m.val[k] * x[m.colIdx[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// Dense materializes the CSR into a fresh Dense.
// This is the documented fallback when a full spectrum of a sparse operator
// is requested: the Krylov path cannot return all n eigenpairs, so the
// caller densifies first. Complexity: O(n² + nnz).
func (m *CSR) Dense() (*Dense, error) {
	d, err := NewDense(m.n, m.n)
	if err != nil {
		return nil, err
	}
	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			d.data[i*m.n+m.colIdx[k]] = m.val[k]
		}
	}

	return d, nil
}

// symmetricWithin reports whether every stored entry (i,j,v) has a mirror
// (j,i) within eps. This is an any-mismatch scan over the nnz entries — far
// cheaper than a full O(n²) equality sweep on sparse inputs.
func (m *CSR) symmetricWithin(eps float64) bool {
	var i, k int
	var mirror float64
	for i = 0; i < m.n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			mirror, _ = m.At(m.colIdx[k], i) // bounds are valid by construction
			if math.Abs(m.val[k]-mirror) > eps {
				return false
			}
		}
	}

	return true
}

// laplacian builds L = D - A for a symmetric adjacency in CSR form,
// where D is the diagonal degree matrix of row sums. O(nnz log nnz).
func (m *CSR) laplacian() (*CSR, error) {
	nnz := len(m.val)
	rows := make([]int, 0, nnz+m.n)
	cols := make([]int, 0, nnz+m.n)
	vals := make([]float64, 0, nnz+m.n)

	deg := make([]float64, m.n)
	var i, k int
	for i = 0; i < m.n; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			deg[i] += m.val[k]
			rows = append(rows, i)
			cols = append(cols, m.colIdx[k])
			vals = append(vals, -m.val[k]) // off-diagonal (and any self-loop) negated
		}
	}
	// Diagonal degree entries; duplicates with negated self-loops accumulate.
	for i = 0; i < m.n; i++ {
		rows = append(rows, i)
		cols = append(cols, i)
		vals = append(vals, deg[i])
	}

	return NewCSRFromTriplets(m.n, rows, cols, vals)
}
