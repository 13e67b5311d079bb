// SPDX-License-Identifier: MIT

// Package matrix - Dense3: rank-3 row-major tensor.
//
// Purpose:
//   - Carry per-level addition-theorem blocks of shape [N, N2, L] without a
//     slice-of-matrices indirection: one flat buffer, the explicit index
//     formula (i*n2 + j)*n3 + k, fixed traversal orders.
//
// Complexity quicksheet:
//   - NewDense3: O(n1*n2*n3) zero-init; At/Set: O(1); Fill: O(n1*n2*n3).

package matrix

import "fmt"

// dense3Errorf mirrors denseErrorf for the rank-3 container.
func dense3Errorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Dense3.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Dense3 is a rank-3 tensor with row-major flat storage.
// Offset formula: (i*n2 + j)*n3 + k.
type Dense3 struct {
	n1, n2, n3 int
	data       []float64
}

// NewDense3 creates an n1×n2×n3 zero tensor.
// Errors: ErrInvalidDimensions when any extent is non-positive.
// Complexity: O(n1*n2*n3).
func NewDense3(n1, n2, n3 int) (*Dense3, error) {
	if n1 <= 0 || n2 <= 0 || n3 <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense3{n1: n1, n2: n2, n3: n3, data: make([]float64, n1*n2*n3)}, nil
}

// Dims returns the three extents (n1, n2, n3). O(1).
func (t *Dense3) Dims() (int, int, int) { return t.n1, t.n2, t.n3 }

// At returns the element at (i, j, k) with bounds checking.
// Errors: ErrOutOfRange. Complexity: O(1).
func (t *Dense3) At(i, j, k int) (float64, error) {
	if i < 0 || i >= t.n1 || j < 0 || j >= t.n2 || k < 0 || k >= t.n3 {
		return 0, dense3Errorf(ctxAt, i, j, k, ErrOutOfRange)
	}

	return t.data[(i*t.n2+j)*t.n3+k], nil
}

// Set assigns v at (i, j, k) with bounds checking.
// Errors: ErrOutOfRange. Complexity: O(1).
func (t *Dense3) Set(i, j, k int, v float64) error {
	if i < 0 || i >= t.n1 || j < 0 || j >= t.n2 || k < 0 || k >= t.n3 {
		return dense3Errorf(ctxSet, i, j, k, ErrOutOfRange)
	}
	t.data[(i*t.n2+j)*t.n3+k] = v

	return nil
}

// Fill assigns v to every element in a single flat pass. O(n1*n2*n3).
func (t *Dense3) Fill(v float64) {
	for idx := 0; idx < len(t.data); idx++ { // deterministic 0..n-1
		t.data[idx] = v
	}
}
