// SPDX-License-Identifier: MIT
// Package matrix: the Matrix contract.
//
// The Matrix interface is deliberately small: it is the numeric backend
// boundary of spectra. Every spectral kernel (eigenfunction evaluation,
// Laplacian assembly, eigensolvers) is written purely against this closed
// set of primitives, never against a concrete tensor library's type, so the
// same algebra runs over any conforming storage.

package matrix

// MachineEpsilon is the double-precision unit roundoff, 2^-52.
// It is the clamp value for the theoretically-zero smallest Laplacian
// eigenvalue: an exact 0 would corrupt downstream spectral-density
// computations that divide by eigenvalue-derived quantities.
const MachineEpsilon = 0x1p-52

// Matrix represents a two-dimensional array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1) for Dense; O(log nnz(row)) for CSR.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices; read-only implementations
	// (CSR) return ErrMatrixNotImplemented instead of mutating.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols) for Dense; O(nnz) for CSR.
	Clone() Matrix
}
