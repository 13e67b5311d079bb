// SPDX-License-Identifier: MIT
// Package spaces: sentinel error set (unified, consistent).
// All error conditions of this package resolve to these sentinels; callers
// and tests match via errors.Is. Shape/symmetry violations raised by the
// matrix layer (matrix.ErrNonSquare, matrix.ErrAsymmetry, ...) propagate
// wrapped, so both layers' sentinels stay matchable.

package spaces

import "errors"

var (
	// ErrEvenEigenfunctions is returned when a circle eigenfunction basis is
	// requested with an even count: levels close in (cos, sin) pairs above
	// the constant, so only odd counts describe whole levels.
	ErrEvenEigenfunctions = errors.New("spaces: num eigenfunctions must be odd to cover whole levels")

	// ErrNonPositiveEigenfunctions rejects a basis of size < 1.
	ErrNonPositiveEigenfunctions = errors.New("spaces: num eigenfunctions must be >= 1")

	// ErrNumOutOfRange rejects eigenpair requests outside [1, n] for a graph
	// on n nodes.
	ErrNumOutOfRange = errors.New("spaces: requested eigenpair count out of range")

	// ErrNotNodeIndex is returned when a graph eigenfunction input entry is
	// not an integral node index.
	ErrNotNodeIndex = errors.New("spaces: input is not an integral node index")

	// ErrNotImplemented marks an intentionally unsupported operation on the
	// space surface (e.g., tangent-space checks on Circle).
	ErrNotImplemented = errors.New("spaces: operation not implemented")
)
