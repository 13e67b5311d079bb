// SPDX-License-Identifier: MIT
// Package spaces - the DiscreteSpectrumSpace contract.

package spaces

import "github.com/eigenworks/spectra/matrix"

// DiscreteSpectrumSpace is an index domain (manifold, graph) whose
// Laplacian-type operator has a discrete, enumerable eigendecomposition
// usable to build kernels. Concrete spaces either return closed-form
// analytic objects (Circle) or reuse a cached numerical eigendecomposition
// (Graph); downstream kernel code composes against this interface only.
type DiscreteSpectrumSpace interface {
	// Dimension returns the intrinsic dimension consumed by downstream
	// kernel math. Graph returns the sentinel value 0 by convention — it is
	// not a true dimension.
	Dimension() int

	// GetEigenvalues returns the first num eigenvalues of the space's
	// Laplacian as a [num, 1] column, one entry per eigenfunction in the
	// exact order GetEigenfunctions emits them.
	GetEigenvalues(num int) (*matrix.Dense, error)

	// GetEigenfunctions returns the first num eigenfunctions of the space's
	// Laplacian. The returned object is value-like: freshly constructed,
	// holding no mutable shared state.
	GetEigenfunctions(num int) (Eigenfunctions, error)
}

// EigenvectorProvider is the optional capability of spaces whose
// eigenfunctions are backed by discrete eigenvectors (Graph).
type EigenvectorProvider interface {
	// GetEigenvectors returns the first num eigenvectors as an [n, num]
	// block, n being the number of nodes.
	GetEigenvectors(num int) (*matrix.Dense, error)

	// GetRepeatedEigenvalues returns eigenvalues repeated per eigenfunction.
	// Continuous spaces repeat each level's eigenvalue once per level member;
	// for a discrete spectrum every returned slot already has multiplicity 1,
	// so this coincides with GetEigenvalues. The two are deliberately kept as
	// distinct operations: their semantics diverge across space kinds.
	GetRepeatedEigenvalues(num int) (*matrix.Dense, error)
}
