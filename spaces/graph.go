// SPDX-License-Identifier: MIT
// Package spaces - Graph: an arbitrary undirected graph as a discrete
// spectrum space.
//
// The graph Laplacian L = D − A plays the role of the Laplace–Beltrami
// operator: its eigenvectors are the "eigenfunctions", defined only on the
// n nodes. Eigendecompositions are expensive, so Graph memoizes one
// eigensystem per requested size for its whole lifetime — the adjacency is
// immutable after construction, so entries are never invalidated or evicted.

package spaces

import (
	"fmt"
	"sync"

	"github.com/eigenworks/spectra/matrix"
)

// graphDimension is the sentinel intrinsic dimension of a graph space.
// It is a convention consumed by downstream kernel math, not a true
// dimension.
const graphDimension = 0

// Eigensystem is one cached eigendecomposition of the graph Laplacian:
// eigenvectors [n, num] and eigenvalues [num, 1], ascending, with the
// smallest eigenvalue clamped to matrix.MachineEpsilon.
//
// The blocks are shared with the cache and with every adapter handed out by
// GetEigenfunctions: treat them as read-only.
type Eigensystem struct {
	Vectors *matrix.Dense // [n, num] orthonormal columns
	Values  *matrix.Dense // [num, 1] ascending
}

// solveFunc is the eigensolver seam; production code always points at
// matrix.SmallestEigenpairs, tests swap it to count invocations.
type solveFunc func(m matrix.Matrix, num int, cfg matrix.EigenConfig) (*matrix.Dense, *matrix.Dense, error)

// Graph represents an arbitrary undirected graph.
//
// Construction validates the adjacency (square, symmetric within eps) and
// stores only the derived Laplacian. The eigensystem cache is guarded by a
// single mutex around the whole check-compute-store sequence: coarser than
// per-key locking, and sufficient — the decomposition dominates cost and the
// invariant is at-most-once execution per distinct requested size.
type Graph struct {
	mu        sync.Mutex
	laplacian matrix.Matrix // *matrix.Dense or *matrix.CSR, per input kind
	n         int           // number of nodes
	cache     map[int]Eigensystem
	opts      Options
	solve     solveFunc
}

// Compile-time assertions: Graph satisfies both space capabilities.
var (
	_ DiscreteSpectrumSpace = (*Graph)(nil)
	_ EigenvectorProvider   = (*Graph)(nil)
)

// NewGraph builds a graph space from a square symmetric adjacency matrix,
// where adjacency[i,j] is non-zero iff nodes i and j share an edge
// (weighted entries give a weighted Laplacian). Pass a *matrix.CSR to keep
// the Krylov eigensolver path for large sparse graphs; note that requesting
// all n eigenpairs of a sparse input densifies it (facade contract).
//
// Implementation:
//   - Stage 1: validate 2-D square (ErrNonSquare) then symmetric within eps
//     (ErrAsymmetry) — an any-mismatch reduction, cheap on sparse inputs.
//   - Stage 2: build and store L = D − A; the adjacency itself is not
//     retained.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry.
// Complexity: O(n²) dense / O(nnz log nnz) sparse.
func NewGraph(adjacency matrix.Matrix, opts ...Option) (*Graph, error) {
	const op = "NewGraph"
	o := gatherOptions(opts...)
	if err := matrix.ValidateSymmetric(adjacency, o.eps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	lap, err := matrix.Laplacian(adjacency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Graph{
		laplacian: lap,
		n:         adjacency.Rows(),
		cache:     make(map[int]Eigensystem),
		opts:      o,
		solve:     matrix.SmallestEigenpairs,
	}, nil
}

// NumNodes returns n, the number of graph nodes. O(1).
func (g *Graph) NumNodes() int { return g.n }

// Dimension returns the graph's sentinel dimension 0. O(1).
func (g *Graph) Dimension() int { return graphDimension }

// GetEigensystem returns the first num eigenvalues and eigenvectors of the
// graph Laplacian, ascending.
//
// Memoized: the first request for a given num triggers the eigensolver; the
// solution is cached and every later request for the same num returns the
// identical blocks. The whole check-compute-store sequence runs under one
// exclusive lock, so concurrent callers observe at most one decomposition
// per distinct size for the lifetime of the object.
//
// The smallest returned eigenvalue is clamped to matrix.MachineEpsilon: it
// is theoretically exactly zero (connected graph), and a hard zero breaks
// downstream spectral-density evaluation that divides by eigenvalue-derived
// quantities — a deliberate numeric-stability policy, not an error path.
//
// Errors: ErrNumOutOfRange (num outside [1, n]); solver failures propagate
// wrapped (matrix.ErrMatrixEigenFailed).
func (g *Graph) GetEigensystem(num int) (Eigensystem, error) {
	const op = "Graph.GetEigensystem"
	if num < 1 || num > g.n {
		return Eigensystem{}, fmt.Errorf("%s(%d): %w", op, num, ErrNumOutOfRange)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if es, ok := g.cache[num]; ok {
		return es, nil
	}

	vecs, vals, err := g.solve(g.laplacian, num, g.opts.eigenConfig())
	if err != nil {
		return Eigensystem{}, fmt.Errorf("%s(%d): %w", op, num, err)
	}
	// Lowest eigenvalue is mathematically 0; clamp it to machine epsilon.
	if err = vals.Set(0, 0, matrix.MachineEpsilon); err != nil {
		return Eigensystem{}, fmt.Errorf("%s(%d): %w", op, num, err)
	}

	es := Eigensystem{Vectors: vecs, Values: vals}
	g.cache[num] = es

	return es, nil
}

// GetEigenvectors returns the cached [n, num] eigenvector block.
// Thin projection over GetEigensystem; same errors.
func (g *Graph) GetEigenvectors(num int) (*matrix.Dense, error) {
	es, err := g.GetEigensystem(num)
	if err != nil {
		return nil, err
	}

	return es.Vectors, nil
}

// GetEigenvalues returns the cached [num, 1] ascending eigenvalue column.
// Thin projection over GetEigensystem; same errors.
func (g *Graph) GetEigenvalues(num int) (*matrix.Dense, error) {
	es, err := g.GetEigensystem(num)
	if err != nil {
		return nil, err
	}

	return es.Values, nil
}

// GetRepeatedEigenvalues returns eigenvalues repeated per eigenfunction.
// Every slot of a discrete spectrum already has multiplicity 1, so this
// coincides with GetEigenvalues; the operation stays separate because its
// semantics diverge from continuous spaces (which repeat per level member).
func (g *Graph) GetRepeatedEigenvalues(num int) (*matrix.Dense, error) {
	return g.GetEigenvalues(num)
}

// GetEigenfunctions wraps the cached eigenvectors in the addition-theorem
// adapter, letting kernel code treat graphs and continuous spaces uniformly.
// The adapter holds a read-only, non-owning reference to the cached block.
//
// Errors: ErrNumOutOfRange; solver failures propagate wrapped.
func (g *Graph) GetEigenfunctions(num int) (Eigenfunctions, error) {
	vecs, err := g.GetEigenvectors(num)
	if err != nil {
		return nil, err
	}

	return NewEigenvectorEigenfunctions(vecs)
}
