// Package spectra computes the spectral building blocks of geometric kernels
// on non-Euclidean index spaces: truncated Laplace–Beltrami (circle) and
// graph-Laplacian eigenvalues, and eigenfunction bases that can be evaluated
// pointwise or collapsed per level through an addition theorem.
//
// 🚀 What is spectra?
//
//	A small, deterministic library that brings together:
//		• Discrete spectrum spaces: Circle (closed-form Fourier spectrum)
//		  and Graph (cached numerical Laplacian eigendecomposition)
//		• Addition-theorem fast paths: per-level kernel blocks without ever
//		  materializing the full eigenfunction basis
//		• A backend-neutral matrix core: dense & symmetric-sparse storage,
//		  validators, and symmetric eigensolvers (Jacobi, Lanczos, LAPACK
//		  via gonum)
//
// ✨ Why choose spectra?
//
//   - Fail-fast guarantees – sentinel errors, centralized validators,
//     no silent coercions
//   - Memoized eigensystems – at most one decomposition per requested size
//     for the lifetime of a Graph, safe under concurrent callers
//   - Deterministic numerics – fixed loop orders, documented clamping of the
//     theoretically-zero smallest Laplacian eigenvalue
//
// Everything is organized under two subpackages:
//
//	matrix/ — Matrix interface, Dense/CSR/Dense3 storage, validators,
//	          elementary kernels and symmetric eigensolvers
//	spaces/ — DiscreteSpectrumSpace contract, Circle, Graph, and the
//	          Eigenfunctions / addition-theorem surface
//
// Quick example (4-node cycle graph, 3 smallest eigenpairs):
//
//	adj, _ := spaces.CycleAdjacency(4)
//	g, err := spaces.NewGraph(adj)
//	if err != nil { ... }
//	vals, _ := g.GetEigenvalues(3)   // [3,1], ascending, vals[0] = ε
//	efs, _ := g.GetEigenfunctions(3) // row-lookup eigenfunctions
//
// See the package docs of matrix and spaces for the full contracts.
package spectra
