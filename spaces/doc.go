// Package spaces defines discrete spectrum spaces and their eigenfunction
// bases — the spectral building blocks of geometric kernels.
//
// The spaces package provides:
//
//   - DiscreteSpectrumSpace: the capability contract every concrete space
//     satisfies — an intrinsic dimension plus truncated eigenvalue and
//     eigenfunction providers.
//   - Circle: the 1-dimensional circular manifold with the closed-form
//     Fourier spectrum (SinCosEigenfunctions); eigenvalues l² per level,
//     no caching needed since everything is analytic.
//   - Graph: an arbitrary undirected graph wrapping a square symmetric
//     adjacency matrix; builds the degree Laplacian L = D − A (weighted
//     entries give weighted degrees) and
//     memoizes one eigendecomposition per requested size for the lifetime of
//     the object (at-most-once guarantee, safe under concurrent callers).
//   - Eigenfunctions / EigenfunctionsWithAdditionTheorem: the basis contract
//     with the addition-theorem fast path — per-level summed products of
//     basis functions whose cost is independent of the level width.
//   - EigenvectorEigenfunctions: the adapter treating columns of a cached
//     eigenvector block as basis functions on the n graph nodes (evaluation
//     is a row lookup), whose addition theorem degenerates to per-vector
//     outer products.
//
// Levels group basis functions sharing one eigenvalue: the circle's level
// l ≥ 1 holds {√2·cos(lθ), √2·sin(lθ)} and collapses through the identity
// sin(lθ₁)sin(lθ₂) + cos(lθ₁)cos(lθ₂) = cos(l(θ₁−θ₂)); a graph has one
// function per level, so its grouping is trivial.
//
// All inputs travel as [N,1] matrix.Matrix columns: circle angles in
// radians, graph node indices as integral float64 values.
package spaces
