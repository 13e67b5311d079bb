// Package matrix is the backend-neutral numeric core of spectra.
//
// The matrix package provides:
//
//   - The Matrix interface: a small closed contract (Rows/Cols/At/Set/Clone)
//     that all spectral algebra is written against, so the same code runs
//     over whichever concrete storage the caller supplies.
//   - Dense, a row-major float64 matrix with O(1) bounds-checked access,
//     and CSR, a read-only symmetric sparse matrix for large adjacency
//     structures.
//   - Dense3, a rank-3 row-major tensor used for per-level addition-theorem
//     blocks of shape [N, N2, L].
//   - Centralized validators (nil/shape/symmetry/vector-length) returning
//     sentinel errors matched via errors.Is.
//   - Elementary kernels: MatVec, Transpose, Scale, Degree, Laplacian,
//     GatherRows — each with a *Dense fast-path and a generic interface
//     fallback.
//   - Symmetric eigensolvers: a deterministic Jacobi kernel (Eigen) and the
//     SmallestEigenpairs facade that picks a dense LAPACK-quality path
//     (gonum) or a Lanczos Krylov path (sparse) per input representation.
//
// Dense storage is best for small or dense operators where O(n²) memory is
// acceptable; CSR is for sparse adjacency where only the matrix-vector
// product matters. All kernels use fixed loop orders, so identical inputs
// produce identical outputs.
package matrix
