// SPDX-License-Identifier: MIT
// Package matrix - deterministic symmetric eigensolver (Jacobi sweeps).
//
// This kernel is intentionally dependency-free and bit-for-bit reproducible:
// it is the inner solve of the Lanczos path (small tridiagonal matrices) and
// the backend-neutral fallback for generic Matrix implementations where the
// LAPACK-quality dense path cannot apply. For large dense problems prefer
// SmallestEigenpairs, which dispatches to gonum.

package matrix

import (
	"fmt"
	"math"
)

// toDense materializes any Matrix into a fresh *Dense working copy.
// *Dense clones, *CSR densifies, anything else copies via At in fixed order.
func toDense(m Matrix) (*Dense, error) {
	switch t := m.(type) {
	case *Dense:
		return t.Clone().(*Dense), nil
	case *CSR:
		return t.Dense()
	default:
		rows, cols := m.Rows(), m.Cols()
		d, err := NewDense(rows, cols)
		if err != nil {
			return nil, err
		}
		var i, j int
		var v float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				d.data[i*cols+j] = v
			}
		}

		return d, nil
	}
}

// Eigen computes all eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol; materialize a
//     Dense working copy A and initialize the accumulator Q to identity.
//   - Stage 2: Repeatedly pick (p,q) maximizing |A[p,q]| in fixed i→j order
//     and apply the Jacobi rotation to A and Q until the largest
//     off-diagonal entry falls below tol.
//
// Behavior highlights:
//   - Stable, deterministic pivot scan; identical inputs give identical output.
//   - Eigenvalues are returned in diagonal order (NOT sorted); pair i is
//     (eigs[i], column i of Q). Callers needing ascending order sort with a
//     permutation (see SmallestEigenpairs).
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-10..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix).
//   - *Dense: Q whose columns are the corresponding orthonormal eigenvectors.
//
// Errors:
//   - ErrNonSquare, ErrAsymmetry (validation),
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Complexity:
//   - Time O(maxIter * n²) per sweep scan plus O(n) per rotation; Space O(n²).
//
// AI-Hints:
//   - Good defaults: tol≈1e-10, maxIter≈100·n² for n≤128.
//   - Symmetrize noisy inputs upstream; validation here is strict.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A and orthogonal accumulator Q = I.
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter           int
		base, p, pv    int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		newIP, newIQ   float64
		qip, qiq       float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,pv) maximizing |A[p,pv]| (fixed scan order).
		maxOff = 0
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, pv = off, i, j
				}
			}
		}

		// J.2: Converged when the largest off-diagonal drops below tol.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters from A[p,p], A[pv,pv], A[p,pv].
		app = a.data[p*n+p]
		aqq = a.data[pv*n+pv]
		apq = a.data[p*n+pv]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply the rotation to A symmetrically.
		for i = 0; i < n; i++ {
			if i == p || i == pv {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+pv]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+pv], a.data[pv*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[pv*n+pv] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+pv], a.data[pv*n+p] = 0, 0

		// J.5: Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+pv]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+pv] = s*qip + c*qiq
		}
	}

	// Final convergence check on the max off-diagonal.
	maxOff = 0
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	// Extract eigenvalues from the diagonal of A.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
