// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigenworks/spectra/matrix"
)

// residual returns ‖A·v − λ·v‖ for column l of vecs.
func residual(t *testing.T, a matrix.Matrix, vecs *matrix.Dense, lambda float64, l int) float64 {
	t.Helper()
	n := a.Rows()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		x, err := vecs.At(i, l)
		require.NoError(t, err)
		v[i] = x
	}
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	var acc float64
	for i := 0; i < n; i++ {
		d := av[i] - lambda*v[i]
		acc += d * d
	}

	return math.Sqrt(acc)
}

func TestEigen_Known2x2(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 2}})

	eigs, q, err := matrix.Eigen(a, 1e-12, 1000)
	require.NoError(t, err)
	require.Len(t, eigs, 2)

	sorted := append([]float64(nil), eigs...)
	sort.Float64s(sorted)
	require.InDelta(t, 1.0, sorted[0], 1e-10)
	require.InDelta(t, 3.0, sorted[1], 1e-10)

	for l := 0; l < 2; l++ {
		require.Less(t, residual(t, a, q, eigs[l], l), 1e-9)
	}
}

func TestEigen_DiagonalIsFixedPoint(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 0, 0},
		{0, -1, 0},
		{0, 0, 7},
	})

	eigs, q, err := matrix.Eigen(a, 1e-12, 1000)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{4, -1, 7}, eigs, 1e-12)

	// Eigenvector block stays the identity for a diagonal input.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := q.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, 1e-12)
		}
	}
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 1}})
	_, _, err := matrix.Eigen(a, 1e-12, 1000)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigen_NilAndNonSquare(t *testing.T) {
	_, _, err := matrix.Eigen(nil, 1e-12, 1000)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, _, err = matrix.Eigen(a, 1e-12, 1000)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
