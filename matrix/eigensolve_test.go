// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigenworks/spectra/matrix"
)

// cycleLaplacian returns the Laplacian of the unweighted n-cycle as both
// representations. Its spectrum is 2 − 2·cos(2πk/n), k = 0..n−1, so small
// cycles exercise repeated eigenvalues.
func cycleLaplacian(t *testing.T, n int) (*matrix.Dense, *matrix.CSR) {
	t.Helper()
	var rows, cols []int
	var vals []float64
	adj, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		require.NoError(t, adj.Set(i, j, 1))
		require.NoError(t, adj.Set(j, i, 1))
		rows = append(rows, i, j)
		cols = append(cols, j, i)
		vals = append(vals, 1, 1)
	}
	adjCSR, err := matrix.NewCSRFromTriplets(n, rows, cols, vals)
	require.NoError(t, err)

	ld, err := matrix.Laplacian(adj)
	require.NoError(t, err)
	ls, err := matrix.Laplacian(adjCSR)
	require.NoError(t, err)

	return ld.(*matrix.Dense), ls.(*matrix.CSR)
}

// pathLaplacian returns the Laplacian of the unweighted n-path as CSR.
// Its spectrum 2 − 2·cos(kπ/n) is simple (no multiplicities).
func pathLaplacian(t *testing.T, n int) *matrix.CSR {
	t.Helper()
	var rows, cols []int
	var vals []float64
	for i := 0; i+1 < n; i++ {
		rows = append(rows, i, i+1)
		cols = append(cols, i+1, i)
		vals = append(vals, 1, 1)
	}
	adj, err := matrix.NewCSRFromTriplets(n, rows, cols, vals)
	require.NoError(t, err)
	lap, err := matrix.Laplacian(adj)
	require.NoError(t, err)

	return lap.(*matrix.CSR)
}

func valuesOf(t *testing.T, col *matrix.Dense) []float64 {
	t.Helper()
	out := make([]float64, col.Rows())
	for i := range out {
		v, err := col.At(i, 0)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

func requireOrthonormalColumns(t *testing.T, vecs *matrix.Dense, tol float64) {
	t.Helper()
	n, k := vecs.Rows(), vecs.Cols()
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			var acc float64
			for i := 0; i < n; i++ {
				va, err := vecs.At(i, a)
				require.NoError(t, err)
				vb, err := vecs.At(i, b)
				require.NoError(t, err)
				acc += va * vb
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			require.InDelta(t, want, acc, tol, "columns (%d,%d)", a, b)
		}
	}
}

func TestSmallestEigenpairs_DenseCycle(t *testing.T) {
	ld, _ := cycleLaplacian(t, 4)

	vecs, vals, err := matrix.SmallestEigenpairs(ld, 4, matrix.DefaultEigenConfig())
	require.NoError(t, err)
	require.Equal(t, 4, vecs.Rows())
	require.Equal(t, 4, vecs.Cols())

	require.InDeltaSlice(t, []float64{0, 2, 2, 4}, valuesOf(t, vals), 1e-9)
	requireOrthonormalColumns(t, vecs, 1e-9)

	for l, lambda := range valuesOf(t, vals) {
		require.Less(t, residual(t, ld, vecs, lambda, l), 1e-8)
	}
}

func TestSmallestEigenpairs_LanczosHandlesMultiplicity(t *testing.T) {
	// num < n on sparse input takes the Krylov path. The 4-cycle has the
	// doubly-degenerate eigenvalue 2, which a single Krylov run from one seed
	// cannot see twice; restarts must cover it.
	_, ls := cycleLaplacian(t, 4)

	vecs, vals, err := matrix.SmallestEigenpairs(ls, 3, matrix.DefaultEigenConfig())
	require.NoError(t, err)
	require.Equal(t, 4, vecs.Rows())
	require.Equal(t, 3, vecs.Cols())

	require.InDeltaSlice(t, []float64{0, 2, 2}, valuesOf(t, vals), 1e-7)
	requireOrthonormalColumns(t, vecs, 1e-7)

	for l, lambda := range valuesOf(t, vals) {
		require.Less(t, residual(t, ls, vecs, lambda, l), 1e-6)
	}
}

func TestSmallestEigenpairs_FullSpectrumDensifiesCSR(t *testing.T) {
	_, ls := cycleLaplacian(t, 4)

	_, vals, err := matrix.SmallestEigenpairs(ls, 4, matrix.DefaultEigenConfig())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 2, 2, 4}, valuesOf(t, vals), 1e-9)
}

func TestSmallestEigenpairs_SparseAgreesWithDense(t *testing.T) {
	// Simple spectrum: 2 − 2·cos(kπ/6) on the 6-path.
	n := 6
	ls := pathLaplacian(t, n)
	ld, err := ls.Dense()
	require.NoError(t, err)

	num := 3
	_, sparseVals, err := matrix.SmallestEigenpairs(ls, num, matrix.DefaultEigenConfig())
	require.NoError(t, err)
	_, denseVals, err := matrix.SmallestEigenpairs(ld, num, matrix.DefaultEigenConfig())
	require.NoError(t, err)

	require.InDeltaSlice(t, valuesOf(t, denseVals), valuesOf(t, sparseVals), 1e-7)

	for k := 0; k < num; k++ {
		want := 2 - 2*math.Cos(float64(k)*math.Pi/float64(n))
		v, err := sparseVals.At(k, 0)
		require.NoError(t, err)
		require.InDelta(t, want, v, 1e-7)
	}
}

func TestSmallestEigenpairs_LargeSparsePathAccuracy(t *testing.T) {
	// 200 nodes puts the smallest eigenvalues (≈ k²π²/n² near zero) far below
	// what a default-capped Krylov run can resolve; the facade must still
	// return the closed form 2 − 2·cos(kπ/n), not unconverged approximations.
	n := 200
	ls := pathLaplacian(t, n)

	vecs, vals, err := matrix.SmallestEigenpairs(ls, 4, matrix.DefaultEigenConfig())
	require.NoError(t, err)
	require.Equal(t, n, vecs.Rows())
	require.Equal(t, 4, vecs.Cols())

	got := valuesOf(t, vals)
	for k := 0; k < 4; k++ {
		want := 2 - 2*math.Cos(float64(k)*math.Pi/float64(n))
		require.InDelta(t, want, got[k], 1e-8, "eigenvalue %d", k)
	}

	requireOrthonormalColumns(t, vecs, 1e-8)
	for l, lambda := range got {
		require.Less(t, residual(t, ls, vecs, lambda, l), 1e-7)
	}
}

func TestSmallestEigenpairs_LargeSparseCycleAccuracy(t *testing.T) {
	// 128-cycle: the smallest eigenvalue is exactly 0, with the degenerate
	// pair 2 − 2·cos(2π/128) right above it.
	_, ls := cycleLaplacian(t, 128)

	_, vals, err := matrix.SmallestEigenpairs(ls, 3, matrix.DefaultEigenConfig())
	require.NoError(t, err)

	got := valuesOf(t, vals)
	require.InDelta(t, 0.0, got[0], 1e-9)
	want := 2 - 2*math.Cos(2*math.Pi/128)
	require.InDelta(t, want, got[1], 1e-9)
	require.InDelta(t, want, got[2], 1e-9)
}

func TestSmallestEigenpairs_NumOutOfRange(t *testing.T) {
	ld, _ := cycleLaplacian(t, 4)

	for _, num := range []int{0, -1, 5} {
		_, _, err := matrix.SmallestEigenpairs(ld, num, matrix.DefaultEigenConfig())
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "num=%d", num)
	}
}

func TestSmallestEigenpairs_RejectsAsymmetric(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 1}, {2, 0}})
	_, _, err := matrix.SmallestEigenpairs(a, 1, matrix.DefaultEigenConfig())
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestSmallestEigenpairs_SignCanonicalization(t *testing.T) {
	ld, _ := cycleLaplacian(t, 5)

	vecs, _, err := matrix.SmallestEigenpairs(ld, 3, matrix.DefaultEigenConfig())
	require.NoError(t, err)

	// First significant component of every column is non-negative, so two
	// identical solves are directly comparable.
	for j := 0; j < vecs.Cols(); j++ {
		for i := 0; i < vecs.Rows(); i++ {
			v, err := vecs.At(i, j)
			require.NoError(t, err)
			if math.Abs(v) > 1e-12 {
				require.GreaterOrEqual(t, v, 0.0, "column %d", j)
				break
			}
		}
	}
}
