// SPDX-License-Identifier: MIT
package spaces_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigenworks/spectra/matrix"
	"github.com/eigenworks/spectra/spaces"
)

// fixedAdapter wraps a hand-written 3-node, 2-vector block so adapter
// behavior is checked against literal numbers, not a solver's output.
func fixedAdapter(t *testing.T) *spaces.EigenvectorEigenfunctions {
	t.Helper()
	vecs, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)
	ef, err := spaces.NewEigenvectorEigenfunctions(vecs)
	require.NoError(t, err)
	return ef
}

func TestNewEigenvectorEigenfunctions_NilBlock(t *testing.T) {
	_, err := spaces.NewEigenvectorEigenfunctions(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigenvectorEigenfunctions_EvaluateGathersRows(t *testing.T) {
	ef := fixedAdapter(t)

	X, err := matrix.NewColumn([]float64{2, 0, 2})
	require.NoError(t, err)
	phi, err := ef.Evaluate(X)
	require.NoError(t, err)
	require.Equal(t, 3, phi.Rows())
	require.Equal(t, 2, phi.Cols())

	want := [][]float64{{5, 6}, {1, 2}, {5, 6}}
	for i := range want {
		for j := range want[i] {
			v, err := phi.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}
}

func TestEigenvectorEigenfunctions_InputValidation(t *testing.T) {
	ef := fixedAdapter(t)

	// Fractional entries are not node indices.
	frac, err := matrix.NewColumn([]float64{0, 1.5})
	require.NoError(t, err)
	_, err = ef.Evaluate(frac)
	require.ErrorIs(t, err, spaces.ErrNotNodeIndex)

	// Integral but outside [0, n).
	high, err := matrix.NewColumn([]float64{3})
	require.NoError(t, err)
	_, err = ef.Evaluate(high)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	neg, err := matrix.NewColumn([]float64{-1})
	require.NoError(t, err)
	_, err = ef.Evaluate(neg)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Inputs must be [N, 1] columns.
	wide, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = ef.Evaluate(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenvectorEigenfunctions_LevelStructure(t *testing.T) {
	ef := fixedAdapter(t)
	require.Equal(t, 2, ef.NumEigenfunctions())
	require.Equal(t, 2, ef.NumLevels())
	require.Equal(t, []int{1, 1}, ef.NumEigenfunctionsPerLevel())

	per := ef.NumEigenfunctionsPerLevel()
	per[0] = 7
	require.Equal(t, []int{1, 1}, ef.NumEigenfunctionsPerLevel())
}

func TestEigenvectorEigenfunctions_AdditionTheoremIsOuterProduct(t *testing.T) {
	ef := fixedAdapter(t)

	X, err := matrix.NewColumn([]float64{0, 1, 2})
	require.NoError(t, err)
	X2, err := matrix.NewColumn([]float64{2, 1})
	require.NoError(t, err)

	fast, err := ef.AdditionTheorem(X, X2)
	require.NoError(t, err)
	oracle, err := spaces.SumOuterProducts(ef, X, X2)
	require.NoError(t, err)

	n1, n2, L := fast.Dims()
	require.Equal(t, []int{3, 2, 2}, []int{n1, n2, L})
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			for l := 0; l < L; l++ {
				a, err := fast.At(i, j, l)
				require.NoError(t, err)
				b, err := oracle.At(i, j, l)
				require.NoError(t, err)
				require.Equal(t, b, a, "entry (%d,%d,%d)", i, j, l)
			}
		}
	}

	// Spot check one literal product: φ_1(node 1) · φ_1(node 2) = 4·6.
	v, err := fast.At(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 24.0, v)
}

func TestEigenvectorEigenfunctions_AdditionTheoremDiagIsSquares(t *testing.T) {
	ef := fixedAdapter(t)

	X, err := matrix.NewColumn([]float64{0, 2})
	require.NoError(t, err)
	diag, err := ef.AdditionTheoremDiag(X)
	require.NoError(t, err)

	want := [][]float64{{1, 4}, {25, 36}}
	for i := range want {
		for l := range want[i] {
			v, err := diag.At(i, l)
			require.NoError(t, err)
			require.Equal(t, want[i][l], v)
		}
	}

	// Diagonal shortcut equals the (i,i,:) slice of the full tensor.
	full, err := ef.AdditionTheorem(X, X)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for l := 0; l < 2; l++ {
			d, err := diag.At(i, l)
			require.NoError(t, err)
			f, err := full.At(i, i, l)
			require.NoError(t, err)
			require.Equal(t, f, d)
		}
	}
}
