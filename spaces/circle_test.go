// SPDX-License-Identifier: MIT
// Package spaces_test contains black-box tests for the circle space and its
// Fourier eigenfunction basis.
package spaces_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigenworks/spectra/matrix"
	"github.com/eigenworks/spectra/spaces"
)

func angles(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	col, err := matrix.NewColumn(vals)
	require.NoError(t, err)
	return col
}

func TestNewSinCosEigenfunctions_Errors(t *testing.T) {
	for _, num := range []int{0, -3} {
		_, err := spaces.NewSinCosEigenfunctions(num)
		require.ErrorIs(t, err, spaces.ErrNonPositiveEigenfunctions, "num=%d", num)
	}
	for _, num := range []int{2, 4, 10} {
		_, err := spaces.NewSinCosEigenfunctions(num)
		require.ErrorIs(t, err, spaces.ErrEvenEigenfunctions, "num=%d", num)
	}
}

func TestSinCosEigenfunctions_LevelStructure(t *testing.T) {
	ef, err := spaces.NewSinCosEigenfunctions(5)
	require.NoError(t, err)
	require.Equal(t, 5, ef.NumEigenfunctions())
	require.Equal(t, 3, ef.NumLevels())
	require.Equal(t, []int{1, 2, 2}, ef.NumEigenfunctionsPerLevel())

	// Returned slice is a fresh copy, not internal state.
	per := ef.NumEigenfunctionsPerLevel()
	per[0] = 99
	require.Equal(t, []int{1, 2, 2}, ef.NumEigenfunctionsPerLevel())

	// The per-level widths always account for the whole basis.
	one, err := spaces.NewSinCosEigenfunctions(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, one.NumEigenfunctionsPerLevel())
}

func TestSinCosEigenfunctions_EvaluateKnownAngles(t *testing.T) {
	ef, err := spaces.NewSinCosEigenfunctions(5)
	require.NoError(t, err)

	X := angles(t, 0, math.Pi/2)
	phi, err := ef.Evaluate(X)
	require.NoError(t, err)
	require.Equal(t, 2, phi.Rows())
	require.Equal(t, 5, phi.Cols())

	want := [][]float64{
		// 1, √2·cos(θ), √2·sin(θ), √2·cos(2θ), √2·sin(2θ)
		{1, math.Sqrt2, 0, math.Sqrt2, 0},
		{1, 0, math.Sqrt2, -math.Sqrt2, 0},
	}
	for i := range want {
		for j := range want[i] {
			v, err := phi.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

func TestSinCosEigenfunctions_EvaluateRejectsNonColumn(t *testing.T) {
	ef, err := spaces.NewSinCosEigenfunctions(3)
	require.NoError(t, err)

	wide, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = ef.Evaluate(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ef.Evaluate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSinCosEigenfunctions_AdditionTheoremMatchesBruteForce(t *testing.T) {
	ef, err := spaces.NewSinCosEigenfunctions(7)
	require.NoError(t, err)

	X := angles(t, 0.1, 1.3, -2.4)
	X2 := angles(t, 0.7, 2.9)

	fast, err := ef.AdditionTheorem(X, X2)
	require.NoError(t, err)
	oracle, err := spaces.SumOuterProducts(ef, X, X2)
	require.NoError(t, err)

	n1, n2, L := fast.Dims()
	require.Equal(t, []int{3, 2, 4}, []int{n1, n2, L})

	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			for l := 0; l < L; l++ {
				a, err := fast.At(i, j, l)
				require.NoError(t, err)
				b, err := oracle.At(i, j, l)
				require.NoError(t, err)
				require.InDelta(t, b, a, 1e-12, "entry (%d,%d,%d)", i, j, l)
			}
		}
	}
}

func TestSinCosEigenfunctions_AdditionTheoremDiag(t *testing.T) {
	ef, err := spaces.NewSinCosEigenfunctions(5)
	require.NoError(t, err)

	X := angles(t, 0.3, -1.9, 4.2)
	diag, err := ef.AdditionTheoremDiag(X)
	require.NoError(t, err)
	require.Equal(t, 3, diag.Rows())
	require.Equal(t, 3, diag.Cols())

	full, err := ef.AdditionTheorem(X, X)
	require.NoError(t, err)

	// Diagonal shortcut equals the (i,i,:) slice of the full tensor, which in
	// turn is the constant level multiplicity.
	for i := 0; i < 3; i++ {
		for l := 0; l < ef.NumLevels(); l++ {
			d, err := diag.At(i, l)
			require.NoError(t, err)
			f, err := full.At(i, i, l)
			require.NoError(t, err)
			require.InDelta(t, f, d, 1e-12)

			want := 2.0
			if l == 0 {
				want = 1.0
			}
			require.InDelta(t, want, d, 1e-12)
		}
	}
}

func TestCircle_Eigenvalues(t *testing.T) {
	c := spaces.NewCircle()
	require.Equal(t, 1, c.Dimension())

	vals, err := c.GetEigenvalues(5)
	require.NoError(t, err)
	require.Equal(t, 5, vals.Rows())
	require.Equal(t, 1, vals.Cols())

	// Level l carries l², repeated per multiplicity, level-major.
	want := []float64{0, 1, 1, 4, 4}
	for i, w := range want {
		v, err := vals.At(i, 0)
		require.NoError(t, err)
		require.Equal(t, w, v, "eigenvalue %d", i)
	}

	_, err = c.GetEigenvalues(4)
	require.ErrorIs(t, err, spaces.ErrEvenEigenfunctions)
	_, err = c.GetEigenvalues(0)
	require.ErrorIs(t, err, spaces.ErrNonPositiveEigenfunctions)
}

func TestCircle_GetEigenfunctions(t *testing.T) {
	c := spaces.NewCircle()

	ef, err := c.GetEigenfunctions(7)
	require.NoError(t, err)
	require.Equal(t, 7, ef.NumEigenfunctions())
	require.Equal(t, 4, ef.NumLevels())

	_, err = c.GetEigenfunctions(6)
	require.ErrorIs(t, err, spaces.ErrEvenEigenfunctions)
}

func TestCircle_IsTangentUnsupported(t *testing.T) {
	c := spaces.NewCircle()
	p := angles(t, 0)
	v := angles(t, 1)

	_, err := c.IsTangent(v, p, 1e-9)
	require.ErrorIs(t, err, spaces.ErrNotImplemented)
}
