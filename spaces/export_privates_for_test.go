// SPDX-License-Identifier: MIT

package spaces

// Test-Bridge (White-Box) for the Graph eigensolver seam
//
// Purpose:
//   - Expose the unexported solver seam to spaces_test ONLY, so memoization
//     tests can count eigensolver invocations without widening the prod API.
//
// Provided Surface:
//   - InstrumentSolverForTest wraps the graph's current solver with a
//     counting decorator and returns the counter getter.
//
// Risks & Maintenance:
//   - Keep the seam signature in sync with solveFunc; tests will catch drift.

import (
	"sync/atomic"

	"github.com/eigenworks/spectra/matrix"
)

// InstrumentSolverForTest decorates g's eigensolver with an atomic call
// counter and returns a getter for the count. Test-only.
func InstrumentSolverForTest(g *Graph) func() int64 {
	var calls int64
	inner := g.solve
	g.solve = func(m matrix.Matrix, num int, cfg matrix.EigenConfig) (*matrix.Dense, *matrix.Dense, error) {
		atomic.AddInt64(&calls, 1)

		return inner(m, num, cfg)
	}

	return func() int64 { return atomic.LoadInt64(&calls) }
}
