// SPDX-License-Identifier: MIT
// Package spaces - adjacency builders.
//
// Convenience constructors for the symmetric adjacency inputs NewGraph
// consumes. Edge lists mirror both endpoints deterministically, so the
// symmetry precondition holds by construction.

package spaces

import (
	"fmt"

	"github.com/eigenworks/spectra/matrix"
)

// NewGraphFromEdges builds a graph space on n nodes from an undirected,
// unweighted edge list. Each {u, v} pair is mirrored into both adjacency
// cells; duplicate edges accumulate weight (parallel edges add up).
//
// Errors: matrix.ErrInvalidDimensions (n <= 0), matrix.ErrOutOfRange (edge
// endpoint outside [0, n)); plus NewGraph's own validation errors.
// Complexity: O(E log E + construction).
func NewGraphFromEdges(n int, edges [][2]int, opts ...Option) (*Graph, error) {
	const op = "NewGraphFromEdges"
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrInvalidDimensions)
	}
	rows := make([]int, 0, 2*len(edges))
	cols := make([]int, 0, 2*len(edges))
	vals := make([]float64, 0, 2*len(edges))
	for _, e := range edges {
		rows = append(rows, e[0], e[1])
		cols = append(cols, e[1], e[0])
		vals = append(vals, 1, 1)
	}
	adj, err := matrix.NewCSRFromTriplets(n, rows, cols, vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewGraph(adj, opts...)
}

// CycleAdjacency returns the dense adjacency matrix of the n-node cycle
// graph C_n (each node linked to its two ring neighbors; for n = 2 the two
// neighbors coincide, leaving a single edge).
//
// Errors: matrix.ErrInvalidDimensions when n < 2.
// Complexity: O(n²) allocation.
func CycleAdjacency(n int) (*matrix.Dense, error) {
	const op = "CycleAdjacency"
	if n < 2 {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrInvalidDimensions)
	}
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if err = adj.Set(i, next, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = adj.Set(next, i, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return adj, nil
}
