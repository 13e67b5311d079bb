// SPDX-License-Identifier: MIT

// Package spaces: functional configuration for the Graph space and its
// eigensolver policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package spaces

import (
	"math"

	"github.com/eigenworks/spectra/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by the adjacency
	// symmetry check at Graph construction.
	DefaultEpsilon = 1e-9

	// DefaultJacobiTolerance is forwarded to the matrix eigensolver facade
	// for its deterministic Jacobi inner solves.
	DefaultJacobiTolerance = matrix.DefaultJacobiTol

	// DefaultJacobiMaxIter caps Jacobi rotations in inner solves.
	DefaultJacobiMaxIter = matrix.DefaultJacobiMaxIter

	// DefaultLanczosIterations selects the automatic Krylov dimension
	// (min(n, max(2·num+1, matrix.DefaultLanczosFloor))) when 0.
	DefaultLanczosIterations = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "spaces: WithEpsilon: eps must be finite, non-negative"
	panicJacobiTolInvalid  = "spaces: WithJacobiTolerance: tol must be finite, positive"
	panicJacobiIterInvalid = "spaces: WithJacobiMaxIter: maxIter must be > 0"
	panicLanczosInvalid    = "spaces: WithLanczosIterations: iters must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps           float64 // symmetry tolerance; >= 0
	jacobiTol     float64 // Jacobi convergence threshold; > 0
	jacobiMaxIter int     // Jacobi rotation cap; > 0
	lanczosIters  int     // Krylov dimension cap per run; 0 = auto
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		jacobiTol:     DefaultJacobiTolerance,
		jacobiMaxIter: DefaultJacobiMaxIter,
		lanczosIters:  DefaultLanczosIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// eigenConfig projects the resolved options into the matrix facade's config.
func (o Options) eigenConfig() matrix.EigenConfig {
	return matrix.EigenConfig{
		JacobiTol:     o.jacobiTol,
		JacobiMaxIter: o.jacobiMaxIter,
		LanczosIters:  o.lanczosIters,
	}
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance used by the adjacency symmetry
// check. Larger eps relaxes the check; use judiciously for noisy inputs.
// Panics on NaN/Inf or negative eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithJacobiTolerance sets the convergence threshold of the deterministic
// Jacobi inner solves. Panics on non-finite or non-positive tol.
func WithJacobiTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicJacobiTolInvalid)
	}

	return func(o *Options) { o.jacobiTol = tol }
}

// WithJacobiMaxIter caps the Jacobi rotation count. Panics on maxIter <= 0.
func WithJacobiMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicJacobiIterInvalid)
	}

	return func(o *Options) { o.jacobiMaxIter = maxIter }
}

// WithLanczosIterations caps the Krylov dimension per Lanczos run; 0 keeps
// the automatic choice. Panics on negative iters.
func WithLanczosIterations(iters int) Option {
	if iters < 0 {
		panic(panicLanczosInvalid)
	}

	return func(o *Options) { o.lanczosIters = iters }
}
