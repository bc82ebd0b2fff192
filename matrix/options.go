// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/approx"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance for singularity and equality checks.
	DefaultEpsilon = approx.DefaultEpsilon

	// DefaultMaxULPs is the ULP-distance tolerance for singularity and equality checks.
	DefaultMaxULPs = approx.DefaultMaxULPs
)

const (
	panicEpsilonInvalid = "matrix: WithTolerance: epsilon must be finite, non-negative"
	panicFillInvalid    = "matrix: WithFill: value must not be NaN"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	fill    float64 // uniform fill value; only meaningful when hasFill
	hasFill bool    // false ⇒ New builds the identity
	tol     Tolerance
}

// WithFill makes New set every cell to v instead of building the identity.
// Panics on NaN: a NaN-filled matrix is never a meaningful starting point.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithFill(v float64) Option {
	if math.IsNaN(v) {
		panic(panicFillInvalid)
	}

	return func(o *Options) {
		o.fill = v
		o.hasFill = true
	}
}

// WithTolerance overrides the numeric policy used by Equal, IsIdentity and Invert.
// Implementation:
//   - Stage 1: validate epsilon is finite and ≥ 0.
//   - Stage 2: return a setter writing both bounds.
//
// Notes:
//   - Larger bounds make Invert refuse more near-singular matrices.
func WithTolerance(epsilon float64, maxULPs uint64) Option {
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.tol = Tolerance{Epsilon: epsilon, MaxULPs: maxULPs} }
}

// withTol is the internal setter used to propagate a tolerance to derived matrices.
func withTol(t Tolerance) Option {
	return func(o *Options) { o.tol = t }
}

// DefaultTolerance returns the documented default numeric policy.
func DefaultTolerance() Tolerance {
	return Tolerance{Epsilon: DefaultEpsilon, MaxULPs: DefaultMaxULPs}
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance()}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
