// SPDX-License-Identifier: MIT

// Package approx - approximate floating-point comparison.
//
// Purpose:
//   - Provide the single "is this value zero / are these values equal" oracle
//     used by the matrix engine for singularity and equality checks.
//   - Combine an absolute tolerance with a ULP (units in the last place) bound,
//     so both tiny absolute errors and relative rounding drift are accepted.
//
// Policy:
//   - NaN equals NaN; NaN never equals a number.
//   - An infinity only equals the same infinity.
//   - Finite values are equal when |a-b| <= epsilon OR ULPDistance(a,b) <= maxULPs.
//
// AI-Hints:
//   - Use EqualDefault in matrix code paths; pass explicit tolerances in tests.
package approx

import "math"

// Defaults consumed by the matrix engine.
const (
	// DefaultEpsilon is the absolute tolerance used for zero tests.
	DefaultEpsilon = 1e-8

	// DefaultMaxULPs is the maximum ULP distance accepted as equal.
	DefaultMaxULPs uint64 = 1
)

// Equal reports whether a and b are approximately equal.
//
// Implementation:
//   - Stage 1: resolve NaN and ±Inf cases exactly.
//   - Stage 2: accept on absolute difference within epsilon.
//   - Stage 3: fall back to the ULP distance bound.
//
// Complexity:
//   - Time O(1), Space O(1).
func Equal(a, b, epsilon float64, maxULPs uint64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	if math.Abs(a-b) <= epsilon {
		return true
	}

	return ULPDistance(a, b) <= maxULPs
}

// EqualDefault is Equal with DefaultEpsilon and DefaultMaxULPs.
func EqualDefault(a, b float64) bool {
	return Equal(a, b, DefaultEpsilon, DefaultMaxULPs)
}

// IsZero reports whether v is approximately zero.
func IsZero(v, epsilon float64, maxULPs uint64) bool {
	return Equal(v, 0, epsilon, maxULPs)
}

// ULPDistance returns the number of representable float64 values between a and b.
// Both inputs must be finite; NaN/Inf give meaningless (but non-panicking) results.
//
// Implementation:
//   - Stage 1: map each bit pattern onto a monotonic signed key (orderedKey).
//   - Stage 2: subtract in uint64 space; finite keys never differ by 2^64 or more.
//
// Complexity:
//   - Time O(1), Space O(1).
func ULPDistance(a, b float64) uint64 {
	ka, kb := orderedKey(a), orderedKey(b)
	if ka >= kb {
		return uint64(ka) - uint64(kb)
	}

	return uint64(kb) - uint64(ka)
}

// orderedKey remaps the sign-magnitude IEEE-754 pattern so integer order
// matches float order and -0 / +0 share key 0.
func orderedKey(f float64) int64 {
	k := int64(math.Float64bits(f))
	if k < 0 {
		k = math.MinInt64 - k
	}

	return k
}
