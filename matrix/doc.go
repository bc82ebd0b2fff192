// Package matrix implements a variable-size square dense matrix engine.
//
// The matrix package provides:
//
//   - Matrix: an N×N row-major buffer of float64 values with fail-soft cell
//     access (NaN on out-of-range reads, ignored out-of-range writes).
//   - Elementwise operations (Add, Sub, Divide, Scale, Apply and friends) that
//     mutate the receiver in place and return it for chaining.
//   - Geometric operations (Transpose, flips and rotations) that only move
//     values and never introduce floating-point drift.
//   - Determinant via Gauss–Jordan elimination with partial pivoting.
//   - Invert via scaled partial pivoting, an index permutation instead of row
//     swaps, and a batched forward/backward substitution over all N columns.
//
// Construction is strict (invalid shapes return sentinel errors); everything
// after construction is fail-soft. A Matrix built with NewFromBuffer aliases
// the caller's rows; use NewCopyOf or Copy for an independent buffer.
//
// A Matrix is not safe for concurrent mutation. Take a Copy before handing it
// to another goroutine.
package matrix
