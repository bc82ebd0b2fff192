// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// Matrix owns (or aliases) an N×N row-major buffer; Tolerance carries the
// numeric policy handed to the approx oracle for zero and equality tests.
package matrix

import "fmt"

// Tolerance is the pair of bounds forwarded to approx.Equal.
type Tolerance struct {
	Epsilon float64 // absolute bound; DefaultEpsilon
	MaxULPs uint64  // ULP-distance bound; DefaultMaxULPs
}

// Matrix is a square dense matrix of float64 values.
//
//   - n is the dimension (n >= 1, fixed at construction).
//   - cells holds n rows of n values each; cells[i][j] is row i, column j.
//   - tol is the numeric policy used by Equal, IsIdentity and Invert.
//
// Every mutating method works in place and returns the receiver, so calls chain:
//
//	m.Add(b).Scale(0.5).Transpose()
type Matrix struct {
	n     int
	cells [][]float64
	tol   Tolerance
}

var _ fmt.Stringer = (*Matrix)(nil)
