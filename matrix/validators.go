// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks.
//   - Constructors use the error-returning validators (fail-fast).
//   - Runtime operations use the boolean predicates (fail-soft: a false result
//     turns the operation into a no-op).
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.

package matrix

// ValidateBuffer checks that buf is a non-empty square row buffer.
//
// Errors: ErrEmptyBuffer if len(buf)==0, ErrNonSquare if any row length != len(buf).
// Complexity: O(n).
func ValidateBuffer(buf [][]float64) error {
	n := len(buf)
	if n == 0 {
		return ErrEmptyBuffer
	}
	for i := 0; i < n; i++ {
		if len(buf[i]) != n {
			return ErrNonSquare
		}
	}

	return nil
}

// ValidateSize checks that n is a usable dimension.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// compatible reports whether o can be combined cell-by-cell with m.
// A nil, empty, non-square or differently sized operand is incompatible.
func (m *Matrix) compatible(o *Matrix) bool {
	if o == nil || o.n != m.n {
		return false
	}

	return ValidateBuffer(o.cells) == nil
}

// compatibleValues reports whether vs holds exactly n² row-major values for m.
func (m *Matrix) compatibleValues(vs []float64) bool {
	return len(vs) == m.n*m.n
}

// inRange reports whether i is a valid row/column index for m.
func (m *Matrix) inRange(i int) bool { return i >= 0 && i < m.n }
