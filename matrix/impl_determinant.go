// SPDX-License-Identifier: MIT

// Package matrix - determinant kernel.
//
// Purpose:
//   - Compute det(A) by Gauss–Jordan elimination with partial pivoting on a
//     private scratch copy; the input is never mutated.
//
// Determinism:
//   - Pivot ties resolve to the first row holding the maximum magnitude.
//   - Matrix.Determinant and Determinant share this code path, so both give
//     bit-identical results for the same cells.
package matrix

import "math"

// ZeroPivot is the exact value that marks a singular column during elimination.
const ZeroPivot = 0.0

// Determinant returns det(cells) for a square row buffer.
//
// Implementation:
//   - Stage 1: copy cells into scratch storage; det = 1.
//   - Stage 2: for each pivot column i:
//     pick the row k ≥ i with the largest |a[k][i]| (first wins on ties);
//     an exact zero pivot means singular ⇒ return 0;
//     swap rows i,k (negating det) when k != i; det *= a[i][i];
//     normalize a[i][i+1:] by the pivot;
//     eliminate column i from every other row j (above and below) for columns > i.
//   - Stage 3: return det.
//
// Inputs:
//   - cells: a square buffer (caller guarantees shape; Matrix always does).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - An empty buffer has determinant 1 (empty product).
func Determinant(cells [][]float64) float64 {
	n := len(cells)
	a := copyRows(cells)

	det := 1.0
	var i, j, k, l int
	var best, v, pivot, factor float64
	for i = 0; i < n; i++ {
		// Pivot search over rows i..n-1 in column i.
		k = i
		best = math.Abs(a[i][i])
		for j = i + 1; j < n; j++ {
			v = math.Abs(a[j][i])
			if v > best {
				best, k = v, j
			}
		}
		if a[k][i] == ZeroPivot {
			return 0
		}
		if k != i {
			a[i], a[k] = a[k], a[i]
			det = -det
		}

		pivot = a[i][i]
		det *= pivot

		rowI := a[i]
		for l = i + 1; l < n; l++ {
			rowI[l] /= pivot
		}

		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			rowJ := a[j]
			factor = rowJ[i]
			for l = i + 1; l < n; l++ {
				rowJ[l] -= factor * rowI[l]
			}
		}
	}

	return det
}

// Determinant returns det(m); m is left untouched.
// Complexity: O(n³).
func (m *Matrix) Determinant() float64 {
	return Determinant(m.cells)
}
