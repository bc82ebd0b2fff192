// SPDX-License-Identifier: MIT

// Package matrix - inversion kernel.
//
// Purpose:
//   - Invert m in place using scaled partial pivoting and a Doolittle-style
//     in-place factorization, then solve A·X = I for all N right-hand sides
//     in one batched forward/backward substitution.
//
// Behavior highlights:
//   - Rows are never moved: a permutation records the logical row order,
//     so the physical layout (and any caller aliasing it) stays stable.
//   - Elimination multipliers are stored in the cells they zero out.
//   - Singularity is decided once, up front, from the determinant.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the right-hand sides and solution.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/approx"
)

// Invert replaces m with its inverse and returns m, or returns nil when m is
// singular under its tolerance (m is then left untouched).
//
// Implementation:
//   - Stage 1: det ≈ 0 (approx.IsZero with m's Tolerance) ⇒ nil.
//   - Stage 2: factorize m in place (scaled partial pivoting, permutation p).
//   - Stage 3: batched substitution over the identity right-hand sides.
//   - Stage 4: copy the solution back into m's own rows.
//
// Notes:
//   - A pivot that becomes exactly zero during Stage 2 is not re-checked;
//     Stage 1 is the single singularity gate.
//
// AI-Hints:
//   - Use the Inverse facade when the original must survive.
func (m *Matrix) Invert() *Matrix {
	if approx.IsZero(m.Determinant(), m.tol.Epsilon, m.tol.MaxULPs) {
		return nil
	}

	p := factorize(m.cells)
	m.assign(solveIdentity(m.cells, p))

	return m
}

// factorize performs elimination on a in place and returns the row permutation.
//
// Implementation:
//   - Stage 1: scale[i] = max_j |a[i][j]| per physical row.
//   - Stage 2: for col = 0..n-2:
//     choose the logical row maximizing |a[p[row]][col]| / scale[p[row]]
//     (first wins on ties); swap p[col] with it;
//     for each logical row below: factor = a[p[row]][col] / a[p[col]][col],
//     store factor in a[p[row]][col], and subtract factor·a[p[col]][l] for l > col.
//
// Complexity:
//   - Time O(n³), Space O(n).
func factorize(a [][]float64) permutation {
	n := len(a)
	scale := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v := math.Abs(a[i][j]); v > scale[i] {
				scale[i] = v
			}
		}
	}

	p := identityPermutation(n)
	var col, row, pivot, l int
	var best, ratio, factor float64
	for col = 0; col < n-1; col++ {
		pivot, best = col, -1
		for row = col; row < n; row++ {
			ratio = math.Abs(a[p[row]][col]) / scale[p[row]]
			if ratio > best {
				best, pivot = ratio, row
			}
		}
		p.swap(col, pivot)

		pivotRow := a[p[col]]
		for row = col + 1; row < n; row++ {
			r := a[p[row]]
			factor = r[col] / pivotRow[col]
			r[col] = factor
			for l = col + 1; l < n; l++ {
				r[l] -= factor * pivotRow[l]
			}
		}
	}

	return p
}

// solveIdentity solves L·U·X = P·I for X given the factorized a and permutation p.
//
// Implementation:
//   - Stage 1: b = I (physical rows), so logical row i of the RHS is b[p[i]].
//   - Stage 2: forward pass: for each logical i, subtract a[p[j]][i]·b[p[i]]
//     from every later b[p[j]] (whole rows at once, all N columns).
//   - Stage 3: backward pass, bottom-up over logical rows, again whole rows:
//     x[j] = (b[p[j]] - Σ_{k>j} a[p[j]][k]·x[k]) / a[p[j]][j].
//
// Complexity:
//   - Time O(n³), Space O(n²).
func solveIdentity(a [][]float64, p permutation) [][]float64 {
	n := len(a)
	b := allocRows(n)
	var i, j, k, c int
	for i = 0; i < n; i++ {
		b[i][i] = 1
	}

	// Forward substitution with the stored multipliers (L, unit diagonal).
	var f float64
	for i = 0; i < n-1; i++ {
		bi := b[p[i]]
		for j = i + 1; j < n; j++ {
			f = a[p[j]][i]
			bj := b[p[j]]
			for c = 0; c < n; c++ {
				bj[c] -= f * bi[c]
			}
		}
	}

	// Backward substitution with the upper triangle (U).
	x := allocRows(n)
	var u, diag float64
	for j = n - 1; j >= 0; j-- {
		xj := x[j]
		copy(xj, b[p[j]])
		aj := a[p[j]]
		for k = j + 1; k < n; k++ {
			u = aj[k]
			xk := x[k]
			for c = 0; c < n; c++ {
				xj[c] -= u * xk[c]
			}
		}
		diag = aj[j]
		for c = 0; c < n; c++ {
			xj[c] /= diag
		}
	}

	return x
}
