// SPDX-License-Identifier: MIT

// Package matrix - in-place elementwise kernels.
//
// Purpose:
//   - Add / Sub / Divide against another Matrix or N² raw values.
//   - Scale and Apply (plus one-line math specializations).
//   - Mul / Pow matrix products, following the same conventions.
//
// Policy:
//   - Every kernel mutates the receiver and returns it for chaining.
//   - An incompatible operand (nil, empty, non-square, other size, wrong value
//     count) makes the call a silent no-op. Construction is the only fail-fast
//     surface of the package.
//
// Determinism:
//   - Fixed i→j loop order everywhere.
package matrix

import "math"

// binaryOp is the per-cell combiner shared by Add/Sub/Divide.
type binaryOp func(a, b float64) float64

func opPlus(a, b float64) float64  { return a + b }
func opMinus(a, b float64) float64 { return a - b }
func opDiv(a, b float64) float64   { return a / b }

// zipWith applies f(m[i][j], o[i][j]) into m when o is compatible.
func (m *Matrix) zipWith(o *Matrix, f binaryOp) *Matrix {
	if !m.compatible(o) {
		return m
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		dst, src := m.cells[i], o.cells[i]
		for j = 0; j < m.n; j++ {
			dst[j] = f(dst[j], src[j])
		}
	}

	return m
}

// zipValues applies f(m[i][j], vs[i*n+j]) into m when len(vs) == n².
func (m *Matrix) zipValues(vs []float64, f binaryOp) *Matrix {
	if !m.compatibleValues(vs) {
		return m
	}
	var i, j, base int
	for i = 0; i < m.n; i++ {
		dst := m.cells[i]
		base = i * m.n
		for j = 0; j < m.n; j++ {
			dst[j] = f(dst[j], vs[base+j])
		}
	}

	return m
}

// Add performs m += o cell by cell. No-op when o is incompatible.
// Complexity: O(n²).
func (m *Matrix) Add(o *Matrix) *Matrix { return m.zipWith(o, opPlus) }

// Sub performs m -= o cell by cell. No-op when o is incompatible.
// Complexity: O(n²).
func (m *Matrix) Sub(o *Matrix) *Matrix { return m.zipWith(o, opMinus) }

// Divide performs m /= o cell by cell. No-op when o is incompatible.
// Division by zero follows IEEE-754 (±Inf or NaN).
// Complexity: O(n²).
func (m *Matrix) Divide(o *Matrix) *Matrix { return m.zipWith(o, opDiv) }

// AddValues adds n² row-major values. No-op when the count is wrong.
func (m *Matrix) AddValues(vs ...float64) *Matrix { return m.zipValues(vs, opPlus) }

// SubValues subtracts n² row-major values. No-op when the count is wrong.
func (m *Matrix) SubValues(vs ...float64) *Matrix { return m.zipValues(vs, opMinus) }

// DivideValues divides by n² row-major values. No-op when the count is wrong.
func (m *Matrix) DivideValues(vs ...float64) *Matrix { return m.zipValues(vs, opDiv) }

// Scale multiplies every cell by factor.
// Complexity: O(n²).
func (m *Matrix) Scale(factor float64) *Matrix {
	return m.Apply(func(v float64) float64 { return v * factor })
}

// Apply replaces every cell v with f(v) in row-major order.
// MAIN DESCRIPTION:
//   - Generic in-place map backing all the math specializations below.
//
// Behavior highlights:
//   - f must be pure; it is called exactly n² times.
//   - Non-finite results are stored as-is.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	var i, j int
	for i = 0; i < m.n; i++ {
		row := m.cells[i]
		for j = 0; j < m.n; j++ {
			row[j] = f(row[j])
		}
	}

	return m
}

// Abs replaces every cell with its absolute value.
func (m *Matrix) Abs() *Matrix { return m.Apply(math.Abs) }

// Negate flips the sign of every cell.
func (m *Matrix) Negate() *Matrix { return m.Scale(-1) }

// Sin replaces every cell with its sine.
func (m *Matrix) Sin() *Matrix { return m.Apply(math.Sin) }

// Cos replaces every cell with its cosine.
func (m *Matrix) Cos() *Matrix { return m.Apply(math.Cos) }

// Tan replaces every cell with its tangent.
func (m *Matrix) Tan() *Matrix { return m.Apply(math.Tan) }

// Floor rounds every cell down.
func (m *Matrix) Floor() *Matrix { return m.Apply(math.Floor) }

// Ceil rounds every cell up.
func (m *Matrix) Ceil() *Matrix { return m.Apply(math.Ceil) }

// Round rounds every cell half away from zero.
func (m *Matrix) Round() *Matrix { return m.Apply(math.Round) }

// Sqrt replaces every cell with its square root (NaN for negatives).
func (m *Matrix) Sqrt() *Matrix { return m.Apply(math.Sqrt) }

// Square replaces every cell v with v*v.
func (m *Matrix) Square() *Matrix { return m.Apply(func(v float64) float64 { return v * v }) }

// Exp replaces every cell with e^v.
func (m *Matrix) Exp() *Matrix { return m.Apply(math.Exp) }

// Log replaces every cell with its natural logarithm.
func (m *Matrix) Log() *Matrix { return m.Apply(math.Log) }

// Mul replaces m with the matrix product m × o. No-op when o is incompatible.
// o may be m itself.
//
// Implementation:
//   - Stage 1: compute the product into scratch rows (i→k→j order).
//   - Stage 2: copy scratch rows back into m's own rows, so an aliased
//     caller buffer observes the result.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if !m.compatible(o) {
		return m
	}
	out := mulRows(m.cells, o.cells, m.n)
	m.assign(out)

	return m
}

// Pow replaces m with m^k. k == 0 yields the identity; k < 0 is a no-op.
// Uses binary exponentiation.
// Complexity: O(n³ log k).
func (m *Matrix) Pow(k int) *Matrix {
	if k < 0 {
		return m
	}
	if k == 0 {
		m.setIdentity()
		return m
	}

	base := copyRows(m.cells)
	var acc [][]float64 // nil means identity
	for k > 0 {
		if k&1 == 1 {
			if acc == nil {
				acc = copyRows(base)
			} else {
				acc = mulRows(acc, base, m.n)
			}
		}
		k >>= 1
		if k > 0 {
			base = mulRows(base, base, m.n)
		}
	}
	m.assign(acc)

	return m
}

// mulRows returns a × b for n×n row buffers into fresh storage.
func mulRows(a, b [][]float64, n int) [][]float64 {
	out := allocRows(n)
	var i, k, j int
	var aik float64
	for i = 0; i < n; i++ {
		dst := out[i]
		for k = 0; k < n; k++ {
			aik = a[i][k]
			src := b[k]
			for j = 0; j < n; j++ {
				dst[j] += aik * src[j]
			}
		}
	}

	return out
}

// assign copies src into m's existing rows (keeps aliasing intact).
func (m *Matrix) assign(src [][]float64) {
	for i := 0; i < m.n; i++ {
		copy(m.cells[i], src[i])
	}
}
