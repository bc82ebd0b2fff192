// SPDX-License-Identifier: MIT

// Package matrix - geometric transforms.
//
// Purpose:
//   - Transpose, flips and quarter/half rotations performed in place.
//
// Behavior highlights:
//   - Pure index permutations: values are moved, never recomputed, so
//     Transpose∘Transpose and four Rotate90Clockwise calls restore m bit-for-bit.
//   - Works for both even and odd n (the centre cell of odd n never moves
//     under rotations).
//
// Complexity:
//   - Every transform is O(n²) time and O(1) extra space.
package matrix

// Transpose swaps cell (i,j) with (j,i) for all i < j.
func (m *Matrix) Transpose() *Matrix {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			m.cells[i][j], m.cells[j][i] = m.cells[j][i], m.cells[i][j]
		}
	}

	return m
}

// FlipHorizontally mirrors columns: column j swaps with column n-1-j.
func (m *Matrix) FlipHorizontally() *Matrix {
	var i, j int
	for i = 0; i < m.n; i++ {
		row := m.cells[i]
		for j = 0; j < m.n/2; j++ {
			row[j], row[m.n-1-j] = row[m.n-1-j], row[j]
		}
	}

	return m
}

// FlipVertically mirrors rows: row i swaps values with row n-1-i.
// Values are exchanged cell by cell so aliased row slices keep their identity.
func (m *Matrix) FlipVertically() *Matrix {
	var i, j int
	for i = 0; i < m.n/2; i++ {
		top, bottom := m.cells[i], m.cells[m.n-1-i]
		for j = 0; j < m.n; j++ {
			top[j], bottom[j] = bottom[j], top[j]
		}
	}

	return m
}

// Rotate90Clockwise rotates m a quarter turn clockwise.
//
// Implementation:
//   - Walk the concentric rings from the outside in.
//   - For every offset on a ring, cycle four cells: left → top → right → bottom → left.
func (m *Matrix) Rotate90Clockwise() *Matrix {
	c := m.cells
	var layer, first, last, i, off int
	var top float64
	for layer = 0; layer < m.n/2; layer++ {
		first, last = layer, m.n-1-layer
		for i = first; i < last; i++ {
			off = i - first
			top = c[first][i]
			c[first][i] = c[last-off][first]
			c[last-off][first] = c[last][last-off]
			c[last][last-off] = c[i][last]
			c[i][last] = top
		}
	}

	return m
}

// Rotate90AntiClockwise rotates m a quarter turn anticlockwise (inverse of Rotate90Clockwise).
func (m *Matrix) Rotate90AntiClockwise() *Matrix {
	c := m.cells
	var layer, first, last, i, off int
	var top float64
	for layer = 0; layer < m.n/2; layer++ {
		first, last = layer, m.n-1-layer
		for i = first; i < last; i++ {
			off = i - first
			top = c[first][i]
			c[first][i] = c[i][last]
			c[i][last] = c[last][last-off]
			c[last][last-off] = c[last-off][first]
			c[last-off][first] = top
		}
	}

	return m
}

// Rotate180 rotates m a half turn in one pass: flat index k swaps with n²-1-k.
func (m *Matrix) Rotate180() *Matrix {
	total := m.n * m.n
	var k, r int
	for k = 0; k < total/2; k++ {
		r = total - 1 - k
		m.cells[k/m.n][k%m.n], m.cells[r/m.n][r%m.n] = m.cells[r/m.n][r%m.n], m.cells[k/m.n][k%m.n]
	}

	return m
}
