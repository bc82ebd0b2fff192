// SPDX-License-Identifier: MIT

// Package matrix - square dense storage & fail-soft accessors.
//
// Purpose:
//   - Own (or alias) an N×N row buffer with explicit ownership rules.
//   - Keep cell access total: reads out of range yield NaN, writes out of
//     range are ignored, so bulk loops never need error plumbing.
//   - Provide row/column reductions and deep copies.
//
// AI-Hints:
//   - NewFromBuffer does NOT copy; mutations through either handle are shared.
//   - Use NewCopyOf or Copy when the lifetime must be independent.
//
// Complexity quicksheet:
//   - New/NewCopyOf/Copy: O(n²); NewFromBuffer: O(n); At/Set: O(1); row/col reductions: O(n).

package matrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmath/approx"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New creates an n×n matrix: the identity by default, or a uniform fill with WithFill.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions and no matrix.
//   - Stage 2: allocate one contiguous backing array and slice it into rows.
//   - Stage 3: write the diagonal (identity) or every cell (fill).
//
// Errors:
//   - ErrInvalidDimensions (wrapped with "New").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int, opts ...Option) (*Matrix, error) {
	if err := ValidateSize(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	m := &Matrix{n: n, cells: allocRows(n), tol: o.tol}
	if o.hasFill {
		m.fill(o.fill)
	} else {
		m.setIdentity()
	}

	return m, nil
}

// NewFromBuffer wraps an existing square buffer WITHOUT copying it.
// The caller and the returned Matrix share the rows until one side calls Copy.
//
// Errors:
//   - ErrEmptyBuffer when buf has no rows.
//   - ErrNonSquare when any row length differs from len(buf).
//
// Complexity:
//   - Time O(n) for the shape check, Space O(1).
func NewFromBuffer(buf [][]float64, opts ...Option) (*Matrix, error) {
	if err := ValidateBuffer(buf); err != nil {
		return nil, matrixErrorf(opNewFromBuf, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{n: len(buf), cells: buf, tol: o.tol}, nil
}

// NewCopyOf builds a Matrix from a deep copy of buf; later changes to buf are not observed.
//
// Errors:
//   - Same as NewFromBuffer.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewCopyOf(buf [][]float64, opts ...Option) (*Matrix, error) {
	if err := ValidateBuffer(buf); err != nil {
		return nil, matrixErrorf(opNewCopyOf, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{n: len(buf), cells: copyRows(buf), tol: o.tol}, nil
}

// allocRows returns n zeroed rows backed by a single n*n allocation.
func allocRows(n int) [][]float64 {
	flat := make([]float64, n*n)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}

// copyRows deep-copies a square buffer into fresh storage.
func copyRows(src [][]float64) [][]float64 {
	dst := allocRows(len(src))
	for i := range src {
		copy(dst[i], src[i])
	}

	return dst
}

func (m *Matrix) fill(v float64) {
	for i := 0; i < m.n; i++ {
		row := m.cells[i]
		for j := range row {
			row[j] = v
		}
	}
}

func (m *Matrix) setIdentity() {
	for i := 0; i < m.n; i++ {
		row := m.cells[i]
		for j := range row {
			row[j] = 0
		}
		row[i] = 1
	}
}

// Size returns the dimension N.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// Rows exposes the live row buffer (no copy). Writes through it are visible to m.
func (m *Matrix) Rows() [][]float64 { return m.cells }

// Tolerance returns the numeric policy carried by m.
func (m *Matrix) Tolerance() Tolerance { return m.tol }

// Copy returns an independent deep copy sharing no memory with m.
// Complexity: O(n²).
func (m *Matrix) Copy() *Matrix {
	return &Matrix{n: m.n, cells: copyRows(m.cells), tol: m.tol}
}

// At returns cell (row, col), or NaN when either index is out of range.
// Complexity: O(1).
func (m *Matrix) At(row, col int) float64 {
	if !m.inRange(row) || !m.inRange(col) {
		return math.NaN()
	}

	return m.cells[row][col]
}

// Set stores v at (row, col); out-of-range writes are silently ignored.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) *Matrix {
	if m.inRange(row) && m.inRange(col) {
		m.cells[row][col] = v
	}

	return m
}

// RowMax returns the largest value of row, or NaN for an invalid index.
func (m *Matrix) RowMax(row int) float64 {
	if !m.inRange(row) {
		return math.NaN()
	}

	return reduceMax(m.cells[row])
}

// RowMin returns the smallest value of row, or NaN for an invalid index.
func (m *Matrix) RowMin(row int) float64 {
	if !m.inRange(row) {
		return math.NaN()
	}

	return reduceMin(m.cells[row])
}

// RowSum returns the sum of row, or NaN for an invalid index.
func (m *Matrix) RowSum(row int) float64 {
	if !m.inRange(row) {
		return math.NaN()
	}

	return reduceSum(m.cells[row])
}

// ColMax returns the largest value of column col, or NaN for an invalid index.
func (m *Matrix) ColMax(col int) float64 {
	if !m.inRange(col) {
		return math.NaN()
	}

	return reduceMax(m.column(col))
}

// ColMin returns the smallest value of column col, or NaN for an invalid index.
func (m *Matrix) ColMin(col int) float64 {
	if !m.inRange(col) {
		return math.NaN()
	}

	return reduceMin(m.column(col))
}

// ColSum returns the sum of column col, or NaN for an invalid index.
func (m *Matrix) ColSum(col int) float64 {
	if !m.inRange(col) {
		return math.NaN()
	}

	return reduceSum(m.column(col))
}

// column gathers column col into a fresh slice. Caller checks the index.
func (m *Matrix) column(col int) []float64 {
	out := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.cells[i][col]
	}

	return out
}

func reduceMax(vs []float64) float64 {
	best := vs[0]
	for _, v := range vs[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

func reduceMin(vs []float64) float64 {
	best := vs[0]
	for _, v := range vs[1:] {
		if v < best {
			best = v
		}
	}

	return best
}

func reduceSum(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}

	return sum
}

// Equal reports whether o has the same size and approximately equal cells,
// judged with m's tolerance. A nil o is never equal.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.compatible(o) {
		return false
	}
	for i := 0; i < m.n; i++ {
		a, b := m.cells[i], o.cells[i]
		for j := 0; j < m.n; j++ {
			if !approx.Equal(a[j], b[j], m.tol.Epsilon, m.tol.MaxULPs) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is approximately the identity matrix.
func (m *Matrix) IsIdentity() bool {
	var want float64
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if !approx.Equal(m.cells[i][j], want, m.tol.Epsilon, m.tol.MaxULPs) {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed, comma-separated line per row.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			b.WriteString(strconv.FormatFloat(m.cells[i][j], 'g', -1, 64))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
