// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"

	"github.com/katalvlaran/lvmath/matrix"
)

const commentPrefix = "#"

// MaxLineBytes caps the length of a single input line accepted by Read.
const MaxLineBytes = 16 << 20

const initLineBytes = 64 << 10

// Read parses a square matrix from r.
// Lines longer than MaxLineBytes fail with bufio.ErrTooLong.
//
// Implementation:
//   - Stage 1: scan lines, skipping blanks and comments.
//   - Stage 2: split on whitespace and parse every field as float64.
//   - Stage 3: hand the rows to matrix.NewFromBuffer (square check).
//
// Errors:
//   - ErrNoRows, ErrRaggedRow (with line numbers), strconv parse errors,
//     matrix.ErrNonSquare.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initLineBytes), MaxLineBytes)
	var rows [][]float64
	width, line := -1, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields := strings.Fields(text)
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, lineErrorf(line, ErrRaggedRow)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, lineErrorf(line, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return matrix.NewFromBuffer(rows, opts...)
}

// ReadFile reads the leading n×n block of the table at path: the first n
// columns of the first n data rows. Extra rows and columns are ignored.
// When n <= 0 the column count of the first data line is used.
//
// Implementation:
//   - Stage 1: resolve n (peek the first data line when not given).
//   - Stage 2: table.ReadTable over columns 0..n-1 (column-major result).
//   - Stage 3: transpose the first n rows and build the matrix.
func ReadFile(path string, n int, opts ...matrix.Option) (*matrix.Matrix, error) {
	if n <= 0 {
		w, err := firstRowWidth(path)
		if err != nil {
			return nil, err
		}
		n = w
	}

	colIdxs := make([]int, n)
	for j := range colIdxs {
		colIdxs[j] = j
	}
	cols, err := table.ReadTable(path, colIdxs, nil)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %s: %w", path, err)
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrNoRows
	}

	m := len(cols[0])
	if m > n {
		m = n
	}
	rows := make([][]float64, m)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = cols[j][i]
		}
	}

	return matrix.NewFromBuffer(rows, opts...)
}

// firstRowWidth returns the field count of the first data line in path.
func firstRowWidth(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}

		return len(strings.Fields(text)), nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}

	return 0, ErrNoRows
}
