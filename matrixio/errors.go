// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRows is returned when the input holds no data lines.
	ErrNoRows = errors.New("matrixio: no data rows")

	// ErrRaggedRow is returned when a line has a different field count than the first one.
	ErrRaggedRow = errors.New("matrixio: row length differs from first row")
)

// lineErrorf tags err with the 1-based input line.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
