// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/lvmath/matrix"
)

// Write prints m as a whitespace table, one row per line.
// prec follows strconv.FormatFloat with the 'g' verb; -1 gives the shortest
// representation that reads back to the same bits.
func Write(w io.Writer, m *matrix.Matrix, prec int) error {
	bw := bufio.NewWriter(w)
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(m.At(i, j), 'g', prec, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
