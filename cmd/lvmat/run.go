package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/matrixio"
)

// errNotInvertible is reported when the job asks to invert a singular matrix.
var errNotInvertible = errors.New("lvmat: matrix is not invertible")

// execute runs the job and writes to [output] path, or to stdout when no path
// is set. The output file is always closed; a close failure is reported when
// the job itself succeeded.
func execute(c *Config, stdout io.Writer) (err error) {
	if c.Output.Path == "" {
		return run(c, stdout)
	}

	f, err := os.Create(c.Output.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return run(c, f)
}

// run executes the job in c and writes its result to out.
// Determinant jobs print a single number; all other jobs print the matrix.
func run(c *Config, out io.Writer) error {
	m, err := matrixio.ReadFile(
		c.Input.Path, c.Input.Size,
		matrix.WithTolerance(c.Tolerance.Epsilon, c.Tolerance.MaxULPs),
	)
	if err != nil {
		return err
	}

	switch c.Job.Op {
	case OpDeterminant:
		_, err = fmt.Fprintln(out, formatScalar(m.Determinant(), c.Output.Precision))
		return err
	case OpInvert:
		if m.Invert() == nil {
			return errNotInvertible
		}
	case OpTranspose:
		m.Transpose()
	case OpRotate90:
		m.Rotate90Clockwise()
	case OpRotate180:
		m.Rotate180()
	case OpFlipX:
		m.FlipHorizontally()
	case OpFlipY:
		m.FlipVertically()
	case OpPow:
		m.Pow(c.Job.Power)
	default:
		return fmt.Errorf("lvmat: unsupported op %q", c.Job.Op)
	}

	return matrixio.Write(out, m, c.Output.Precision)
}

func formatScalar(v float64, prec int) string {
	if prec < 0 {
		return fmt.Sprint(v)
	}

	return fmt.Sprintf("%.*g", prec, v)
}
